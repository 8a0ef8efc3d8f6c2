package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxWalletSession is used for prefixing wallet session redis key
	PfxWalletSession = "walletSession"
	// PfxListingFeed is used for prefixing the cached active listings
	PfxListingFeed = "listingFeed"
	// PfxAssetMetadata is used for prefixing token metadata lookups
	PfxAssetMetadata = "assetMetadata"
	// PfxEns is used for prefixing ens lookups
	PfxEns = "ens"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix returns the first component of a redis key, used as metric tag
func GetPrefix(key string) string {
	if i := strings.Index(key, ":"); i >= 0 {
		return key[:i]
	}
	return key
}
