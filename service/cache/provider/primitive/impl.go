package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/service/cache/provider"
)

var timeNow = time.Now

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive keeps entries in process memory, sizeMB megabytes at most
func NewPrimitive(name string, sizeMB int) provider.Provider {
	return &impl{name, freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, expireAt, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).WithField("cache", im.name).Error("cache.Get failed")
		return nil, 0, err
	}

	// expireAt is an absolute unix second, zero when the entry never expires
	ttl := time.Duration(0)
	if expireAt > 0 {
		ttl = time.Unix(int64(expireAt), 0).Sub(timeNow())
		if ttl < 0 {
			ttl = 0
		}
	}
	return val, ttl, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		c.WithField("err", err).WithField("key", key).WithField("cache", im.name).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
