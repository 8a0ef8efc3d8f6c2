package ens

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/ptr"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/keys"
	"github.com/x-xyz/storefront/service/cache"
	compoundcache "github.com/x-xyz/storefront/service/cache/compoundCache"
	"github.com/x-xyz/storefront/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/storefront/service/cache/provider/redis"
	"github.com/x-xyz/storefront/service/redis"
)

type impl struct {
	resolve func(name string) (common.Address, error)
	reverse func(address common.Address) (string, error)
	cache   cache.Service
}

// New resolves against the ens registry of the chain behind rpc. Lookups are
// cached in process for 30 seconds and in redis for a week.
func New(rpc string, redis redis.Service) (ENS, error) {
	client, err := ethclient.Dial(rpc)
	if err != nil {
		return nil, err
	}
	return &impl{
		resolve: func(name string) (common.Address, error) {
			return goens.Resolve(client, name)
		},
		reverse: func(address common.Address) (string, error) {
			return goens.ReverseResolve(client, address)
		},
		cache: compoundcache.NewCompoundCache([]cache.Service{
			cache.New(cache.ServiceConfig{
				Ttl:   30 * time.Second,
				Pfx:   keys.PfxEns,
				Cache: primitive.NewPrimitive("ens", 8),
			}),
			cache.New(cache.ServiceConfig{
				Ttl:   7 * 24 * time.Hour,
				Pfx:   keys.PfxEns,
				Cache: redisCache.NewRedis(redis),
			}),
		}),
	}, nil
}

func (im *impl) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	res := domain.Address("")
	key := keys.RedisKey("resolve", name)
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		addr, err := im.resolve(name)
		if fmt.Sprint(err) == "unregistered name" {
			val := domain.Address("")
			return &val, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
			}).Error("failed to goens.Resolve")
			return nil, err
		}
		val := domain.Address(addr.String())
		return &val, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}

	return res, nil
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := keys.RedisKey("reverse-resolve", address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := im.reverse(common.HexToAddress(string(address)))
		if s := fmt.Sprint(err); s == "not a resolver" || s == "no resolution" {
			return ptr.String(""), nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
			}).Error("failed to goens.ReverseResolve")
			return nil, err
		}
		return &name, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}

	return res, nil
}
