package cache

import (
	"encoding/json"
	"reflect"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain/keys"
	"github.com/x-xyz/storefront/service/cache/provider"
)

type impl struct {
	ttl         time.Duration
	pfx         string
	cache       provider.Provider
	serialize   Serializer
	deserialize Deserializer
}

func New(config ServiceConfig) Service {
	if config.Serialize == nil {
		config.Serialize = json.Marshal
	}

	if config.Deserialize == nil {
		config.Deserialize = json.Unmarshal
	}

	return &impl{
		ttl:         config.Ttl,
		pfx:         config.Pfx,
		cache:       config.Cache,
		serialize:   config.Serialize,
		deserialize: config.Deserialize,
	}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err != nil && err != ErrNotFound {
		// a broken cache must not hide the source
		c.WithField("err", err).WithField("key", key).Warn("Get failed, falling back to getter")
	} else if err == nil {
		return nil
	}

	val, err := getter()
	if err != nil {
		return err
	}

	if err := im.Set(c, key, val); err != nil {
		c.WithField("err", err).WithField("key", key).Error("Set failed")
	}

	return fill(container, val)
}

// fill copies *val into the *container
func fill(container, val interface{}) error {
	cv, vv := reflect.ValueOf(container), reflect.ValueOf(val)
	if cv.Kind() != reflect.Ptr || vv.Kind() != reflect.Ptr || cv.Elem().Type() != vv.Elem().Type() {
		return xerrors.Errorf("cache: cannot fill %T with %T", container, val)
	}
	cv.Elem().Set(vv.Elem())
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	val, _, err := im.cache.Get(c, key)
	if err == provider.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return err
	}

	if err := im.deserialize(val, container); err != nil {
		c.WithField("err", err).WithField("key", key).Error("deserialize failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	val, err := im.serialize(value)
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("serialize failed")
		return err
	}
	if err := im.cache.Set(c, key, val, im.ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = keys.RedisKey(im.pfx, key)

	if err := im.cache.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Del failed")
		return err
	}
	return nil
}
