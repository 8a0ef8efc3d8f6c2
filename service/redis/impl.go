package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/domain/keys"
)

const (
	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2

	// retTTLNoExpire is the return value of TTL when the key exists but has
	// no associated expire
	retTTLNoExpire = -1
)

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// New redis service on top of pools
func New(name string, metrics metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:  name,
		met:   metrics,
		pools: pools,
	}
}

func (r *redImpl) getConn() (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	if r.pools == nil || r.pools.Src == nil {
		return nil, ErrNoPool
	}

	conn := r.pools.Src.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name)
		return nil, err
	}
	return conn, nil
}

func (r *redImpl) connDo(c ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn()
	if err != nil {
		c.WithField("err", err).Error("getConn failed")
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)

	// release asap so the pool keeps fewer connections busy
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) tags(fn, key string) []string {
	return []string{"func", fn, "cluster", r.name, "prefix", keys.GetPrefix(key)}
}

func (r *redImpl) Get(c ctx.Ctx, key string) ([]byte, error) {
	tags := r.tags("get", key)
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.connDo(c, "GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("get redis failed")
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *redImpl) Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := r.tags("set", key)
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	var err error
	if expire == Forever {
		_, err = r.connDo(c, "SET", key, val)
	} else {
		_, err = r.connDo(c, "SET", key, val, "PX", int64(expire/time.Millisecond))
	}
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("set redis failed")
	}
	return err
}

// SetNX sets key only when it does not exist and reports whether it did
func (r *redImpl) SetNX(c ctx.Ctx, key string, val []byte, expire time.Duration) (bool, error) {
	defer r.met.BumpTime("time", r.tags("setnx", key)...).End()

	args := []interface{}{key, val}
	if expire != Forever {
		args = append(args, "PX", int64(expire/time.Millisecond))
	}
	args = append(args, "NX")

	_, err := redis.String(r.connDo(c, "SET", args...))
	if err == redis.ErrNil {
		return false, nil
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("setnx redis failed")
		return false, err
	}
	return true, nil
}

func (r *redImpl) Del(c ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, nil
	}
	defer r.met.BumpTime("time", r.tags("del", ks[0])...).End()

	args := make([]interface{}, len(ks))
	for i, k := range ks {
		args[i] = k
	}
	n, err := redis.Int(r.connDo(c, "DEL", args...))
	if err != nil {
		c.WithField("err", err).WithField("keys", ks).Error("del redis failed")
		return 0, err
	}
	return n, nil
}

// TTL returns the remaining seconds of key
func (r *redImpl) TTL(c ctx.Ctx, key string) (int, error) {
	defer r.met.BumpTime("time", r.tags("ttl", key)...).End()

	res, err := redis.Int(r.connDo(c, "TTL", key))
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("TTL redis failed")
		return 0, err
	}

	switch res {
	case retTTLNoKey:
		return res, ErrNotFound
	case retTTLNoExpire:
		return res, ErrNoTTL
	}
	return res, nil
}

func (r *redImpl) Ping(c ctx.Ctx) error {
	_, err := r.connDo(c, "PING")
	return err
}

func (r *redImpl) Name() string {
	return r.name
}
