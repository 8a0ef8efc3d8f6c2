package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/keys"
	"github.com/x-xyz/storefront/domain/wallet"
	"github.com/x-xyz/storefront/service/redis"
)

type sessionRepo struct {
	redis redis.Service
}

// NewSessionRepo stores wallet sessions in redis, one key per address
func NewSessionRepo(redis redis.Service) wallet.SessionRepo {
	return &sessionRepo{redis: redis}
}

func sessionKey(address domain.Address) string {
	return keys.RedisKey(keys.PfxWalletSession, address.ToLowerStr())
}

func (r *sessionRepo) Get(c ctx.Ctx, address domain.Address) (*wallet.Session, error) {
	val, err := r.redis.Get(c, sessionKey(address))
	if errors.Is(err, redis.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("redis.Get failed")
		return nil, err
	}

	session := &wallet.Session{}
	if err := json.Unmarshal(val, session); err != nil {
		c.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return session, nil
}

func (r *sessionRepo) Save(c ctx.Ctx, session *wallet.Session, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = redis.Forever
	}
	val, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := r.redis.Set(c, sessionKey(session.Address), val, ttl); err != nil {
		c.WithField("err", err).Error("redis.Set failed")
		return err
	}
	return nil
}

func (r *sessionRepo) Delete(c ctx.Ctx, address domain.Address) error {
	if _, err := r.redis.Del(c, sessionKey(address)); err != nil {
		c.WithField("err", err).Error("redis.Del failed")
		return err
	}
	return nil
}
