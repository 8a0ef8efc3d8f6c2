package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/storefront/base/ctx"
)

const (
	// Forever keeps a key without expiration
	Forever = time.Duration(-1)
)

var (
	ErrNotFound = errors.New("redis: key not found")
	ErrNoTTL    = errors.New("redis: key has no ttl")
	ErrNoPool   = errors.New("redis: no pool")
)

// Service is the subset of redis commands the storefront relies on
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	SetNX(c ctx.Ctx, key string, val []byte, expire time.Duration) (bool, error)
	Del(c ctx.Ctx, keys ...string) (int, error)
	TTL(c ctx.Ctx, key string) (int, error)
	Ping(c ctx.Ctx) error
	Name() string
}
