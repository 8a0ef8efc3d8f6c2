package redisclient

import (
	"math/rand"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/storefront/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
	idleTimeout  = 240 * time.Second

	dialRetries = 3
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	PoolMultiplier float64
	// Retry dials up to three more times with a jittered sleep, off in unit tests
	Retry bool
}

// MustConnectRedis connects to one redis uri and panics on failure
func MustConnectRedis(uri, password string, param ...RedisParam) *redis.Pool {
	p, err := ConnectRedis(uri, password, param...)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// NewPool builds the pool without dialing
func NewPool(uri, password string, param ...RedisParam) *redis.Pool {
	maxIdle := 32
	maxActive := 256
	if len(param) > 0 && param[0].PoolMultiplier > 0 {
		cpu := float64(runtime.NumCPU())
		// allowing 25% idle connection
		maxIdle = int(cpu * param[0].PoolMultiplier / 4)
		maxActive = int(cpu * param[0].PoolMultiplier)
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}

	return &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// recycled less than a second ago
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

// ConnectRedis builds the pool and checks one connection
func ConnectRedis(uri, password string, param ...RedisParam) (*redis.Pool, error) {
	p := NewPool(uri, password, param...)
	retry := len(param) > 0 && param[0].Retry

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	var err error
	for i := 0; i <= dialRetries; i++ {
		if i > 0 {
			if !retry {
				break
			}
			time.Sleep(time.Second + time.Duration(r.Intn(1000))*time.Millisecond)
		}
		if err = ping(p); err == nil {
			break
		}
		log.Log().WithFields(log.Fields{
			"redisURI": uri,
			"err":      err,
			"attempt":  i,
		}).Error("fail to ping Redis")
	}
	if err != nil {
		return nil, err
	}

	log.Log().WithField("redisURI", uri).Info("redis connected")
	return p, nil
}

func ping(p *redis.Pool) error {
	c, err := p.Dial()
	if err != nil {
		return err
	}
	defer c.Close()
	_, err = c.Do("PING")
	return err
}
