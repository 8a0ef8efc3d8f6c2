package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/database/mongoclient"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	hcdomain "github.com/x-xyz/storefront/domain/healthcheck"
	"github.com/x-xyz/storefront/domain/keys"
	"github.com/x-xyz/storefront/service/chain"
	"github.com/x-xyz/storefront/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	mgoClient  *mongoclient.Client
	redisCache redis.Service
	chain      chain.Client
	chainId    domain.ChainId
}

// New creates the probes behind /healthcheck
func New(
	mgoClient *mongoclient.Client,
	redisCache redis.Service,
	chainClient chain.Client,
	chainId domain.ChainId,
) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient:  mgoClient,
		redisCache: redisCache,
		chain:      chainClient,
		chainId:    chainId,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.mgoClient.Ping(ctx, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}

	if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}

func (im *impl) ChainHead(context ctx.Ctx) (uint64, error) {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	head, err := im.chain.BlockNumber(ctx, im.chainId)
	if err != nil {
		context.WithFields(log.Fields{
			"err":     err,
			"chainId": im.chainId,
		}).Error("chain.BlockNumber failed")
		return 0, err
	}
	return head, nil
}
