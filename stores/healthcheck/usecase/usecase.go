package usecase

import (
	"github.com/x-xyz/storefront/base/ctx"
	hcdomain "github.com/x-xyz/storefront/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) (*hcdomain.Status, error) {
	if err := im.repo.PingDB(context); err != nil {
		return nil, err
	}
	head, err := im.repo.ChainHead(context)
	if err != nil {
		return nil, err
	}
	return &hcdomain.Status{Healthy: "ok", ChainHead: head}, nil
}
