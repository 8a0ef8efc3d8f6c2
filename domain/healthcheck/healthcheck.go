package healthcheck

import (
	"github.com/x-xyz/storefront/base/ctx"
)

type Status struct {
	Healthy   string `json:"healthy"`
	ChainHead uint64 `json:"chainHead"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (*Status, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingDB(context ctx.Ctx) error
	// ChainHead returns the latest block of the target chain
	ChainHead(context ctx.Ctx) (uint64, error)
}
