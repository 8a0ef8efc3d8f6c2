package ens

import (
	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

type ENS interface {
	Resolve(ctx ctx.Ctx, name string) (domain.Address, error)
	// ReverseResolve returns an empty name for addresses without a primary name
	ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error)
}
