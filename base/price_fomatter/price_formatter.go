package pricefomatter

import (
	"math/big"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/marketplace"
)

type PriceFormatter interface {
	// Currency returns symbol and decimals of token, native currency included
	Currency(ctx bCtx.Ctx, token domain.Address) (string, uint8, error)
	CurrencyValue(ctx bCtx.Ctx, token domain.Address, value *big.Int) (*marketplace.CurrencyValue, error)
}
