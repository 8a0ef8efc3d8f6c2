package domain

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/x-xyz/storefront/base/ctx"
)

// Signer signs transactions for one connected wallet
type Signer interface {
	Address() Address
	TransactOpts(c ctx.Ctx, chainId ChainId) (*bind.TransactOpts, error)
}
