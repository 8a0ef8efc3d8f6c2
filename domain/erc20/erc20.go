package erc20

import (
	"math/big"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

// Contract reads and approves erc20 currencies on the target network
type Contract interface {
	Symbol(c ctx.Ctx, token domain.Address) (string, error)
	Decimals(c ctx.Ctx, token domain.Address) (uint8, error)
	Allowance(c ctx.Ctx, token, owner, spender domain.Address) (*big.Int, error)
	Approve(c ctx.Ctx, signer domain.Signer, token, spender domain.Address, amount *big.Int) (domain.TxHash, error)
}
