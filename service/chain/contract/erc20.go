package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/x-xyz/storefront/base/abi"
	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/erc20"
	"github.com/x-xyz/storefront/service/chain"
)

type Erc20 struct {
	chainService chain.Client
	abi          ethabi.ABI
	chainId      domain.ChainId
}

func NewErc20(chainService chain.Client, chainId domain.ChainId) erc20.Contract {
	return &Erc20{
		chainService: chainService,
		abi:          baseabi.ERC20ABI,
		chainId:      chainId,
	}
}

func (e *Erc20) Symbol(ctx bCtx.Ctx, token domain.Address) (string, error) {
	unpacked, err := e.chainService.Call(ctx, e.chainId, common.HexToAddress(string(token)), nil, e.abi, "symbol")
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (e *Erc20) Decimals(ctx bCtx.Ctx, token domain.Address) (uint8, error) {
	unpacked, err := e.chainService.Call(ctx, e.chainId, common.HexToAddress(string(token)), nil, e.abi, "decimals")
	if err != nil {
		return 0, err
	}
	return unpacked[0].(uint8), nil
}

func (e *Erc20) Allowance(ctx bCtx.Ctx, token, owner, spender domain.Address) (*big.Int, error) {
	unpacked, err := e.chainService.Call(ctx, e.chainId, common.HexToAddress(string(token)), nil, e.abi, "allowance",
		common.HexToAddress(string(owner)),
		common.HexToAddress(string(spender)),
	)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) Approve(ctx bCtx.Ctx, signer domain.Signer, token, spender domain.Address, amount *big.Int) (domain.TxHash, error) {
	return transact(ctx, e.chainService, e.chainId, signer, nil, common.HexToAddress(string(token)), e.abi, "approve",
		common.HexToAddress(string(spender)),
		amount,
	)
}
