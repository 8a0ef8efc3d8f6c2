package contract

import (
	"math/big"
	"strings"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/chain"
)

func toAddress(a common.Address) domain.Address {
	return domain.Address(strings.ToLower(a.Hex()))
}

// transact signs method with the signer's key, attaching value when the call pays native currency
func transact(ctx bCtx.Ctx, chainService chain.Client, chainId domain.ChainId, signer domain.Signer, value *big.Int, addr common.Address, abi ethabi.ABI, method string, params ...interface{}) (domain.TxHash, error) {
	receipt, err := send(ctx, chainService, chainId, signer, value, addr, abi, method, params...)
	if receipt != nil {
		return domain.TxHash(receipt.TxHash.Hex()), err
	}
	return "", err
}

func send(ctx bCtx.Ctx, chainService chain.Client, chainId domain.ChainId, signer domain.Signer, value *big.Int, addr common.Address, abi ethabi.ABI, method string, params ...interface{}) (*types.Receipt, error) {
	opts, err := signer.TransactOpts(ctx, chainId)
	if err != nil {
		ctx.WithField("err", err).Error("signer.TransactOpts failed")
		return nil, err
	}
	if value != nil && value.Sign() > 0 {
		opts.Value = value
	}
	return chainService.Transact(ctx, chainId, opts, addr, abi, method, params...)
}
