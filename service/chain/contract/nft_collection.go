package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/storefront/base/abi"
	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/collection"
	"github.com/x-xyz/storefront/service/chain"
)

var errNoMintedToken = xerrors.New("no TokensMinted log in receipt")

type NftCollection struct {
	chainService chain.Client
	abi          ethabi.ABI
	chainId      domain.ChainId
	address      common.Address
}

func NewNftCollection(chainService chain.Client, chainId domain.ChainId, address domain.Address) collection.Contract {
	return &NftCollection{
		chainService: chainService,
		abi:          baseabi.TokenERC721ABI,
		chainId:      chainId,
		address:      common.HexToAddress(string(address)),
	}
}

func (n *NftCollection) Address() domain.Address {
	return toAddress(n.address)
}

func (n *NftCollection) NextTokenIdToMint(ctx bCtx.Ctx) (*big.Int, error) {
	unpacked, err := n.chainService.Call(ctx, n.chainId, n.address, nil, n.abi, "nextTokenIdToMint")
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (n *NftCollection) OwnerOf(ctx bCtx.Ctx, tokenId *big.Int) (domain.Address, error) {
	unpacked, err := n.chainService.Call(ctx, n.chainId, n.address, nil, n.abi, "ownerOf", tokenId)
	if err != nil {
		return "", err
	}
	return toAddress(unpacked[0].(common.Address)), nil
}

func (n *NftCollection) TokenURI(ctx bCtx.Ctx, tokenId *big.Int) (string, error) {
	unpacked, err := n.chainService.Call(ctx, n.chainId, n.address, nil, n.abi, "tokenURI", tokenId)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (n *NftCollection) BalanceOf(ctx bCtx.Ctx, owner domain.Address) (*big.Int, error) {
	unpacked, err := n.chainService.Call(ctx, n.chainId, n.address, nil, n.abi, "balanceOf", common.HexToAddress(string(owner)))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (n *NftCollection) IsApprovedForAll(ctx bCtx.Ctx, owner, operator domain.Address) (bool, error) {
	unpacked, err := n.chainService.Call(ctx, n.chainId, n.address, nil, n.abi, "isApprovedForAll",
		common.HexToAddress(string(owner)),
		common.HexToAddress(string(operator)),
	)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (n *NftCollection) SetApprovalForAll(ctx bCtx.Ctx, signer domain.Signer, operator domain.Address, approved bool) (domain.TxHash, error) {
	return transact(ctx, n.chainService, n.chainId, signer, nil, n.address, n.abi, "setApprovalForAll",
		common.HexToAddress(string(operator)),
		approved,
	)
}

func (n *NftCollection) MintTo(ctx bCtx.Ctx, signer domain.Signer, to domain.Address, uri string) (domain.TxHash, *big.Int, error) {
	receipt, err := send(ctx, n.chainService, n.chainId, signer, nil, n.address, n.abi, "mintTo", common.HexToAddress(string(to)), uri)
	if err != nil {
		if receipt != nil {
			return domain.TxHash(receipt.TxHash.Hex()), nil, err
		}
		return "", nil, err
	}

	txHash := domain.TxHash(receipt.TxHash.Hex())
	minted := n.abi.Events["TokensMinted"].ID
	for _, l := range receipt.Logs {
		if l.Address != n.address || len(l.Topics) == 0 || l.Topics[0] != minted {
			continue
		}
		parsed, err := baseabi.ToTokensMintedLog(l)
		if err != nil {
			ctx.WithFields(log.Fields{
				"txHash": txHash,
				"err":    err,
			}).Warn("baseabi.ToTokensMintedLog failed")
			continue
		}
		return txHash, parsed.TokenIdMinted, nil
	}
	return txHash, nil, errNoMintedToken
}
