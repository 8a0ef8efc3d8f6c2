package collection

import (
	"math/big"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

// OwnedNft is a token of the storefront collection held by Owner
type OwnedNft struct {
	Owner    domain.Address     `json:"owner"`
	Metadata domain.NftMetadata `json:"metadata"`
}

// Contract is the nft-collection contract of the target network
type Contract interface {
	Address() domain.Address
	NextTokenIdToMint(c ctx.Ctx) (*big.Int, error)
	OwnerOf(c ctx.Ctx, tokenId *big.Int) (domain.Address, error)
	TokenURI(c ctx.Ctx, tokenId *big.Int) (string, error)
	BalanceOf(c ctx.Ctx, owner domain.Address) (*big.Int, error)
	IsApprovedForAll(c ctx.Ctx, owner, operator domain.Address) (bool, error)
	SetApprovalForAll(c ctx.Ctx, signer domain.Signer, operator domain.Address, approved bool) (domain.TxHash, error)
	// MintTo mints one token with metadata uri and returns the minted id
	MintTo(c ctx.Ctx, signer domain.Signer, to domain.Address, uri string) (domain.TxHash, *big.Int, error)
}
