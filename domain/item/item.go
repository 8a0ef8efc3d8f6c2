package item

import (
	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/collection"
)

type MintParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Image is a data:image/...;base64 upload or an http or ipfs url
	Image string `json:"image"`
}

type ListParams struct {
	TokenId domain.TokenId `json:"tokenId"`
	Type    string         `json:"listingType"`
	Price   string         `json:"price"`
}

type Usecase interface {
	Owned(c ctx.Ctx, owner domain.Address) ([]collection.OwnedNft, error)
	Mint(c ctx.Ctx, minter domain.Address, p MintParams) (*domain.ActionOutcome, error)
	List(c ctx.Ctx, seller domain.Address, p ListParams) (*domain.ActionOutcome, error)
}
