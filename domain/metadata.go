package domain

import (
	"github.com/x-xyz/storefront/base/ctx"
)

// NftMetadata is the token metadata json pinned at mint time
type NftMetadata struct {
	Id          TokenId `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Uri         string  `json:"uri"`
}

type MetadataUseCase interface {
	// GetFromUrl fetches and decodes the metadata json at a token uri
	GetFromUrl(ctx.Ctx, string) (*NftMetadata, error)
}
