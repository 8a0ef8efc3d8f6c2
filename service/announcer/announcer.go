package announcer

import (
	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

// Sale is a completed purchase through the storefront
type Sale struct {
	ListingId string
	Name      string
	Image     string
	Seller    domain.Address
	Buyer     domain.Address
	// Price is the display value followed by the currency symbol
	Price   string
	Network string
	TxHash  domain.TxHash
}

type Announcer interface {
	AnnounceSale(c ctx.Ctx, sale Sale) error
}
