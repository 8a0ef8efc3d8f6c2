package listing

import (
	"fmt"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/keys"
	"github.com/x-xyz/storefront/domain/marketplace"
)

const (
	BadgeBuyNow  = "Buy Now"
	BadgeAuction = "Auction"
)

// FeedKey is the cache key of the active listings of a chain. Writers that
// change the set of active listings drop it.
func FeedKey(chainId domain.ChainId) string {
	return keys.RedisKey(fmt.Sprint(chainId), "active")
}

// Card is one listing on the home feed
type Card struct {
	Id          string                  `json:"id"`
	Type        marketplace.ListingType `json:"type"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Image       string                  `json:"image"`
	Price       string                  `json:"price"`
	Symbol      string                  `json:"symbol"`
	Badge       string                  `json:"badge"`
	Link        string                  `json:"link"`
}

// OfferView is an offer row of a direct listing
type OfferView struct {
	marketplace.Offer
	OfferorDisplay string `json:"offerorDisplay"`
	OfferorName    string `json:"offerorName,omitempty"`
	Amount         string `json:"amount"`
}

// Submitting tells which action of a view is in flight
type Submitting struct {
	Buy   bool `json:"buy"`
	Offer bool `json:"offer"`
}

// Detail is the listing page of one viewer
type Detail struct {
	Listing         *marketplace.Listing       `json:"listing"`
	TypeLabel       string                     `json:"typeLabel"`
	SellerName      string                     `json:"sellerName,omitempty"`
	BuyNowPrice     string                     `json:"buyNowPrice"`
	Offers          []OfferView                `json:"offers,omitempty"`
	MinimumNextBid  *marketplace.CurrencyValue `json:"minimumNextBid,omitempty"`
	TimeRemaining   string                     `json:"timeRemaining,omitempty"`
	Placeholder     string                     `json:"placeholder"`
	ActionTitle     string                     `json:"actionTitle"`
	ActionLabel     string                     `json:"actionLabel"`
	CanAcceptOffers bool                       `json:"canAcceptOffers"`
	Submitting      Submitting                 `json:"submitting"`
}

type Usecase interface {
	// Feed lists active listings whose name or description contains q
	Feed(c ctx.Ctx, viewer domain.Address, q string) ([]Card, error)
	Detail(c ctx.Ctx, id string, viewer domain.Address) (*Detail, error)
	// MinimumBid refreshes the cached minimum next bid of an auction.
	// A failed fetch keeps the cached value.
	MinimumBid(c ctx.Ctx, id string, viewer domain.Address) (*marketplace.CurrencyValue, error)
	Buy(c ctx.Ctx, id string, viewer domain.Address) (*domain.ActionOutcome, error)
	// Offer makes an offer on a direct listing or a bid on an auction
	Offer(c ctx.Ctx, id string, viewer domain.Address, amount string) (*domain.ActionOutcome, error)
	AcceptOffer(c ctx.Ctx, id string, viewer, offeror domain.Address) (*domain.ActionOutcome, error)
}
