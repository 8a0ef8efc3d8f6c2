package marketplace

import (
	"math/big"
	"strings"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

type ListingType uint8

const (
	ListingTypeDirect  ListingType = 0
	ListingTypeAuction ListingType = 1
)

func (t ListingType) String() string {
	if t == ListingTypeAuction {
		return "Auction"
	}
	return "Direct"
}

// Label is the listing type as shown on the detail page
func (t ListingType) Label() string {
	return t.String() + " Listing"
}

func (t ListingType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ListingType) UnmarshalText(b []byte) error {
	v, err := ParseListingType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseListingType accepts direct or auction in any case
func ParseListingType(s string) (ListingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direct":
		return ListingTypeDirect, nil
	case "auction":
		return ListingTypeAuction, nil
	}
	return 0, xerrors.Errorf("listing type %q: %w", s, domain.ErrBadParamInput)
}

// CurrencyValue is an amount of one currency, Value in the smallest unit
type CurrencyValue struct {
	Address      domain.Address `json:"address"`
	Value        string         `json:"value"`
	DisplayValue string         `json:"displayValue"`
	Symbol       string         `json:"symbol"`
	Decimals     uint8          `json:"decimals"`
}

type Listing struct {
	Id            string             `json:"id"`
	Type          ListingType        `json:"type"`
	Seller        domain.Address     `json:"sellerAddress"`
	AssetContract domain.Address     `json:"assetContractAddress"`
	TokenId       domain.TokenId     `json:"tokenId"`
	Asset         domain.NftMetadata `json:"asset"`
	Quantity      string             `json:"quantity"`
	Currency      domain.Address     `json:"currencyContractAddress"`
	// prices are per token in the smallest unit of Currency
	BuyoutPrice          string        `json:"buyoutPrice"`
	BuyoutCurrencyValue  CurrencyValue `json:"buyoutCurrencyValuePerToken"`
	ReservePrice         string        `json:"reservePrice"`
	ReserveCurrencyValue CurrencyValue `json:"reservePriceCurrencyValuePerToken"`
	StartTime            int64         `json:"startTimeInSeconds"`
	EndTime              int64         `json:"endTimeInSeconds"`
}

// IsActive reports whether the listing can still be bought at now
func (l *Listing) IsActive(now time.Time) bool {
	q, ok := new(big.Int).SetString(l.Quantity, 10)
	if !ok || q.Sign() <= 0 {
		return false
	}
	ts := now.Unix()
	return l.StartTime <= ts && ts < l.EndTime
}

// Offer is an offer on a direct listing or a bid on an auction
type Offer struct {
	ListingId           string         `json:"listingId"`
	Offeror             domain.Address `json:"offeror"`
	QuantityWanted      string         `json:"quantityDesired"`
	PricePerToken       string         `json:"pricePerToken"`
	TotalOfferAmount    string         `json:"totalOfferAmount"`
	Currency            domain.Address `json:"currencyContractAddress"`
	CurrencyValue       CurrencyValue  `json:"currencyValue"`
	ExpirationTimestamp string         `json:"expirationTimestamp,omitempty"`
}

// ListingParams creates a listing
type ListingParams struct {
	AssetContract        domain.Address
	TokenId              domain.TokenId
	StartTime            int64
	SecondsUntilEndTime  int64
	Quantity             int64
	Currency             domain.Address
	ReservePricePerToken *big.Int
	BuyoutPricePerToken  *big.Int
	Type                 ListingType
}

type BuyParams struct {
	ListingId  *big.Int
	BuyFor     domain.Address
	Quantity   *big.Int
	Currency   domain.Address
	TotalPrice *big.Int
}

type OfferParams struct {
	ListingId           *big.Int
	Quantity            *big.Int
	Currency            domain.Address
	PricePerToken       *big.Int
	ExpirationTimestamp *big.Int
}

type AcceptOfferParams struct {
	ListingId     *big.Int
	Offeror       domain.Address
	Currency      domain.Address
	PricePerToken *big.Int
}

// Contract is the marketplace contract of the target network. Listings and
// offers come back with raw prices only, CurrencyValue and Asset are filled
// by the caller.
type Contract interface {
	Address() domain.Address
	TotalListings(c ctx.Ctx) (int64, error)
	// GetListing returns domain.ErrNotFound for ids that were never listed
	GetListing(c ctx.Ctx, id *big.Int) (*Listing, error)
	// WinningBid returns nil when the auction has no bid yet
	WinningBid(c ctx.Ctx, id *big.Int) (*Offer, error)
	BidBufferBps(c ctx.Ctx) (uint64, error)
	// GetOffer returns domain.ErrNotFound when offeror has no standing offer
	GetOffer(c ctx.Ctx, id *big.Int, offeror domain.Address) (*Offer, error)
	// OfferEvents lists the NewOffer events of a listing in chain order
	OfferEvents(c ctx.Ctx, id *big.Int) ([]Offer, error)

	Buy(c ctx.Ctx, signer domain.Signer, p BuyParams) (domain.TxHash, error)
	MakeOffer(c ctx.Ctx, signer domain.Signer, p OfferParams) (domain.TxHash, error)
	AcceptOffer(c ctx.Ctx, signer domain.Signer, p AcceptOfferParams) (domain.TxHash, error)
	CreateListing(c ctx.Ctx, signer domain.Signer, p ListingParams) (domain.TxHash, error)
}
