package usecase

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	bEth "github.com/x-xyz/storefront/base/ethereum"
	"github.com/x-xyz/storefront/base/inflight"
	"github.com/x-xyz/storefront/base/log"
	pricefomatter "github.com/x-xyz/storefront/base/price_fomatter"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/activity"
	"github.com/x-xyz/storefront/domain/collection"
	"github.com/x-xyz/storefront/domain/erc20"
	"github.com/x-xyz/storefront/domain/listing"
	"github.com/x-xyz/storefront/domain/marketplace"
	"github.com/x-xyz/storefront/domain/notification"
	"github.com/x-xyz/storefront/domain/wallet"
	"github.com/x-xyz/storefront/service/announcer"
	"github.com/x-xyz/storefront/service/cache"
	"github.com/x-xyz/storefront/service/ens"
)

const (
	defaultViewIdleTtl = 10 * time.Minute
	fetchConcurrency   = 10
)

var timeNow = time.Now

type ListingUseCaseCfg struct {
	ChainId     domain.ChainId
	NetworkName string
	// WrappedNative is the currency of direct offers on listings priced in
	// the native token
	WrappedNative domain.Address

	Marketplace    marketplace.Contract
	Erc20          erc20.Contract
	Collections    func(domain.Address) collection.Contract
	Metadata       domain.MetadataUseCase
	PriceFormatter pricefomatter.PriceFormatter

	Wallet       wallet.Usecase
	Notification notification.Usecase
	Activity     activity.Usecase

	// optional
	Ens       ens.ENS
	Announcer announcer.Announcer
	FeedCache cache.Service

	ViewIdleTtl time.Duration
}

type impl struct {
	chainId       domain.ChainId
	networkName   string
	wrappedNative domain.Address

	marketplace    marketplace.Contract
	erc20          erc20.Contract
	collections    func(domain.Address) collection.Contract
	metadata       domain.MetadataUseCase
	priceFormatter pricefomatter.PriceFormatter

	wallet       wallet.Usecase
	notification notification.Usecase
	activity     activity.Usecase

	ens       ens.ENS
	announcer announcer.Announcer
	feedCache cache.Service

	flags *inflight.Flags
	views *views
	wg    sync.WaitGroup
}

func NewListingUseCase(cfg *ListingUseCaseCfg) listing.Usecase {
	ttl := cfg.ViewIdleTtl
	if ttl <= 0 {
		ttl = defaultViewIdleTtl
	}
	return &impl{
		chainId:        cfg.ChainId,
		networkName:    cfg.NetworkName,
		wrappedNative:  cfg.WrappedNative,
		marketplace:    cfg.Marketplace,
		erc20:          cfg.Erc20,
		collections:    cfg.Collections,
		metadata:       cfg.Metadata,
		priceFormatter: cfg.PriceFormatter,
		wallet:         cfg.Wallet,
		notification:   cfg.Notification,
		activity:       cfg.Activity,
		ens:            cfg.Ens,
		announcer:      cfg.Announcer,
		feedCache:      cfg.FeedCache,
		flags:          inflight.New(),
		views:          newViews(ttl),
	}
}

func (im *impl) Feed(c bCtx.Ctx, viewer domain.Address, q string) ([]listing.Card, error) {
	dismiss := im.notification.Loading(c, notification.AudienceOf(viewer), notification.LoadingMessage)
	defer dismiss()

	listings, err := im.activeListings(c)
	if err != nil {
		c.WithField("err", err).Error("im.activeListings failed")
		return nil, err
	}

	q = strings.ToLower(strings.TrimSpace(q))
	cards := make([]listing.Card, 0, len(listings))
	for i := range listings {
		l := &listings[i]
		if q != "" &&
			!strings.Contains(strings.ToLower(l.Asset.Name), q) &&
			!strings.Contains(strings.ToLower(l.Asset.Description), q) {
			continue
		}
		cards = append(cards, toCard(l))
	}
	return cards, nil
}

func toCard(l *marketplace.Listing) listing.Card {
	badge := listing.BadgeBuyNow
	if l.Type == marketplace.ListingTypeAuction {
		badge = listing.BadgeAuction
	}
	return listing.Card{
		Id:          l.Id,
		Type:        l.Type,
		Name:        l.Asset.Name,
		Description: l.Asset.Description,
		Image:       l.Asset.Image,
		Price:       l.BuyoutCurrencyValue.DisplayValue,
		Symbol:      l.BuyoutCurrencyValue.Symbol,
		Badge:       badge,
		Link:        "/listing/" + l.Id,
	}
}

func (im *impl) activeListings(c bCtx.Ctx) ([]marketplace.Listing, error) {
	if im.feedCache == nil {
		return im.fetchActiveListings(c)
	}

	res := []marketplace.Listing{}
	if err := im.feedCache.GetByFunc(c, listing.FeedKey(im.chainId), &res, func() (interface{}, error) {
		ls, err := im.fetchActiveListings(c)
		if err != nil {
			return nil, err
		}
		return &ls, nil
	}); err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) fetchActiveListings(c bCtx.Ctx) ([]marketplace.Listing, error) {
	total, err := im.marketplace.TotalListings(c)
	if err != nil {
		c.WithField("err", err).Error("marketplace.TotalListings failed")
		return nil, err
	}
	if total <= 0 {
		return []marketplace.Listing{}, nil
	}

	now := timeNow()
	b := goroutines.NewBatch(fetchConcurrency, goroutines.WithBatchSize(int(total)))
	defer b.Close()
	for i := int64(0); i < total; i++ {
		id := big.NewInt(i)
		b.Queue(func() (interface{}, error) {
			l, err := im.marketplace.GetListing(c, id)
			if errors.Is(err, domain.ErrNotFound) {
				return nil, nil
			} else if err != nil {
				return nil, err
			}
			if !l.IsActive(now) {
				return nil, nil
			}
			if err := im.hydrate(c, l, true); err != nil {
				return nil, err
			}
			return l, nil
		})
	}
	b.QueueComplete()

	res := []marketplace.Listing{}
	for ret := range b.Results() {
		if err := ret.Error(); err != nil {
			c.WithField("err", err).Error("fetch listing failed")
			return nil, err
		}
		if l, ok := ret.Value().(*marketplace.Listing); ok && l != nil {
			res = append(res, *l)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return lessId(res[i].Id, res[j].Id)
	})
	return res, nil
}

func lessId(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// hydrate fills the currency values of l and, when withAsset is set, its
// token metadata. Metadata is best effort.
func (im *impl) hydrate(c bCtx.Ctx, l *marketplace.Listing, withAsset bool) error {
	buyout, err := bEth.ParseWei(l.BuyoutPrice)
	if err != nil {
		return err
	}
	v, err := im.priceFormatter.CurrencyValue(c, l.Currency, buyout)
	if err != nil {
		c.WithField("err", err).WithField("currency", l.Currency).Error("priceFormatter.CurrencyValue failed")
		return err
	}
	l.BuyoutCurrencyValue = *v

	reserve, err := bEth.ParseWei(l.ReservePrice)
	if err != nil {
		return err
	}
	if v, err = im.priceFormatter.CurrencyValue(c, l.Currency, reserve); err != nil {
		return err
	}
	l.ReserveCurrencyValue = *v

	if withAsset {
		im.fillAsset(c, l)
	}
	return nil
}

func (im *impl) fillAsset(c bCtx.Ctx, l *marketplace.Listing) {
	l.Asset.Id = l.TokenId
	logger := c.WithFields(log.Fields{"contract": l.AssetContract, "tokenId": l.TokenId})

	tokenId, err := l.TokenId.ToBig()
	if err != nil {
		logger.WithField("err", err).Warn("invalid token id")
		return
	}
	uri, err := im.collections(l.AssetContract).TokenURI(c, tokenId)
	if err != nil {
		logger.WithField("err", err).Warn("collection.TokenURI failed")
		return
	}
	md, err := im.metadata.GetFromUrl(c, uri)
	if err != nil {
		logger.WithField("err", err).WithField("uri", uri).Warn("metadata.GetFromUrl failed")
		l.Asset.Uri = uri
		return
	}
	l.Asset = *md
	l.Asset.Id = l.TokenId
}

// invalidateFeed drops the cached feed after a sale
func (im *impl) invalidateFeed(c bCtx.Ctx) {
	if im.feedCache == nil {
		return
	}
	if err := im.feedCache.Del(c, listing.FeedKey(im.chainId)); err != nil {
		c.WithField("err", err).Warn("feedCache.Del failed")
	}
}

// getListing reads one listing, an unknown or malformed id is ErrNotFound
func (im *impl) getListing(c bCtx.Ctx, id string, withAsset bool) (*marketplace.Listing, *big.Int, error) {
	lid, err := parseListingId(id)
	if err != nil {
		return nil, nil, err
	}
	l, err := im.marketplace.GetListing(c, lid)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.WithField("err", err).WithField("id", id).Error("marketplace.GetListing failed")
		}
		return nil, nil, err
	}
	if err := im.hydrate(c, l, withAsset); err != nil {
		return nil, nil, err
	}
	return l, lid, nil
}

func (im *impl) Detail(c bCtx.Ctx, id string, viewer domain.Address) (*listing.Detail, error) {
	l, lid, err := im.getListing(c, id, true)
	if err != nil {
		return nil, err
	}

	d := &listing.Detail{
		Listing:         l,
		TypeLabel:       l.Type.Label(),
		BuyNowPrice:     fmt.Sprintf("%s %s", l.BuyoutCurrencyValue.DisplayValue, l.BuyoutCurrencyValue.Symbol),
		ActionTitle:     "Make an Offer",
		ActionLabel:     "Offer",
		CanAcceptOffers: l.Type == marketplace.ListingTypeDirect && !viewer.IsEmpty() && viewer.Equals(l.Seller),
		Submitting: listing.Submitting{
			Buy:   im.flags.IsSet(buyKey(l.Id, viewer)),
			Offer: im.flags.IsSet(offerKey(l.Id, viewer)),
		},
	}
	if l.Type == marketplace.ListingTypeAuction {
		d.ActionTitle = "Bid on this Auction"
		d.ActionLabel = "Bid"
		d.TimeRemaining = countdown(time.Unix(l.EndTime, 0).Sub(timeNow()))
	}

	tasks := []func() error{}
	if im.ens != nil {
		tasks = append(tasks, func() error {
			d.SellerName = im.displayName(c, l.Seller)
			return nil
		})
	}
	switch l.Type {
	case marketplace.ListingTypeDirect:
		tasks = append(tasks, func() error {
			offers, err := im.offers(c, lid)
			if err != nil {
				return err
			}
			d.Offers = offers
			return nil
		})
	case marketplace.ListingTypeAuction:
		tasks = append(tasks, func() error {
			d.MinimumNextBid = im.refreshMinimumBid(c, l, lid, viewer)
			return nil
		})
	}

	if err := runAll(tasks); err != nil {
		c.WithField("err", err).WithField("id", id).Error("listing detail failed")
		return nil, err
	}

	d.Placeholder = placeholder(l.Type, d.MinimumNextBid)
	return d, nil
}

// runAll runs tasks concurrently and returns the first error
func runAll(tasks []func() error) error {
	if len(tasks) == 0 {
		return nil
	}
	b := goroutines.NewBatch(len(tasks), goroutines.WithBatchSize(len(tasks)))
	defer b.Close()
	for _, task := range tasks {
		t := task
		b.Queue(func() (interface{}, error) {
			return nil, t()
		})
	}
	b.QueueComplete()

	var first error
	for ret := range b.Results() {
		if err := ret.Error(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// offers lists the standing offer of every offeror, the latest event wins
func (im *impl) offers(c bCtx.Ctx, lid *big.Int) ([]listing.OfferView, error) {
	events, err := im.marketplace.OfferEvents(c, lid)
	if err != nil {
		c.WithField("err", err).Error("marketplace.OfferEvents failed")
		return nil, err
	}

	latest := map[domain.Address]int{}
	order := []domain.Address{}
	for i, e := range events {
		k := e.Offeror.ToLower()
		if _, ok := latest[k]; !ok {
			order = append(order, k)
		}
		latest[k] = i
	}

	res := make([]listing.OfferView, 0, len(order))
	for _, k := range order {
		o := events[latest[k]]
		total, err := bEth.ParseWei(o.TotalOfferAmount)
		if err != nil {
			c.WithField("err", err).WithField("offeror", o.Offeror).Warn("skip malformed offer")
			continue
		}
		v, err := im.priceFormatter.CurrencyValue(c, o.Currency, total)
		if err != nil {
			c.WithField("err", err).Error("priceFormatter.CurrencyValue failed")
			return nil, err
		}
		o.CurrencyValue = *v
		res = append(res, listing.OfferView{
			Offer:          o,
			OfferorDisplay: o.Offeror.Short(5, 5),
			OfferorName:    im.displayName(c, o.Offeror),
			Amount:         fmt.Sprintf("%s %s", v.DisplayValue, v.Symbol),
		})
	}
	return res, nil
}

// displayName is the ens name of address, empty when it has none
func (im *impl) displayName(c bCtx.Ctx, address domain.Address) string {
	if im.ens == nil || address.IsEmpty() {
		return ""
	}
	name, err := im.ens.ReverseResolve(c, address)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.WithField("err", err).WithField("address", address).Warn("ens.ReverseResolve failed")
		}
		return ""
	}
	return name
}

func (im *impl) MinimumBid(c bCtx.Ctx, id string, viewer domain.Address) (*marketplace.CurrencyValue, error) {
	l, lid, err := im.getListing(c, id, false)
	if err != nil {
		return nil, err
	}
	if l.Type != marketplace.ListingTypeAuction {
		return nil, xerrors.Errorf("listing %s is not an auction: %w", id, domain.ErrBadParamInput)
	}
	return im.refreshMinimumBid(c, l, lid, viewer), nil
}

// refreshMinimumBid returns the cached minimum of the view when the fetch fails
func (im *impl) refreshMinimumBid(c bCtx.Ctx, l *marketplace.Listing, lid *big.Int, viewer domain.Address) *marketplace.CurrencyValue {
	k := viewKey{id: l.Id, viewer: viewer.ToLower()}
	v, err := im.minimumNextBid(c, l, lid)
	if err != nil {
		c.WithField("err", err).WithField("id", l.Id).Warn("minimum next bid not refreshed")
		return im.views.minimumBid(k)
	}
	im.views.setMinimumBid(k, v)
	return v
}

// minimumNextBid is the winning bid, or the reserve price without bids,
// raised by the bid buffer of the marketplace
func (im *impl) minimumNextBid(c bCtx.Ctx, l *marketplace.Listing, lid *big.Int) (*marketplace.CurrencyValue, error) {
	winning, err := im.marketplace.WinningBid(c, lid)
	if err != nil {
		return nil, err
	}
	current := l.ReservePrice
	if winning != nil {
		current = winning.PricePerToken
	}
	base, err := bEth.ParseWei(current)
	if err != nil {
		return nil, err
	}

	bps, err := im.marketplace.BidBufferBps(c)
	if err != nil {
		return nil, err
	}
	buffer := new(big.Int).Mul(base, new(big.Int).SetUint64(bps))
	buffer.Div(buffer, big.NewInt(10000))
	return im.priceFormatter.CurrencyValue(c, l.Currency, new(big.Int).Add(base, buffer))
}
