package usecase

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/math"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	bEth "github.com/x-xyz/storefront/base/ethereum"
	"github.com/x-xyz/storefront/base/goroutine"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/activity"
	"github.com/x-xyz/storefront/domain/marketplace"
	"github.com/x-xyz/storefront/domain/notification"
	"github.com/x-xyz/storefront/service/announcer"
)

const (
	msgAmountRequired = "Amount is required"
	msgAmountInvalid  = "Amount is not a valid number"

	msgBuySuccess    = "NFT bought successfully!"
	msgBuyFailure    = "NFT could not be bought!"
	msgOfferSuccess  = "Offer made successfully!"
	msgOfferFailure  = "ERROR: Offer could not be made!"
	msgBidSuccess    = "Bid made successfully!"
	msgBidFailure    = "ERROR: Bid could not be made!"
	msgAcceptSuccess = "Offer accepted successfully!"
	msgAcceptFailure = "ERROR: Offer could not be accepted!"

	offerLifetime   = 10 * 365 * 24 * time.Hour
	announceTimeout = 10 * time.Second
)

type messages struct {
	success string
	failure string
}

func parseListingId(id string) (*big.Int, error) {
	lid, ok := new(big.Int).SetString(strings.TrimSpace(id), 10)
	if !ok || lid.Sign() < 0 {
		return nil, xerrors.Errorf("listing %q: %w", id, domain.ErrNotFound)
	}
	return lid, nil
}

func (im *impl) Buy(c bCtx.Ctx, id string, viewer domain.Address) (*domain.ActionOutcome, error) {
	if viewer.IsEmpty() {
		return nil, domain.ErrWalletNotConnected
	}
	lid, err := parseListingId(id)
	if err != nil {
		return nil, err
	}
	if err := im.wallet.EnsureNetwork(c, viewer); err != nil {
		return nil, err
	}

	release, ok := im.flags.TryAcquire(buyKey(lid.String(), viewer))
	if !ok {
		return nil, domain.ErrSubmitting
	}
	defer release()

	l, _, err := im.getListing(c, lid.String(), true)
	if err != nil {
		return nil, err
	}
	return im.buy(c, l, lid, viewer)
}

// buy purchases quantity 1 at the buyout price. The marketplace only sells
// direct listings outright, an auction is bought out by bidding its buyout.
func (im *impl) buy(c bCtx.Ctx, l *marketplace.Listing, lid *big.Int, viewer domain.Address) (*domain.ActionOutcome, error) {
	total, err := bEth.ParseWei(l.BuyoutPrice)
	if err != nil {
		return nil, err
	}
	auction := l.Type == marketplace.ListingTypeAuction
	if auction && total.Sign() == 0 {
		return nil, xerrors.Errorf("auction %s has no buyout price: %w", l.Id, domain.ErrBadParamInput)
	}

	a := newActivity(l, viewer, domain.ActionBuy, l.Seller, total, l.Currency)
	tx, err := im.submit(c, viewer, a, messages{msgBuySuccess, msgBuyFailure}, func(signer domain.Signer) (domain.TxHash, error) {
		if err := im.ensureAllowance(c, signer, l.Currency, total); err != nil {
			return "", err
		}
		if auction {
			return im.marketplace.MakeOffer(c, signer, marketplace.OfferParams{
				ListingId:           lid,
				Quantity:            big.NewInt(1),
				Currency:            l.Currency,
				PricePerToken:       total,
				ExpirationTimestamp: math.MaxBig256,
			})
		}
		return im.marketplace.Buy(c, signer, marketplace.BuyParams{
			ListingId:  lid,
			BuyFor:     viewer,
			Quantity:   big.NewInt(1),
			Currency:   l.Currency,
			TotalPrice: total,
		})
	})
	if err != nil {
		return nil, err
	}

	im.invalidateFeed(c)
	im.announce(c, l, viewer, tx, &l.BuyoutCurrencyValue)
	return &domain.ActionOutcome{
		Action:   domain.ActionBuy,
		TxHash:   tx,
		Redirect: domain.RedirectHome,
		Message:  msgBuySuccess,
	}, nil
}

func (im *impl) Offer(c bCtx.Ctx, id string, viewer domain.Address, amount string) (*domain.ActionOutcome, error) {
	if viewer.IsEmpty() {
		return nil, domain.ErrWalletNotConnected
	}
	lid, err := parseListingId(id)
	if err != nil {
		return nil, err
	}
	if err := im.wallet.EnsureNetwork(c, viewer); err != nil {
		return nil, err
	}
	amount = strings.TrimSpace(amount)
	if amount == "" {
		im.notification.Error(c, notification.AudienceOf(viewer), msgAmountRequired)
		return nil, &domain.ActionError{Action: domain.ActionOffer, Message: msgAmountRequired, Err: domain.ErrBadParamInput}
	}

	release, ok := im.flags.TryAcquire(offerKey(lid.String(), viewer))
	if !ok {
		return nil, domain.ErrSubmitting
	}
	defer release()

	l, _, err := im.getListing(c, lid.String(), true)
	if err != nil {
		return nil, err
	}

	price, err := bEth.ParseUnits(amount, l.BuyoutCurrencyValue.Decimals)
	if err != nil {
		action := domain.ActionOffer
		if l.Type == marketplace.ListingTypeAuction {
			action = domain.ActionBid
		}
		im.notification.Error(c, notification.AudienceOf(viewer), msgAmountInvalid)
		return nil, &domain.ActionError{Action: action, Message: msgAmountInvalid, Err: err}
	}

	if l.Type == marketplace.ListingTypeAuction {
		return im.bid(c, l, lid, viewer, price)
	}

	buyout, err := bEth.ParseWei(l.BuyoutPrice)
	if err != nil {
		return nil, err
	}
	if price.Cmp(buyout) == 0 {
		c.WithField("id", l.Id).Info("buyout price met, buying")
		releaseBuy, ok := im.flags.TryAcquire(buyKey(lid.String(), viewer))
		if !ok {
			return nil, domain.ErrSubmitting
		}
		defer releaseBuy()
		return im.buy(c, l, lid, viewer)
	}
	return im.offer(c, l, lid, viewer, price)
}

// offer makes a direct offer. Listings priced in the native token are offered
// in its wrapped form since offers escrow nothing.
func (im *impl) offer(c bCtx.Ctx, l *marketplace.Listing, lid *big.Int, viewer domain.Address, price *big.Int) (*domain.ActionOutcome, error) {
	currency := l.Currency
	if currency.IsNative() && !im.wrappedNative.IsEmpty() {
		currency = im.wrappedNative
	}

	a := newActivity(l, viewer, domain.ActionOffer, l.Seller, price, currency)
	tx, err := im.submit(c, viewer, a, messages{msgOfferSuccess, msgOfferFailure}, func(signer domain.Signer) (domain.TxHash, error) {
		if err := im.ensureAllowance(c, signer, currency, price); err != nil {
			return "", err
		}
		return im.marketplace.MakeOffer(c, signer, marketplace.OfferParams{
			ListingId:           lid,
			Quantity:            big.NewInt(1),
			Currency:            currency,
			PricePerToken:       price,
			ExpirationTimestamp: big.NewInt(timeNow().Add(offerLifetime).Unix()),
		})
	})
	if err != nil {
		return nil, err
	}
	return &domain.ActionOutcome{
		Action:   domain.ActionOffer,
		TxHash:   tx,
		Redirect: domain.RedirectHome,
		Message:  msgOfferSuccess,
	}, nil
}

// bid never takes the buyout path, the auction settles that itself
func (im *impl) bid(c bCtx.Ctx, l *marketplace.Listing, lid *big.Int, viewer domain.Address, price *big.Int) (*domain.ActionOutcome, error) {
	a := newActivity(l, viewer, domain.ActionBid, l.Seller, price, l.Currency)
	tx, err := im.submit(c, viewer, a, messages{msgBidSuccess, msgBidFailure}, func(signer domain.Signer) (domain.TxHash, error) {
		if err := im.ensureAllowance(c, signer, l.Currency, price); err != nil {
			return "", err
		}
		return im.marketplace.MakeOffer(c, signer, marketplace.OfferParams{
			ListingId:           lid,
			Quantity:            big.NewInt(1),
			Currency:            l.Currency,
			PricePerToken:       price,
			ExpirationTimestamp: math.MaxBig256,
		})
	})
	if err != nil {
		return nil, err
	}
	return &domain.ActionOutcome{
		Action:     domain.ActionBid,
		TxHash:     tx,
		ClearInput: true,
		Message:    msgBidSuccess,
	}, nil
}

func (im *impl) AcceptOffer(c bCtx.Ctx, id string, viewer, offeror domain.Address) (*domain.ActionOutcome, error) {
	if viewer.IsEmpty() {
		return nil, domain.ErrWalletNotConnected
	}
	if offeror.IsEmpty() {
		return nil, xerrors.Errorf("missing offeror: %w", domain.ErrBadParamInput)
	}
	lid, err := parseListingId(id)
	if err != nil {
		return nil, err
	}
	if err := im.wallet.EnsureNetwork(c, viewer); err != nil {
		return nil, err
	}

	release, ok := im.flags.TryAcquire(offerKey(lid.String(), viewer))
	if !ok {
		return nil, domain.ErrSubmitting
	}
	defer release()

	l, _, err := im.getListing(c, lid.String(), true)
	if err != nil {
		return nil, err
	}
	o, err := im.marketplace.GetOffer(c, lid, offeror)
	if err != nil {
		c.WithField("err", err).WithField("offeror", offeror).Error("marketplace.GetOffer failed")
		return nil, err
	}
	price, err := bEth.ParseWei(o.PricePerToken)
	if err != nil {
		return nil, err
	}

	a := newActivity(l, viewer, domain.ActionAcceptOffer, offeror, price, o.Currency)
	tx, err := im.submit(c, viewer, a, messages{msgAcceptSuccess, msgAcceptFailure}, func(signer domain.Signer) (domain.TxHash, error) {
		return im.marketplace.AcceptOffer(c, signer, marketplace.AcceptOfferParams{
			ListingId:     lid,
			Offeror:       offeror,
			Currency:      o.Currency,
			PricePerToken: price,
		})
	})
	if err != nil {
		return nil, err
	}

	im.invalidateFeed(c)
	if v, err := im.priceFormatter.CurrencyValue(c, o.Currency, price); err == nil {
		im.announce(c, l, offeror, tx, v)
	}
	return &domain.ActionOutcome{
		Action:   domain.ActionAcceptOffer,
		TxHash:   tx,
		Redirect: domain.RedirectHome,
		Message:  msgAcceptSuccess,
	}, nil
}

// submit sends one transaction for viewer, records it and raises the toast
// matching its outcome. Failures come back as *domain.ActionError.
func (im *impl) submit(c bCtx.Ctx, viewer domain.Address, a *activity.Activity, m messages, send func(domain.Signer) (domain.TxHash, error)) (domain.TxHash, error) {
	signer, err := im.wallet.Signer(c, viewer)
	if err != nil {
		c.WithField("err", err).Error("wallet.Signer failed")
		return "", err
	}

	audience := notification.AudienceOf(viewer)
	tx, err := send(signer)
	a.TxHash = tx
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"action": a.Action,
			"txHash": tx,
		}).Error("transaction failed")
		a.Status = activity.StatusFailed
		a.Error = err.Error()
		im.activity.Record(c, a)
		im.notification.Error(c, audience, m.failure)
		return "", &domain.ActionError{
			Action:  a.Action,
			Message: m.failure,
			Err:     xerrors.Errorf("%v: %w", err, domain.ErrTransactionFailed),
		}
	}

	a.Status = activity.StatusSuccess
	im.activity.Record(c, a)
	im.notification.Success(c, audience, m.success)
	return tx, nil
}

// ensureAllowance approves the marketplace to pull amount of an erc20
// currency. Native payments need no approval.
func (im *impl) ensureAllowance(c bCtx.Ctx, signer domain.Signer, token domain.Address, amount *big.Int) error {
	if token.IsNative() {
		return nil
	}
	spender := im.marketplace.Address()
	allowance, err := im.erc20.Allowance(c, token, signer.Address(), spender)
	if err != nil {
		c.WithField("err", err).WithField("token", token).Error("erc20.Allowance failed")
		return err
	}
	if allowance.Cmp(amount) >= 0 {
		return nil
	}
	if _, err := im.erc20.Approve(c, signer, token, spender, amount); err != nil {
		c.WithField("err", err).WithField("token", token).Error("erc20.Approve failed")
		return err
	}
	return nil
}

// announce posts the sale in the background, the request may end first
func (im *impl) announce(c bCtx.Ctx, l *marketplace.Listing, buyer domain.Address, tx domain.TxHash, price *marketplace.CurrencyValue) {
	if im.announcer == nil {
		return
	}
	sale := announcer.Sale{
		ListingId: l.Id,
		Name:      l.Asset.Name,
		Image:     l.Asset.Image,
		Seller:    l.Seller,
		Buyer:     buyer,
		Price:     fmt.Sprintf("%s %s", price.DisplayValue, price.Symbol),
		Network:   im.networkName,
		TxHash:    tx,
	}

	bg, cancel := bCtx.WithTimeout(bCtx.Detach(c), announceTimeout)
	im.wg.Add(1)
	goroutine.RecoverableGo(func() {
		defer cancel()
		if err := im.announcer.AnnounceSale(bg, sale); err != nil {
			bg.WithField("err", err).WithField("txHash", tx).Warn("announcer.AnnounceSale failed")
		}
	}, goroutine.WithLogger(c.Logger), goroutine.WithAfterEnded(im.wg.Done))
}

func newActivity(l *marketplace.Listing, account domain.Address, action domain.Action, counterparty domain.Address, price *big.Int, currency domain.Address) *activity.Activity {
	return &activity.Activity{
		Account:         account,
		Action:          action,
		ListingId:       l.Id,
		ContractAddress: l.AssetContract,
		TokenId:         l.TokenId,
		Counterparty:    counterparty,
		Price:           price.String(),
		Currency:        currency,
	}
}
