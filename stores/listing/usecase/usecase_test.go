package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	pricefomatter "github.com/x-xyz/storefront/base/price_fomatter"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/activity"
	activityMocks "github.com/x-xyz/storefront/domain/activity/mocks"
	"github.com/x-xyz/storefront/domain/collection"
	collectionMocks "github.com/x-xyz/storefront/domain/collection/mocks"
	erc20Mocks "github.com/x-xyz/storefront/domain/erc20/mocks"
	"github.com/x-xyz/storefront/domain/marketplace"
	marketplaceMocks "github.com/x-xyz/storefront/domain/marketplace/mocks"
	dmocks "github.com/x-xyz/storefront/domain/mocks"
	notificationMocks "github.com/x-xyz/storefront/domain/notification/mocks"
	walletMocks "github.com/x-xyz/storefront/domain/wallet/mocks"
	"github.com/x-xyz/storefront/domain/keys"
	"github.com/x-xyz/storefront/service/announcer"
	announcerMocks "github.com/x-xyz/storefront/service/announcer/mocks"
	"github.com/x-xyz/storefront/service/cache"
	redisprovider "github.com/x-xyz/storefront/service/cache/provider/redis"
	"github.com/x-xyz/storefront/service/redis"
	redisMocks "github.com/x-xyz/storefront/service/redis/mocks"
)

const (
	seller   = domain.Address("0x1111111111111111111111111111111111111111")
	viewer   = domain.Address("0x2222222222222222222222222222222222222222")
	offeror  = domain.Address("0x3333333333333333333333333333333333333333")
	asset    = domain.Address("0x4444444444444444444444444444444444444444")
	market   = domain.Address("0x5555555555555555555555555555555555555555")
	weth     = domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
	oneEther = "1000000000000000000"
)

var now = time.Unix(1700000000, 0)

func bigEq(v int64) interface{} {
	return mock.MatchedBy(func(n *big.Int) bool {
		return n != nil && n.Cmp(big.NewInt(v)) == 0
	})
}

func weiEq(wei string) interface{} {
	want, _ := new(big.Int).SetString(wei, 10)
	return mock.MatchedBy(func(n *big.Int) bool {
		return n != nil && n.Cmp(want) == 0
	})
}

type listingSuite struct {
	suite.Suite

	ctx          bCtx.Ctx
	marketplace  *marketplaceMocks.Contract
	erc20        *erc20Mocks.Contract
	collection   *collectionMocks.Contract
	metadata     *dmocks.MetadataUseCase
	wallet       *walletMocks.Usecase
	notification *notificationMocks.Usecase
	activity     *activityMocks.Usecase
	announcer    *announcerMocks.Announcer
	signer       *dmocks.Signer
	im           *impl
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) SetupTest() {
	timeNow = func() time.Time { return now }

	s.ctx = bCtx.Background()
	s.marketplace = &marketplaceMocks.Contract{}
	s.erc20 = &erc20Mocks.Contract{}
	s.collection = &collectionMocks.Contract{}
	s.metadata = &dmocks.MetadataUseCase{}
	s.wallet = &walletMocks.Usecase{}
	s.notification = &notificationMocks.Usecase{}
	s.activity = &activityMocks.Usecase{}
	s.announcer = &announcerMocks.Announcer{}
	s.signer = &dmocks.Signer{}

	s.im = NewListingUseCase(&ListingUseCaseCfg{
		ChainId:       5,
		NetworkName:   "goerli",
		WrappedNative: weth,
		Marketplace:   s.marketplace,
		Erc20:         s.erc20,
		Collections: func(domain.Address) collection.Contract {
			return s.collection
		},
		Metadata:       s.metadata,
		PriceFormatter: pricefomatter.NewPriceFormatter(&pricefomatter.PriceFormatterCfg{NativeSymbol: "ETH", Erc20: s.erc20}),
		Wallet:         s.wallet,
		Notification:   s.notification,
		Activity:       s.activity,
		Announcer:      s.announcer,
	}).(*impl)

	s.marketplace.On("Address").Return(market).Maybe()
	s.signer.On("Address").Return(viewer).Maybe()
	s.collection.On("TokenURI", mock.Anything, mock.Anything).Return("ipfs://meta", nil).Maybe()
	s.metadata.On("GetFromUrl", mock.Anything, "ipfs://meta").Return(&domain.NftMetadata{
		Name:        "Bored Ape",
		Description: "a very bored ape",
		Image:       "ipfs://image",
		Uri:         "ipfs://meta",
	}, nil).Maybe()
}

func (s *listingSuite) TearDownTest() {
	s.im.wg.Wait()
	timeNow = time.Now

	s.marketplace.AssertExpectations(s.T())
	s.erc20.AssertExpectations(s.T())
	s.wallet.AssertExpectations(s.T())
	s.notification.AssertExpectations(s.T())
	s.activity.AssertExpectations(s.T())
	s.announcer.AssertExpectations(s.T())
}

func directListing(id string) *marketplace.Listing {
	return &marketplace.Listing{
		Id:            id,
		Type:          marketplace.ListingTypeDirect,
		Seller:        seller,
		AssetContract: asset,
		TokenId:       "7",
		Quantity:      "1",
		Currency:      domain.NativeTokenAddress,
		BuyoutPrice:   oneEther,
		ReservePrice:  "0",
		StartTime:     now.Add(-time.Hour).Unix(),
		EndTime:       now.Add(time.Hour).Unix(),
	}
}

func auctionListing(id string) *marketplace.Listing {
	l := directListing(id)
	l.Type = marketplace.ListingTypeAuction
	l.BuyoutPrice = "5000000000000000000"
	return l
}

func (s *listingSuite) TestFeed() {
	expired := auctionListing("2")
	expired.EndTime = now.Add(-time.Minute).Unix()

	dismissed := false
	s.notification.On("Loading", mock.Anything, "public", "Loading...").Return(func() { dismissed = true }).Twice()
	s.marketplace.On("TotalListings", mock.Anything).Return(int64(3), nil).Twice()
	s.marketplace.On("GetListing", mock.Anything, bigEq(0)).Return(nil, domain.ErrNotFound).Twice()
	s.marketplace.On("GetListing", mock.Anything, bigEq(1)).Return(func(bCtx.Ctx, *big.Int) *marketplace.Listing {
		return directListing("1")
	}, nil).Twice()
	s.marketplace.On("GetListing", mock.Anything, bigEq(2)).Return(expired, nil).Twice()

	cards, err := s.im.Feed(s.ctx, "", "  APE ")
	s.Require().NoError(err)
	s.True(dismissed)
	s.Require().Len(cards, 1)
	s.Equal("1", cards[0].Id)
	s.Equal("Bored Ape", cards[0].Name)
	s.Equal("ipfs://image", cards[0].Image)
	s.Equal("1", cards[0].Price)
	s.Equal("ETH", cards[0].Symbol)
	s.Equal("Buy Now", cards[0].Badge)
	s.Equal("/listing/1", cards[0].Link)

	cards, err = s.im.Feed(s.ctx, "", "punk")
	s.Require().NoError(err)
	s.Empty(cards)
}

func (s *listingSuite) TestFeedDismissesLoadingOnError() {
	dismissed := false
	s.notification.On("Loading", mock.Anything, viewer.ToLowerStr(), "Loading...").Return(func() { dismissed = true }).Once()
	s.marketplace.On("TotalListings", mock.Anything).Return(int64(0), errors.New("rpc down")).Once()

	_, err := s.im.Feed(s.ctx, viewer, "")
	s.Error(err)
	s.True(dismissed)
}

func (s *listingSuite) TestFeedCachesLargeFeed() {
	const total = 60

	store := map[string][]byte{}
	rds := &redisMocks.Service{}
	rds.On("Get", mock.Anything, mock.Anything).Return(func(_ bCtx.Ctx, k string) []byte {
		return store[k]
	}, func(_ bCtx.Ctx, k string) error {
		if _, ok := store[k]; !ok {
			return redis.ErrNotFound
		}
		return nil
	})
	rds.On("TTL", mock.Anything, mock.Anything).Return(15, nil).Maybe()
	rds.On("Set", mock.Anything, mock.Anything, mock.Anything, 15*time.Second).Run(func(args mock.Arguments) {
		store[args.String(1)] = args.Get(2).([]byte)
	}).Return(nil).Once()
	s.im.feedCache = cache.New(cache.ServiceConfig{
		Ttl:   15 * time.Second,
		Pfx:   keys.PfxListingFeed,
		Cache: redisprovider.NewRedis(rds),
	})

	s.notification.On("Loading", mock.Anything, "public", "Loading...").Return(func() {}).Twice()
	s.marketplace.On("TotalListings", mock.Anything).Return(int64(total), nil).Once()
	s.marketplace.On("GetListing", mock.Anything, mock.Anything).Return(func(_ bCtx.Ctx, id *big.Int) *marketplace.Listing {
		return directListing(id.String())
	}, nil).Times(total)

	cards, err := s.im.Feed(s.ctx, "", "")
	s.Require().NoError(err)
	s.Len(cards, total)
	s.Require().Len(store, 1)
	for _, v := range store {
		s.Greater(len(v), 8*1024)
	}

	cards, err = s.im.Feed(s.ctx, "", "ape")
	s.Require().NoError(err)
	s.Len(cards, total)
	s.Equal("Bored Ape", cards[0].Name)
	rds.AssertExpectations(s.T())
}

func (s *listingSuite) TestDetailDirect() {
	s.marketplace.On("GetListing", mock.Anything, bigEq(1)).Return(directListing("1"), nil).Once()
	s.marketplace.On("OfferEvents", mock.Anything, bigEq(1)).Return([]marketplace.Offer{
		{ListingId: "1", Offeror: offeror, TotalOfferAmount: "100000000000000000", Currency: weth},
		{ListingId: "1", Offeror: viewer, TotalOfferAmount: "200000000000000000", Currency: weth},
		{ListingId: "1", Offeror: offeror, TotalOfferAmount: "300000000000000000", Currency: weth},
	}, nil).Once()
	s.erc20.On("Symbol", mock.Anything, weth).Return("WETH", nil).Once()
	s.erc20.On("Decimals", mock.Anything, weth).Return(uint8(18), nil).Once()

	d, err := s.im.Detail(s.ctx, "1", seller)
	s.Require().NoError(err)
	s.Equal("Direct Listing", d.TypeLabel)
	s.Equal("1 ETH", d.BuyNowPrice)
	s.Equal("Bored Ape", d.Listing.Asset.Name)
	s.Equal(domain.TokenId("7"), d.Listing.Asset.Id)
	s.Equal("Make an Offer", d.ActionTitle)
	s.Equal("Offer", d.ActionLabel)
	s.Equal("Enter offer amount...", d.Placeholder)
	s.True(d.CanAcceptOffers)
	s.Nil(d.MinimumNextBid)
	s.Empty(d.TimeRemaining)

	s.Require().Len(d.Offers, 2)
	s.Equal("0x333...33333", d.Offers[0].OfferorDisplay)
	s.Equal("0.3 WETH", d.Offers[0].Amount)
	s.Equal("0.2 WETH", d.Offers[1].Amount)
}

func (s *listingSuite) TestDetailOnlySellerCanAccept() {
	s.marketplace.On("GetListing", mock.Anything, bigEq(1)).Return(directListing("1"), nil).Twice()
	s.marketplace.On("OfferEvents", mock.Anything, bigEq(1)).Return([]marketplace.Offer{}, nil).Twice()

	d, err := s.im.Detail(s.ctx, "1", viewer)
	s.Require().NoError(err)
	s.False(d.CanAcceptOffers)

	d, err = s.im.Detail(s.ctx, "1", "")
	s.Require().NoError(err)
	s.False(d.CanAcceptOffers)
}

func (s *listingSuite) TestDetailNotFound() {
	s.marketplace.On("GetListing", mock.Anything, bigEq(9)).Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.Detail(s.ctx, "9", viewer)
	s.ErrorIs(err, domain.ErrNotFound)

	_, err = s.im.Detail(s.ctx, "abc", viewer)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *listingSuite) TestDetailAuction() {
	s.marketplace.On("GetListing", mock.Anything, bigEq(2)).Return(func(bCtx.Ctx, *big.Int) *marketplace.Listing {
		return auctionListing("2")
	}, nil).Twice()
	s.marketplace.On("BidBufferBps", mock.Anything).Return(uint64(500), nil).Twice()
	s.marketplace.On("WinningBid", mock.Anything, bigEq(2)).Return(nil, nil).Once()

	d, err := s.im.Detail(s.ctx, "2", viewer)
	s.Require().NoError(err)
	s.Equal("Auction Listing", d.TypeLabel)
	s.Equal("Bid on this Auction", d.ActionTitle)
	s.Equal("Bid", d.ActionLabel)
	s.Equal("00:01:00:00", d.TimeRemaining)
	s.Require().NotNil(d.MinimumNextBid)
	s.Equal("0", d.MinimumNextBid.DisplayValue)
	s.Equal("Enter bid amount...", d.Placeholder)
	s.Empty(d.Offers)

	s.marketplace.On("WinningBid", mock.Anything, bigEq(2)).Return(&marketplace.Offer{Offeror: offeror, PricePerToken: oneEther}, nil).Once()
	d, err = s.im.Detail(s.ctx, "2", viewer)
	s.Require().NoError(err)
	s.Equal("1.05", d.MinimumNextBid.DisplayValue)
	s.Equal("1.05 ETH or more", d.Placeholder)
}

func (s *listingSuite) TestMinimumBidKeepsCachedValueOnFailure() {
	s.marketplace.On("GetListing", mock.Anything, bigEq(2)).Return(func(bCtx.Ctx, *big.Int) *marketplace.Listing {
		return auctionListing("2")
	}, nil).Times(3)
	s.marketplace.On("BidBufferBps", mock.Anything).Return(uint64(500), nil).Once()
	s.marketplace.On("WinningBid", mock.Anything, bigEq(2)).Return(&marketplace.Offer{PricePerToken: "2000000000000000000"}, nil).Once()
	s.marketplace.On("WinningBid", mock.Anything, bigEq(2)).Return(nil, errors.New("rpc timeout")).Twice()

	v, err := s.im.MinimumBid(s.ctx, "2", viewer)
	s.Require().NoError(err)
	s.Equal("2.1", v.DisplayValue)

	v, err = s.im.MinimumBid(s.ctx, "2", viewer)
	s.Require().NoError(err)
	s.Require().NotNil(v)
	s.Equal("2.1", v.DisplayValue)

	// another view never had a value
	v, err = s.im.MinimumBid(s.ctx, "2", offeror)
	s.Require().NoError(err)
	s.Nil(v)
}

func (s *listingSuite) TestMinimumBidOfDirectListing() {
	s.marketplace.On("GetListing", mock.Anything, bigEq(1)).Return(directListing("1"), nil).Once()

	_, err := s.im.MinimumBid(s.ctx, "1", viewer)
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *listingSuite) expectBuy(listingId int64, txErr error) {
	s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(nil).Once()
	s.wallet.On("Signer", mock.Anything, viewer).Return(s.signer, nil).Once()
	s.marketplace.On("Buy", mock.Anything, s.signer, mock.MatchedBy(func(p marketplace.BuyParams) bool {
		return p.ListingId.Int64() == listingId &&
			p.BuyFor == viewer &&
			p.Quantity.Int64() == 1 &&
			p.Currency == domain.NativeTokenAddress &&
			p.TotalPrice.String() == oneEther
	})).Return(domain.TxHash("0xbuy"), txErr).Once()
}

func (s *listingSuite) TestBuy() {
	s.marketplace.On("GetListing", mock.Anything, bigEq(1)).Return(directListing("1"), nil).Once()
	s.expectBuy(1, nil)
	s.activity.On("Record", mock.Anything, mock.MatchedBy(func(a *activity.Activity) bool {
		return a.Action == domain.ActionBuy && a.Status == activity.StatusSuccess && a.TxHash == "0xbuy" && a.Counterparty == seller
	})).Once()
	s.notification.On("Success", mock.Anything, viewer.ToLowerStr(), "NFT bought successfully!").Once()
	s.announcer.On("AnnounceSale", mock.Anything, mock.MatchedBy(func(sale announcer.Sale) bool {
		return sale.ListingId == "1" && sale.Buyer == viewer && sale.Price == "1 ETH" && sale.Network == "goerli"
	})).Return(nil).Once()

	out, err := s.im.Buy(s.ctx, "1", viewer)
	s.Require().NoError(err)
	s.Equal(domain.ActionBuy, out.Action)
	s.Equal("/", out.Redirect)
	s.False(out.ClearInput)
	s.Equal(domain.TxHash("0xbuy"), out.TxHash)
	s.Equal(0, s.im.flags.Len())
}

func (s *listingSuite) TestBuyAuctionBuysOut() {
	s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(nil).Once()
	s.wallet.On("Signer", mock.Anything, viewer).Return(s.signer, nil).Once()
	s.marketplace.On("GetListing", mock.Anything, bigEq(2)).Return(auctionListing("2"), nil).Once()
	s.marketplace.On("MakeOffer", mock.Anything, s.signer, mock.MatchedBy(func(p marketplace.OfferParams) bool {
		return p.ListingId.Int64() == 2 &&
			p.Quantity.Int64() == 1 &&
			p.Currency == domain.NativeTokenAddress &&
			p.PricePerToken.String() == "5000000000000000000" &&
			p.ExpirationTimestamp.Cmp(math.MaxBig256) == 0
	})).Run(func(mock.Arguments) {
		s.True(s.im.flags.IsSet(buyKey("2", viewer)))
	}).Return(domain.TxHash("0xbuyout"), nil).Once()
	s.activity.On("Record", mock.Anything, mock.MatchedBy(func(a *activity.Activity) bool {
		return a.Action == domain.ActionBuy && a.Status == activity.StatusSuccess && a.TxHash == "0xbuyout"
	})).Once()
	s.notification.On("Success", mock.Anything, viewer.ToLowerStr(), "NFT bought successfully!").Once()
	s.announcer.On("AnnounceSale", mock.Anything, mock.MatchedBy(func(sale announcer.Sale) bool {
		return sale.ListingId == "2" && sale.Price == "5 ETH"
	})).Return(nil).Once()

	out, err := s.im.Buy(s.ctx, "2", viewer)
	s.Require().NoError(err)
	s.Equal(domain.ActionBuy, out.Action)
	s.Equal("/", out.Redirect)
	s.Equal(domain.TxHash("0xbuyout"), out.TxHash)
	s.marketplace.AssertNotCalled(s.T(), "Buy", mock.Anything, mock.Anything, mock.Anything)
	s.Equal(0, s.im.flags.Len())
}

func (s *listingSuite) TestBuyAuctionWithoutBuyout() {
	l := auctionListing("2")
	l.BuyoutPrice = "0"
	s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(nil).Once()
	s.marketplace.On("GetListing", mock.Anything, bigEq(2)).Return(l, nil).Once()

	_, err := s.im.Buy(s.ctx, "2", viewer)
	s.ErrorIs(err, domain.ErrBadParamInput)
	s.wallet.AssertNotCalled(s.T(), "Signer", mock.Anything, mock.Anything)
	s.marketplace.AssertNotCalled(s.T(), "MakeOffer", mock.Anything, mock.Anything, mock.Anything)
	s.marketplace.AssertNotCalled(s.T(), "Buy", mock.Anything, mock.Anything, mock.Anything)
	s.Equal(0, s.im.flags.Len())
}

func (s *listingSuite) TestBuyFailureClearsFlag() {
	s.marketplace.On("GetListing", mock.Anything, bigEq(1)).Return(directListing("1"), nil).Once()
	s.expectBuy(1, errors.New("execution reverted"))
	s.activity.On("Record", mock.Anything, mock.MatchedBy(func(a *activity.Activity) bool {
		return a.Status == activity.StatusFailed && a.Error != ""
	})).Once()
	s.notification.On("Error", mock.Anything, viewer.ToLowerStr(), "NFT could not be bought!").Once()

	out, err := s.im.Buy(s.ctx, "1", viewer)
	s.Nil(out)
	s.ErrorIs(err, domain.ErrTransactionFailed)
	var actionErr *domain.ActionError
	s.Require().True(errors.As(err, &actionErr))
	s.Equal("NFT could not be bought!", actionErr.Message)
	s.Equal(0, s.im.flags.Len())
}

func (s *listingSuite) TestBuyNetworkMismatch() {
	s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(xerrors.Errorf("chain 1, want 5: %w", domain.ErrNetworkMismatch)).Once()

	_, err := s.im.Buy(s.ctx, "1", viewer)
	s.ErrorIs(err, domain.ErrNetworkMismatch)
	s.marketplace.AssertNotCalled(s.T(), "GetListing", mock.Anything, mock.Anything)
	s.marketplace.AssertNotCalled(s.T(), "Buy", mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestBuyHoldsFlagWhileSubmitting() {
	s.marketplace.On("GetListing", mock.Anything, bigEq(1)).Return(directListing("1"), nil).Once()
	s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(nil).Once()
	s.wallet.On("Signer", mock.Anything, viewer).Return(s.signer, nil).Once()
	s.marketplace.On("Buy", mock.Anything, s.signer, mock.Anything).Run(func(mock.Arguments) {
		s.True(s.im.flags.IsSet(buyKey("1", viewer)))
		s.False(s.im.flags.IsSet(offerKey("1", viewer)))
	}).Return(domain.TxHash("0xbuy"), nil).Once()
	s.activity.On("Record", mock.Anything, mock.Anything).Once()
	s.notification.On("Success", mock.Anything, viewer.ToLowerStr(), "NFT bought successfully!").Once()
	s.announcer.On("AnnounceSale", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := s.im.Buy(s.ctx, "1", viewer)
	s.Require().NoError(err)
	s.False(s.im.flags.IsSet(buyKey("1", viewer)))
}

func (s *listingSuite) TestBuyWhileSubmitting() {
	s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(nil).Once()
	release, ok := s.im.flags.TryAcquire(buyKey("1", viewer))
	s.Require().True(ok)
	defer release()

	_, err := s.im.Buy(s.ctx, "1", viewer)
	s.ErrorIs(err, domain.ErrSubmitting)
}

func (s *listingSuite) TestBuyWithoutWallet() {
	_, err := s.im.Buy(s.ctx, "1", "")
	s.ErrorIs(err, domain.ErrWalletNotConnected)
}

func (s *listingSuite) TestBuyUnknownListing() {
	s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(nil).Once()
	s.marketplace.On("GetListing", mock.Anything, bigEq(9)).Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.Buy(s.ctx, "9", viewer)
	s.ErrorIs(err, domain.ErrNotFound)
	s.Equal(0, s.im.flags.Len())
}

func (s *listingSuite) TestOfferAmountRequired() {
	s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(nil).Once()
	s.notification.On("Error", mock.Anything, viewer.ToLowerStr(), "Amount is required").Once()

	_, err := s.im.Offer(s.ctx, "1", viewer, "  ")
	s.ErrorIs(err, domain.ErrBadParamInput)
	s.marketplace.AssertNotCalled(s.T(), "GetListing", mock.Anything, mock.Anything)
	s.Equal(0, s.im.flags.Len())
}

func (s *listingSuite) TestOfferAmountRequiredOnWrongNetwork() {
	s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(xerrors.Errorf("chain 1, want 5: %w", domain.ErrNetworkMismatch)).Once()

	_, err := s.im.Offer(s.ctx, "1", viewer, "")
	s.ErrorIs(err, domain.ErrNetworkMismatch)
	s.notification.AssertNotCalled(s.T(), "Error", mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestOfferNetworkMismatch() {
	for _, id := range []string{"1", "2"} {
		s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(xerrors.Errorf("chain 1, want 5: %w", domain.ErrNetworkMismatch)).Once()

		_, err := s.im.Offer(s.ctx, id, viewer, "0.5")
		s.ErrorIs(err, domain.ErrNetworkMismatch)
	}
	s.marketplace.AssertNotCalled(s.T(), "GetListing", mock.Anything, mock.Anything)
	s.marketplace.AssertNotCalled(s.T(), "MakeOffer", mock.Anything, mock.Anything, mock.Anything)
	s.marketplace.AssertNotCalled(s.T(), "Buy", mock.Anything, mock.Anything, mock.Anything)
	s.Equal(0, s.im.flags.Len())
}

func (s *listingSuite) TestAcceptOfferNetworkMismatch() {
	s.wallet.On("EnsureNetwork", mock.Anything, seller).Return(xerrors.Errorf("chain 1, want 5: %w", domain.ErrNetworkMismatch)).Once()

	_, err := s.im.AcceptOffer(s.ctx, "1", seller, offeror)
	s.ErrorIs(err, domain.ErrNetworkMismatch)
	s.marketplace.AssertNotCalled(s.T(), "GetListing", mock.Anything, mock.Anything)
	s.marketplace.AssertNotCalled(s.T(), "GetOffer", mock.Anything, mock.Anything, mock.Anything)
	s.marketplace.AssertNotCalled(s.T(), "AcceptOffer", mock.Anything, mock.Anything, mock.Anything)
	s.Equal(0, s.im.flags.Len())
}

func (s *listingSuite) TestOfferInvalidAmount() {
	s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(nil).Once()
	s.marketplace.On("GetListing", mock.Anything, bigEq(1)).Return(directListing("1"), nil).Once()
	s.notification.On("Error", mock.Anything, viewer.ToLowerStr(), "Amount is not a valid number").Once()

	_, err := s.im.Offer(s.ctx, "1", viewer, "1.2.3")
	s.ErrorIs(err, domain.ErrInvalidNumberFormat)
	s.Equal(0, s.im.flags.Len())
}

func (s *listingSuite) TestOfferAtBuyoutBuys() {
	s.marketplace.On("GetListing", mock.Anything, bigEq(1)).Return(directListing("1"), nil).Once()
	s.expectBuy(1, nil)
	s.activity.On("Record", mock.Anything, mock.Anything).Once()
	s.notification.On("Success", mock.Anything, viewer.ToLowerStr(), "NFT bought successfully!").Once()
	s.announcer.On("AnnounceSale", mock.Anything, mock.Anything).Return(nil).Once()

	out, err := s.im.Offer(s.ctx, "1", viewer, "1.000")
	s.Require().NoError(err)
	s.Equal(domain.ActionBuy, out.Action)
	s.Equal("/", out.Redirect)
	s.marketplace.AssertNotCalled(s.T(), "MakeOffer", mock.Anything, mock.Anything, mock.Anything)
	s.Equal(0, s.im.flags.Len())
}

func (s *listingSuite) TestOfferBelowBuyout() {
	s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(nil).Once()
	s.wallet.On("Signer", mock.Anything, viewer).Return(s.signer, nil).Once()
	s.marketplace.On("GetListing", mock.Anything, bigEq(1)).Return(directListing("1"), nil).Once()
	s.erc20.On("Allowance", mock.Anything, weth, viewer, market).Return(big.NewInt(0), nil).Once()
	s.erc20.On("Approve", mock.Anything, s.signer, weth, market, weiEq("500000000000000000")).Return(domain.TxHash("0xapprove"), nil).Once()
	s.marketplace.On("MakeOffer", mock.Anything, s.signer, mock.MatchedBy(func(p marketplace.OfferParams) bool {
		return p.ListingId.Int64() == 1 &&
			p.Currency == weth &&
			p.PricePerToken.String() == "500000000000000000" &&
			p.ExpirationTimestamp.Int64() > now.Unix()
	})).Return(domain.TxHash("0xoffer"), nil).Once()
	s.activity.On("Record", mock.Anything, mock.MatchedBy(func(a *activity.Activity) bool {
		return a.Action == domain.ActionOffer && a.Currency == weth
	})).Once()
	s.notification.On("Success", mock.Anything, viewer.ToLowerStr(), "Offer made successfully!").Once()

	out, err := s.im.Offer(s.ctx, "1", viewer, "0.5")
	s.Require().NoError(err)
	s.Equal(domain.ActionOffer, out.Action)
	s.Equal("/", out.Redirect)
	s.False(out.ClearInput)
}

func (s *listingSuite) TestOfferAboveBuyout() {
	s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(nil).Once()
	s.wallet.On("Signer", mock.Anything, viewer).Return(s.signer, nil).Once()
	s.marketplace.On("GetListing", mock.Anything, bigEq(1)).Return(directListing("1"), nil).Once()
	s.erc20.On("Allowance", mock.Anything, weth, viewer, market).Return(big.NewInt(0), nil).Once()
	s.erc20.On("Approve", mock.Anything, s.signer, weth, market, weiEq("1500000000000000000")).Return(domain.TxHash("0xapprove"), nil).Once()
	s.marketplace.On("MakeOffer", mock.Anything, s.signer, mock.MatchedBy(func(p marketplace.OfferParams) bool {
		return p.ListingId.Int64() == 1 && p.PricePerToken.String() == "1500000000000000000"
	})).Run(func(mock.Arguments) {
		s.True(s.im.flags.IsSet(offerKey("1", viewer)))
		s.False(s.im.flags.IsSet(buyKey("1", viewer)))
	}).Return(domain.TxHash("0xoffer"), nil).Once()
	s.activity.On("Record", mock.Anything, mock.MatchedBy(func(a *activity.Activity) bool {
		return a.Action == domain.ActionOffer
	})).Once()
	s.notification.On("Success", mock.Anything, viewer.ToLowerStr(), "Offer made successfully!").Once()

	out, err := s.im.Offer(s.ctx, "1", viewer, "1.5")
	s.Require().NoError(err)
	s.Equal(domain.ActionOffer, out.Action)
	s.marketplace.AssertNotCalled(s.T(), "Buy", mock.Anything, mock.Anything, mock.Anything)
	s.Equal(0, s.im.flags.Len())
}

func (s *listingSuite) TestOfferFailure() {
	s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(nil).Once()
	s.wallet.On("Signer", mock.Anything, viewer).Return(s.signer, nil).Once()
	s.marketplace.On("GetListing", mock.Anything, bigEq(1)).Return(directListing("1"), nil).Once()
	s.erc20.On("Allowance", mock.Anything, weth, viewer, market).Return(big.NewInt(0), errors.New("rpc down")).Once()
	s.activity.On("Record", mock.Anything, mock.Anything).Once()
	s.notification.On("Error", mock.Anything, viewer.ToLowerStr(), "ERROR: Offer could not be made!").Once()

	out, err := s.im.Offer(s.ctx, "1", viewer, "0.5")
	s.Nil(out)
	s.ErrorIs(err, domain.ErrTransactionFailed)
	s.Equal(0, s.im.flags.Len())
}

func (s *listingSuite) TestBid() {
	s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(nil).Once()
	s.wallet.On("Signer", mock.Anything, viewer).Return(s.signer, nil).Once()
	s.marketplace.On("GetListing", mock.Anything, bigEq(2)).Return(auctionListing("2"), nil).Once()
	// an amount equal to the buyout is still a bid on auctions
	s.marketplace.On("MakeOffer", mock.Anything, s.signer, mock.MatchedBy(func(p marketplace.OfferParams) bool {
		return p.ListingId.Int64() == 2 &&
			p.Currency == domain.NativeTokenAddress &&
			p.PricePerToken.String() == "5000000000000000000" &&
			p.ExpirationTimestamp.Cmp(math.MaxBig256) == 0
	})).Return(domain.TxHash("0xbid"), nil).Once()
	s.activity.On("Record", mock.Anything, mock.MatchedBy(func(a *activity.Activity) bool {
		return a.Action == domain.ActionBid
	})).Once()
	s.notification.On("Success", mock.Anything, viewer.ToLowerStr(), "Bid made successfully!").Once()

	out, err := s.im.Offer(s.ctx, "2", viewer, "5")
	s.Require().NoError(err)
	s.Equal(domain.ActionBid, out.Action)
	s.True(out.ClearInput)
	s.Empty(out.Redirect)
	s.marketplace.AssertNotCalled(s.T(), "Buy", mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestBidFailure() {
	s.wallet.On("EnsureNetwork", mock.Anything, viewer).Return(nil).Once()
	s.wallet.On("Signer", mock.Anything, viewer).Return(s.signer, nil).Once()
	s.marketplace.On("GetListing", mock.Anything, bigEq(2)).Return(auctionListing("2"), nil).Once()
	s.marketplace.On("MakeOffer", mock.Anything, s.signer, mock.Anything).Return(domain.TxHash(""), errors.New("bid too low")).Once()
	s.activity.On("Record", mock.Anything, mock.Anything).Once()
	s.notification.On("Error", mock.Anything, viewer.ToLowerStr(), "ERROR: Bid could not be made!").Once()

	_, err := s.im.Offer(s.ctx, "2", viewer, "0.1")
	var actionErr *domain.ActionError
	s.Require().True(errors.As(err, &actionErr))
	s.Equal(domain.ActionBid, actionErr.Action)
	s.Equal(0, s.im.flags.Len())
}

func (s *listingSuite) TestAcceptOffer() {
	s.wallet.On("EnsureNetwork", mock.Anything, seller).Return(nil).Once()
	s.wallet.On("Signer", mock.Anything, seller).Return(s.signer, nil).Once()
	s.marketplace.On("GetListing", mock.Anything, bigEq(1)).Return(directListing("1"), nil).Once()
	s.marketplace.On("GetOffer", mock.Anything, bigEq(1), offeror).Return(&marketplace.Offer{
		ListingId:     "1",
		Offeror:       offeror,
		Currency:      weth,
		PricePerToken: "300000000000000000",
	}, nil).Once()
	s.erc20.On("Symbol", mock.Anything, weth).Return("WETH", nil).Once()
	s.erc20.On("Decimals", mock.Anything, weth).Return(uint8(18), nil).Once()
	s.marketplace.On("AcceptOffer", mock.Anything, s.signer, mock.MatchedBy(func(p marketplace.AcceptOfferParams) bool {
		return p.Offeror == offeror && p.Currency == weth && p.PricePerToken.String() == "300000000000000000"
	})).Return(domain.TxHash("0xaccept"), nil).Once()
	s.activity.On("Record", mock.Anything, mock.MatchedBy(func(a *activity.Activity) bool {
		return a.Action == domain.ActionAcceptOffer && a.Account == seller && a.Counterparty == offeror
	})).Once()
	s.notification.On("Success", mock.Anything, seller.ToLowerStr(), "Offer accepted successfully!").Once()
	s.announcer.On("AnnounceSale", mock.Anything, mock.MatchedBy(func(sale announcer.Sale) bool {
		return sale.Buyer == offeror && sale.Price == "0.3 WETH"
	})).Return(nil).Once()

	out, err := s.im.AcceptOffer(s.ctx, "1", seller, offeror)
	s.Require().NoError(err)
	s.Equal(domain.ActionAcceptOffer, out.Action)
	s.Equal("/", out.Redirect)
}

func (s *listingSuite) TestAcceptOfferFailure() {
	s.wallet.On("EnsureNetwork", mock.Anything, seller).Return(nil).Once()
	s.wallet.On("Signer", mock.Anything, seller).Return(s.signer, nil).Once()
	s.marketplace.On("GetListing", mock.Anything, bigEq(1)).Return(directListing("1"), nil).Once()
	s.marketplace.On("GetOffer", mock.Anything, bigEq(1), offeror).Return(&marketplace.Offer{
		Offeror:       offeror,
		Currency:      weth,
		PricePerToken: "300000000000000000",
	}, nil).Once()
	s.marketplace.On("AcceptOffer", mock.Anything, s.signer, mock.Anything).Return(domain.TxHash(""), errors.New("!seller")).Once()
	s.activity.On("Record", mock.Anything, mock.Anything).Once()
	s.notification.On("Error", mock.Anything, seller.ToLowerStr(), "ERROR: Offer could not be accepted!").Once()

	_, err := s.im.AcceptOffer(s.ctx, "1", seller, offeror)
	s.ErrorIs(err, domain.ErrTransactionFailed)
	s.Equal(0, s.im.flags.Len())
}

func (s *listingSuite) TestAcceptOfferWithoutOffer() {
	s.wallet.On("EnsureNetwork", mock.Anything, seller).Return(nil).Once()
	s.marketplace.On("GetListing", mock.Anything, bigEq(1)).Return(directListing("1"), nil).Once()
	s.marketplace.On("GetOffer", mock.Anything, bigEq(1), offeror).Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.AcceptOffer(s.ctx, "1", seller, offeror)
	s.ErrorIs(err, domain.ErrNotFound)
}
