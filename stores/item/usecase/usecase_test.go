package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/activity"
	activityMocks "github.com/x-xyz/storefront/domain/activity/mocks"
	collectionMocks "github.com/x-xyz/storefront/domain/collection/mocks"
	fileMocks "github.com/x-xyz/storefront/domain/file/mocks"
	"github.com/x-xyz/storefront/domain/item"
	"github.com/x-xyz/storefront/domain/marketplace"
	marketplaceMocks "github.com/x-xyz/storefront/domain/marketplace/mocks"
	dmocks "github.com/x-xyz/storefront/domain/mocks"
	notificationMocks "github.com/x-xyz/storefront/domain/notification/mocks"
	walletMocks "github.com/x-xyz/storefront/domain/wallet/mocks"
	"github.com/x-xyz/storefront/service/pinata"
)

const (
	owner      = domain.Address("0x2222222222222222222222222222222222222222")
	stranger   = domain.Address("0x3333333333333333333333333333333333333333")
	collAddr   = domain.Address("0x4444444444444444444444444444444444444444")
	marketAddr = domain.Address("0x5555555555555555555555555555555555555555")
)

var now = time.Unix(1700000000, 0)

func bigEq(v int64) interface{} {
	return mock.MatchedBy(func(n *big.Int) bool {
		return n != nil && n.Cmp(big.NewInt(v)) == 0
	})
}

type itemSuite struct {
	suite.Suite

	ctx          bCtx.Ctx
	collection   *collectionMocks.Contract
	marketplace  *marketplaceMocks.Contract
	metadata     *dmocks.MetadataUseCase
	file         *fileMocks.Usecase
	wallet       *walletMocks.Usecase
	notification *notificationMocks.Usecase
	activity     *activityMocks.Usecase
	signer       *dmocks.Signer
	dismissed    int
	im           *impl
}

func TestItemSuite(t *testing.T) {
	suite.Run(t, new(itemSuite))
}

func (s *itemSuite) SetupTest() {
	timeNow = func() time.Time { return now }

	s.ctx = bCtx.Background()
	s.collection = &collectionMocks.Contract{}
	s.marketplace = &marketplaceMocks.Contract{}
	s.metadata = &dmocks.MetadataUseCase{}
	s.file = &fileMocks.Usecase{}
	s.wallet = &walletMocks.Usecase{}
	s.notification = &notificationMocks.Usecase{}
	s.activity = &activityMocks.Usecase{}
	s.signer = &dmocks.Signer{}
	s.dismissed = 0

	s.im = NewItemUseCase(&ItemUseCaseCfg{
		ChainId:      5,
		Collection:   s.collection,
		Marketplace:  s.marketplace,
		Metadata:     s.metadata,
		File:         s.file,
		Wallet:       s.wallet,
		Notification: s.notification,
		Activity:     s.activity,
	}).(*impl)

	s.collection.On("Address").Return(collAddr).Maybe()
	s.marketplace.On("Address").Return(marketAddr).Maybe()
}

func (s *itemSuite) TearDownTest() {
	timeNow = time.Now

	s.collection.AssertExpectations(s.T())
	s.marketplace.AssertExpectations(s.T())
	s.file.AssertExpectations(s.T())
	s.wallet.AssertExpectations(s.T())
	s.notification.AssertExpectations(s.T())
	s.activity.AssertExpectations(s.T())
}

func (s *itemSuite) expectLoading(message string) {
	s.notification.On("Loading", mock.Anything, owner.ToLowerStr(), message).Return(func() { s.dismissed++ }).Once()
}

func (s *itemSuite) TestOwned() {
	s.expectLoading("Loading...")
	s.collection.On("BalanceOf", mock.Anything, owner).Return(big.NewInt(2), nil).Once()
	s.collection.On("NextTokenIdToMint", mock.Anything).Return(big.NewInt(4), nil).Once()
	s.collection.On("OwnerOf", mock.Anything, bigEq(0)).Return(stranger, nil).Once()
	s.collection.On("OwnerOf", mock.Anything, bigEq(1)).Return(owner, nil).Once()
	s.collection.On("OwnerOf", mock.Anything, bigEq(2)).Return(domain.Address(""), errors.New("execution reverted: invalid token")).Once()
	s.collection.On("OwnerOf", mock.Anything, bigEq(3)).Return(owner, nil).Once()
	s.collection.On("TokenURI", mock.Anything, bigEq(1)).Return("ipfs://one", nil).Once()
	s.collection.On("TokenURI", mock.Anything, bigEq(3)).Return("ipfs://three", nil).Once()
	s.metadata.On("GetFromUrl", mock.Anything, "ipfs://one").Return(&domain.NftMetadata{Name: "one", Image: "ipfs://img"}, nil).Once()
	s.metadata.On("GetFromUrl", mock.Anything, "ipfs://three").Return(nil, domain.ErrInvalidJsonFormat).Once()

	nfts, err := s.im.Owned(s.ctx, owner)
	s.Require().NoError(err)
	s.Equal(1, s.dismissed)
	s.Require().Len(nfts, 2)
	s.Equal(domain.TokenId("1"), nfts[0].Metadata.Id)
	s.Equal("one", nfts[0].Metadata.Name)
	s.Equal(owner, nfts[0].Owner)
	s.Equal(domain.TokenId("3"), nfts[1].Metadata.Id)
	s.Equal("ipfs://three", nfts[1].Metadata.Uri)
}

func (s *itemSuite) TestOwnedNothing() {
	s.expectLoading("Loading...")
	s.collection.On("BalanceOf", mock.Anything, owner).Return(big.NewInt(0), nil).Once()

	nfts, err := s.im.Owned(s.ctx, owner)
	s.Require().NoError(err)
	s.Empty(nfts)
	s.Equal(1, s.dismissed)
	s.collection.AssertNotCalled(s.T(), "NextTokenIdToMint", mock.Anything)
}

func (s *itemSuite) TestOwnedWithoutWallet() {
	_, err := s.im.Owned(s.ctx, "")
	s.ErrorIs(err, domain.ErrWalletNotConnected)
}

func (s *itemSuite) TestMint() {
	s.expectLoading("Processing...")
	s.wallet.On("Signer", mock.Anything, owner).Return(s.signer, nil).Once()
	s.file.On("ImageUri", mock.Anything, "data:image/png;base64,AAAA", mock.MatchedBy(func(o pinata.PinOptions) bool {
		return o.Metadata != nil && o.Metadata.Name == "Ape"
	})).Return("ipfs://image", nil).Once()
	s.file.On("UploadJson", mock.Anything, tokenMetadata{
		Name:        "Ape",
		Description: "bored",
		Image:       "ipfs://image",
	}, mock.Anything).Return("QmMeta", nil).Once()
	s.collection.On("MintTo", mock.Anything, s.signer, owner, "ipfs://QmMeta").Return(domain.TxHash("0xmint"), big.NewInt(8), nil).Once()
	s.activity.On("Record", mock.Anything, mock.MatchedBy(func(a *activity.Activity) bool {
		return a.Action == domain.ActionMint && a.TokenId == "8" && a.Status == activity.StatusSuccess && a.ContractAddress == collAddr
	})).Once()
	s.notification.On("Success", mock.Anything, owner.ToLowerStr(), "Mint an Item successfully").Once()

	out, err := s.im.Mint(s.ctx, owner, item.MintParams{Name: "Ape", Description: "bored", Image: "data:image/png;base64,AAAA"})
	s.Require().NoError(err)
	s.Equal(domain.ActionMint, out.Action)
	s.Equal("/", out.Redirect)
	s.Equal(domain.TxHash("0xmint"), out.TxHash)
	s.Equal(1, s.dismissed)
	s.Equal(0, s.im.flags.Len())
}

func (s *itemSuite) TestMintWithoutImage() {
	s.notification.On("Error", mock.Anything, owner.ToLowerStr(), "Please select an image").Once()

	_, err := s.im.Mint(s.ctx, owner, item.MintParams{Name: "Ape"})
	s.ErrorIs(err, domain.ErrBadParamInput)
	var actionErr *domain.ActionError
	s.Require().True(errors.As(err, &actionErr))
	s.Equal("Please select an image", actionErr.Message)
	s.file.AssertNotCalled(s.T(), "ImageUri", mock.Anything, mock.Anything, mock.Anything)
}

func (s *itemSuite) TestMintFailureKeepsForm() {
	s.expectLoading("Processing...")
	s.wallet.On("Signer", mock.Anything, owner).Return(s.signer, nil).Once()
	s.file.On("ImageUri", mock.Anything, "https://example.com/ape.png", mock.Anything).Return("https://example.com/ape.png", nil).Once()
	s.file.On("UploadJson", mock.Anything, mock.Anything, mock.Anything).Return("QmMeta", nil).Once()
	s.collection.On("MintTo", mock.Anything, s.signer, owner, "ipfs://QmMeta").Return(domain.TxHash("0xmint"), nil, errors.New("execution reverted")).Once()
	s.activity.On("Record", mock.Anything, mock.MatchedBy(func(a *activity.Activity) bool {
		return a.Status == activity.StatusFailed && a.TxHash == "0xmint"
	})).Once()
	s.notification.On("Error", mock.Anything, owner.ToLowerStr(), "ERROR: Mint an Item failed").Once()

	out, err := s.im.Mint(s.ctx, owner, item.MintParams{Name: "Ape", Image: "https://example.com/ape.png"})
	s.Nil(out)
	s.ErrorIs(err, domain.ErrTransactionFailed)
	s.Equal(1, s.dismissed)
	s.Equal(0, s.im.flags.Len())
}

func (s *itemSuite) TestMintWhileSubmitting() {
	release, ok := s.im.flags.TryAcquire(mintKey(owner))
	s.Require().True(ok)
	defer release()

	_, err := s.im.Mint(s.ctx, owner, item.MintParams{Image: "ipfs://image"})
	s.ErrorIs(err, domain.ErrSubmitting)
}

func (s *itemSuite) TestList() {
	tests := []struct {
		desc        string
		listingType string
		want        marketplace.ListingType
		message     string
	}{
		{"direct", "direct", marketplace.ListingTypeDirect, "Listing Direct Item successfully"},
		{"auction", "Auction", marketplace.ListingTypeAuction, "Listing Auction Item successfully"},
	}
	for _, t := range tests {
		s.Run(t.desc, func() {
			s.SetupTest()
			s.expectLoading("Processing...")
			s.wallet.On("EnsureNetwork", mock.Anything, owner).Return(nil).Once()
			s.wallet.On("Signer", mock.Anything, owner).Return(s.signer, nil).Once()
			s.collection.On("IsApprovedForAll", mock.Anything, owner, marketAddr).Return(false, nil).Once()
			s.collection.On("SetApprovalForAll", mock.Anything, s.signer, marketAddr, true).Return(domain.TxHash("0xapprove"), nil).Once()
			s.marketplace.On("CreateListing", mock.Anything, s.signer, mock.MatchedBy(func(p marketplace.ListingParams) bool {
				return p.AssetContract == collAddr &&
					p.TokenId == "3" &&
					p.Type == t.want &&
					p.Quantity == 1 &&
					p.Currency == domain.NativeTokenAddress &&
					p.StartTime == now.Unix() &&
					p.SecondsUntilEndTime == 60*60*24*7 &&
					p.ReservePricePerToken.Sign() == 0 &&
					p.BuyoutPricePerToken.String() == "250000000000000000"
			})).Return(domain.TxHash("0xlist"), nil).Once()
			s.activity.On("Record", mock.Anything, mock.MatchedBy(func(a *activity.Activity) bool {
				return a.Action == domain.ActionList && a.Status == activity.StatusSuccess
			})).Once()
			s.notification.On("Success", mock.Anything, owner.ToLowerStr(), t.message).Once()

			out, err := s.im.List(s.ctx, owner, item.ListParams{TokenId: "3", Type: t.listingType, Price: "0.25"})
			s.Require().NoError(err)
			s.Equal("/", out.Redirect)
			s.Equal(t.message, out.Message)
			s.TearDownTest()
		})
	}
}

func (s *itemSuite) TestListFailure() {
	s.expectLoading("Processing...")
	s.wallet.On("EnsureNetwork", mock.Anything, owner).Return(nil).Once()
	s.wallet.On("Signer", mock.Anything, owner).Return(s.signer, nil).Once()
	s.collection.On("IsApprovedForAll", mock.Anything, owner, marketAddr).Return(true, nil).Once()
	s.marketplace.On("CreateListing", mock.Anything, s.signer, mock.Anything).Return(domain.TxHash(""), errors.New("insufficient funds")).Once()
	s.activity.On("Record", mock.Anything, mock.Anything).Once()
	s.notification.On("Error", mock.Anything, owner.ToLowerStr(), "ERROR: Listing Auction Item failed").Once()

	_, err := s.im.List(s.ctx, owner, item.ListParams{TokenId: "3", Type: "auction", Price: "1"})
	s.ErrorIs(err, domain.ErrTransactionFailed)
	s.collection.AssertNotCalled(s.T(), "SetApprovalForAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.Equal(0, s.im.flags.Len())
}

func (s *itemSuite) TestListGuardComesFirst() {
	s.wallet.On("EnsureNetwork", mock.Anything, owner).Return(xerrors.Errorf("chain 1, want 5: %w", domain.ErrNetworkMismatch)).Once()

	_, err := s.im.List(s.ctx, owner, item.ListParams{})
	s.ErrorIs(err, domain.ErrNetworkMismatch)
	s.marketplace.AssertNotCalled(s.T(), "CreateListing", mock.Anything, mock.Anything, mock.Anything)
}

func (s *itemSuite) TestListValidation() {
	tests := []struct {
		desc string
		p    item.ListParams
	}{
		{"no token", item.ListParams{Type: "direct", Price: "1"}},
		{"bad type", item.ListParams{TokenId: "1", Type: "raffle", Price: "1"}},
		{"bad price", item.ListParams{TokenId: "1", Type: "direct", Price: "one"}},
		{"empty price", item.ListParams{TokenId: "1", Type: "direct"}},
	}
	for _, t := range tests {
		s.Run(t.desc, func() {
			s.wallet.On("EnsureNetwork", mock.Anything, owner).Return(nil).Once()

			_, err := s.im.List(s.ctx, owner, t.p)
			s.Error(err)
			s.Equal(400, statusOf(err))
		})
	}
	s.Equal(0, s.im.flags.Len())
}

func statusOf(err error) int {
	if errors.Is(err, domain.ErrBadParamInput) || errors.Is(err, domain.ErrInvalidNumberFormat) {
		return 400
	}
	return 500
}
