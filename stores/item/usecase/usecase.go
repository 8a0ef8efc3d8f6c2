package usecase

import (
	"errors"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	bEth "github.com/x-xyz/storefront/base/ethereum"
	"github.com/x-xyz/storefront/base/inflight"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/activity"
	"github.com/x-xyz/storefront/domain/collection"
	"github.com/x-xyz/storefront/domain/file"
	"github.com/x-xyz/storefront/domain/item"
	"github.com/x-xyz/storefront/domain/listing"
	"github.com/x-xyz/storefront/domain/marketplace"
	"github.com/x-xyz/storefront/domain/notification"
	"github.com/x-xyz/storefront/domain/wallet"
	"github.com/x-xyz/storefront/service/cache"
	"github.com/x-xyz/storefront/service/pinata"
)

const (
	// DefaultListingDuration is how long new listings stay open
	DefaultListingDuration = 60 * 60 * 24 * 7 * time.Second

	scanConcurrency = 10

	msgImageRequired = "Please select an image"
	msgMintSuccess   = "Mint an Item successfully"
	msgMintFailure   = "ERROR: Mint an Item failed"

	ipfsPrefix = "ipfs://"
)

var timeNow = time.Now

type ItemUseCaseCfg struct {
	ChainId         domain.ChainId
	Collection      collection.Contract
	Marketplace     marketplace.Contract
	Metadata        domain.MetadataUseCase
	File            file.Usecase
	Wallet          wallet.Usecase
	Notification    notification.Usecase
	Activity        activity.Usecase
	ListingDuration time.Duration
	// FeedCache is dropped after a new listing, optional
	FeedCache cache.Service
}

type impl struct {
	chainId         domain.ChainId
	collection      collection.Contract
	marketplace     marketplace.Contract
	metadata        domain.MetadataUseCase
	file            file.Usecase
	wallet          wallet.Usecase
	notification    notification.Usecase
	activity        activity.Usecase
	listingDuration time.Duration
	feedCache       cache.Service

	flags *inflight.Flags
}

func NewItemUseCase(cfg *ItemUseCaseCfg) item.Usecase {
	duration := cfg.ListingDuration
	if duration <= 0 {
		duration = DefaultListingDuration
	}
	return &impl{
		chainId:         cfg.ChainId,
		collection:      cfg.Collection,
		marketplace:     cfg.Marketplace,
		metadata:        cfg.Metadata,
		file:            cfg.File,
		wallet:          cfg.Wallet,
		notification:    cfg.Notification,
		activity:        cfg.Activity,
		listingDuration: duration,
		feedCache:       cfg.FeedCache,
		flags:           inflight.New(),
	}
}

func (im *impl) Owned(c bCtx.Ctx, owner domain.Address) ([]collection.OwnedNft, error) {
	if owner.IsEmpty() {
		return nil, domain.ErrWalletNotConnected
	}

	dismiss := im.notification.Loading(c, notification.AudienceOf(owner), notification.LoadingMessage)
	defer dismiss()

	balance, err := im.collection.BalanceOf(c, owner)
	if err != nil {
		c.WithField("err", err).Error("collection.BalanceOf failed")
		return nil, err
	}
	if balance.Sign() == 0 {
		return []collection.OwnedNft{}, nil
	}

	next, err := im.collection.NextTokenIdToMint(c)
	if err != nil {
		c.WithField("err", err).Error("collection.NextTokenIdToMint failed")
		return nil, err
	}
	total := int(next.Int64())
	if total <= 0 {
		return []collection.OwnedNft{}, nil
	}

	b := goroutines.NewBatch(scanConcurrency, goroutines.WithBatchSize(total))
	defer b.Close()
	for i := 0; i < total; i++ {
		tokenId := big.NewInt(int64(i))
		b.Queue(func() (interface{}, error) {
			return im.ownedToken(c, owner, tokenId)
		})
	}
	b.QueueComplete()

	res := []collection.OwnedNft{}
	for ret := range b.Results() {
		if err := ret.Error(); err != nil {
			c.WithField("err", err).Error("scan owned tokens failed")
			return nil, err
		}
		if nft, ok := ret.Value().(*collection.OwnedNft); ok && nft != nil {
			res = append(res, *nft)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		a, b := res[i].Metadata.Id, res[j].Metadata.Id
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
	return res, nil
}

// ownedToken returns nil when tokenId belongs to someone else or was burned
func (im *impl) ownedToken(c bCtx.Ctx, owner domain.Address, tokenId *big.Int) (*collection.OwnedNft, error) {
	holder, err := im.collection.OwnerOf(c, tokenId)
	if err != nil {
		// burned tokens revert
		c.WithFields(log.Fields{"err": err, "tokenId": tokenId}).Warn("collection.OwnerOf failed")
		return nil, nil
	}
	if !holder.Equals(owner) {
		return nil, nil
	}

	nft := &collection.OwnedNft{
		Owner:    holder,
		Metadata: domain.NftMetadata{Id: domain.TokenId(tokenId.String())},
	}
	uri, err := im.collection.TokenURI(c, tokenId)
	if err != nil {
		return nil, err
	}
	md, err := im.metadata.GetFromUrl(c, uri)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "uri": uri}).Warn("metadata.GetFromUrl failed")
		nft.Metadata.Uri = uri
		return nft, nil
	}
	nft.Metadata = *md
	nft.Metadata.Id = domain.TokenId(tokenId.String())
	return nft, nil
}

type tokenMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (im *impl) Mint(c bCtx.Ctx, minter domain.Address, p item.MintParams) (*domain.ActionOutcome, error) {
	if minter.IsEmpty() {
		return nil, domain.ErrWalletNotConnected
	}
	audience := notification.AudienceOf(minter)
	if strings.TrimSpace(p.Image) == "" {
		im.notification.Error(c, audience, msgImageRequired)
		return nil, &domain.ActionError{Action: domain.ActionMint, Message: msgImageRequired, Err: domain.ErrBadParamInput}
	}

	release, ok := im.flags.TryAcquire(mintKey(minter))
	if !ok {
		return nil, domain.ErrSubmitting
	}
	defer release()

	dismiss := im.notification.Loading(c, audience, notification.ProcessingMessage)
	defer dismiss()

	a := &activity.Activity{
		Account:         minter,
		Action:          domain.ActionMint,
		ContractAddress: im.collection.Address(),
	}
	tx, tokenId, err := im.mint(c, minter, p)
	a.TxHash = tx
	if err != nil {
		c.WithFields(log.Fields{"err": err, "txHash": tx}).Error("mint failed")
		a.Status = activity.StatusFailed
		a.Error = err.Error()
		im.activity.Record(c, a)
		im.notification.Error(c, audience, msgMintFailure)
		return nil, &domain.ActionError{Action: domain.ActionMint, Message: msgMintFailure, Err: failure(err)}
	}

	if tokenId != nil {
		a.TokenId = domain.TokenId(tokenId.String())
	}
	a.Status = activity.StatusSuccess
	im.activity.Record(c, a)
	im.notification.Success(c, audience, msgMintSuccess)
	return &domain.ActionOutcome{
		Action:   domain.ActionMint,
		TxHash:   tx,
		Redirect: domain.RedirectHome,
		Message:  msgMintSuccess,
	}, nil
}

// mint pins the image and the metadata json, then mints to minter
func (im *impl) mint(c bCtx.Ctx, minter domain.Address, p item.MintParams) (domain.TxHash, *big.Int, error) {
	signer, err := im.wallet.Signer(c, minter)
	if err != nil {
		return "", nil, err
	}

	opts := pinata.PinOptions{Metadata: &pinata.PinataMetadata{Name: p.Name}}
	image, err := im.file.ImageUri(c, p.Image, opts)
	if err != nil {
		return "", nil, err
	}
	hash, err := im.file.UploadJson(c, tokenMetadata{
		Name:        p.Name,
		Description: p.Description,
		Image:       image,
	}, opts)
	if err != nil {
		return "", nil, err
	}
	return im.collection.MintTo(c, signer, minter, ipfsPrefix+hash)
}

func (im *impl) List(c bCtx.Ctx, seller domain.Address, p item.ListParams) (*domain.ActionOutcome, error) {
	if seller.IsEmpty() {
		return nil, domain.ErrWalletNotConnected
	}
	if err := im.wallet.EnsureNetwork(c, seller); err != nil {
		return nil, err
	}

	if strings.TrimSpace(p.TokenId.String()) == "" {
		return nil, xerrors.Errorf("no nft selected: %w", domain.ErrBadParamInput)
	}
	tokenId, err := p.TokenId.ToBig()
	if err != nil {
		return nil, err
	}
	listingType, err := marketplace.ParseListingType(p.Type)
	if err != nil {
		return nil, err
	}
	price, err := bEth.ParseUnits(p.Price, bEth.NativeDecimals)
	if err != nil {
		return nil, err
	}

	release, ok := im.flags.TryAcquire(listKey(seller))
	if !ok {
		return nil, domain.ErrSubmitting
	}
	defer release()

	audience := notification.AudienceOf(seller)
	dismiss := im.notification.Loading(c, audience, notification.ProcessingMessage)
	defer dismiss()

	success := "Listing " + listingType.String() + " Item successfully"
	failed := "ERROR: Listing " + listingType.String() + " Item failed"

	a := &activity.Activity{
		Account:         seller,
		Action:          domain.ActionList,
		ContractAddress: im.collection.Address(),
		TokenId:         domain.TokenId(tokenId.String()),
		Price:           price.String(),
		Currency:        domain.NativeTokenAddress,
	}
	tx, err := im.list(c, seller, marketplace.ListingParams{
		AssetContract:        im.collection.Address(),
		TokenId:              domain.TokenId(tokenId.String()),
		StartTime:            timeNow().Unix(),
		SecondsUntilEndTime:  int64(im.listingDuration / time.Second),
		Quantity:             1,
		Currency:             domain.NativeTokenAddress,
		ReservePricePerToken: big.NewInt(0),
		BuyoutPricePerToken:  price,
		Type:                 listingType,
	})
	a.TxHash = tx
	if err != nil {
		c.WithFields(log.Fields{"err": err, "txHash": tx}).Error("list failed")
		a.Status = activity.StatusFailed
		a.Error = err.Error()
		im.activity.Record(c, a)
		im.notification.Error(c, audience, failed)
		return nil, &domain.ActionError{Action: domain.ActionList, Message: failed, Err: failure(err)}
	}

	a.Status = activity.StatusSuccess
	im.activity.Record(c, a)
	if im.feedCache != nil {
		if err := im.feedCache.Del(c, listing.FeedKey(im.chainId)); err != nil {
			c.WithField("err", err).Warn("feedCache.Del failed")
		}
	}
	im.notification.Success(c, audience, success)
	return &domain.ActionOutcome{
		Action:   domain.ActionList,
		TxHash:   tx,
		Redirect: domain.RedirectHome,
		Message:  success,
	}, nil
}

// list approves the marketplace for the collection once, then lists
func (im *impl) list(c bCtx.Ctx, seller domain.Address, p marketplace.ListingParams) (domain.TxHash, error) {
	signer, err := im.wallet.Signer(c, seller)
	if err != nil {
		return "", err
	}

	operator := im.marketplace.Address()
	approved, err := im.collection.IsApprovedForAll(c, seller, operator)
	if err != nil {
		return "", err
	}
	if !approved {
		if _, err := im.collection.SetApprovalForAll(c, signer, operator, true); err != nil {
			return "", err
		}
	}
	return im.marketplace.CreateListing(c, signer, p)
}

// failure keeps validation and wallet errors as they are, anything else is
// a failed transaction
func failure(err error) error {
	for _, e := range []error{domain.ErrBadParamInput, domain.ErrUnsupportedSchema, domain.ErrWalletNotConnected} {
		if errors.Is(err, e) {
			return err
		}
	}
	return xerrors.Errorf("%v: %w", err, domain.ErrTransactionFailed)
}

func mintKey(minter domain.Address) string {
	return "mint:" + minter.ToLowerStr()
}

func listKey(seller domain.Address) string {
	return "list:" + seller.ToLowerStr()
}
