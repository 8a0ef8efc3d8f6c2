package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/storefront/base/abi"
	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/marketplace"
	"github.com/x-xyz/storefront/service/chain"
)

type MarketplaceCfg struct {
	ChainId domain.ChainId
	Address domain.Address
	// FromBlock is where offer event scans start, usually the deploy block
	FromBlock uint64
}

type Marketplace struct {
	chainService chain.Client
	abi          ethabi.ABI
	chainId      domain.ChainId
	address      common.Address
	fromBlock    uint64
}

func NewMarketplace(chainService chain.Client, cfg MarketplaceCfg) marketplace.Contract {
	return &Marketplace{
		chainService: chainService,
		abi:          baseabi.MarketplaceABI,
		chainId:      cfg.ChainId,
		address:      common.HexToAddress(string(cfg.Address)),
		fromBlock:    cfg.FromBlock,
	}
}

// listingParams mirrors the createListing tuple, field names follow the abi
type listingParams struct {
	AssetContract        common.Address
	TokenId              *big.Int
	StartTime            *big.Int
	SecondsUntilEndTime  *big.Int
	QuantityToList       *big.Int
	CurrencyToAccept     common.Address
	ReservePricePerToken *big.Int
	BuyoutPricePerToken  *big.Int
	ListingType          uint8
}

func (m *Marketplace) Address() domain.Address {
	return toAddress(m.address)
}

func (m *Marketplace) TotalListings(ctx bCtx.Ctx) (int64, error) {
	unpacked, err := m.chainService.Call(ctx, m.chainId, m.address, nil, m.abi, "totalListings")
	if err != nil {
		return 0, err
	}
	return unpacked[0].(*big.Int).Int64(), nil
}

func (m *Marketplace) GetListing(ctx bCtx.Ctx, id *big.Int) (*marketplace.Listing, error) {
	unpacked, err := m.chainService.Call(ctx, m.chainId, m.address, nil, m.abi, "listings", id)
	if err != nil {
		return nil, err
	}
	if len(unpacked) != 12 {
		return nil, xerrors.Errorf("listings returned %d values", len(unpacked))
	}
	assetContract := unpacked[2].(common.Address)
	if assetContract == (common.Address{}) {
		return nil, xerrors.Errorf("listing %s: %w", id, domain.ErrNotFound)
	}
	return &marketplace.Listing{
		Id:            unpacked[0].(*big.Int).String(),
		Seller:        toAddress(unpacked[1].(common.Address)),
		AssetContract: toAddress(assetContract),
		TokenId:       domain.TokenId(unpacked[3].(*big.Int).String()),
		StartTime:     unpacked[4].(*big.Int).Int64(),
		EndTime:       unpacked[5].(*big.Int).Int64(),
		Quantity:      unpacked[6].(*big.Int).String(),
		Currency:      toAddress(unpacked[7].(common.Address)),
		ReservePrice:  unpacked[8].(*big.Int).String(),
		BuyoutPrice:   unpacked[9].(*big.Int).String(),
		Type:          marketplace.ListingType(unpacked[11].(uint8)),
	}, nil
}

func (m *Marketplace) WinningBid(ctx bCtx.Ctx, id *big.Int) (*marketplace.Offer, error) {
	unpacked, err := m.chainService.Call(ctx, m.chainId, m.address, nil, m.abi, "winningBid", id)
	if err != nil {
		return nil, err
	}
	return toOffer(unpacked), nil
}

func (m *Marketplace) BidBufferBps(ctx bCtx.Ctx) (uint64, error) {
	unpacked, err := m.chainService.Call(ctx, m.chainId, m.address, nil, m.abi, "bidBufferBps")
	if err != nil {
		return 0, err
	}
	return unpacked[0].(uint64), nil
}

func (m *Marketplace) GetOffer(ctx bCtx.Ctx, id *big.Int, offeror domain.Address) (*marketplace.Offer, error) {
	unpacked, err := m.chainService.Call(ctx, m.chainId, m.address, nil, m.abi, "offers", id, common.HexToAddress(string(offeror)))
	if err != nil {
		return nil, err
	}
	offer := toOffer(unpacked)
	if offer == nil {
		return nil, xerrors.Errorf("offer of %s on %s: %w", offeror, id, domain.ErrNotFound)
	}
	return offer, nil
}

func (m *Marketplace) OfferEvents(ctx bCtx.Ctx, id *big.Int) ([]marketplace.Offer, error) {
	q := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(m.fromBlock),
		Addresses: []common.Address{m.address},
		Topics: [][]common.Hash{
			{m.abi.Events["NewOffer"].ID},
			{common.BigToHash(id)},
		},
	}
	logs, err := m.chainService.FilterLogs(ctx, m.chainId, q)
	if err != nil {
		return nil, err
	}

	offers := []marketplace.Offer{}
	for i := range logs {
		l, err := baseabi.ToNewOfferLog(&logs[i])
		if err != nil {
			ctx.WithFields(log.Fields{
				"txHash": logs[i].TxHash.Hex(),
				"err":    err,
			}).Warn("baseabi.ToNewOfferLog failed")
			continue
		}
		offer := marketplace.Offer{
			ListingId:        l.ListingId.String(),
			Offeror:          toAddress(l.Offeror),
			QuantityWanted:   l.QuantityWanted.String(),
			TotalOfferAmount: l.TotalOfferAmount.String(),
			PricePerToken:    l.TotalOfferAmount.String(),
			Currency:         toAddress(l.Currency),
		}
		if l.QuantityWanted.Sign() > 0 {
			offer.PricePerToken = new(big.Int).Div(l.TotalOfferAmount, l.QuantityWanted).String()
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

func (m *Marketplace) Buy(ctx bCtx.Ctx, signer domain.Signer, p marketplace.BuyParams) (domain.TxHash, error) {
	var value *big.Int
	if p.Currency.IsNative() {
		value = p.TotalPrice
	}
	return m.transact(ctx, signer, value, "buy",
		p.ListingId,
		common.HexToAddress(string(p.BuyFor)),
		p.Quantity,
		common.HexToAddress(string(p.Currency)),
		p.TotalPrice,
	)
}

func (m *Marketplace) MakeOffer(ctx bCtx.Ctx, signer domain.Signer, p marketplace.OfferParams) (domain.TxHash, error) {
	var value *big.Int
	if p.Currency.IsNative() {
		value = new(big.Int).Mul(p.PricePerToken, p.Quantity)
	}
	expiration := p.ExpirationTimestamp
	if expiration == nil {
		expiration = big.NewInt(0)
	}
	return m.transact(ctx, signer, value, "offer",
		p.ListingId,
		p.Quantity,
		common.HexToAddress(string(p.Currency)),
		p.PricePerToken,
		expiration,
	)
}

func (m *Marketplace) AcceptOffer(ctx bCtx.Ctx, signer domain.Signer, p marketplace.AcceptOfferParams) (domain.TxHash, error) {
	return m.transact(ctx, signer, nil, "acceptOffer",
		p.ListingId,
		common.HexToAddress(string(p.Offeror)),
		common.HexToAddress(string(p.Currency)),
		p.PricePerToken,
	)
}

func (m *Marketplace) CreateListing(ctx bCtx.Ctx, signer domain.Signer, p marketplace.ListingParams) (domain.TxHash, error) {
	tokenId, err := p.TokenId.ToBig()
	if err != nil {
		return "", err
	}
	reserve := p.ReservePricePerToken
	if reserve == nil {
		reserve = big.NewInt(0)
	}
	params := listingParams{
		AssetContract:        common.HexToAddress(string(p.AssetContract)),
		TokenId:              tokenId,
		StartTime:            big.NewInt(p.StartTime),
		SecondsUntilEndTime:  big.NewInt(p.SecondsUntilEndTime),
		QuantityToList:       big.NewInt(p.Quantity),
		CurrencyToAccept:     common.HexToAddress(string(p.Currency)),
		ReservePricePerToken: reserve,
		BuyoutPricePerToken:  p.BuyoutPricePerToken,
		ListingType:          uint8(p.Type),
	}
	return m.transact(ctx, signer, nil, "createListing", params)
}

func (m *Marketplace) transact(ctx bCtx.Ctx, signer domain.Signer, value *big.Int, method string, params ...interface{}) (domain.TxHash, error) {
	return transact(ctx, m.chainService, m.chainId, signer, value, m.address, m.abi, method, params...)
}

// toOffer converts an offers or winningBid tuple, nil when nobody offered
func toOffer(unpacked []interface{}) *marketplace.Offer {
	if len(unpacked) != 6 {
		return nil
	}
	offeror := unpacked[1].(common.Address)
	if offeror == (common.Address{}) {
		return nil
	}
	quantity := unpacked[2].(*big.Int)
	price := unpacked[4].(*big.Int)
	return &marketplace.Offer{
		ListingId:           unpacked[0].(*big.Int).String(),
		Offeror:             toAddress(offeror),
		QuantityWanted:      quantity.String(),
		Currency:            toAddress(unpacked[3].(common.Address)),
		PricePerToken:       price.String(),
		TotalOfferAmount:    new(big.Int).Mul(price, quantity).String(),
		ExpirationTimestamp: unpacked[5].(*big.Int).String(),
	}
}
