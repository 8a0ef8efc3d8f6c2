package abi

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"
)

var errMalformedLog = xerrors.New("malformed log")

type NewOfferLog struct {
	ListingId        *big.Int       // indexed
	Offeror          common.Address // indexed
	ListingType      uint8          // indexed
	QuantityWanted   *big.Int
	TotalOfferAmount *big.Int
	Currency         common.Address
}

type TokensMintedLog struct {
	MintedTo      common.Address // indexed
	TokenIdMinted *big.Int       // indexed
	Uri           string
}

func ToNewOfferLog(log *types.Log) (*NewOfferLog, error) {
	if len(log.Topics) != 4 {
		return nil, errMalformedLog
	}
	var l NewOfferLog
	if err := MarketplaceABI.UnpackIntoInterface(&l, "NewOffer", log.Data); err != nil {
		return nil, err
	}
	l.ListingId = log.Topics[1].Big()
	l.Offeror = common.BytesToAddress(log.Topics[2].Bytes())
	l.ListingType = uint8(log.Topics[3].Big().Uint64())
	return &l, nil
}

func ToTokensMintedLog(log *types.Log) (*TokensMintedLog, error) {
	if len(log.Topics) != 3 {
		return nil, errMalformedLog
	}
	var l TokensMintedLog
	if err := TokenERC721ABI.UnpackIntoInterface(&l, "TokensMinted", log.Data); err != nil {
		return nil, err
	}
	l.MintedTo = common.BytesToAddress(log.Topics[1].Bytes())
	l.TokenIdMinted = log.Topics[2].Big()
	return &l, nil
}
