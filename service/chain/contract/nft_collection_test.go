package contract

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	baseabi "github.com/x-xyz/storefront/base/abi"
	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	domainMocks "github.com/x-xyz/storefront/domain/mocks"
	chainMocks "github.com/x-xyz/storefront/service/chain/mocks"
)

var errTest = errors.New("test error")

func TestNftCollection_MintTo(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	chainService := &chainMocks.Client{}
	signer := &domainMocks.Signer{}
	c := NewNftCollection(chainService, testChainId, toAddress(testCollection))

	event := baseabi.TokenERC721ABI.Events["TokensMinted"]
	data, err := event.Inputs.NonIndexed().Pack("ipfs://QmMeta/0")
	req.NoError(err)

	signer.On("TransactOpts", mock.Anything, testChainId).Return(&bind.TransactOpts{From: testSeller}, nil)
	chainService.On("Transact", mock.Anything, testChainId, mock.Anything, testCollection, mock.Anything, "mintTo", testSeller, "ipfs://QmMeta/0").
		Return(&types.Receipt{
			TxHash: common.HexToHash("0x05"),
			Status: types.ReceiptStatusSuccessful,
			Logs: []*types.Log{
				{Address: testMarketplace, Topics: []common.Hash{event.ID}},
				{
					Address: testCollection,
					Topics:  []common.Hash{event.ID, common.BytesToHash(testSeller.Bytes()), common.BigToHash(big.NewInt(11))},
					Data:    data,
				},
			},
		}, nil).Once()

	hash, tokenId, err := c.MintTo(ctx, signer, toAddress(testSeller), "ipfs://QmMeta/0")
	req.NoError(err)
	req.Equal(domain.TxHash(common.HexToHash("0x05").Hex()), hash)
	req.Equal(int64(11), tokenId.Int64())

	chainService.On("Transact", mock.Anything, testChainId, mock.Anything, testCollection, mock.Anything, "mintTo", testSeller, "ipfs://QmMeta/1").
		Return(&types.Receipt{TxHash: common.HexToHash("0x06"), Status: types.ReceiptStatusSuccessful}, nil).Once()
	_, _, err = c.MintTo(ctx, signer, toAddress(testSeller), "ipfs://QmMeta/1")
	req.ErrorIs(err, errNoMintedToken)

	chainService.AssertExpectations(t)
}

func TestNftCollection_Reads(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	chainService := &chainMocks.Client{}
	c := NewNftCollection(chainService, testChainId, toAddress(testCollection))

	chainService.On("Call", mock.Anything, testChainId, testCollection, (*big.Int)(nil), mock.Anything, "nextTokenIdToMint").
		Return([]interface{}{big.NewInt(4)}, nil)
	chainService.On("Call", mock.Anything, testChainId, testCollection, (*big.Int)(nil), mock.Anything, "ownerOf", big.NewInt(2)).
		Return([]interface{}{testSeller}, nil)
	chainService.On("Call", mock.Anything, testChainId, testCollection, (*big.Int)(nil), mock.Anything, "tokenURI", big.NewInt(2)).
		Return(nil, errTest)

	next, err := c.NextTokenIdToMint(ctx)
	req.NoError(err)
	req.Equal(int64(4), next.Int64())

	owner, err := c.OwnerOf(ctx, big.NewInt(2))
	req.NoError(err)
	req.True(owner.Equals(domain.Address(testSeller.Hex())))

	_, err = c.TokenURI(ctx, big.NewInt(2))
	req.ErrorIs(err, errTest)
}
