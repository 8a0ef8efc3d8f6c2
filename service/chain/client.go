package chain

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	bEth "github.com/x-xyz/storefront/base/ethereum"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/domain"
)

var (
	ErrUnsupportedChain = errors.New("unsupported chain")
	// ErrReverted is returned when a mined transaction has a failed status
	ErrReverted = errors.New("transaction reverted")
)

const defaultMaxInflight = 16

type ClientCfg struct {
	RpcUrls        map[domain.ChainId]string
	ArchiveRpcUrls map[domain.ChainId]string
	// MaxInflight bounds concurrent rpc calls per node
	MaxInflight int
}

type Client interface {
	Call(bCtx.Ctx, domain.ChainId, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	// Transact signs and sends method with opts, then waits for the receipt.
	Transact(bCtx.Ctx, domain.ChainId, *bind.TransactOpts, common.Address, abi.ABI, string, ...interface{}) (*types.Receipt, error)
	FilterLogs(bCtx.Ctx, domain.ChainId, ethereum.FilterQuery) ([]types.Log, error)
	BlockNumber(bCtx.Ctx, domain.ChainId) (uint64, error)
}

type clientImpl struct {
	clients        map[domain.ChainId]*bEth.ThrottledClient
	archiveClients map[domain.ChainId]*bEth.ThrottledClient
	met            metrics.Service
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	maxInflight := cfg.MaxInflight
	if maxInflight <= 0 {
		maxInflight = defaultMaxInflight
	}

	dial := func(urls map[domain.ChainId]string) (map[domain.ChainId]*bEth.ThrottledClient, error) {
		var anyerr error
		clients := make(map[domain.ChainId]*bEth.ThrottledClient)
		for chainId, url := range urls {
			client, err := ethclient.DialContext(ctx, url)
			if err != nil {
				anyerr = err
				ctx.WithFields(log.Fields{
					"err":     err,
					"chainId": chainId,
				}).Warn("failed to dial rpc")
				// soft warning, still let the server start
				continue
			}
			clients[chainId] = bEth.NewThrottledClient(client, maxInflight)
		}
		return clients, anyerr
	}

	clients, err := dial(cfg.RpcUrls)
	archiveClients, archiveErr := dial(cfg.ArchiveRpcUrls)
	if err == nil {
		err = archiveErr
	}
	return &clientImpl{
		clients:        clients,
		archiveClients: archiveClients,
		met:            metrics.New("chain"),
	}, err
}

func (c *clientImpl) client(chainId domain.ChainId) (*bEth.ThrottledClient, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	return client, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	defer c.met.BumpTime("call.latency", "method", method).End()

	var (
		client *bEth.ThrottledClient
		ok     bool
	)
	if blk == nil {
		client, ok = c.clients[chainId]
	} else {
		client, ok = c.archiveClients[chainId]
	}
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "method": method}).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "method": method}).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId domain.ChainId, opts *bind.TransactOpts, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*types.Receipt, error) {
	defer c.met.BumpTime("transact.latency", "method", method).End()

	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}

	ctx = bCtx.WithValues(ctx, map[string]interface{}{
		"method":   method,
		"contract": addr.Hex(),
		"from":     opts.From.Hex(),
	})

	if opts.Context == nil {
		opts.Context = ctx
	}

	contract := bind.NewBoundContract(addr, _abi, client, client, client)
	tx, err := contract.Transact(opts, method, params...)
	if err != nil {
		c.met.BumpSum("transact.err", 1, "method", method, "stage", "send")
		ctx.WithField("err", err).Error("contract.Transact failed")
		return nil, err
	}

	ctx = bCtx.WithValue(ctx, "txHash", tx.Hash().Hex())
	ctx.Info("transaction sent")

	receipt, err := bind.WaitMined(ctx, client, tx)
	if err != nil {
		c.met.BumpSum("transact.err", 1, "method", method, "stage", "wait")
		ctx.WithField("err", err).Error("bind.WaitMined failed")
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		c.met.BumpSum("transact.err", 1, "method", method, "stage", "revert")
		ctx.WithField("block", receipt.BlockNumber).Warn("transaction reverted")
		return receipt, xerrors.Errorf("%s %s: %w", method, tx.Hash().Hex(), ErrReverted)
	}
	return receipt, nil
}

func (c *clientImpl) FilterLogs(ctx bCtx.Ctx, chainId domain.ChainId, q ethereum.FilterQuery) ([]types.Log, error) {
	defer c.met.BumpTime("filterlogs.latency").End()

	client, err := c.client(chainId)
	if err != nil {
		return nil, err
	}
	logs, err := client.FilterLogs(ctx, q)
	if err != nil {
		ctx.WithField("err", err).Error("client.FilterLogs failed")
		return nil, err
	}
	return logs, nil
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx, chainId domain.ChainId) (uint64, error) {
	client, err := c.client(chainId)
	if err != nil {
		return 0, err
	}
	return client.BlockNumber(ctx)
}
