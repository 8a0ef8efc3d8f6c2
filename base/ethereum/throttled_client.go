package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ThrottledClient bounds the number of in-flight rpc calls to one node. It
// satisfies bind.ContractBackend and bind.DeployBackend through the embedded
// client, so transactions go through the same limit.
type ThrottledClient struct {
	*ethclient.Client
	tokens chan struct{}
}

func NewThrottledClient(client *ethclient.Client, n int) *ThrottledClient {
	if n <= 0 {
		n = 1
	}
	return &ThrottledClient{
		Client: client,
		tokens: make(chan struct{}, n),
	}
}

func (c *ThrottledClient) BlockNumber(ctx context.Context) (uint64, error) {
	if err := c.acquire(ctx); err != nil {
		return 0, err
	}
	defer c.release()
	return c.Client.BlockNumber(ctx)
}

func (c *ThrottledClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.release()
	return c.Client.HeaderByNumber(ctx, number)
}

func (c *ThrottledClient) FilterLogs(ctx context.Context, filter ethereum.FilterQuery) ([]types.Log, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.release()
	return c.Client.FilterLogs(ctx, filter)
}

func (c *ThrottledClient) CodeAt(ctx context.Context, address common.Address, number *big.Int) ([]byte, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.release()
	return c.Client.CodeAt(ctx, address, number)
}

func (c *ThrottledClient) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.release()
	return c.Client.CallContract(ctx, msg, number)
}

func (c *ThrottledClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.acquire(ctx); err != nil {
		return err
	}
	defer c.release()
	return c.Client.SendTransaction(ctx, tx)
}

func (c *ThrottledClient) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.release()
	return c.Client.TransactionReceipt(ctx, hash)
}

func (c *ThrottledClient) acquire(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case c.tokens <- struct{}{}:
		return nil
	}
}

func (c *ThrottledClient) release() {
	<-c.tokens
}
