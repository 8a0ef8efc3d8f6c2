package activity

import (
	"time"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Activity is one transaction submitted through the storefront
type Activity struct {
	ChainId         domain.ChainId `json:"chainId" bson:"chainId"`
	Account         domain.Address `json:"account" bson:"account"`
	Action          domain.Action  `json:"action" bson:"action"`
	ListingId       string         `json:"listingId,omitempty" bson:"listingId,omitempty"`
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId,omitempty" bson:"tokenId,omitempty"`
	Counterparty    domain.Address `json:"counterparty,omitempty" bson:"counterparty,omitempty"`
	Price           string         `json:"price,omitempty" bson:"price,omitempty"`
	Currency        domain.Address `json:"currency,omitempty" bson:"currency,omitempty"`
	TxHash          domain.TxHash  `json:"txHash,omitempty" bson:"txHash,omitempty"`
	Status          Status         `json:"status" bson:"status"`
	Error           string         `json:"error,omitempty" bson:"error,omitempty"`
	Time            time.Time      `json:"time" bson:"time"`
}

type findOptions struct {
	Offset  *int
	Limit   *int
	Account *domain.Address
	ChainId *domain.ChainId
	Actions []domain.Action
}

type FindOptions func(*findOptions) error

func GetFindOptions(opts ...FindOptions) (*findOptions, error) {
	res := &findOptions{}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func WithPagination(offset, limit int) FindOptions {
	return func(opts *findOptions) error {
		opts.Offset = &offset
		opts.Limit = &limit
		return nil
	}
}

func WithAccount(account domain.Address) FindOptions {
	return func(opts *findOptions) error {
		a := account.ToLower()
		opts.Account = &a
		return nil
	}
}

func WithChainId(chainId domain.ChainId) FindOptions {
	return func(opts *findOptions) error {
		opts.ChainId = &chainId
		return nil
	}
}

func WithActions(actions ...domain.Action) FindOptions {
	return func(opts *findOptions) error {
		opts.Actions = actions
		return nil
	}
}

type Repo interface {
	Insert(ctx.Ctx, *Activity) error
	FindActivities(c ctx.Ctx, opts ...FindOptions) ([]Activity, error)
	CountActivities(c ctx.Ctx, opts ...FindOptions) (int, error)
}

type Usecase interface {
	// Record stores a in the background, failures are only logged
	Record(c ctx.Ctx, a *Activity)
	FindByAccount(c ctx.Ctx, account domain.Address, offset, limit int) ([]Activity, int, error)
}
