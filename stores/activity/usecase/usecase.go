package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/goroutine"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/activity"
)

const recordTimeout = 5 * time.Second

type impl struct {
	chainId domain.ChainId
	repo    activity.Repo
	wg      sync.WaitGroup
}

func New(chainId domain.ChainId, repo activity.Repo) activity.Usecase {
	return &impl{
		chainId: chainId,
		repo:    repo,
	}
}

func (im *impl) Record(c ctx.Ctx, a *activity.Activity) {
	if a.ChainId == 0 {
		a.ChainId = im.chainId
	}
	if a.Time.IsZero() {
		a.Time = time.Now()
	}
	a.Account = a.Account.ToLower()
	a.Counterparty = a.Counterparty.ToLower()
	a.ContractAddress = a.ContractAddress.ToLower()

	// the request may be gone before mongo answers
	bg, cancel := ctx.WithTimeout(ctx.Detach(c), recordTimeout)
	im.wg.Add(1)
	goroutine.RecoverableGo(func() {
		defer cancel()
		if err := im.repo.Insert(bg, a); err != nil {
			bg.WithField("err", err).WithField("txHash", a.TxHash).Warn("activity not recorded")
		}
	}, goroutine.WithLogger(c.Logger), goroutine.WithAfterEnded(im.wg.Done))
}

func (im *impl) FindByAccount(c ctx.Ctx, account domain.Address, offset, limit int) ([]activity.Activity, int, error) {
	opts := []activity.FindOptions{
		activity.WithAccount(account),
		activity.WithChainId(im.chainId),
	}

	cnt, err := im.repo.CountActivities(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.CountActivities failed")
		return nil, 0, err
	}

	res, err := im.repo.FindActivities(c, append(opts, activity.WithPagination(offset, limit))...)
	if errors.Is(err, domain.ErrNotFound) {
		return []activity.Activity{}, cnt, nil
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindActivities failed")
		return nil, 0, err
	}
	return res, cnt, nil
}
