package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/activity"
	"github.com/x-xyz/storefront/service/query"
)

var indexes = []query.Index{
	{Keys: []string{"account", "-time"}},
	{Keys: []string{"chainId", "listingId"}},
	{Keys: []string{"txHash"}},
}

func makeFindQuery(optFns ...activity.FindOptions) (bson.M, error) {
	opts, err := activity.GetFindOptions(optFns...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}

	if opts.Account != nil {
		qry["$or"] = bson.A{
			bson.M{"account": *opts.Account},
			bson.M{"counterparty": *opts.Account},
		}
	}

	if opts.ChainId != nil {
		qry["chainId"] = *opts.ChainId
	}

	if len(opts.Actions) > 1 {
		qry["action"] = bson.M{"$in": opts.Actions}
	} else if len(opts.Actions) > 0 {
		qry["action"] = opts.Actions[0]
	}

	return qry, nil
}

type activityRepo struct {
	q query.Mongo
}

func New(q query.Mongo) activity.Repo {
	return &activityRepo{q: q}
}

// EnsureIndexes creates the indexes the account activity page relies on
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	if err := q.EnsureIndexes(c, domain.TableActivityHistories, indexes); err != nil {
		c.WithField("err", err).Error("q.EnsureIndexes failed")
		return err
	}
	return nil
}

func (r *activityRepo) Insert(c ctx.Ctx, a *activity.Activity) error {
	if err := r.q.Insert(c, domain.TableActivityHistories, a); err != nil {
		c.WithFields(log.Fields{
			"activity": a,
			"err":      err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *activityRepo) FindActivities(c ctx.Ctx, optFns ...activity.FindOptions) ([]activity.Activity, error) {
	opts, err := activity.GetFindOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("activity.GetFindOptions failed")
		return nil, err
	}

	qry, err := makeFindQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeFindQuery failed")
		return nil, err
	}

	offset := 0
	limit := 0

	if opts.Offset != nil {
		offset = *opts.Offset
	}

	if opts.Limit != nil {
		limit = *opts.Limit
	}

	res := []activity.Activity{}

	err = r.q.Search(c, domain.TableActivityHistories, offset, limit, "-time", qry, &res)

	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (r *activityRepo) CountActivities(c ctx.Ctx, optFns ...activity.FindOptions) (int, error) {
	qry, err := makeFindQuery(optFns...)
	if err != nil {
		c.WithField("err", err).Error("makeFindQuery failed")
		return 0, err
	}

	cnt, err := r.q.Count(c, domain.TableActivityHistories, qry)
	if err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Count failed")
		return 0, err
	}

	return cnt, nil
}
