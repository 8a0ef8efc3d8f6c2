package repository

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/activity"
	"github.com/x-xyz/storefront/service/query"
	"github.com/x-xyz/storefront/service/query/mocks"
)

type activitySuite struct {
	suite.Suite

	q    *mocks.Mongo
	repo activity.Repo
}

func TestActivitySuite(t *testing.T) {
	suite.Run(t, new(activitySuite))
}

func (s *activitySuite) SetupTest() {
	s.q = &mocks.Mongo{}
	s.repo = New(s.q)
}

func (s *activitySuite) TearDownTest() {
	s.q.AssertExpectations(s.T())
}

func (s *activitySuite) TestMakeFindQuery() {
	cases := []struct {
		desc string
		opts []activity.FindOptions
		want bson.M
	}{
		{
			desc: "empty",
			want: bson.M{},
		},
		{
			desc: "account matches both sides",
			opts: []activity.FindOptions{activity.WithAccount("0xABC")},
			want: bson.M{"$or": bson.A{
				bson.M{"account": domain.Address("0xabc")},
				bson.M{"counterparty": domain.Address("0xabc")},
			}},
		},
		{
			desc: "single action",
			opts: []activity.FindOptions{activity.WithChainId(5), activity.WithActions(domain.ActionBuy)},
			want: bson.M{"chainId": domain.ChainId(5), "action": domain.ActionBuy},
		},
		{
			desc: "many actions",
			opts: []activity.FindOptions{activity.WithActions(domain.ActionBuy, domain.ActionBid)},
			want: bson.M{"action": bson.M{"$in": []domain.Action{domain.ActionBuy, domain.ActionBid}}},
		},
	}

	for _, c := range cases {
		got, err := makeFindQuery(c.opts...)
		s.Require().NoError(err, c.desc)
		s.Equal(c.want, got, c.desc)
	}
}

func (s *activitySuite) TestFindActivities() {
	c := ctx.Background()
	s.q.On("Search", mock.Anything, domain.TableActivityHistories, 10, 5, "-time", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			res := args.Get(6).(*[]activity.Activity)
			*res = append(*res, activity.Activity{Account: "0xabc", Action: domain.ActionMint})
		}).Return(nil).Once()

	res, err := s.repo.FindActivities(c, activity.WithAccount("0xabc"), activity.WithPagination(10, 5))
	s.Require().NoError(err)
	s.Len(res, 1)

	s.q.On("Search", mock.Anything, domain.TableActivityHistories, 0, 0, "-time", mock.Anything, mock.Anything).
		Return(query.ErrNotFound).Once()
	_, err = s.repo.FindActivities(c)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *activitySuite) TestEnsureIndexes() {
	s.q.On("EnsureIndexes", mock.Anything, domain.TableActivityHistories, indexes).Return(nil).Once()
	s.NoError(EnsureIndexes(ctx.Background(), s.q))
}
