package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain/notification"
)

type notificationSuite struct {
	suite.Suite

	ctx    ctx.Ctx
	im     notification.Usecase
	before goleak.Option
}

func TestNotificationSuite(t *testing.T) {
	suite.Run(t, new(notificationSuite))
}

func (s *notificationSuite) SetupTest() {
	s.before = goleak.IgnoreCurrent()
	s.ctx = ctx.Background()
	s.im = New(Config{Duration: 50 * time.Millisecond})
}

func (s *notificationSuite) TearDownTest() {
	goleak.VerifyNone(s.T(), s.before)
}

func (s *notificationSuite) TestLoadingDismiss() {
	dismiss := s.im.Loading(s.ctx, notification.AudiencePublic, notification.LoadingMessage)

	list := s.im.List(s.ctx, notification.AudiencePublic)
	s.Require().Len(list, 1)
	s.Equal(notification.KindLoading, list[0].Kind)
	s.Nil(list[0].ExpiresAt)

	dismiss()
	dismiss()
	s.Empty(s.im.List(s.ctx, notification.AudiencePublic))
}

func (s *notificationSuite) TestExpiry() {
	s.im.Success(s.ctx, "0xabc", "NFT bought successfully!")
	s.im.Error(s.ctx, "0xdef", "NFT could not be bought!")

	list := s.im.List(s.ctx, "0xabc")
	s.Require().Len(list, 1)
	s.Equal(notification.KindSuccess, list[0].Kind)
	s.NotNil(list[0].ExpiresAt)
	s.Len(s.im.List(s.ctx, "0xdef"), 1)

	s.Eventually(func() bool {
		return len(s.im.List(s.ctx, "0xabc")) == 0 && len(s.im.List(s.ctx, "0xdef")) == 0
	}, time.Second, 10*time.Millisecond)
}

func (s *notificationSuite) TestSubscribe() {
	events, cancel := s.im.Subscribe("0xabc")

	received := make(chan []notification.Event)
	go func() {
		var got []notification.Event
		for e := range events {
			got = append(got, e)
		}
		received <- got
	}()

	s.im.Success(s.ctx, "0xdef", "other audience")
	dismiss := s.im.Loading(s.ctx, "0xabc", notification.LoadingMessage)
	dismiss()
	cancel()
	cancel()

	got := <-received
	s.Require().Len(got, 2)
	s.Equal(notification.EventAdd, got[0].Type)
	s.Equal(notification.EventRemove, got[1].Type)
	s.Equal(got[0].Toast.Id, got[1].Toast.Id)

	// the expiry timer of the other audience must have fired before leak check
	s.Eventually(func() bool {
		return len(s.im.List(s.ctx, "0xdef")) == 0
	}, time.Second, 10*time.Millisecond)
}
