package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	dmocks "github.com/x-xyz/storefront/domain/mocks"
	"github.com/x-xyz/storefront/domain/wallet"
	"github.com/x-xyz/storefront/domain/wallet/mocks"
)

const (
	account = domain.Address("0x5324a98b506f3265c500f978f3943a1fc6a55fa4")
	target  = domain.ChainId(5)
)

type walletSuite struct {
	suite.Suite

	ctx      ctx.Ctx
	sessions *mocks.SessionRepo
	keystore *mocks.Keystore
	auth     *dmocks.AuthUsecase
	im       wallet.Usecase
}

func TestWalletSuite(t *testing.T) {
	suite.Run(t, new(walletSuite))
}

func (s *walletSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.sessions = &mocks.SessionRepo{}
	s.keystore = &mocks.Keystore{}
	s.auth = &dmocks.AuthUsecase{}
	s.im = New(Config{TargetChainId: target, DefaultChainId: 1, SessionTtl: time.Hour}, s.sessions, s.keystore, s.auth)
}

func (s *walletSuite) TearDownTest() {
	s.sessions.AssertExpectations(s.T())
	s.keystore.AssertExpectations(s.T())
	s.auth.AssertExpectations(s.T())
}

func (s *walletSuite) TestConnect() {
	s.keystore.On("Has", account).Return(true).Once()
	s.keystore.On("Unlock", mock.Anything, account, "pw").Return(nil).Once()
	s.sessions.On("Save", mock.Anything, mock.MatchedBy(func(ss *wallet.Session) bool {
		return ss.Address == account && ss.ChainId == 1
	}), time.Hour).Return(nil).Once()
	s.auth.On("SignToken", mock.Anything, account).Return("token", nil).Once()

	token, session, err := s.im.Connect(s.ctx, domain.Address("0x5324a98b506F3265c500f978F3943A1fC6A55fa4"), "pw")
	s.Require().NoError(err)
	s.Equal("token", token)
	s.Equal(account, session.Address)
}

func (s *walletSuite) TestConnectWrongPassphrase() {
	s.keystore.On("Has", account).Return(true).Once()
	s.keystore.On("Unlock", mock.Anything, account, "bad").Return(errors.New("could not decrypt key with given password")).Once()

	_, _, err := s.im.Connect(s.ctx, account, "bad")
	s.ErrorIs(err, domain.ErrUnauthorized)
}

func (s *walletSuite) TestConnectUnknownAccount() {
	s.keystore.On("Has", account).Return(false).Once()

	_, _, err := s.im.Connect(s.ctx, account, "pw")
	s.ErrorIs(err, domain.ErrUnauthorized)
}

func (s *walletSuite) TestDisconnect() {
	s.sessions.On("Delete", mock.Anything, account).Return(nil).Once()
	s.keystore.On("Lock", mock.Anything, account).Return(nil).Once()

	s.NoError(s.im.Disconnect(s.ctx, account))
}

func (s *walletSuite) TestGet() {
	view, err := s.im.Get(s.ctx, "")
	s.Require().NoError(err)
	s.False(view.Connected)
	s.Equal(target, view.TargetChainId)

	s.sessions.On("Get", mock.Anything, account).Return(nil, domain.ErrNotFound).Once()
	view, err = s.im.Get(s.ctx, account)
	s.Require().NoError(err)
	s.False(view.Connected)

	s.sessions.On("Get", mock.Anything, account).Return(&wallet.Session{Address: account, ChainId: 1}, nil).Once()
	view, err = s.im.Get(s.ctx, account)
	s.Require().NoError(err)
	s.True(view.Connected)
	s.True(view.NetworkMismatch)
}

func (s *walletSuite) TestEnsureNetworkSwitches() {
	s.sessions.On("Get", mock.Anything, account).Return(&wallet.Session{Address: account, ChainId: 1}, nil).Twice()
	s.sessions.On("Save", mock.Anything, mock.MatchedBy(func(ss *wallet.Session) bool {
		return ss.ChainId == target
	}), time.Hour).Return(nil).Once()

	err := s.im.EnsureNetwork(s.ctx, account)
	s.ErrorIs(err, domain.ErrNetworkMismatch)
}

func (s *walletSuite) TestEnsureNetworkOnTarget() {
	s.sessions.On("Get", mock.Anything, account).Return(&wallet.Session{Address: account, ChainId: target}, nil).Once()

	s.NoError(s.im.EnsureNetwork(s.ctx, account))
}

func (s *walletSuite) TestEnsureNetworkNotConnected() {
	s.ErrorIs(s.im.EnsureNetwork(s.ctx, ""), domain.ErrWalletNotConnected)

	s.sessions.On("Get", mock.Anything, account).Return(nil, domain.ErrNotFound).Once()
	s.ErrorIs(s.im.EnsureNetwork(s.ctx, account), domain.ErrWalletNotConnected)
}

func (s *walletSuite) TestSigner() {
	signer := &dmocks.Signer{}
	s.sessions.On("Get", mock.Anything, account).Return(&wallet.Session{Address: account, ChainId: target}, nil).Once()
	s.keystore.On("Signer", account).Return(signer, nil).Once()

	got, err := s.im.Signer(s.ctx, account)
	s.Require().NoError(err)
	s.Equal(signer, got)
}
