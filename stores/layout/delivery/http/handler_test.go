package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/layout"
	"github.com/x-xyz/storefront/domain/layout/mocks"
	domainMocks "github.com/x-xyz/storefront/domain/mocks"
	"github.com/x-xyz/storefront/domain/wallet"
	walletMocks "github.com/x-xyz/storefront/domain/wallet/mocks"
	authMiddleware "github.com/x-xyz/storefront/stores/auth/delivery/http/middleware"
)

const account = domain.Address("0x5324a98b506f3265c500f978f3943a1fc6a55fa4")

type handlerSuite struct {
	suite.Suite

	e      *echo.Echo
	layout *mocks.Usecase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	auth := &domainMocks.AuthUsecase{}
	auth.On("ParseToken", mock.Anything, "token").Return(account, nil)
	sessions := &walletMocks.SessionRepo{}
	sessions.On("Get", mock.Anything, account).Return(&wallet.Session{Address: account, ChainId: 5}, nil)

	s.layout = &mocks.Usecase{}
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(s.e, s.layout, authMiddleware.New(auth, sessions))
}

func (s *handlerSuite) TearDownTest() {
	s.layout.AssertExpectations(s.T())
}

func (s *handlerSuite) TestAnonymous() {
	s.layout.On("Header", mock.Anything, domain.Address("")).Return(&layout.Header{WalletLabel: "Connect your wallet"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/header", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Connect your wallet")
}

func (s *handlerSuite) TestConnected() {
	s.layout.On("Header", mock.Anything, account).Return(&layout.Header{Connected: true, WalletLabel: "Hi 0x532...5fa4"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/header", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Hi 0x532...5fa4")
}
