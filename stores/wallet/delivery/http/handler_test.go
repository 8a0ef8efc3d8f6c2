package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/storefront/base/ctx"
	bValidator "github.com/x-xyz/storefront/base/validator"
	"github.com/x-xyz/storefront/domain"
	domainMocks "github.com/x-xyz/storefront/domain/mocks"
	"github.com/x-xyz/storefront/domain/wallet"
	"github.com/x-xyz/storefront/domain/wallet/mocks"
	authMiddleware "github.com/x-xyz/storefront/stores/auth/delivery/http/middleware"
)

const account = domain.Address("0x5324a98b506f3265c500f978f3943a1fc6a55fa4")

type handlerSuite struct {
	suite.Suite

	e      *echo.Echo
	wallet *mocks.Usecase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	auth := &domainMocks.AuthUsecase{}
	auth.On("ParseToken", mock.Anything, "token").Return(account, nil)
	sessions := &mocks.SessionRepo{}
	sessions.On("Get", mock.Anything, account).Return(&wallet.Session{Address: account, ChainId: 1}, nil)

	s.wallet = &mocks.Usecase{}
	s.e = echo.New()
	s.e.Validator = bValidator.NewCustomValidator(validator.New())
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(s.e, s.wallet, authMiddleware.New(auth, sessions))
}

func (s *handlerSuite) TearDownTest() {
	s.wallet.AssertExpectations(s.T())
}

func (s *handlerSuite) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestConnect() {
	s.wallet.On("Connect", mock.Anything, account, "pw").Return("jwt", &wallet.Session{Address: account, ChainId: 5}, nil).Once()

	rec := s.do(http.MethodPost, "/wallet/connect", `{"address":"`+string(account)+`","passphrase":"pw"}`, false)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"token":"jwt"`)
}

func (s *handlerSuite) TestConnectInvalidAddress() {
	rec := s.do(http.MethodPost, "/wallet/connect", `{"address":"nope","passphrase":"pw"}`, false)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestGetAnonymous() {
	s.wallet.On("Get", mock.Anything, domain.Address("")).Return(&wallet.View{TargetChainId: 5}, nil).Once()

	rec := s.do(http.MethodGet, "/wallet", "", false)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"connected":false`)
}

func (s *handlerSuite) TestSwitchNetwork() {
	s.wallet.On("SwitchNetwork", mock.Anything, account, domain.ChainId(5)).Return(&wallet.Session{Address: account, ChainId: 5}, nil).Once()

	rec := s.do(http.MethodPost, "/wallet/switch-network", `{"chainId":5}`, true)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/wallet/switch-network", `{"chainId":5}`, false)
	s.NotEqual(http.StatusOK, rec.Code)
}

func (s *handlerSuite) TestDisconnect() {
	s.wallet.On("Disconnect", mock.Anything, account).Return(nil).Once()

	rec := s.do(http.MethodDelete, "/wallet", "", true)
	s.Equal(http.StatusOK, rec.Code)
}
