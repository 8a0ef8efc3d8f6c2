package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/storefront/base/ctx"
)

type middlewareSuite struct {
	suite.Suite

	e *echo.Echo
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(middlewareSuite))
}

func (s *middlewareSuite) SetupTest() {
	m := InitMiddleware([]string{"https://store.example"})
	s.e = echo.New()
	s.e.Use(m.CORS, m.AddContext(), m.ResponseLogger())
	s.e.GET("/ping", func(c echo.Context) error {
		_, ok := c.Get("ctx").(ctx.Ctx)
		s.True(ok)
		return c.String(http.StatusOK, "pong")
	})
	s.e.GET("/accounts/:address", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, IsValidAddress("address"))
}

func (s *middlewareSuite) TestRequestID() {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec = httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	s.Equal("req-1", rec.Header().Get(echo.HeaderXRequestID))
}

func (s *middlewareSuite) TestCORS() {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "https://store.example")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	s.Equal("https://store.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *middlewareSuite) TestIsValidAddress() {
	req := httptest.NewRequest(http.MethodGet, "/accounts/nope", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/accounts/0x5324a98b506F3265c500f978F3943A1fC6A55fa4", nil)
	rec = httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)
}
