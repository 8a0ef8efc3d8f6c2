package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/domain"
)

type httpSuite struct {
	suite.Suite
}

func TestHttpSuite(t *testing.T) {
	suite.Run(t, new(httpSuite))
}

func (s *httpSuite) TestStatusOf() {
	tests := []struct {
		desc string
		err  error
		exp  int
	}{
		{desc: "not found", err: xerrors.Errorf("listing 42: %w", domain.ErrNotFound), exp: http.StatusNotFound},
		{desc: "validation", err: domain.ErrBadParamInput, exp: http.StatusBadRequest},
		{desc: "wallet", err: domain.ErrWalletNotConnected, exp: http.StatusUnauthorized},
		{desc: "network mismatch", err: domain.ErrNetworkMismatch, exp: http.StatusConflict},
		{desc: "submitting", err: domain.ErrSubmitting, exp: http.StatusTooManyRequests},
		{desc: "transaction", err: xerrors.Errorf("buy: %w", domain.ErrTransactionFailed), exp: http.StatusBadGateway},
		{desc: "unknown", err: errors.New("boom"), exp: http.StatusInternalServerError},
	}

	for _, t := range tests {
		s.Equal(t.exp, StatusOf(t.err, http.StatusInternalServerError), t.desc)
	}
}

func (s *httpSuite) TestMakeJsonResp() {
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(MakeJsonResp(c, http.StatusInternalServerError, domain.ErrSubmitting))
	s.Equal(http.StatusTooManyRequests, rec.Code)

	var resp JsonResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(JsonResponseStatusFail, resp.Status)
	s.Equal(domain.ErrSubmitting.Error(), resp.Data)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(MakeJsonResp(c, http.StatusOK, "ok"))
	s.Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(JsonResponseStatusSuccess, resp.Status)
}
