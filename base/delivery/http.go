package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// StatusOf maps a domain error to the http status it is reported with.
// Errors unknown to the domain keep fallback.
func StatusOf(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, query.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrInvalidNumberFormat),
		errors.Is(err, domain.ErrInvalidJsonFormat),
		errors.Is(err, domain.ErrUnsupportedSchema):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrWalletNotConnected), errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNetworkMismatch):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSubmitting):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrTransactionFailed):
		return http.StatusBadGateway
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
