package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/domain/layout"
	authMiddleware "github.com/x-xyz/storefront/stores/auth/delivery/http/middleware"
)

type handler struct {
	layout layout.Usecase
}

func New(e *echo.Echo, lu layout.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{layout: lu}

	e.GET("/header", h.header, authMiddleware.OptionalAuth())
}

func (h *handler) header(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.layout.Header(ctx, authMiddleware.AddressOf(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
