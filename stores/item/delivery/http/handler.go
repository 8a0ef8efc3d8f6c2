package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/domain/item"
	authMiddleware "github.com/x-xyz/storefront/stores/auth/delivery/http/middleware"
)

type handler struct {
	item item.Usecase
}

func New(e *echo.Echo, iu item.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{item: iu}

	e.GET("/items/owned", h.owned, authMiddleware.Auth())
	e.POST("/items", h.mint, authMiddleware.Auth())
	e.POST("/listings", h.list, authMiddleware.Auth())
}

func (h *handler) owned(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	nfts, err := h.item.Owned(ctx, authMiddleware.AddressOf(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nfts)
}

func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := item.MintParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	out, err := h.item.Mint(ctx, authMiddleware.AddressOf(c), p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, out)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := item.ListParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	out, err := h.item.List(ctx, authMiddleware.AddressOf(c), p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, out)
}
