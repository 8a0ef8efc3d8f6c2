package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/wallet"
	authMiddleware "github.com/x-xyz/storefront/stores/auth/delivery/http/middleware"
)

type handler struct {
	wallet wallet.Usecase
}

func New(e *echo.Echo, wu wallet.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{wallet: wu}

	g := e.Group("/wallet")
	g.POST("/connect", h.connect)
	g.GET("", h.get, authMiddleware.OptionalAuth())
	g.DELETE("", h.disconnect, authMiddleware.Auth())
	g.POST("/switch-network", h.switchNetwork, authMiddleware.Auth())
}

type connectPayload struct {
	Address    domain.Address `json:"address" validate:"required,address"`
	Passphrase string         `json:"passphrase"`
}

type connectResp struct {
	Token   string          `json:"token"`
	Session *wallet.Session `json:"session"`
}

func (h *handler) connect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &connectPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	token, session, err := h.wallet.Connect(ctx, p.Address, p.Passphrase)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, connectResp{Token: token, Session: session})
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	view, err := h.wallet.Get(ctx, authMiddleware.AddressOf(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, view)
}

func (h *handler) disconnect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.wallet.Disconnect(ctx, authMiddleware.AddressOf(c)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "disconnected")
}

type switchPayload struct {
	ChainId domain.ChainId `json:"chainId" validate:"required"`
}

func (h *handler) switchNetwork(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &switchPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	session, err := h.wallet.SwitchNetwork(ctx, authMiddleware.AddressOf(c), p.ChainId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, session)
}
