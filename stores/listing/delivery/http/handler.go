package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/listing"
	"github.com/x-xyz/storefront/middleware"
	authMiddleware "github.com/x-xyz/storefront/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.Usecase
}

func New(e *echo.Echo, lu listing.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{listing: lu}

	e.GET("/listings", h.feed, authMiddleware.OptionalAuth())

	g := e.Group("/listing/:id")
	g.GET("", h.detail, authMiddleware.OptionalAuth())
	g.GET("/minimum-bid", h.minimumBid, authMiddleware.OptionalAuth())
	g.POST("/buy", h.buy, authMiddleware.Auth())
	g.POST("/offer", h.offer, authMiddleware.Auth())
	g.POST("/offers/:offeror/accept", h.acceptOffer, authMiddleware.Auth(), middleware.IsValidAddress("offeror"))
}

func (h *handler) feed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	cards, err := h.listing.Feed(ctx, authMiddleware.AddressOf(c), c.QueryParam("q"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, cards)
}

func (h *handler) detail(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	d, err := h.listing.Detail(ctx, c.Param("id"), authMiddleware.AddressOf(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, d)
}

func (h *handler) minimumBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	v, err := h.listing.MinimumBid(ctx, c.Param("id"), authMiddleware.AddressOf(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, v)
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	out, err := h.listing.Buy(ctx, c.Param("id"), authMiddleware.AddressOf(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, out)
}

type offerPayload struct {
	Amount string `json:"amount"`
}

func (h *handler) offer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &offerPayload{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	// an empty amount is reported by the usecase so the toast is raised
	out, err := h.listing.Offer(ctx, c.Param("id"), authMiddleware.AddressOf(c), p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, out)
}

func (h *handler) acceptOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	offeror := domain.Address(c.Param("offeror")).ToLower()
	out, err := h.listing.AcceptOffer(ctx, c.Param("id"), authMiddleware.AddressOf(c), offeror)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, out)
}
