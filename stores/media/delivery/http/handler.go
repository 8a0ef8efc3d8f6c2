package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/domain"
)

type handler struct {
	media domain.WebResourceUseCase
}

func New(e *echo.Echo, mu domain.WebResourceUseCase) {
	h := &handler{media: mu}

	g := e.Group("/media")
	g.GET("", h.fetch)
	g.GET("/resolve", h.resolve)
}

func (h *handler) resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	m, err := h.media.Resolve(ctx, c.QueryParam("src"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, m)
}

// fetch proxies the bytes of src, content addressed sources never change
func (h *handler) fetch(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	data, contentType, err := h.media.Fetch(ctx, c.QueryParam("src"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Blob(http.StatusOK, contentType, data)
}
