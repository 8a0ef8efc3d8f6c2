package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/middleware"
	"github.com/x-xyz/storefront/service/ens"
)

// Name is an account as the storefront shows it
type Name struct {
	Address domain.Address `json:"address"`
	Name    string         `json:"name"`
	Display string         `json:"display"`
}

type handler struct {
	ens ens.ENS
}

func New(e *echo.Echo, ens ens.ENS) {
	h := &handler{
		ens,
	}

	g := e.Group("/ens")
	g.GET("/resolve/:name", h.resolve)
	g.GET("/reverse-resolve/:address", h.reverseResolve, middleware.IsValidAddress("address"))
}

func (h *handler) resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	name := strings.ToLower(c.Param("name"))
	if !strings.HasSuffix(name, ".eth") {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	address, err := h.ens.Resolve(ctx, name)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if address.IsEmpty() {
		return delivery.MakeJsonResp(c, http.StatusNotFound, domain.ErrNotFound)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, Name{Address: address.ToLower(), Name: name, Display: name})
}

func (h *handler) reverseResolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address")).ToLower()
	name, err := h.ens.ReverseResolve(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := Name{Address: address, Name: name, Display: name}
	if name == "" {
		res.Display = address.Short(5, 5)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
