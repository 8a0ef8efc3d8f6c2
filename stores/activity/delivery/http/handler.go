package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/activity"
	"github.com/x-xyz/storefront/middleware"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type handler struct {
	activity activity.Usecase
}

type activitiesResp struct {
	Items []activity.Activity `json:"items"`
	Count int                 `json:"count"`
}

func New(e *echo.Echo, au activity.Usecase) {
	h := &handler{activity: au}

	g := e.Group("/accounts")
	g.GET("/:address/activities", h.getActivities, middleware.IsValidAddress("address"))
}

func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	offset, err := intQuery(c, "offset", 0)
	if err != nil || offset < 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid offset")
	}
	limit, err := intQuery(c, "limit", defaultLimit)
	if err != nil || limit <= 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid limit")
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	items, cnt, err := h.activity.FindByAccount(ctx, address, offset, limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, activitiesResp{Items: items, Count: cnt})
}

func intQuery(c echo.Context, name string, fallback int) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
