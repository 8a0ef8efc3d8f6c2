package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	hcdomain "github.com/x-xyz/storefront/domain/healthcheck"
)

// ResponseError represent the reseponse error struct
type ResponseError struct {
	Message string `json:"message"`
}

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

// New will initialize the healthcheck/
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	e.GET("/healthcheck", handler.check)
}

func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	st, err := h.healthCheck.Check(context)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, ResponseError{
			Message: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, st)
}
