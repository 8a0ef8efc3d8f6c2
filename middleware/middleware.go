package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/base/validator"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	allowOrigins []string
}

// InitMiddleware initialize the middleware. An empty allowOrigins allows any origin.
func InitMiddleware(allowOrigins []string) *GoMiddleware {
	return &GoMiddleware{allowOrigins: allowOrigins}
}

// CORS will handle the CORS middleware
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set("Access-Control-Allow-Origin", m.origin(c.Request().Header.Get(echo.HeaderOrigin)))
		h.Set("Access-Control-Allow-Headers", strings.Join([]string{echo.HeaderAuthorization, echo.HeaderContentType}, ", "))
		h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusNoContent)
		}
		return next(c)
	}
}

func (m *GoMiddleware) origin(requested string) string {
	if len(m.allowOrigins) == 0 {
		return "*"
	}
	for _, o := range m.allowOrigins {
		if o == requested {
			return o
		}
	}
	return m.allowOrigins[0]
}

// AddContext adds custom context into echo
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			base := ctx.Background()
			base.Context = c.Request().Context()
			cont := ctx.WithValue(base, "requestID", requestID)
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": res.Status,
				"host":       req.Host,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
				"referer":    req.Header.Get("Referer"),
			}

			if res.Status >= 400 {
				fields["nextErr"] = err
			}

			if c, ok := c.Get("ctx").(ctx.Ctx); ok {
				c.WithFields(fields).Info("response")
			}
			return nil
		}
	}
}

func IsValidAddress(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if !validator.IsValidAddress(c.Param(param)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid address")
			}
			return next(c)
		}
	}
}
