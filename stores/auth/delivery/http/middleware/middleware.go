package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/wallet"
)

const bearerPrefix = "Bearer "

type AuthMiddleware struct {
	auth     domain.AuthUsecase
	sessions wallet.SessionRepo
}

func New(auth domain.AuthUsecase, sessions wallet.SessionRepo) *AuthMiddleware {
	return &AuthMiddleware{
		auth:     auth,
		sessions: sessions,
	}
}

// Auth rejects requests without a token of a connected wallet
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

// OptionalAuth sets the wallet address when a valid token is present and
// treats every other request as anonymous.
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.HasPrefix(auth, bearerPrefix) {
				_, _ = m.validateAuthToken(strings.TrimPrefix(auth, bearerPrefix), c)
			}
			return next(c)
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	ads, err := m.auth.ParseToken(ctx, key)
	if err != nil {
		ctx.WithField("err", err).Warn("auth.ParseToken failed")
		return false, nil
	}
	if _, err := m.sessions.Get(ctx, ads); err != nil {
		ctx.WithField("err", err).Info("no wallet session")
		return false, nil
	}
	c.Set("address", ads)
	return true, nil
}

// AddressOf returns the wallet address set by the auth middlewares
func AddressOf(c echo.Context) domain.Address {
	if a, ok := c.Get("address").(domain.Address); ok {
		return a
	}
	return ""
}
