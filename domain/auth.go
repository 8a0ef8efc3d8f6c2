package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/storefront/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, address Address) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (Address, error)
}
