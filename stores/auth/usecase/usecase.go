package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

const defaultTokenTtl = 24 * time.Hour

var timeNow = time.Now

type impl struct {
	jwtSecret []byte
	ttl       time.Duration
}

func New(jwtSecret string, ttl time.Duration) domain.AuthUsecase {
	if ttl <= 0 {
		ttl = defaultTokenTtl
	}
	return &impl{
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
	}
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address) (string, error) {
	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  timeNow().Unix(),
			ExpiresAt: timeNow().Add(im.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (domain.Address, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})

	if token != nil {
		if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
			return domain.Address(claims.Address), nil
		}
	}

	return "", xerrors.Errorf("%v: %w", err, domain.ErrUnauthorized)
}
