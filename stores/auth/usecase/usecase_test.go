package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := New("jwt-secret", time.Hour)
	tkn, err := u.SignToken(ctx, "0xABCdef")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, domain.Address("0xabcdef"), ads)

	_, err = New("other-secret", time.Hour).ParseToken(ctx, tkn)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestExpiredToken(t *testing.T) {
	ctx := ctx.Background()
	u := New("jwt-secret", time.Minute)

	timeNow = func() time.Time { return time.Now().Add(-time.Hour) }
	defer func() { timeNow = time.Now }()

	tkn, err := u.SignToken(ctx, "0xabc")
	assert.NoError(t, err)

	timeNow = time.Now
	_, err = u.ParseToken(ctx, tkn)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
