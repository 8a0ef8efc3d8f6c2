package ethereum

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/domain"
)

// NativeDecimals is the precision of every evm native currency
const NativeDecimals = 18

// ParseUnits converts a human amount like "1.5" into the smallest unit at
// decimals precision. Digits beyond that precision are rejected rather than
// rounded so the value compared is exactly the value sent.
func ParseUnits(amount string, decimals uint8) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, xerrors.Errorf("amount %q: %w", amount, domain.ErrInvalidNumberFormat)
	}
	if d.IsNegative() {
		return nil, xerrors.Errorf("negative amount %q: %w", amount, domain.ErrInvalidNumberFormat)
	}
	scaled := d.Shift(int32(decimals))
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, xerrors.Errorf("amount %q exceeds %d decimals: %w", amount, decimals, domain.ErrInvalidNumberFormat)
	}
	return scaled.BigInt(), nil
}

// FormatUnits renders a smallest unit value as a decimal string without
// trailing zeros, e.g. 1500000000000000000 at 18 decimals is "1.5".
func FormatUnits(value *big.Int, decimals uint8) string {
	if value == nil {
		return "0"
	}
	return decimal.NewFromBigInt(value, -int32(decimals)).String()
}

// ParseWei reads a base 10 smallest unit string
func ParseWei(wei string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(wei), 10)
	if !ok {
		return nil, xerrors.Errorf("wei %q: %w", wei, domain.ErrInvalidNumberFormat)
	}
	return v, nil
}

// IsZeroDisplay reports whether a display value is numerically zero. An
// unparsable value counts as zero.
func IsZeroDisplay(display string) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(display))
	if err != nil {
		return true
	}
	return d.IsZero()
}
