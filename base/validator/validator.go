package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/domain"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// IsPositiveAmount reports whether s is a decimal number greater than zero
func IsPositiveAmount(s string) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// NewCustomValidator registers the storefront tags on v:
//   - address: a hex account or contract address
//   - amount: a positive decimal currency amount
func NewCustomValidator(v *validator.Validate) echo.Validator {
	_ = v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		return IsPositiveAmount(fl.Field().String())
	})
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return xerrors.Errorf("%s: %w", err.Error(), domain.ErrBadParamInput)
	}
	return nil
}
