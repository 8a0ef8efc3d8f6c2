package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/storefront/domain"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "valid address - real address",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestIsPositiveAmount() {
	tests := []struct {
		desc   string
		amount string
		exp    bool
	}{
		{desc: "empty", amount: "", exp: false},
		{desc: "zero", amount: "0", exp: false},
		{desc: "negative", amount: "-1", exp: false},
		{desc: "not a number", amount: "one", exp: false},
		{desc: "fraction", amount: "0.000000000000000001", exp: true},
		{desc: "padded", amount: " 1.5 ", exp: true},
	}
	for _, t := range tests {
		s.Equal(t.exp, IsPositiveAmount(t.amount), t.desc)
	}
}

func (s *ValidatorTestSuite) TestValidate() {
	type req struct {
		Owner  string `validate:"required,address"`
		Amount string `validate:"required,amount"`
	}

	v := NewCustomValidator(validator.New())

	s.NoError(v.Validate(&req{Owner: "0x939ae6A4C8dfDBB1f7085189574F0A938013952A", Amount: "1"}))

	err := v.Validate(&req{Owner: "0x000", Amount: "1"})
	s.True(errors.Is(err, domain.ErrBadParamInput))

	err = v.Validate(&req{Owner: "0x939ae6A4C8dfDBB1f7085189574F0A938013952A"})
	s.True(errors.Is(err, domain.ErrBadParamInput))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
