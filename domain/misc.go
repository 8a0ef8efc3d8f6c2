package domain

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// NativeTokenAddress is the sentinel the marketplace contract uses for the chain's native currency.
const NativeTokenAddress = Address("0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) IsNative() bool {
	return a.Equals(NativeTokenAddress) || a.Equals(EmptyAddress)
}

// Short renders an address as its first head and last tail characters, e.g. 0x123...abcd
func (a Address) Short(head, tail int) string {
	s := string(a)
	if len(s) <= head+tail {
		return s
	}
	return fmt.Sprintf("%s...%s", s[:head], s[len(s)-tail:])
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBig() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid id %s: %w", i, ErrInvalidNumberFormat)
	}
	return id, nil
}

type TxHash string

type Table string

const (
	TableActivityHistories Table = "activity_histories"
)
