package pricefomatter

import (
	"math/big"
	"sync"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	bEth "github.com/x-xyz/storefront/base/ethereum"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/erc20"
	"github.com/x-xyz/storefront/domain/marketplace"
)

type PriceFormatterCfg struct {
	NativeSymbol string
	Erc20        erc20.Contract
}

type currency struct {
	symbol   string
	decimals uint8
}

type impl struct {
	nativeSymbol string
	erc20        erc20.Contract

	// mutex protected members
	mutex         sync.Mutex
	currencyCache map[domain.Address]currency
}

func NewPriceFormatter(cfg *PriceFormatterCfg) PriceFormatter {
	return &impl{
		nativeSymbol:  cfg.NativeSymbol,
		erc20:         cfg.Erc20,
		currencyCache: make(map[domain.Address]currency),
	}
}

func (f *impl) getCurrency(ctx bCtx.Ctx, token domain.Address) (currency, error) {
	if token.IsNative() {
		return currency{symbol: f.nativeSymbol, decimals: bEth.NativeDecimals}, nil
	}

	key := token.ToLower()
	f.mutex.Lock()
	c, ok := f.currencyCache[key]
	f.mutex.Unlock()
	if ok {
		return c, nil
	}

	symbol, err := f.erc20.Symbol(ctx, token)
	if err != nil {
		ctx.WithFields(log.Fields{
			"token": token,
			"err":   err,
		}).Error("erc20.Symbol failed")
		return currency{}, err
	}
	decimals, err := f.erc20.Decimals(ctx, token)
	if err != nil {
		ctx.WithFields(log.Fields{
			"token": token,
			"err":   err,
		}).Error("erc20.Decimals failed")
		return currency{}, err
	}

	c = currency{symbol: symbol, decimals: decimals}
	f.mutex.Lock()
	f.currencyCache[key] = c
	f.mutex.Unlock()
	return c, nil
}

func (f *impl) Currency(ctx bCtx.Ctx, token domain.Address) (string, uint8, error) {
	c, err := f.getCurrency(ctx, token)
	if err != nil {
		return "", 0, err
	}
	return c.symbol, c.decimals, nil
}

func (f *impl) CurrencyValue(ctx bCtx.Ctx, token domain.Address, value *big.Int) (*marketplace.CurrencyValue, error) {
	c, err := f.getCurrency(ctx, token)
	if err != nil {
		return nil, err
	}
	if value == nil {
		value = big.NewInt(0)
	}
	return &marketplace.CurrencyValue{
		Address:      token,
		Value:        value.String(),
		DisplayValue: bEth.FormatUnits(value, c.decimals),
		Symbol:       c.symbol,
		Decimals:     c.decimals,
	}, nil
}
