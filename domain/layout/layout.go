package layout

import (
	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Header struct {
	WalletLabel       string `json:"walletLabel"`
	Connected         bool   `json:"connected"`
	Links             []Link `json:"links"`
	SearchPlaceholder string `json:"searchPlaceholder"`
}

type Usecase interface {
	Header(c ctx.Ctx, address domain.Address) (*Header, error)
}
