package usecase

import (
	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/layout"
	"github.com/x-xyz/storefront/domain/wallet"
)

const (
	connectLabel      = "Connect your wallet"
	searchPlaceholder = "Search for anything"
)

var links = []layout.Link{
	{Label: "Home", Href: "/"},
	{Label: "Add to inventory", Href: "/create-item"},
	{Label: "List Item", Href: "/sell-item"},
}

type impl struct {
	wallet wallet.Usecase
}

func New(wallet wallet.Usecase) layout.Usecase {
	return &impl{wallet: wallet}
}

// Header never fails on a wallet lookup error, the shell renders disconnected instead
func (im *impl) Header(c ctx.Ctx, address domain.Address) (*layout.Header, error) {
	h := &layout.Header{
		WalletLabel:       connectLabel,
		Links:             append([]layout.Link(nil), links...),
		SearchPlaceholder: searchPlaceholder,
	}
	if address.IsEmpty() {
		return h, nil
	}

	v, err := im.wallet.Get(c, address)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Warn("wallet.Get failed")
		return h, nil
	}
	if v.Connected {
		h.Connected = true
		h.WalletLabel = "Hi " + v.Address.Short(5, 4)
	}
	return h, nil
}
