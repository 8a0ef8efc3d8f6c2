package wallet

import (
	"time"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

// Session is a connected wallet and the network it is active on
type Session struct {
	Address     domain.Address `json:"address"`
	ChainId     domain.ChainId `json:"chainId"`
	ConnectedAt time.Time      `json:"connectedAt"`
}

// View is what the client knows about its wallet
type View struct {
	Connected       bool           `json:"connected"`
	Address         domain.Address `json:"address,omitempty"`
	ChainId         domain.ChainId `json:"chainId,omitempty"`
	TargetChainId   domain.ChainId `json:"targetChainId"`
	NetworkMismatch bool           `json:"networkMismatch"`
}

type SessionRepo interface {
	// Get returns domain.ErrNotFound when address has no session
	Get(c ctx.Ctx, address domain.Address) (*Session, error)
	Save(c ctx.Ctx, session *Session, ttl time.Duration) error
	Delete(c ctx.Ctx, address domain.Address) error
}

// Keystore holds the accounts that can be connected
type Keystore interface {
	Has(address domain.Address) bool
	Unlock(c ctx.Ctx, address domain.Address, passphrase string) error
	Lock(c ctx.Ctx, address domain.Address) error
	Signer(address domain.Address) (domain.Signer, error)
}

type Usecase interface {
	// Connect unlocks address and opens a session on the default network.
	// The returned token authenticates later requests.
	Connect(c ctx.Ctx, address domain.Address, passphrase string) (string, *Session, error)
	Disconnect(c ctx.Ctx, address domain.Address) error
	// Get returns the disconnected view for an empty address
	Get(c ctx.Ctx, address domain.Address) (*View, error)
	SwitchNetwork(c ctx.Ctx, address domain.Address, chainId domain.ChainId) (*Session, error)
	// EnsureNetwork returns nil when the session is on the target network.
	// Otherwise the session is switched to it and domain.ErrNetworkMismatch
	// is returned so the caller aborts before touching a contract.
	EnsureNetwork(c ctx.Ctx, address domain.Address) error
	Signer(c ctx.Ctx, address domain.Address) (domain.Signer, error)
}
