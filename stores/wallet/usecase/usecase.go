package usecase

import (
	"errors"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/wallet"
)

var timeNow = time.Now

type Config struct {
	// TargetChainId is the network every transaction must be sent on
	TargetChainId domain.ChainId
	// DefaultChainId is the network a new session starts on. Zero means the target.
	DefaultChainId domain.ChainId
	SessionTtl     time.Duration
}

type impl struct {
	cfg      Config
	sessions wallet.SessionRepo
	keystore wallet.Keystore
	auth     domain.AuthUsecase
}

func New(cfg Config, sessions wallet.SessionRepo, keystore wallet.Keystore, auth domain.AuthUsecase) wallet.Usecase {
	if cfg.DefaultChainId == 0 {
		cfg.DefaultChainId = cfg.TargetChainId
	}
	return &impl{
		cfg:      cfg,
		sessions: sessions,
		keystore: keystore,
		auth:     auth,
	}
}

func (im *impl) Connect(c ctx.Ctx, address domain.Address, passphrase string) (string, *wallet.Session, error) {
	address = address.ToLower()
	if !im.keystore.Has(address) {
		return "", nil, xerrors.Errorf("unknown account %s: %w", address, domain.ErrUnauthorized)
	}

	if err := im.keystore.Unlock(c, address, passphrase); err != nil {
		c.WithField("err", err).WithField("address", address).Warn("keystore.Unlock failed")
		return "", nil, xerrors.Errorf("%v: %w", err, domain.ErrUnauthorized)
	}

	session := &wallet.Session{
		Address:     address,
		ChainId:     im.cfg.DefaultChainId,
		ConnectedAt: timeNow(),
	}
	if err := im.sessions.Save(c, session, im.cfg.SessionTtl); err != nil {
		c.WithField("err", err).Error("sessions.Save failed")
		return "", nil, err
	}

	token, err := im.auth.SignToken(c, address)
	if err != nil {
		c.WithField("err", err).Error("auth.SignToken failed")
		return "", nil, err
	}
	return token, session, nil
}

func (im *impl) Disconnect(c ctx.Ctx, address domain.Address) error {
	address = address.ToLower()
	if err := im.sessions.Delete(c, address); err != nil {
		c.WithField("err", err).Error("sessions.Delete failed")
		return err
	}
	if err := im.keystore.Lock(c, address); err != nil {
		c.WithField("err", err).Warn("keystore.Lock failed")
	}
	return nil
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*wallet.View, error) {
	view := &wallet.View{TargetChainId: im.cfg.TargetChainId}
	if address.IsEmpty() {
		return view, nil
	}

	session, err := im.sessions.Get(c, address.ToLower())
	if errors.Is(err, domain.ErrNotFound) {
		return view, nil
	} else if err != nil {
		c.WithField("err", err).Error("sessions.Get failed")
		return nil, err
	}

	view.Connected = true
	view.Address = session.Address
	view.ChainId = session.ChainId
	view.NetworkMismatch = session.ChainId != im.cfg.TargetChainId
	return view, nil
}

func (im *impl) SwitchNetwork(c ctx.Ctx, address domain.Address, chainId domain.ChainId) (*wallet.Session, error) {
	session, err := im.session(c, address)
	if err != nil {
		return nil, err
	}
	if session.ChainId == chainId {
		return session, nil
	}

	session.ChainId = chainId
	if err := im.sessions.Save(c, session, im.cfg.SessionTtl); err != nil {
		c.WithField("err", err).Error("sessions.Save failed")
		return nil, err
	}
	c.WithField("address", address).WithField("chainId", chainId).Info("network switched")
	return session, nil
}

func (im *impl) EnsureNetwork(c ctx.Ctx, address domain.Address) error {
	session, err := im.session(c, address)
	if err != nil {
		return err
	}
	from := session.ChainId
	if from == im.cfg.TargetChainId {
		return nil
	}

	if _, err := im.SwitchNetwork(c, address, im.cfg.TargetChainId); err != nil {
		return err
	}
	return xerrors.Errorf("chain %d, want %d: %w", from, im.cfg.TargetChainId, domain.ErrNetworkMismatch)
}

func (im *impl) Signer(c ctx.Ctx, address domain.Address) (domain.Signer, error) {
	if _, err := im.session(c, address); err != nil {
		return nil, err
	}
	signer, err := im.keystore.Signer(address.ToLower())
	if err != nil {
		c.WithField("err", err).Error("keystore.Signer failed")
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrWalletNotConnected)
	}
	return signer, nil
}

func (im *impl) session(c ctx.Ctx, address domain.Address) (*wallet.Session, error) {
	if address.IsEmpty() {
		return nil, domain.ErrWalletNotConnected
	}
	session, err := im.sessions.Get(c, address.ToLower())
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrWalletNotConnected
	} else if err != nil {
		c.WithField("err", err).Error("sessions.Get failed")
		return nil, err
	}
	return session, nil
}
