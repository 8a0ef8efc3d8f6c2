package repository

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/wallet"
)

type KeystoreConfig struct {
	Dir string
	// UnlockFor bounds how long a connected account stays unlocked. Zero keeps
	// it unlocked until disconnect.
	UnlockFor time.Duration
	// Light uses cheap scrypt parameters, only meant for tests
	Light bool
}

type keystoreRepo struct {
	ks        *keystore.KeyStore
	unlockFor time.Duration
}

func NewKeystore(cfg KeystoreConfig) wallet.Keystore {
	n, p := keystore.StandardScryptN, keystore.StandardScryptP
	if cfg.Light {
		n, p = keystore.LightScryptN, keystore.LightScryptP
	}
	return &keystoreRepo{
		ks:        keystore.NewKeyStore(cfg.Dir, n, p),
		unlockFor: cfg.UnlockFor,
	}
}

func (r *keystoreRepo) find(address domain.Address) (accounts.Account, error) {
	account, err := r.ks.Find(accounts.Account{Address: common.HexToAddress(string(address))})
	if err != nil {
		return accounts.Account{}, xerrors.Errorf("%s: %w", address, domain.ErrNotFound)
	}
	return account, nil
}

func (r *keystoreRepo) Has(address domain.Address) bool {
	return r.ks.HasAddress(common.HexToAddress(string(address)))
}

func (r *keystoreRepo) Unlock(c ctx.Ctx, address domain.Address, passphrase string) error {
	account, err := r.find(address)
	if err != nil {
		return err
	}
	return r.ks.TimedUnlock(account, passphrase, r.unlockFor)
}

func (r *keystoreRepo) Lock(c ctx.Ctx, address domain.Address) error {
	return r.ks.Lock(common.HexToAddress(string(address)))
}

func (r *keystoreRepo) Signer(address domain.Address) (domain.Signer, error) {
	account, err := r.find(address)
	if err != nil {
		return nil, err
	}
	return &signer{ks: r.ks, account: account}, nil
}

type signer struct {
	ks      *keystore.KeyStore
	account accounts.Account
}

func (s *signer) Address() domain.Address {
	return domain.Address(s.account.Address.Hex()).ToLower()
}

func (s *signer) TransactOpts(c ctx.Ctx, chainId domain.ChainId) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyStoreTransactorWithChainID(s.ks, s.account, big.NewInt(int64(chainId)))
	if err != nil {
		return nil, err
	}
	opts.Context = c
	return opts, nil
}
