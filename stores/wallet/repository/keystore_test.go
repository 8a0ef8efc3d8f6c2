package repository

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/wallet"
)

type keystoreSuite struct {
	suite.Suite

	repo    wallet.Keystore
	address domain.Address
}

func TestKeystoreSuite(t *testing.T) {
	suite.Run(t, new(keystoreSuite))
}

func (s *keystoreSuite) SetupTest() {
	dir := s.T().TempDir()
	repo := NewKeystore(KeystoreConfig{Dir: dir, Light: true})
	account, err := repo.(*keystoreRepo).ks.NewAccount("pw")
	s.Require().NoError(err)

	s.repo = repo
	s.address = domain.Address(account.Address.Hex())
}

func (s *keystoreSuite) TestUnlock() {
	c := ctx.Background()
	s.True(s.repo.Has(s.address))
	s.False(s.repo.Has("0x5324a98b506f3265c500f978f3943a1fc6a55fa4"))

	s.Error(s.repo.Unlock(c, s.address, "wrong"))
	s.NoError(s.repo.Unlock(c, s.address, "pw"))
	s.NoError(s.repo.Lock(c, s.address))

	s.ErrorIs(s.repo.Unlock(c, "0x5324a98b506f3265c500f978f3943a1fc6a55fa4", "pw"), domain.ErrNotFound)
}

func (s *keystoreSuite) TestSigner() {
	c := ctx.Background()
	s.Require().NoError(s.repo.Unlock(c, s.address, "pw"))

	signer, err := s.repo.Signer(s.address)
	s.Require().NoError(err)
	s.Equal(s.address.ToLower(), signer.Address())

	opts, err := signer.TransactOpts(c, 5)
	s.Require().NoError(err)
	s.Equal(s.address.ToLowerStr(), domain.Address(opts.From.Hex()).ToLowerStr())

	tx := types.NewTransaction(0, opts.From, big.NewInt(1), 21000, big.NewInt(1), nil)
	signed, err := opts.Signer(opts.From, tx)
	s.Require().NoError(err)
	s.Equal(big.NewInt(5), signed.ChainId())
}
