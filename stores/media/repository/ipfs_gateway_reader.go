package repository

import (
	"strings"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

type ipfsGatewayReaderRepo struct {
	http    domain.WebResourceReaderRepository
	gateway string
}

// NewIpfsGatewayReaderRepo reads cids, optionally followed by a path, from an http gateway
// such as https://gateway.pinata.cloud/ipfs
func NewIpfsGatewayReaderRepo(http domain.WebResourceReaderRepository, gateway string) domain.WebResourceReaderRepository {
	return &ipfsGatewayReaderRepo{http: http, gateway: strings.TrimSuffix(gateway, "/")}
}

func (r *ipfsGatewayReaderRepo) Get(c bCtx.Ctx, cid string) ([]byte, error) {
	return r.http.Get(c, r.gateway+"/"+cid)
}
