package repository

import (
	"strings"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

const arUriSchema = "ar://"

// DefaultArGateway serves arweave transactions over https
const DefaultArGateway = "https://arweave.net"

type arReaderRepo struct {
	http    domain.WebResourceReaderRepository
	gateway string
}

// NewArReaderRepo reads ar:// references through gateway with the given http reader
func NewArReaderRepo(http domain.WebResourceReaderRepository, gateway string) domain.WebResourceReaderRepository {
	if gateway == "" {
		gateway = DefaultArGateway
	}
	return &arReaderRepo{http: http, gateway: strings.TrimSuffix(gateway, "/")}
}

func (r *arReaderRepo) Get(c bCtx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, arUriSchema) {
		return nil, xerrors.Errorf("invalid ar uri: %w", domain.ErrUnsupportedSchema)
	}
	return r.http.Get(c, r.gateway+"/"+strings.TrimPrefix(uri, arUriSchema))
}
