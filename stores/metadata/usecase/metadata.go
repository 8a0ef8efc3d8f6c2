package usecase

import (
	"encoding/json"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/cache"
)

type MetadataUseCaseCfg struct {
	WebResource domain.WebResourceUseCase
	// Cache is optional, token uris pinned to ipfs never change
	Cache cache.Service
}

type metadataUseCase struct {
	webResource domain.WebResourceUseCase
	cache       cache.Service
}

// rawMetadata accepts the field spellings seen in the wild
type rawMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ImageUrl    string `json:"image_url"`
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	return &metadataUseCase{
		webResource: cfg.WebResource,
		cache:       cfg.Cache,
	}
}

func (u *metadataUseCase) GetFromUrl(c bCtx.Ctx, rawUrl string) (*domain.NftMetadata, error) {
	if u.cache == nil {
		return u.fetch(c, rawUrl)
	}

	res := &domain.NftMetadata{}
	if err := u.cache.GetByFunc(c, rawUrl, res, func() (interface{}, error) {
		return u.fetch(c, rawUrl)
	}); err != nil {
		return nil, err
	}
	return res, nil
}

func (u *metadataUseCase) fetch(c bCtx.Ctx, rawUrl string) (*domain.NftMetadata, error) {
	data, err := u.webResource.GetJson(c, rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Warn("webResource.GetJson failed")
		return nil, err
	}

	raw := rawMetadata{}
	if err := json.Unmarshal(data, &raw); err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Warn("json.Unmarshal failed")
		return nil, domain.ErrInvalidJsonFormat
	}

	image := raw.Image
	if image == "" {
		image = raw.ImageUrl
	}
	return &domain.NftMetadata{
		Name:        raw.Name,
		Description: raw.Description,
		Image:       image,
		Uri:         rawUrl,
	}, nil
}
