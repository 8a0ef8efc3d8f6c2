package file

import (
	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/service/pinata"
)

type Usecase interface {
	// Upload pins a data:image/...;base64 payload and returns its ipfs hash
	Upload(c ctx.Ctx, imgData string, pinOption pinata.PinOptions) (hash string, err error)
	UploadJson(c ctx.Ctx, file interface{}, pinOption pinata.PinOptions) (hash string, err error)
	// ImageUri pins data uris and passes http and ipfs urls through unchanged
	ImageUri(c ctx.Ctx, image string, pinOption pinata.PinOptions) (string, error)
}
