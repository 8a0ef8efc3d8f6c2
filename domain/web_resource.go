package domain

import (
	"github.com/x-xyz/storefront/base/ctx"
)

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
	MediaKindAudio MediaKind = "audio"
	MediaKindOther MediaKind = "other"
)

// Media is a resolved media reference the client can render directly
type Media struct {
	Src         string    `json:"src"`
	Url         string    `json:"url"`
	Kind        MediaKind `json:"kind"`
	ContentType string    `json:"contentType"`
}

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type WebResourceUseCase interface {
	Get(ctx.Ctx, string) ([]byte, error)
	GetJson(ctx.Ctx, string) ([]byte, error)
	// GatewayUrl rewrites ipfs and ar references into http urls, other urls are kept
	GatewayUrl(ctx.Ctx, string) (string, error)
	// Resolve classifies src and returns the url it renders from
	Resolve(ctx.Ctx, string) (*Media, error)
	// Fetch returns the bytes of src with a sniffed content type
	Fetch(ctx.Ctx, string) ([]byte, string, error)
}
