package usecase

import (
	"encoding/json"
	"mime"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/stores/media/repository"
)

type MediaUseCaseCfg struct {
	HttpReader    domain.WebResourceReaderRepository
	IpfsReader    domain.WebResourceReaderRepository
	DataUriReader domain.WebResourceReaderRepository
	ArUriReader   domain.WebResourceReaderRepository
	// IpfsGateway and ArGateway build the urls handed to clients
	IpfsGateway string
	ArGateway   string
}

type mediaUseCase struct {
	httpReader    domain.WebResourceReaderRepository
	ipfsReader    domain.WebResourceReaderRepository
	dataUriReader domain.WebResourceReaderRepository
	arUriReader   domain.WebResourceReaderRepository
	ipfsGateway   string
	arGateway     string
}

func NewMediaUseCase(cfg *MediaUseCaseCfg) domain.WebResourceUseCase {
	arGateway := cfg.ArGateway
	if arGateway == "" {
		arGateway = repository.DefaultArGateway
	}
	return &mediaUseCase{
		httpReader:    cfg.HttpReader,
		ipfsReader:    cfg.IpfsReader,
		dataUriReader: cfg.DataUriReader,
		arUriReader:   cfg.ArUriReader,
		ipfsGateway:   strings.TrimSuffix(cfg.IpfsGateway, "/"),
		arGateway:     strings.TrimSuffix(arGateway, "/"),
	}
}

func (u *mediaUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	return u.get(c, rawUrl)
}

func (u *mediaUseCase) GetJson(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.get(c, rawUrl)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithFields(log.Fields{
			"url": rawUrl,
		}).Error("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}

	return data, nil
}

func (u *mediaUseCase) GatewayUrl(c bCtx.Ctx, src string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", domain.ErrBadParamInput
	}

	pUrl, err := url.Parse(src)
	if err != nil {
		return "", domain.ErrBadParamInput
	}
	switch pUrl.Scheme {
	case "http", "https", "data":
		return src, nil
	case "ipfs":
		return u.ipfsGateway + "/" + ipfsPath(src), nil
	case "ar":
		return u.arGateway + "/" + strings.TrimPrefix(src, "ar://"), nil
	}
	return "", domain.ErrUnsupportedSchema
}

func (u *mediaUseCase) Resolve(c bCtx.Ctx, src string) (*domain.Media, error) {
	gatewayUrl, err := u.GatewayUrl(c, src)
	if err != nil {
		return nil, err
	}

	contentType := repository.MediaTypeOf(src)
	if contentType == "" && !strings.HasPrefix(src, "data:") {
		contentType = typeByExtension(gatewayUrl)
	}
	if contentType == "" {
		// nothing to go on but the bytes
		_, sniffed, err := u.Fetch(c, src)
		if err != nil {
			return nil, err
		}
		contentType = sniffed
	}

	return &domain.Media{
		Src:         src,
		Url:         gatewayUrl,
		Kind:        KindOf(contentType),
		ContentType: contentType,
	}, nil
}

func (u *mediaUseCase) Fetch(c bCtx.Ctx, src string) ([]byte, string, error) {
	data, err := u.get(c, src)
	if err != nil {
		return nil, "", err
	}
	return data, mimetype.Detect(data).String(), nil
}

// KindOf maps a content type to the element it renders in
func KindOf(contentType string) domain.MediaKind {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}
	switch {
	case strings.HasPrefix(mediaType, "image/"):
		return domain.MediaKindImage
	case strings.HasPrefix(mediaType, "video/"):
		return domain.MediaKindVideo
	case strings.HasPrefix(mediaType, "audio/"):
		return domain.MediaKindAudio
	}
	return domain.MediaKindOther
}

// extensions missing from the builtin mime table on minimal images
var mediaExtensions = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".glb":  "model/gltf-binary",
}

func typeByExtension(rawUrl string) string {
	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		return ""
	}
	ext := strings.ToLower(path.Ext(pUrl.Path))
	if ext == "" {
		return ""
	}
	if t, ok := mediaExtensions[ext]; ok {
		return t
	}
	return mime.TypeByExtension(ext)
}

func ipfsPath(rawUrl string) string {
	p := strings.TrimPrefix(rawUrl, "ipfs://")
	// some metadata writes ipfs://ipfs/<cid>
	return strings.TrimPrefix(p, "ipfs/")
}

func (u *mediaUseCase) get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Warn("failed to parse url")
		return nil, domain.ErrBadParamInput
	}

	switch pUrl.Scheme {
	case "http", "https":
		data, err = u.httpReader.Get(c, rawUrl)
	case "ipfs":
		data, err = u.ipfsReader.Get(c, ipfsPath(rawUrl))
	case "data":
		data, err = u.dataUriReader.Get(c, rawUrl)
	case "ar":
		data, err = u.arUriReader.Get(c, rawUrl)
	default:
		return nil, domain.ErrUnsupportedSchema
	}

	if err == nil {
		return data, nil
	}

	if pUrl.Scheme == "https" {
		ipfsUrl := getIpfsUrl(rawUrl)
		if len(ipfsUrl) > 0 {
			c.WithFields(log.Fields{
				"url":     rawUrl,
				"ipfsUrl": ipfsUrl,
			}).Info("falling back to ipfs")
			return u.get(c, ipfsUrl)
		}
	}

	c.WithFields(log.Fields{
		"schema": pUrl.Scheme,
		"url":    rawUrl,
		"err":    err,
	}).Error("failed to fetch")
	return nil, err
}

var dedicatedPinataRegex = regexp.MustCompile(`^https://[^/]+\.mypinata\.cloud/ipfs/`)

// getIpfsUrl turns a url of a well known public gateway back into ipfs://
func getIpfsUrl(url string) string {
	var (
		pinataPrefix     = "https://gateway.pinata.cloud/ipfs/"
		ipfsIoPrefix     = "https://ipfs.io/ipfs/"
		cloudflarePrefix = "https://cloudflare-ipfs.com/ipfs/"
		ipfsPrefix       = "ipfs://"
	)

	for _, p := range []string{pinataPrefix, ipfsIoPrefix, cloudflarePrefix} {
		if strings.HasPrefix(url, p) {
			return strings.Replace(url, p, ipfsPrefix, 1)
		}
	}
	if dedicatedPinataRegex.MatchString(url) {
		return dedicatedPinataRegex.ReplaceAllLiteralString(url, ipfsPrefix)
	}
	return ""
}
