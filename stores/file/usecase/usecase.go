package usecase

import (
	"bytes"
	"encoding/base64"
	"io"
	"strings"

	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/file"
	"github.com/x-xyz/storefront/service/pinata"
)

const (
	imgDataHeaderPrefix    = "data:image/"
	imgDataHeaderSuffix    = ";base64,"
	imgDataHeaderMaxLength = 50

	ipfsPrefix = "ipfs://"
)

type impl struct {
	pinata pinata.Service
}

func New(pinata pinata.Service) file.Usecase {
	return &impl{
		pinata: pinata,
	}
}

func pinOptions(pinOption pinata.PinOptions) []pinata.Options {
	opts := []pinata.Options{}
	if pinOption.Metadata != nil {
		opts = append(opts, pinata.WithMetadata(*pinOption.Metadata))
	}
	if pinOption.Options != nil {
		opts = append(opts, pinata.WithOptions(*pinOption.Options))
	}
	return opts
}

func (im *impl) Upload(c ctx.Ctx, imgData string, pinOption pinata.PinOptions) (hash string, err error) {
	reader, extension, err := parseImgData(imgData)
	if err != nil {
		c.WithField("err", err).Warn("parseImgData failed")
		return "", err
	}

	hash, err = im.pinata.Pin(c, reader, extension, pinOptions(pinOption)...)
	if err != nil {
		c.WithField("err", err).Error("pinata.Pin failed")
		return "", err
	}
	c.WithField("hash", hash).Info("pinata.Pin success")
	return hash, nil
}

func (im *impl) UploadJson(c ctx.Ctx, file interface{}, pinOption pinata.PinOptions) (hash string, err error) {
	hash, err = im.pinata.PinJson(c, file, pinOptions(pinOption)...)
	if err != nil {
		c.WithField("err", err).Error("pinata.PinJson failed")
		return "", err
	}
	c.WithField("hash", hash).Info("pinata.PinJson success")
	return hash, nil
}

func (im *impl) ImageUri(c ctx.Ctx, image string, pinOption pinata.PinOptions) (string, error) {
	image = strings.TrimSpace(image)
	switch {
	case image == "":
		return "", xerrors.Errorf("empty image: %w", domain.ErrBadParamInput)
	case strings.HasPrefix(image, "data:"):
		hash, err := im.Upload(c, image, pinOption)
		if err != nil {
			return "", err
		}
		return ipfsPrefix + hash, nil
	case strings.HasPrefix(image, ipfsPrefix), strings.HasPrefix(image, "https://"), strings.HasPrefix(image, "http://"):
		return image, nil
	}
	return "", xerrors.Errorf("image %.20q: %w", image, domain.ErrUnsupportedSchema)
}

func parseImgData(data string) (reader io.Reader, extension string, err error) {
	if !strings.HasPrefix(data, imgDataHeaderPrefix) {
		return nil, "", xerrors.Errorf("image data has wrong prefix: %w", domain.ErrBadParamInput)
	}
	// search header suffix in a limited range
	searchLength := imgDataHeaderMaxLength
	if len(data) < searchLength {
		searchLength = len(data)
	}
	headerSuffixIdx := strings.Index(data[:searchLength], imgDataHeaderSuffix)
	if headerSuffixIdx == -1 {
		return nil, "", xerrors.Errorf("can't find image data header suffix: %w", domain.ErrBadParamInput)
	}

	extension = data[len(imgDataHeaderPrefix):headerSuffixIdx]
	dataStartIdx := headerSuffixIdx + len(imgDataHeaderSuffix)
	decodedData, err := base64.StdEncoding.DecodeString(data[dataStartIdx:])
	if err != nil {
		return nil, "", xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput)
	}
	if len(decodedData) == 0 {
		return nil, "", xerrors.Errorf("empty image data: %w", domain.ErrBadParamInput)
	}
	return bytes.NewBuffer(decodedData), extension, nil
}
