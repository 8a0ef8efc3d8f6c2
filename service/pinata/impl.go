package pinata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/x-xyz/storefront/base/ctx"
)

const (
	defaultEndpoint = "https://api.pinata.cloud"
	pinPath         = "/pinning/pinFileToIPFS"
	pinJsonPath     = "/pinning/pinJSONToIPFS"
)

type pinataImpl struct {
	cfg    Config
	client *http.Client
}

func New(cfg Config) Service {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	cfg.Endpoint = strings.TrimSuffix(cfg.Endpoint, "/")
	return &pinataImpl{cfg: cfg, client: &http.Client{Timeout: 60 * time.Second}}
}

func (im *pinataImpl) Pin(c ctx.Ctx, file io.Reader, extension string, optFns ...Options) (string, error) {
	opts, err := GetPinOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("GetPinOptions failed")
		return "", err
	}

	var b bytes.Buffer

	w := multipart.NewWriter(&b)
	if fw, err := w.CreateFormFile("file", "file."+extension); err != nil {
		c.WithField("err", err).Error("w.CreateFormFile failed")
		return "", err
	} else if _, err := io.Copy(fw, file); err != nil {
		c.WithField("err", err).Error("io.Copy failed")
		return "", err
	}

	if opts.Metadata != nil {
		if b, err := json.Marshal(opts.Metadata); err != nil {
			c.WithField("err", err).Error("json.Marshal failed")
			return "", err
		} else if err := w.WriteField("pinataMetadata", string(b)); err != nil {
			return "", err
		}
	}

	if opts.Options != nil {
		if b, err := json.Marshal(opts.Options); err != nil {
			c.WithField("err", err).Error("json.Marshal failed")
			return "", err
		} else if err := w.WriteField("pinataOptions", string(b)); err != nil {
			return "", err
		}
	}

	if err := w.Close(); err != nil {
		return "", err
	}

	return im.post(c, pinPath, w.FormDataContentType(), &b)
}

func (im *pinataImpl) PinJson(c ctx.Ctx, value interface{}, optFns ...Options) (string, error) {
	opts, err := GetPinOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("GetPinOptions failed")
		return "", err
	}

	opts.PinataContent = value

	body, err := json.Marshal(opts)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}

	return im.post(c, pinJsonPath, "application/json", bytes.NewBuffer(body))
}

func (im *pinataImpl) post(c ctx.Ctx, path, contentType string, body io.Reader) (string, error) {
	url := fmt.Sprintf("%s%s", im.cfg.Endpoint, path)

	req, err := http.NewRequestWithContext(c, http.MethodPost, url, body)
	if err != nil {
		c.WithField("err", err).Error("http.NewRequest failed")
		return "", err
	}

	req.Header.Set("Content-Type", contentType)
	if im.cfg.Jwt != "" {
		req.Header.Set("Authorization", "Bearer "+im.cfg.Jwt)
	} else {
		req.Header.Set("pinata_api_key", im.cfg.ApiKey)
		req.Header.Set("pinata_secret_api_key", im.cfg.ApiSecret)
	}

	resp, err := im.client.Do(req)
	if err != nil {
		c.WithField("err", err).Error("client.Do failed")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		c.WithField("errorBody", string(errorBody)).Error("Request failed")
		return "", ErrRequestFailed
	}

	type payload struct {
		IpfsHash string `json:"IpfsHash"`
	}

	p := &payload{}

	if err := json.NewDecoder(resp.Body).Decode(p); err != nil {
		c.WithField("err", err).Error("json.NewDecoder.Decode failed")
		return "", err
	}

	return p.IpfsHash, nil
}
