package repository

import (
	"io"
	"net/http"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
)

// MaxBodySize bounds every remote read, media larger than that is refused
const MaxBodySize = 32 << 20

var errTooLarge = xerrors.New("resource exceeds size limit")

type httpReaderRepo struct {
	client     *http.Client
	ctxTimeout time.Duration
	headers    map[string]string
}

func NewHttpReaderRepo(client *http.Client, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	return &httpReaderRepo{client: client, ctxTimeout: timeout, headers: headers}
}

func (r *httpReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(c, r.ctxTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		ctx.WithField("url", url).WithField("err", err).Warn("failed with request")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Warn("resp.StatusCode != 200")
		if resp.StatusCode == http.StatusNotFound {
			return nil, xerrors.Errorf("%s: %w", url, domain.ErrNotFound)
		}
		return nil, xerrors.Errorf("resp.StatusCode %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	if len(body) > MaxBodySize {
		return nil, errTooLarge
	}
	return body, nil
}
