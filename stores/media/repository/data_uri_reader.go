package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

const dataUriSchema = "data:"

type dataUriReaderRepo struct {
}

func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

// MediaTypeOf returns the declared media type of a data uri, empty when absent
func MediaTypeOf(uri string) string {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return ""
	}
	header := strings.SplitN(strings.TrimPrefix(uri, dataUriSchema), ",", 2)[0]
	return strings.ToLower(strings.SplitN(header, ";", 2)[0])
}

func (r *dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return nil, xerrors.Errorf("invalid data uri: %w", domain.ErrUnsupportedSchema)
	}
	// data:[<mediatype>][;base64],<data>
	parts := strings.SplitN(strings.TrimPrefix(uri, dataUriSchema), ",", 2)
	if len(parts) < 2 || len(parts[1]) == 0 {
		return nil, xerrors.Errorf("no data part provided: %w", domain.ErrBadParamInput)
	}

	if strings.HasSuffix(parts[0], ";base64") {
		data, err := base64.StdEncoding.DecodeString(parts[1])
		if err != nil {
			return nil, xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput)
		}
		return data, nil
	}
	if unescaped, err := url.PathUnescape(parts[1]); err == nil {
		return []byte(unescaped), nil
	}
	return []byte(parts[1]), nil
}
