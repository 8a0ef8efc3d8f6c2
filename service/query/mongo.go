package query

/*
	Package `query` wraps https://github.com/mongodb/mongo-go-driver with the
	few operations the storefront needs. Every call is bounded by queryMaxTime
	and logs slow queries.
*/

import (
	"fmt"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")
)

// Index is a single or compound index, keys prefixed with '-' are descending
type Index struct {
	Keys   []string
	Unique bool
}

// Mongo abstract the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne get data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count return counting for matched entry in the table
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (int, error)

	// Search finds documents, sort is a field name prefixed with '-' for descending
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// Patch sets the fields of update on the first document matching selector
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// EnsureIndexes creates missing indexes of the table
	EnsureIndexes(context ctx.Ctx, table domain.Table, indexes []Index) error
}
