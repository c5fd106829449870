package domain

import (
	"fmt"
	"math"
)

// Default paging values applied when the caller omits a query parameter.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PaginationParams carries page/pageSize values from the HTTP layer to the repo layer.
// Page is 1-indexed. PageSize has no upper bound.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// PageSize is the maximum number of items to return.
	PageSize int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to the defaults (page=1, pageSize=10). Values below 1
// are rejected with ErrInvalidArgument rather than silently corrected.
func NewPaginationParams(page, pageSize *int) (PaginationParams, error) {
	p := PaginationParams{Page: DefaultPage, PageSize: DefaultPageSize}
	if page != nil {
		p.Page = *page
	}
	if pageSize != nil {
		p.PageSize = *pageSize
	}
	if p.Page < 1 || p.PageSize < 1 {
		return PaginationParams{}, fmt.Errorf("%w: page and pageSize must be greater than 0", ErrInvalidArgument)
	}
	return p, nil
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
// It saturates at math.MaxInt64 instead of overflowing, which yields an
// empty page for absurdly large page numbers.
func (p PaginationParams) Offset() int64 {
	skipped := int64(p.Page - 1)
	size := int64(p.PageSize)
	if skipped > 0 && size > math.MaxInt64/skipped {
		return math.MaxInt64
	}
	return skipped * size
}
