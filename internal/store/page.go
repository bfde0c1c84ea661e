package store

import (
	"fmt"
	"strings"
)

// SortDirection is the order applied to the sort field of a page request.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection interprets a request-level direction string. Only a
// case-insensitive "desc" selects descending order; anything else, including
// the empty string, sorts ascending.
func ParseSortDirection(dir string) SortDirection {
	if strings.EqualFold(dir, string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// PageRequest describes one slice of an ordered result set: a zero-based
// page number, a page size of at least one, and the sort field/direction.
// It is consumed uniformly by every list operation across all resources.
type PageRequest struct {
	PageNo   int
	PageSize int
	SortBy   string
	SortDir  SortDirection
}

// NewPageRequest validates the paging primitives and builds a PageRequest.
// SortBy is not validated here; each store checks it against the columns of
// the entity being queried.
func NewPageRequest(pageNo, pageSize int, sortBy, sortDir string) (PageRequest, error) {
	if pageNo < 0 {
		return PageRequest{}, fmt.Errorf("%w: page number must not be negative", ErrInvalidEntity)
	}
	if pageSize < 1 {
		return PageRequest{}, fmt.Errorf("%w: page size must be at least 1", ErrInvalidEntity)
	}
	if strings.TrimSpace(sortBy) == "" {
		sortBy = "id"
	}

	return PageRequest{
		PageNo:   pageNo,
		PageSize: pageSize,
		SortBy:   sortBy,
		SortDir:  ParseSortDirection(sortDir),
	}, nil
}

// Offset returns the number of rows skipped before this page starts.
func (p PageRequest) Offset() int {
	return p.PageNo * p.PageSize
}

// Page is one slice of an ordered result set together with the totals needed
// to build pagination metadata.
type Page[T any] struct {
	Items         []T
	PageNo        int
	PageSize      int
	TotalElements int64
	TotalPages    int
}

// NewPage assembles a Page from query results and the total row count of the
// unpaged result set.
func NewPage[T any](items []T, total int64, req PageRequest) *Page[T] {
	totalPages := int(total / int64(req.PageSize))
	if total%int64(req.PageSize) != 0 {
		totalPages++
	}

	return &Page[T]{
		Items:         items,
		PageNo:        req.PageNo,
		PageSize:      req.PageSize,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// IsLast reports whether this page is the final page of the result set.
// A page past the end of a non-empty result set is also last.
func (p *Page[T]) IsLast() bool {
	return p.PageNo >= p.TotalPages-1
}

// IsEmpty reports whether the whole result set, not just this page,
// contained no rows.
func (p *Page[T]) IsEmpty() bool {
	return p.TotalElements == 0
}
