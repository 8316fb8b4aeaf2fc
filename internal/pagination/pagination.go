// Package pagination implements limit/offset pagination for list endpoints.
package pagination

import (
	"strconv"

	"gorm.io/gorm"
)

const (
	// DefaultLimit applies when no (or an unparseable) limit is supplied.
	DefaultLimit = 50
	// MaxLimit is the upper clamp for limit.
	MaxLimit = 200
)

// Params holds clamped limit/offset values.
type Params struct {
	Limit  int
	Offset int
}

// Parse builds Params from raw query string values. Non-numeric values fall
// back to the defaults silently; limit is clamped to [1, MaxLimit] and offset
// to >= 0.
func Parse(limitStr, offsetStr string) Params {
	limit := DefaultLimit
	if limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil {
			limit = v
		}
	}
	offset := 0
	if offsetStr != "" {
		if v, err := strconv.Atoi(offsetStr); err == nil {
			offset = v
		}
	}

	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Params{Limit: limit, Offset: offset}
}

// ListResponse is the envelope for list endpoints: total matching count plus
// the page of results.
type ListResponse[T any] struct {
	Count   int64 `json:"count"`
	Results []T   `json:"results"`
}

// NewListResponse wraps results, substituting an empty slice for nil so the
// JSON is always an array.
func NewListResponse[T any](results []T, count int64) ListResponse[T] {
	if results == nil {
		results = []T{}
	}
	return ListResponse[T]{Count: count, Results: results}
}

// Scope returns a GORM scope applying the params' OFFSET and LIMIT.
func Scope(p Params) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset).Limit(p.Limit)
	}
}

// Slice applies offset/limit to an already-merged in-memory list.
func Slice[T any](items []T, p Params) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}
