package shared

import (
	"errors"
	"net/http"
	"strconv"
)

// Pagination bounds. DefaultLimit applies when the client omits the limit
// parameter; MaxLimit caps whatever the client asks for.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Pagination parameter errors, reported to clients as malformed input.
var (
	// ErrInvalidLimit is returned when the limit query parameter is not a
	// non-negative integer.
	ErrInvalidLimit = errors.New("limit must be a non-negative integer")

	// ErrInvalidOffset is returned when the offset query parameter is not a
	// non-negative integer.
	ErrInvalidOffset = errors.New("offset must be a non-negative integer")
)

// Page is a limit/offset page envelope: the requested slice of an ordered
// sequence plus the metadata needed to fetch the rest.
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Paginate slices the given ordered sequence according to limit and offset
// and wraps the result in a Page. An offset beyond the end yields an empty
// items slice, never an error.
func Paginate[T any](items []T, limit, offset int) Page[T] {
	total := len(items)

	start := offset
	if start > total {
		start = total
	}

	end := start + limit
	if end > total {
		end = total
	}

	page := Page[T]{
		Items:  items[start:end],
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}

	// Keep the empty page JSON-friendly: [] rather than null
	if page.Items == nil {
		page.Items = []T{}
	}
	return page
}

// PaginationParams extracts and validates the limit and offset query
// parameters from the request, applying defaults and the MaxLimit cap.
func PaginationParams(r *http.Request) (limit, offset int, err error) {
	limit = DefaultLimit
	offset = 0

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return 0, 0, ErrInvalidLimit
		}
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, ErrInvalidOffset
		}
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	return limit, offset, nil
}
