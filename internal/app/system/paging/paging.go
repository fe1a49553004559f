// Package paging implements the offset pagination used by every paged
// listing: a 1-based "page" query parameter, a fixed page size, and
// skip = (page-1) * size. Out-of-range pages yield empty collections,
// never errors.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the number of rows shown per page in paged lists.
const PageSize = 9

// ParsePage extracts a 1-based page number from the named query parameter.
// Returns 1 if the parameter is absent, malformed, or < 1.
func ParsePage(r *http.Request, param string) int {
	s := query.Get(r, param)
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Skip returns the document offset for a 1-based page number.
func Skip(page int) int64 {
	return int64(page-1) * PageSize
}

// Limit returns the fetch limit as int64 for Mongo Find options.
func Limit() int64 { return PageSize }

// SortDirection maps the "sort" query parameter onto a Mongo sort order.
// Anything other than "asc" (including absence) means descending, newest
// first.
func SortDirection(r *http.Request) int {
	if query.Get(r, "sort") == "asc" {
		return 1
	}
	return -1
}

// SortParam returns the normalized sort value for echoing back into view
// links: "asc" or "desc".
func SortParam(r *http.Request) string {
	if query.Get(r, "sort") == "asc" {
		return "asc"
	}
	return "desc"
}

// Pages holds computed pagination display values for a listing.
type Pages struct {
	Current int
	Total   int
	HasPrev bool
	HasNext bool
	Prev    int
	Next    int
}

// Compute derives display pagination from a total row count and the
// current 1-based page. A total of zero yields a single empty page.
func Compute(total int64, current int) Pages {
	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	p := Pages{
		Current: current,
		Total:   totalPages,
		HasPrev: current > 1,
		HasNext: current < totalPages,
	}
	p.Prev = current - 1
	if p.Prev < 1 {
		p.Prev = 1
	}
	p.Next = current + 1
	if p.Next > totalPages {
		p.Next = totalPages
	}
	return p
}
