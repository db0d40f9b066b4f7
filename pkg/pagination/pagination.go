// Package pagination slices listings into fixed-size pages driven by the
// ?page= request parameter.
package pagination

import "strconv"

// PageSize is the number of items shown per page.
const PageSize = 10

// Page describes one page of a listing.
type Page struct {
	Number     int
	TotalPages int
	TotalItems int64
	Offset     int
	Limit      int
	HasPrev    bool
	HasNext    bool
	PrevNumber int
	NextNumber int
}

// New builds a Page for the given total item count and raw page parameter.
// A missing or malformed parameter means page 1; out-of-range numbers are
// clamped to the nearest valid page. An empty listing still produces one
// valid, empty page.
func New(total int64, rawPage string) Page {
	number := parsePage(rawPage)

	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	p := Page{
		Number:     number,
		TotalPages: totalPages,
		TotalItems: total,
		Offset:     (number - 1) * PageSize,
		Limit:      PageSize,
		HasPrev:    number > 1,
		HasNext:    number < totalPages,
	}
	if p.HasPrev {
		p.PrevNumber = number - 1
	}
	if p.HasNext {
		p.NextNumber = number + 1
	}
	return p
}

func parsePage(raw string) int {
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}
