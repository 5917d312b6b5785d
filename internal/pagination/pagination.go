package pagination

import (
	"math"
	"strconv"
)

// PageSize is the fixed number of posts per listing page.
const PageSize = 10

// Page describes one slice of an ordered listing. Handlers feed Offset/Limit
// into the repository query and pass the Page itself to the template.
type Page struct {
	Number     int // 1-based
	TotalPages int
	TotalCount int
	Size       int
}

// ParseNumber converts the raw `page` query parameter to a 1-based page
// number. Anything non-numeric or below 1 degrades to page 1.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// New clamps the requested page number to the valid range for totalCount
// entities. Out-of-range requests land on the nearest valid page instead of
// failing; an empty listing still has one (empty) page.
func New(totalCount, number int) Page {
	totalPages := int(math.Ceil(float64(totalCount) / float64(PageSize)))
	if totalPages < 1 {
		totalPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}
	return Page{
		Number:     number,
		TotalPages: totalPages,
		TotalCount: totalCount,
		Size:       PageSize,
	}
}

// Offset returns the number of entities to skip for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit returns the maximum number of entities on this page.
func (p Page) Limit() int {
	return p.Size
}

// HasNext reports whether a later page exists.
func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

// HasPrev reports whether an earlier page exists.
func (p Page) HasPrev() bool {
	return p.Number > 1
}

// NextNumber returns the following page number for template links.
func (p Page) NextNumber() int { return p.Number + 1 }

// PrevNumber returns the preceding page number for template links.
func (p Page) PrevNumber() int { return p.Number - 1 }
