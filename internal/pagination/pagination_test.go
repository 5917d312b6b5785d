package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 1, ParseNumber(""))
	assert.Equal(t, 1, ParseNumber("abc"))
	assert.Equal(t, 1, ParseNumber("0"))
	assert.Equal(t, 1, ParseNumber("-3"))
	assert.Equal(t, 7, ParseNumber("7"))
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total      int
		totalPages int
	}{
		{0, 1},
		{1, 1},
		{9, 1},
		{10, 1},
		{11, 2},
		{20, 2},
		{21, 3},
		{105, 11},
	}
	for _, tc := range cases {
		page := New(tc.total, 1)
		assert.Equal(t, tc.totalPages, page.TotalPages, "total=%d", tc.total)
	}
}

func TestClampToValidRange(t *testing.T) {
	// 25 posts -> 3 pages
	page := New(25, 99)
	assert.Equal(t, 3, page.Number)
	assert.False(t, page.HasNext())
	assert.True(t, page.HasPrev())

	page = New(25, 0)
	assert.Equal(t, 1, page.Number)

	// empty listing still has one page
	page = New(0, 5)
	assert.Equal(t, 1, page.Number)
	assert.False(t, page.HasNext())
	assert.False(t, page.HasPrev())
}

func TestOffsetAndLimit(t *testing.T) {
	page := New(35, 1)
	assert.Equal(t, 0, page.Offset())
	assert.Equal(t, PageSize, page.Limit())

	page = New(35, 3)
	assert.Equal(t, 20, page.Offset())

	// last page holds the remainder: 35 mod 10 = 5 entities live past offset 30
	page = New(35, 4)
	assert.Equal(t, 30, page.Offset())
	assert.False(t, page.HasNext())
}

func TestNeighborNumbers(t *testing.T) {
	page := New(30, 2)
	assert.Equal(t, 1, page.PrevNumber())
	assert.Equal(t, 3, page.NextNumber())
	assert.True(t, page.HasNext())
	assert.True(t, page.HasPrev())
}
