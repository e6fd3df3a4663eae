// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows shown in section lists.
const PageSize = 50

// ParseStart extracts the human-friendly "start" query parameter (1-based index).
// Returns 1 if not present or invalid.
func ParseStart(r *http.Request) int {
	s := query.Get(r, "start")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Range holds computed display range values for a paginated list.
type Range struct {
	Start     int // 1-based start index (0 if no results)
	End       int // 1-based end index (0 if no results)
	Total     int
	HasPrev   bool
	HasNext   bool
	PrevStart int // start value for previous page link
	NextStart int // start value for next page link
}

// ComputeRange calculates display range values given the current start index,
// the number of items shown and the total number of items.
func ComputeRange(start, shown, total int) Range {
	return computeRangeWithSize(start, shown, total, PageSize)
}

func computeRangeWithSize(start, shown, total, pageSize int) Range {
	if shown == 0 {
		return Range{Total: total, PrevStart: 1, NextStart: 1}
	}

	prevStart := start - pageSize
	if prevStart < 1 {
		prevStart = 1
	}

	end := start + shown - 1
	return Range{
		Start:     start,
		End:       end,
		Total:     total,
		HasPrev:   start > 1,
		HasNext:   end < total,
		PrevStart: prevStart,
		NextStart: end + 1,
	}
}

// Slice returns the page of rows beginning at the 1-based start index
// together with its display range. A start past the end yields an empty page.
func Slice[T any](rows []T, start int) ([]T, Range) {
	return sliceWithSize(rows, start, PageSize)
}

func sliceWithSize[T any](rows []T, start, pageSize int) ([]T, Range) {
	if start < 1 {
		start = 1
	}
	from := start - 1
	if from >= len(rows) {
		return nil, computeRangeWithSize(start, 0, len(rows), pageSize)
	}
	to := from + pageSize
	if to > len(rows) {
		to = len(rows)
	}
	page := rows[from:to]
	return page, computeRangeWithSize(start, len(page), len(rows), pageSize)
}
