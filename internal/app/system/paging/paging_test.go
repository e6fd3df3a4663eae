package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParseStart(t *testing.T) {
	tests := []struct {
		target string
		want   int
	}{
		{"/kurse", 1},
		{"/kurse?start=51", 51},
		{"/kurse?start=0", 1},
		{"/kurse?start=-4", 1},
		{"/kurse?start=abc", 1},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.target, nil)
		if got := ParseStart(r); got != tt.want {
			t.Errorf("ParseStart(%q): got %d, want %d", tt.target, got, tt.want)
		}
	}
}

func TestSliceWithSize(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5, 6, 7}

	page, rng := sliceWithSize(rows, 1, 3)
	if len(page) != 3 || page[0] != 1 {
		t.Errorf("first page: got %v", page)
	}
	if rng.HasPrev || !rng.HasNext || rng.Start != 1 || rng.End != 3 || rng.NextStart != 4 {
		t.Errorf("first range: got %+v", rng)
	}

	page, rng = sliceWithSize(rows, 7, 3)
	if len(page) != 1 || page[0] != 7 {
		t.Errorf("last page: got %v", page)
	}
	if !rng.HasPrev || rng.HasNext || rng.PrevStart != 4 || rng.Total != 7 {
		t.Errorf("last range: got %+v", rng)
	}

	page, rng = sliceWithSize(rows, 20, 3)
	if len(page) != 0 {
		t.Errorf("past end: got %v", page)
	}
	if rng.Start != 0 || rng.End != 0 {
		t.Errorf("past end range: got %+v", rng)
	}
}

func TestSlice_Empty(t *testing.T) {
	page, rng := Slice([]string(nil), 1)
	if len(page) != 0 {
		t.Errorf("got %v, want empty", page)
	}
	if rng.HasNext || rng.HasPrev || rng.Total != 0 {
		t.Errorf("got %+v", rng)
	}
}
