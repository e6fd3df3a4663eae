package barchart

import (
	"strings"
	"testing"
)

func TestBuild_Empty(t *testing.T) {
	c := Build(nil, "Kurse")
	if !c.Empty() {
		t.Fatal("expected empty chart")
	}
	svg, err := c.SVG()
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if svg != "" {
		t.Errorf("expected no markup for empty chart, got %q", svg)
	}
}

func TestBuild_Layout(t *testing.T) {
	c := Build([]Point{{"Nov.", 1}, {"Dez.", 2}, {"Jan.", 0}}, "Kurse")

	if len(c.Bars) != 3 {
		t.Fatalf("bars: got %d, want 3", len(c.Bars))
	}
	if c.Width != MinWidth {
		t.Errorf("Width: got %d, want %d", c.Width, MinWidth)
	}
	if c.Bars[0].Fill == c.Bars[1].Fill {
		t.Error("expected alternating fills")
	}
	if c.Bars[0].Fill != c.Bars[2].Fill {
		t.Error("expected fills to repeat every second bar")
	}
	if c.Bars[1].Tooltip != "2 Kurse" {
		t.Errorf("Tooltip: got %q, want %q", c.Bars[1].Tooltip, "2 Kurse")
	}
	if c.Bars[2].Path != "" {
		t.Error("zero count should not draw a bar")
	}
	// The tallest bar reaches the top of the plot area.
	if !strings.Contains(c.Bars[1].Path, " 0.0") {
		t.Errorf("tallest bar should touch y=0, path %q", c.Bars[1].Path)
	}
}

func TestChart_SVG(t *testing.T) {
	c := Build([]Point{{"März", 3}}, "Kurse")
	svg, err := c.SVG()
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := string(svg)
	for _, want := range []string{"<svg", "März", "3 Kurse", "<path"} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %q: %s", want, out)
		}
	}
}

func TestBuild_WideChart(t *testing.T) {
	var pts []Point
	for i := 0; i < 8; i++ {
		pts = append(pts, Point{Label: "x", Count: i + 1})
	}
	c := Build(pts, "Kurse")
	if c.Width != 8*SlotWidth {
		t.Errorf("Width: got %d, want %d", c.Width, 8*SlotWidth)
	}
}
