// Package barchart lays out a simple vertical bar chart and renders it as
// inline SVG for server-rendered pages.
package barchart

import (
	"bytes"
	"fmt"
	"html/template"
)

// Layout constants for the dashboard chart.
const (
	Height      = 200
	BarWidth    = 32
	SlotWidth   = 64
	LabelHeight = 24
	Radius      = 6
	MinWidth    = 320
)

var fills = [2]string{"oklch(0.48 0.22 264)", "oklch(0.60 0.18 264)"}

// Point is one input pair.
type Point struct {
	Label string
	Count int
}

// Bar is a laid-out bar.
type Bar struct {
	Label   string
	Count   int
	Path    string // SVG path with rounded top corners; empty for zero counts
	Fill    string
	LabelX  float64
	Tooltip string
}

// Chart is the laid-out chart.
type Chart struct {
	Width  int
	Height int
	LabelY int
	Bars   []Bar
}

// Empty reports whether there is nothing to draw.
func (c Chart) Empty() bool { return len(c.Bars) == 0 }

// Build lays out points left to right. unit names what is counted in the
// tooltip, e.g. "Kurse" gives "3 Kurse".
func Build(points []Point, unit string) Chart {
	width := len(points) * SlotWidth
	if width < MinWidth {
		width = MinWidth
	}
	c := Chart{Width: width, Height: Height, LabelY: Height - 6}
	if len(points) == 0 {
		return c
	}

	max := 0
	for _, p := range points {
		if p.Count > max {
			max = p.Count
		}
	}

	plot := float64(Height - LabelHeight)
	slot := float64(width) / float64(len(points))
	for i, p := range points {
		center := slot*float64(i) + slot/2
		b := Bar{
			Label:   p.Label,
			Count:   p.Count,
			Fill:    fills[i%2],
			LabelX:  center,
			Tooltip: fmt.Sprintf("%d %s", p.Count, unit),
		}
		if max > 0 && p.Count > 0 {
			h := plot * float64(p.Count) / float64(max)
			b.Path = roundedTop(center-BarWidth/2, plot-h, BarWidth, h, Radius)
		}
		c.Bars = append(c.Bars, b)
	}
	return c
}

// roundedTop returns a path for a w×h bar at (x,y) with radius r on the top corners.
func roundedTop(x, y, w, h, r float64) string {
	if r > h {
		r = h
	}
	if r > w/2 {
		r = w / 2
	}
	return fmt.Sprintf("M%.1f %.1fL%.1f %.1fQ%.1f %.1f %.1f %.1fL%.1f %.1fQ%.1f %.1f %.1f %.1fL%.1f %.1fZ",
		x, y+h,
		x, y+r,
		x, y, x+r, y,
		x+w-r, y,
		x+w, y, x+w, y+r,
		x+w, y+h,
	)
}

var svgTmpl = template.Must(template.New("barchart").Parse(
	`<svg class="bar-chart" viewBox="0 0 {{.Width}} {{.Height}}" width="100%" height="{{.Height}}" role="img" preserveAspectRatio="none">` +
		`{{range .Bars}}<g class="bar">` +
		`{{if .Path}}<path d="{{.Path}}" fill="{{.Fill}}"><title>{{.Label}}: {{.Tooltip}}</title></path>{{end}}` +
		`<text x="{{printf "%.1f" .LabelX}}" y="{{$.LabelY}}" text-anchor="middle" font-size="12">{{.Label}}</text>` +
		`</g>{{end}}</svg>`))

// SVG renders the chart. An empty chart renders as an empty string.
func (c Chart) SVG() (template.HTML, error) {
	if c.Empty() {
		return "", nil
	}
	var buf bytes.Buffer
	if err := svgTmpl.Execute(&buf, c); err != nil {
		return "", fmt.Errorf("render bar chart: %w", err)
	}
	return template.HTML(buf.String()), nil
}
