package chartsvg

import (
	"bytes"
	"fmt"
	"math"

	"github.com/mkuhnert/chartflow/pkg/linear"
)

const dotRadius = 4.0

// RenderBars draws horizontal bars, one per series entry.
func RenderBars(bars []linear.Bar, width, height float64, opts ...RenderOption) []byte {
	return renderRects(bars, width, height, opts...)
}

// RenderColumns draws vertical, baseline-anchored columns.
func RenderColumns(cols []linear.Bar, width, height float64, opts ...RenderOption) []byte {
	return renderRects(cols, width, height, opts...)
}

func renderRects(bars []linear.Bar, width, height float64, opts ...RenderOption) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	openSVG(&buf, width, height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(r.title))
	}
	for i, b := range bars {
		fmt.Fprintf(&buf, "  <rect class=\"bar bar-%d\" x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\"><title>%s: %g</title></rect>\n",
			i, b.X, b.Y, b.W, b.H, escape(b.Label), b.Value)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// RenderDonut draws annular segments clockwise from 12 o'clock.
func RenderDonut(segs []linear.Segment, width, height float64, opts ...RenderOption) []byte {
	r := newRenderer(opts...)

	cx, cy := width/2, height/2
	outer := math.Min(width, height) * 0.45
	inner := outer * 0.6

	var buf bytes.Buffer
	openSVG(&buf, width, height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(r.title))
	}
	for i, s := range segs {
		fmt.Fprintf(&buf, "  <path class=\"segment segment-%d\" d=\"%s\"><title>%s: %g</title></path>\n",
			i, annularPath(cx, cy, inner, outer, s.StartDeg, s.EndDeg-s.StartDeg), escape(s.Label), s.Value)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// annularPath builds a donut slice spanning sweep degrees clockwise
// from start, where 0 degrees is 12 o'clock.
func annularPath(cx, cy, inner, outer, start, sweep float64) string {
	if sweep >= 360 {
		sweep = 359.999 // a full-circle arc collapses to a point in SVG
	}
	x0, y0 := polar(cx, cy, outer, start)
	x1, y1 := polar(cx, cy, outer, start+sweep)
	x2, y2 := polar(cx, cy, inner, start+sweep)
	x3, y3 := polar(cx, cy, inner, start)
	large := 0
	if sweep > 180 {
		large = 1
	}
	return fmt.Sprintf("M %.2f,%.2f A %.2f,%.2f 0 %d 1 %.2f,%.2f L %.2f,%.2f A %.2f,%.2f 0 %d 0 %.2f,%.2f Z",
		x0, y0, outer, outer, large, x1, y1,
		x2, y2, inner, inner, large, x3, y3)
}

func polar(cx, cy, radius, deg float64) (float64, float64) {
	rad := (deg - 90) * math.Pi / 180
	return cx + radius*math.Cos(rad), cy + radius*math.Sin(rad)
}

// RenderDots draws one circle per point (dot and scatter charts share
// this shape; they differ only in how points are produced).
func RenderDots(pts []linear.Point, width, height float64, opts ...RenderOption) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	openSVG(&buf, width, height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(r.title))
	}
	for i, p := range pts {
		fmt.Fprintf(&buf, "  <circle class=\"dot dot-%d\" cx=\"%.2f\" cy=\"%.2f\" r=\"%.1f\"><title>%s</title></circle>\n",
			i, p.X, p.Y, dotRadius, escape(p.Label))
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
