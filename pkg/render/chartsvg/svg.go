package chartsvg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mkuhnert/chartflow/pkg/sankey"
)

// RenderOption configures the SVG renderer.
type RenderOption func(*renderer)

type renderer struct {
	title      string
	showLabels bool
}

// WithTitle adds a title element to the output.
func WithTitle(title string) RenderOption { return func(r *renderer) { r.title = title } }

// WithoutLabels suppresses node label text.
func WithoutLabels() RenderOption { return func(r *renderer) { r.showLabels = false } }

func newRenderer(opts ...RenderOption) renderer {
	r := renderer{showLabels: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// labelGap is the space between a node bar and its label text.
const labelGap = 4.0

// RenderSankey assembles SVG markup for a Sankey layout's primitives.
// Color policy stays with the caller: every rect and ribbon carries a
// stable class index (node-N, flow-N) for external styling.
func RenderSankey(p sankey.Primitives, opts ...RenderOption) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	openSVG(&buf, p.Width, p.Height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(r.title))
	}

	classIdx := map[string]int{}
	classFor := func(label string) int {
		if i, ok := classIdx[label]; ok {
			return i
		}
		classIdx[label] = len(classIdx)
		return classIdx[label]
	}

	// Ribbons first so node bars draw on top of their endpoints.
	for _, rb := range p.Ribbons {
		fmt.Fprintf(&buf, "  <path class=\"flow flow-%d\" d=\"%s\"><title>%s → %s: %g</title></path>\n",
			classFor(rb.Source), ribbonPath(rb), escape(rb.Source), escape(rb.Target), rb.Value)
	}

	for _, rect := range p.Rects {
		fmt.Fprintf(&buf, "  <rect class=\"node node-%d\" x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\"/>\n",
			classFor(rect.Label), rect.X, rect.Y, rect.W, rect.H)
	}

	if r.showLabels {
		lastLevel := 0
		for _, rect := range p.Rects {
			if rect.Level > lastLevel {
				lastLevel = rect.Level
			}
		}
		for _, rect := range p.Rects {
			x := rect.X + rect.W + labelGap
			anchor := "start"
			if rect.Level == lastLevel && lastLevel > 0 {
				// Last column's labels point inward so they stay in frame.
				x = rect.X - labelGap
				anchor = "end"
			}
			fmt.Fprintf(&buf, "  <text class=\"label\" x=\"%.2f\" y=\"%.2f\" text-anchor=\"%s\" dominant-baseline=\"middle\">%s</text>\n",
				x, rect.Y+rect.H/2, anchor, escape(rect.Label))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// RenderEmpty produces a placeholder frame for a chart with nothing to
// draw, such as a table whose rows were all filtered out.
func RenderEmpty(width, height float64, opts ...RenderOption) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	openSVG(&buf, width, height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(r.title))
	}
	fmt.Fprintf(&buf, "  <text class=\"empty\" x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" dominant-baseline=\"middle\">no data</text>\n",
		width/2, height/2)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// ribbonPath builds the tapered band: straight verticals at both node
// edges, cubic beziers across the gap with horizontal tangents.
func ribbonPath(r sankey.Ribbon) string {
	mx := (r.X1 + r.X2) / 2
	return fmt.Sprintf("M %.2f,%.2f C %.2f,%.2f %.2f,%.2f %.2f,%.2f L %.2f,%.2f C %.2f,%.2f %.2f,%.2f %.2f,%.2f Z",
		r.X1, r.Y1,
		mx, r.Y1, mx, r.Y2, r.X2, r.Y2,
		r.X2, r.Y2+r.H2,
		mx, r.Y2+r.H2, mx, r.Y1+r.H1, r.X1, r.Y1+r.H1)
}

func openSVG(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
}

// escape covers the characters that matter inside SVG text and
// attribute content.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string { return escaper.Replace(s) }
