// Package linear computes geometry for the chart types that are a
// direct linear-scale mapping from value to position or size: bar,
// column, donut, dot, and scatter. Unlike the Sankey engine these need
// no graph structure; each row maps independently to one primitive.
package linear

import (
	"github.com/mkuhnert/chartflow/pkg/chart"
)

// Series is a labeled value list extracted from a table's first two
// columns. Rows with an empty label are dropped; values keep their
// sign (bars may point both ways).
type Series struct {
	Labels []string
	Values []float64
}

// FromTable reads column 0 as label and column 1 as value.
func FromTable(t chart.Table) Series {
	var s Series
	for _, row := range t.Rows {
		label := row.Cell(0)
		if label == "" {
			continue
		}
		s.Labels = append(s.Labels, label)
		s.Values = append(s.Values, row.Number(1))
	}
	return s
}

// IsEmpty reports whether the series has no usable rows.
func (s Series) IsEmpty() bool { return len(s.Values) == 0 }

// Max returns the largest absolute value in the series, or 0.
func (s Series) Max() float64 {
	max := 0.0
	for _, v := range s.Values {
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	return max
}

// Scale maps v from the domain [0, dMax] onto the range [0, rMax].
// A zero domain maps everything to 0.
func Scale(v, dMax, rMax float64) float64 {
	if dMax == 0 {
		return 0
	}
	return v / dMax * rMax
}

// Bar is one bar or column in frame units.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
}

// barGapRatio is the share of each band left empty between bars.
const barGapRatio = 0.2

// Bars lays the series out as horizontal bars, top to bottom in input
// order, lengths scaled to the widest value.
func Bars(s Series, width, height float64) []Bar {
	if s.IsEmpty() {
		return nil
	}
	band := height / float64(len(s.Values))
	gap := band * barGapRatio
	max := s.Max()

	bars := make([]Bar, len(s.Values))
	for i, v := range s.Values {
		bars[i] = Bar{
			Label: s.Labels[i],
			Value: v,
			X:     0,
			Y:     float64(i)*band + gap/2,
			W:     Scale(v, max, width),
			H:     band - gap,
		}
	}
	return bars
}

// Columns lays the series out as vertical columns, left to right,
// heights scaled to the tallest value and anchored to the baseline.
func Columns(s Series, width, height float64) []Bar {
	if s.IsEmpty() {
		return nil
	}
	band := width / float64(len(s.Values))
	gap := band * barGapRatio
	max := s.Max()

	cols := make([]Bar, len(s.Values))
	for i, v := range s.Values {
		h := Scale(v, max, height)
		cols[i] = Bar{
			Label: s.Labels[i],
			Value: v,
			X:     float64(i)*band + gap/2,
			Y:     height - h,
			W:     band - gap,
			H:     h,
		}
	}
	return cols
}

// Segment is one slice of a donut chart, in degrees from 12 o'clock.
type Segment struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	StartDeg float64 `json:"start_deg"`
	EndDeg   float64 `json:"end_deg"`
}

// Donut converts the series into angular segments proportional to each
// value's share of the positive total. Non-positive values are skipped;
// a donut of losses has no meaningful geometry.
func Donut(s Series) []Segment {
	total := 0.0
	for _, v := range s.Values {
		if v > 0 {
			total += v
		}
	}
	if total == 0 {
		return nil
	}

	var segs []Segment
	angle := 0.0
	for i, v := range s.Values {
		if v <= 0 {
			continue
		}
		sweep := v / total * 360
		segs = append(segs, Segment{
			Label:    s.Labels[i],
			Value:    v,
			StartDeg: angle,
			EndDeg:   angle + sweep,
		})
		angle += sweep
	}
	return segs
}

// Point is a positioned mark for dot and scatter charts.
type Point struct {
	Label string  `json:"label,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Dots places one mark per row: the row's band on the vertical axis,
// its value scaled along the horizontal axis.
func Dots(s Series, width, height float64) []Point {
	if s.IsEmpty() {
		return nil
	}
	band := height / float64(len(s.Values))
	max := s.Max()

	pts := make([]Point, len(s.Values))
	for i, v := range s.Values {
		pts[i] = Point{
			Label: s.Labels[i],
			X:     Scale(v, max, width),
			Y:     float64(i)*band + band/2,
		}
	}
	return pts
}

// Scatter reads columns 0 and 1 as numeric x/y pairs (column 2 as an
// optional label) and scales both axes independently to the frame.
func Scatter(t chart.Table, width, height float64) []Point {
	var xs, ys []float64
	var labels []string
	var xMax, yMax float64
	for _, row := range t.Rows {
		x, y := row.Number(0), row.Number(1)
		xs = append(xs, x)
		ys = append(ys, y)
		labels = append(labels, row.Cell(2))
		if x > xMax {
			xMax = x
		}
		if y > yMax {
			yMax = y
		}
	}

	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Point{
			Label: labels[i],
			X:     Scale(xs[i], xMax, width),
			Y:     height - Scale(ys[i], yMax, height),
		}
	}
	return pts
}
