package sankey

// Rect is a node rendered as an axis-aligned rectangle in frame units.
type Rect struct {
	Label string  `json:"label"`
	Level int     `json:"level"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
}

// Ribbon is a flow rendered as a tapered band: two vertical extents,
// one at the source node's right edge and one at the target node's
// left edge, in frame units.
type Ribbon struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`

	X1 float64 `json:"x1"` // source node right edge
	Y1 float64 `json:"y1"` // band top at the source
	H1 float64 `json:"h1"` // band height at the source
	X2 float64 `json:"x2"` // target node left edge
	Y2 float64 `json:"y2"` // band top at the target
	H2 float64 `json:"h2"` // band height at the target
}

// Primitives is the renderable form of a layout.
type Primitives struct {
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	Rects   []Rect   `json:"rects"`
	Ribbons []Ribbon `json:"ribbons"`
}

// Primitives converts the percentage-based layout into frame
// coordinates: one rectangle per node and one tapered ribbon per flow.
// Levels are spread across the frame width left to right; thickness is
// the rendered width of a node's bar. This is a pure coordinate
// transform; no sizing policy lives here.
func (l *Layout) Primitives(width, height, thickness float64) Primitives {
	p := Primitives{Width: width, Height: height}

	span := 0.0
	if n := len(l.Levels); n > 1 {
		span = (width - thickness) / float64(n-1)
	}
	levelX := func(level int) float64 { return float64(level) * span }

	// Rects first, and remember each node's column for ribbon endpoints.
	type nodePos struct{ x, top, h float64 }
	pos := make(map[string]nodePos, l.NodeCount())
	for _, lv := range l.Levels {
		x := levelX(lv.Index)
		for _, n := range lv.Nodes {
			y := n.Top / 100 * height
			h := n.Height / 100 * height
			p.Rects = append(p.Rects, Rect{
				Label: n.Label,
				Level: n.Level,
				X:     x,
				Y:     y,
				W:     thickness,
				H:     h,
			})
			pos[n.Label] = nodePos{x: x, top: y, h: h}
		}
	}

	for _, f := range l.Flows {
		src := pos[f.Source]
		dst := pos[f.Target]
		p.Ribbons = append(p.Ribbons, Ribbon{
			Source: f.Source,
			Target: f.Target,
			Value:  f.Value,
			X1:     src.x + thickness,
			Y1:     f.FromTop / 100 * height,
			H1:     f.FromHeight / 100 * height,
			X2:     dst.x,
			Y2:     f.ToTop / 100 * height,
			H2:     f.ToHeight / 100 * height,
		})
	}
	return p
}
