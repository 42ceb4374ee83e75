package sankey

// Sizing constants, in percent of a level's vertical band.
const (
	// minNodeHeight keeps a node visible however small its throughput.
	minNodeHeight = 2.0

	// minFlowHeight is the minimum visible thickness of one flow; a
	// node must be tall enough to fit all its flow endpoints at this
	// unit, and the flow positioner enforces the same floor per flow.
	minFlowHeight = 0.8

	// raisedPadding replaces the configured padding in levels where
	// more than half the nodes sit at the minimum-height floor, keeping
	// their labels from colliding.
	raisedPadding = 3.0
)

// sizing holds the vertical geometry computed for every node, indexed
// by arena node index. top and height are percentages of the band;
// scale is the global height-scale factor (1 when no level overflowed).
type sizing struct {
	top    []float64
	height []float64
	scale  float64
}

// sizeNodes computes each node's height proportional to its share of
// the level's maximum throughput, stacks nodes top-to-bottom in input
// order with padding, normalizes globally when any level overflows the
// 100% band, and finally centers each level vertically.
//
// In proportional mode the minimum-height floor and the raised-padding
// rule are skipped so heights stay strictly proportional to value.
func sizeNodes(g *graph, opts Options) *sizing {
	s := &sizing{
		top:    make([]float64, len(g.nodes)),
		height: make([]float64, len(g.nodes)),
		scale:  1,
	}
	levels := g.nodesByLevel()

	maxSpan := 0.0
	for _, bucket := range levels {
		maxThroughput := 0.0
		for _, idx := range bucket {
			if t := g.nodes[idx].throughput(); t > maxThroughput {
				maxThroughput = t
			}
		}

		floored := 0
		for _, idx := range bucket {
			n := g.nodes[idx]
			h := n.throughput() / maxThroughput * 100
			if !opts.Proportional {
				floor := minNodeHeight
				if f := float64(n.maxDegree()) * minFlowHeight; f > floor {
					floor = f
				}
				if h < floor {
					h = floor
					floored++
				}
			}
			s.height[idx] = h
		}

		pad := opts.NodePadding
		if !opts.Proportional && floored*2 > len(bucket) {
			pad = raisedPadding
		}

		running := 0.0
		for _, idx := range bucket {
			s.top[idx] = running
			running += s.height[idx] + pad
		}
		if span := running - pad; span > maxSpan {
			maxSpan = span
		}
	}

	// Raising small nodes never shrinks large ones, so a level can
	// require more than the 100% band. Scale every level by the same
	// factor to preserve cross-level proportions.
	if maxSpan > 100 {
		s.scale = maxSpan / 100
		for i := range s.top {
			s.top[i] /= s.scale
			s.height[i] /= s.scale
		}
	}

	// Each level starts stacked at 0; shift its content down so short
	// levels end up vertically centered against the tallest one.
	for _, bucket := range levels {
		if len(bucket) == 0 {
			continue
		}
		first := bucket[0]
		last := bucket[len(bucket)-1]
		span := s.top[last] + s.height[last] - s.top[first]
		if shift := (100 - span) / 2; shift > 0 {
			for _, idx := range bucket {
				s.top[idx] += shift
			}
		}
	}

	return s
}
