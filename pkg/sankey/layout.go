package sankey

import (
	"github.com/mkuhnert/chartflow/pkg/chart"
)

// Options configures the layout engine. The zero value is usable;
// missing fields are defaulted by Build.
type Options struct {
	// NodePadding is the vertical gap between consecutive nodes in a
	// level, in percent of the band.
	NodePadding float64

	// Proportional disables the minimum-size floors for nodes and
	// flows, keeping every rendered size strictly proportional to
	// value. Use when visual accuracy matters more than the
	// readability of small flows.
	Proportional bool
}

func (o *Options) applyDefaults() {
	if o.NodePadding == 0 {
		o.NodePadding = chart.DefaultNodePadding
	}
}

// Node is a laid-out node: its level, computed totals, and vertical
// geometry in percent of the band.
type Node struct {
	Label      string
	Level      int
	Inflow     float64
	Outflow    float64
	Throughput float64
	Top        float64
	Height     float64
}

// Level is an ordered bucket of nodes sharing a horizontal position.
// Node order within a level follows first-appearance order in the
// input, which is also the stacking order.
type Level struct {
	Index int
	Nodes []Node
}

// Layout is the structured result handed to the markup renderer: the
// levels with their sized and positioned nodes, the flows with endpoint
// geometry, and the global height-scale factor that was applied.
type Layout struct {
	Levels []Level `json:"levels"`
	Flows  []Flow  `json:"flows"`
	Scale  float64 `json:"scale"`
}

// LevelCount returns the number of horizontal levels.
func (l *Layout) LevelCount() int { return len(l.Levels) }

// NodeCount returns the total number of nodes across all levels.
func (l *Layout) NodeCount() int {
	n := 0
	for _, lv := range l.Levels {
		n += len(lv.Nodes)
	}
	return n
}

// Build runs the full layout pipeline on a table whose first three
// columns are read as source, target, value. The model is rebuilt from
// scratch on every call; nothing is shared between renders.
//
// Build returns ErrEmptyGraph when no rows survive filtering, or a
// *StructuralError for self-loops and non-converging (cyclic) level
// assignment. All other anomalies are handled by filtering.
func Build(t chart.Table, opts Options) (*Layout, error) {
	opts.applyDefaults()

	raw, err := buildEdges(t)
	if err != nil {
		return nil, err
	}
	edges := Aggregate(raw)

	g := newGraph(edges)
	if err := g.assignLevels(); err != nil {
		return nil, err
	}

	s := sizeNodes(g, opts)
	flows := positionFlows(g, s, opts)

	levels := make([]Level, g.levelCount())
	for i, bucket := range g.nodesByLevel() {
		nodes := make([]Node, len(bucket))
		for j, idx := range bucket {
			n := g.nodes[idx]
			nodes[j] = Node{
				Label:      n.label,
				Level:      n.level,
				Inflow:     n.in,
				Outflow:    n.out,
				Throughput: n.throughput(),
				Top:        s.top[idx],
				Height:     s.height[idx],
			}
		}
		levels[i] = Level{Index: i, Nodes: nodes}
	}

	return &Layout{Levels: levels, Flows: flows, Scale: s.scale}, nil
}
