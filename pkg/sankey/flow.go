package sankey

import (
	"cmp"
	"slices"
)

// Flow is one aggregated edge plus its computed endpoint geometry.
// The two ends are sized independently from their own node's geometry,
// so FromHeight and ToHeight usually differ: the flow tapers.
type Flow struct {
	Source string
	Target string
	Value  float64

	FromLevel int
	ToLevel   int

	// FromTop/FromHeight describe the flow's band at the source node's
	// outbound edge, ToTop/ToHeight at the target node's inbound edge,
	// all in percent of the vertical band.
	FromTop    float64
	FromHeight float64
	ToTop      float64
	ToHeight   float64
}

// positionFlows computes every flow's tapered band at both ends.
//
// Tentative heights claim a share of each endpoint node proportional to
// the flow's share of that node's throughput. Flows are then ordered by
// (source level, target level) with input order breaking ties, stacked
// gap-free from each node's top (outgoing and incoming sides
// independently), and finally adjusted so no flow renders thinner than
// the minimum visible thickness.
func positionFlows(g *graph, s *sizing, opts Options) []Flow {
	flows := make([]Flow, len(g.edges))
	for i, e := range g.edges {
		src := g.nodes[g.index[e.Source]]
		dst := g.nodes[g.index[e.Target]]
		flows[i] = Flow{
			Source:     e.Source,
			Target:     e.Target,
			Value:      e.Value,
			FromLevel:  src.level,
			ToLevel:    dst.level,
			FromHeight: e.Value / src.throughput() * s.height[src.index],
			ToHeight:   e.Value / dst.throughput() * s.height[dst.index],
		}
	}

	slices.SortStableFunc(flows, func(a, b Flow) int {
		if c := cmp.Compare(a.FromLevel, b.FromLevel); c != 0 {
			return c
		}
		return cmp.Compare(a.ToLevel, b.ToLevel)
	})

	// Group flow indices by node side, in stacking order.
	outFlows := make([][]int, len(g.nodes))
	inFlows := make([][]int, len(g.nodes))
	for i, f := range flows {
		si := g.index[f.Source]
		ti := g.index[f.Target]
		outFlows[si] = append(outFlows[si], i)
		inFlows[ti] = append(inFlows[ti], i)
	}

	if !opts.Proportional {
		// The visible minimum shrinks with the global scale factor so
		// it stays the same share of the final rendered band.
		effMin := minFlowHeight
		if s.scale > 1 {
			effMin = minFlowHeight / s.scale
		}
		for ni := range g.nodes {
			enforceMinimum(flows, outFlows[ni], effMin, fromSide)
			enforceMinimum(flows, inFlows[ni], effMin, toSide)
		}
	}

	stack(flows, outFlows, inFlows, s)
	return flows
}

// side selects which end of a flow an adjustment applies to.
type side int

const (
	fromSide side = iota
	toSide
)

func flowHeight(f *Flow, sd side) *float64 {
	if sd == fromSide {
		return &f.FromHeight
	}
	return &f.ToHeight
}

// enforceMinimum raises every flow in group thinner than min up to min,
// borrowing the needed space proportionally from the flows at or above
// the minimum: each shrinks by needed/largeTotal, capped at 1. When all
// flows are below the minimum there is nothing to borrow from; all are
// set to the minimum and the node's span may overflow, which is
// accepted rather than corrected further.
func enforceMinimum(flows []Flow, group []int, min float64, sd side) {
	needed := 0.0
	largeTotal := 0.0
	for _, i := range group {
		h := *flowHeight(&flows[i], sd)
		if h < min {
			needed += min - h
		} else {
			largeTotal += h
		}
	}
	if needed == 0 {
		return
	}

	if largeTotal == 0 {
		for _, i := range group {
			*flowHeight(&flows[i], sd) = min
		}
		return
	}

	ratio := needed / largeTotal
	if ratio > 1 {
		ratio = 1
	}
	for _, i := range group {
		h := flowHeight(&flows[i], sd)
		if *h < min {
			*h = min
		} else {
			*h *= 1 - ratio
		}
	}
}

// stack assigns FromTop/ToTop by stacking each node's flows without
// gaps from the node's top, in the already-established order.
func stack(flows []Flow, outFlows, inFlows [][]int, s *sizing) {
	for ni := range outFlows {
		acc := s.top[ni]
		for _, i := range outFlows[ni] {
			flows[i].FromTop = acc
			acc += flows[i].FromHeight
		}
		acc = s.top[ni]
		for _, i := range inFlows[ni] {
			flows[i].ToTop = acc
			acc += flows[i].ToHeight
		}
	}
}
