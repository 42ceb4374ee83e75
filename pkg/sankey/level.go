package sankey

// assignLevels places every node on a discrete horizontal level using
// longest-path propagation from the source nodes: for each edge u→v the
// candidate level of v is level(u)+1, and v keeps the maximum candidate
// ever proposed. This guarantees level(v) > level(u) for every edge, so
// flows always point strictly rightward.
//
// Propagation uses a worklist; a node is re-enqueued whenever its level
// increases. Nodes unreachable from any source keep the default level 0.
//
// A node's level can legitimately rise at most nodeCount-1 times, so the
// raise count is bounded by nodeCount; exceeding it means a cycle is
// feeding level increases forever, which is reported as a fatal
// StructuralError instead of looping.
func (g *graph) assignLevels() error {
	queue := g.sources()
	raises := make([]int, len(g.nodes))
	bound := len(g.nodes)

	for len(queue) > 0 {
		ui := queue[0]
		queue = queue[1:]

		for _, ei := range g.outAdj[ui] {
			vi := g.index[g.edges[ei].Target]
			candidate := g.nodes[ui].level + 1
			if candidate <= g.nodes[vi].level {
				continue
			}
			g.nodes[vi].level = candidate
			raises[vi]++
			if raises[vi] > bound {
				return &StructuralError{Reason: ReasonCycle, Node: g.nodes[vi].label}
			}
			queue = append(queue, vi)
		}
	}

	// A cycle with no entry from any source never reaches the worklist
	// and leaves its edges level-to-same-level. Every edge must end on a
	// strictly higher level, so any violation left here is a cycle.
	for _, e := range g.edges {
		ui := g.index[e.Source]
		vi := g.index[e.Target]
		if g.nodes[vi].level <= g.nodes[ui].level {
			return &StructuralError{Reason: ReasonCycle, Node: e.Target}
		}
	}
	return nil
}
