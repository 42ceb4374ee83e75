package sankey

// node is one entry in the per-render graph arena. Indices into the
// arena, not labels, are used throughout the layout stages.
type node struct {
	label string
	index int

	in  float64 // total inbound value
	out float64 // total outbound value

	inDeg  int
	outDeg int

	level int
}

// throughput is the value driving the node's rendered height.
func (n *node) throughput() float64 {
	if n.in > n.out {
		return n.in
	}
	return n.out
}

// maxDegree is the larger of in-degree and out-degree; every connecting
// flow endpoint must fit inside the node's vertical extent.
func (n *node) maxDegree() int {
	if n.inDeg > n.outDeg {
		return n.inDeg
	}
	return n.outDeg
}

// graph is an immutable arena built once per render from the aggregated
// edge list. Nodes appear in first-occurrence order of their labels in
// the edge list, which fixes the stacking order within a level.
type graph struct {
	nodes []*node
	index map[string]int
	edges []Edge

	outAdj [][]int // node index -> outgoing edge indices
	inAdj  [][]int // node index -> incoming edge indices
}

// newGraph indexes the aggregated edges into an arena. Every node
// referenced by any edge appears exactly once.
func newGraph(edges []Edge) *graph {
	g := &graph{
		index: make(map[string]int, len(edges)),
		edges: edges,
	}

	intern := func(label string) int {
		if i, ok := g.index[label]; ok {
			return i
		}
		i := len(g.nodes)
		g.index[label] = i
		g.nodes = append(g.nodes, &node{label: label, index: i})
		g.outAdj = append(g.outAdj, nil)
		g.inAdj = append(g.inAdj, nil)
		return i
	}

	for ei, e := range edges {
		si := intern(e.Source)
		ti := intern(e.Target)
		g.outAdj[si] = append(g.outAdj[si], ei)
		g.inAdj[ti] = append(g.inAdj[ti], ei)
		g.nodes[si].out += e.Value
		g.nodes[si].outDeg++
		g.nodes[ti].in += e.Value
		g.nodes[ti].inDeg++
	}
	return g
}

// sources returns the indices of nodes with no inbound edges. Every
// edge carries positive value, so zero in-degree and zero inbound value
// coincide.
func (g *graph) sources() []int {
	var src []int
	for _, n := range g.nodes {
		if n.inDeg == 0 {
			src = append(src, n.index)
		}
	}
	return src
}

// levelCount is max(level)+1 across all nodes.
func (g *graph) levelCount() int {
	max := 0
	for _, n := range g.nodes {
		if n.level > max {
			max = n.level
		}
	}
	return max + 1
}

// nodesByLevel buckets node indices by level, preserving
// first-appearance order within each bucket.
func (g *graph) nodesByLevel() [][]int {
	buckets := make([][]int, g.levelCount())
	for _, n := range g.nodes {
		buckets[n.level] = append(buckets[n.level], n.index)
	}
	return buckets
}
