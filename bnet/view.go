package bnet

// DirectedView is a read-only lens over a Graph whose accessors ignore arcs
// that carry an antiparallel partner — i.e. it exposes only the genuinely
// directed part of a partially-directed graph, the replacement for the
// boost::filtered_graph / AntiParallelEdgeFilter friend-class coupling
// named in the re-architecture guidance.
type DirectedView struct {
	g *Graph
}

// Directed returns a DirectedView over g. It holds no state of its own;
// every call reflects g's current arcs.
func (g *Graph) Directed() DirectedView {
	return DirectedView{g: g}
}

// HasArc reports whether u->v is a genuinely directed arc (present, with no
// reverse v->u arc).
func (dv DirectedView) HasArc(u, v int) bool {
	return dv.g.HasArc(u, v) && !dv.g.HasArc(v, u)
}

// OutNeighbors returns the v with a genuinely directed arc u->v.
func (dv DirectedView) OutNeighbors(u int) []int {
	all := dv.g.OutNeighbors(u)
	out := all[:0:0]
	for _, v := range all {
		if !dv.g.HasArc(v, u) {
			out = append(out, v)
		}
	}
	return out
}

// InNeighbors returns the w with a genuinely directed arc w->u.
func (dv DirectedView) InNeighbors(u int) []int {
	all := dv.g.InNeighbors(u)
	out := all[:0:0]
	for _, w := range all {
		if !dv.g.HasArc(u, w) {
			out = append(out, w)
		}
	}
	return out
}

// N returns the vertex count of the underlying graph.
func (dv DirectedView) N() int { return dv.g.N() }
