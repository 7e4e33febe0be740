package bnet

import "sync"

// Graph is an arc set over a fixed vertex set [0, N). It is safe for
// concurrent use: a single muArc RWMutex guards the adjacency maps,
// following the teacher's per-concern-lock convention (one lock per
// logically independent piece of state — here there is only one).
type Graph struct {
	muArc sync.RWMutex

	n   int
	out []map[int]struct{} // out[u] = {v : arc u->v exists}
	in  []map[int]struct{} // in[v]  = {u : arc u->v exists}
}

// NewGraph constructs an empty Graph over n vertices, numbered [0, n).
func NewGraph(n int) *Graph {
	g := &Graph{
		n:   n,
		out: make([]map[int]struct{}, n),
		in:  make([]map[int]struct{}, n),
	}
	for i := 0; i < n; i++ {
		g.out[i] = make(map[int]struct{})
		g.in[i] = make(map[int]struct{})
	}
	return g
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

func (g *Graph) inRange(v int) bool { return v >= 0 && v < g.n }

// AddArc inserts the arc u->v. Returns ErrVariableRange, ErrSelfArc, or
// ErrArcExists.
// Complexity: O(1).
func (g *Graph) AddArc(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrVariableRange
	}
	if u == v {
		return ErrSelfArc
	}
	g.muArc.Lock()
	defer g.muArc.Unlock()
	if _, exists := g.out[u][v]; exists {
		return ErrArcExists
	}
	g.out[u][v] = struct{}{}
	g.in[v][u] = struct{}{}
	return nil
}

// RemoveArc deletes the arc u->v. Returns ErrVariableRange or ErrArcNotFound.
// Complexity: O(1).
func (g *Graph) RemoveArc(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrVariableRange
	}
	g.muArc.Lock()
	defer g.muArc.Unlock()
	if _, exists := g.out[u][v]; !exists {
		return ErrArcNotFound
	}
	delete(g.out[u], v)
	delete(g.in[v], u)
	return nil
}

// HasArc reports whether the arc u->v is present.
// Complexity: O(1).
func (g *Graph) HasArc(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	g.muArc.RLock()
	defer g.muArc.RUnlock()
	_, exists := g.out[u][v]
	return exists
}

// HasEdge reports whether u and v are adjacent in either direction.
func (g *Graph) HasEdge(u, v int) bool {
	return g.HasArc(u, v) || g.HasArc(v, u)
}

// IsUndirected reports whether u and v are connected by antiparallel arcs
// (both u->v and v->u present), i.e. an undirected edge in the skeleton.
func (g *Graph) IsUndirected(u, v int) bool {
	return g.HasArc(u, v) && g.HasArc(v, u)
}

// OutNeighbors returns the vertices v with an arc u->v, ascending.
func (g *Graph) OutNeighbors(u int) []int {
	g.muArc.RLock()
	defer g.muArc.RUnlock()
	return sortedKeys(g.out[u])
}

// InNeighbors returns the vertices w with an arc w->u, ascending.
func (g *Graph) InNeighbors(u int) []int {
	g.muArc.RLock()
	defer g.muArc.RUnlock()
	return sortedKeys(g.in[u])
}

// Adjacent returns the union of in- and out-neighbors of u, ascending,
// deduplicated — the skeleton's neighbor set regardless of orientation.
func (g *Graph) Adjacent(u int) []int {
	g.muArc.RLock()
	defer g.muArc.RUnlock()
	set := make(map[int]struct{}, len(g.out[u])+len(g.in[u]))
	for v := range g.out[u] {
		set[v] = struct{}{}
	}
	for v := range g.in[u] {
		set[v] = struct{}{}
	}
	return sortedKeys(set)
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	insertionSort(out)
	return out
}

func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}
