package bnet

import "strconv"

// Visitation states for the three-color DFS, adapted from dfs.DetectCycles
// in the teacher's dfs package to integer-indexed directed arcs.
const (
	white = 0
	gray  = 1
	black = 2
)

// HasCycles reports whether dv's genuinely-directed arcs contain a directed
// cycle.
// Complexity: O(V + E).
func (dv DirectedView) HasCycles() bool {
	state := make([]int, dv.N())
	for v := 0; v < dv.N(); v++ {
		if state[v] == white && dv.hasCycleFrom(v, state) {
			return true
		}
	}
	return false
}

func (dv DirectedView) hasCycleFrom(start int, state []int) bool {
	state[start] = gray
	for _, w := range dv.OutNeighbors(start) {
		switch state[w] {
		case white:
			if dv.hasCycleFrom(w, state) {
				return true
			}
		case gray:
			return true
		}
	}
	state[start] = black
	return false
}

// Cycles returns the directed cycles in dv that close a back edge of one
// three-color DFS, each as a closed vertex sequence [v0, v1, ..., v0],
// deduplicated up to rotation. It returns at least one cycle whenever dv
// has any, but not every simple cycle: a cycle whose closing path runs
// through a vertex the DFS has already finished is not reported.
// Complexity: O((V + E)·C) for C distinct cycles found, following the
// teacher's three-color DFS with back-edge cycle extraction (dfs/cycle.go),
// generalized here to collect every back edge rather than stop at the
// first one.
func (dv DirectedView) Cycles() [][]int {
	state := make([]int, dv.N())
	var path []int
	seen := make(map[string]struct{})
	var cycles [][]int

	for v := 0; v < dv.N(); v++ {
		if state[v] == white {
			dv.cyclesVisit(v, state, &path, seen, &cycles)
		}
	}
	return cycles
}

func (dv DirectedView) cyclesVisit(u int, state []int, path *[]int, seen map[string]struct{}, cycles *[][]int) {
	state[u] = gray
	*path = append(*path, u)

	for _, w := range dv.OutNeighbors(u) {
		switch state[w] {
		case white:
			dv.cyclesVisit(w, state, path, seen, cycles)
		case gray:
			idx := indexOfInt(*path, w)
			seq := append(append([]int(nil), (*path)[idx:]...), w)
			sig := canonicalCycleSig(seq)
			if _, dup := seen[sig]; !dup {
				seen[sig] = struct{}{}
				*cycles = append(*cycles, seq)
			}
		}
	}

	*path = (*path)[:len(*path)-1]
	state[u] = black
}

func indexOfInt(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// canonicalCycleSig returns a rotation-invariant signature for a closed
// cycle [v0, ..., v0], used only for dedup: the minimal rotation of the
// open cycle (directed cycles aren't reversed, unlike the teacher's
// undirected canonicalization in dfs/cycle.go).
func canonicalCycleSig(closed []int) string {
	base := closed[:len(closed)-1]
	best := rotation(base, 0)
	for r := 1; r < len(base); r++ {
		cand := rotation(base, r)
		if less(cand, best) {
			best = cand
		}
	}
	parts := make([]string, len(best))
	for i, v := range best {
		parts[i] = strconv.Itoa(v)
	}
	sig := ""
	for i, p := range parts {
		if i > 0 {
			sig += ","
		}
		sig += p
	}
	return sig
}

func rotation(base []int, r int) []int {
	n := len(base)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = base[(i+r)%n]
	}
	return out
}

func less(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
