// Package bnet implements the Bayesian network graph: a labeled vertex set
// plus an arc set over N vertices (data model §3), supporting AddArc,
// RemoveArc, HasArc, in/out neighbor iteration, a DirectedView that ignores
// arcs carrying an antiparallel partner, and directed-cycle detection.
//
// An undirected edge is represented as two antiparallel directed arcs
// (u->v and v->u); a directed edge is a single arc. DirectedView is the
// idiomatic replacement for the antiparallel-edge-filter / filtered-graph
// pattern: it is a read-only lens over a Graph, not a copy.
package bnet
