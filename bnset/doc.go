// Package bnset provides a word-packed bitset representation of a set of
// variable indices drawn from a fixed universe [0, N).
//
// It is the Variable Set of the structure-learning engine: candidate PC/MB
// sets, conditioning sets, and removed-neighbor sets are all bnset.Set
// values. The representation is a slice of uint64 words sized once at
// construction and never reallocated, mirroring the fixed-capacity
// bitset idiom used throughout the constraint-based learning algorithms.
package bnset
