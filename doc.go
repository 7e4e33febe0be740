// Package ramble is a constraint-based Bayesian network structure learning
// toolkit.
//
// It discovers a variable's parents-and-children or Markov blanket set from
// discrete observational data using conditional-independence testing, and
// assembles full network skeletons from those sets before orienting them
// into a CPDAG.
//
// Under the hood, everything is organized under focused subpackages:
//
//	counter/     — column-major contingency table storage
//	ciquery/     — the G² conditional-independence oracle
//	bnset/       — fixed-universe bitset for variable sets
//	cache/       — memoized, symmetry-corrected PC/MB lookups
//	learn/       — the nine structure-learning drivers (GS, IAMB, MMPC, ...)
//	coordinator/ — block distribution and imbalance repair for parallel runs
//	bnet/        — the arc-set graph type and its directed view
//	orient/      — v-structure detection, cycle breaking and Meek's rules
//	reader/      — dataset ingestion, including striped parallel reads
//	cmd/ramble/  — the CLI entry point
package ramble
