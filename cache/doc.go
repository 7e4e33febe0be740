// Package cache implements the per-target neighborhood cache and its lazy
// symmetry correction: two maps (candidate PC, candidate MB) from target
// variable to (set, symmetry_ok), populated on demand and never evicted
// within one learning run.
//
// Symmetry correction runs at most once per target: GetPC forces the cache
// entry, and if not yet corrected, removes any y from PC(x) that does not
// reciprocally carry x in its own cached PC(y) — without triggering y's own
// correction, which is what keeps recursion bounded.
package cache
