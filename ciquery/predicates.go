package ciquery

import "github.com/asrivast28/ramble-go/bnset"

// MaxPValueSubset searches subsets of given, cardinality 0..min(given.Size(),
// maxSize), in lexicographic-by-cardinality order, for the subset giving the
// strongest evidence of independence (the maximum p-value). It returns that
// p-value and the witnessing subset (as variable indices), and exits as soon
// as the running maximum exceeds alpha — independence is already proven and
// no stronger witness is needed. This resolves spec.md's
// min_pvalue_subset/min_pvalue_over_subsets description to the predicate the
// learning drivers actually call (see DESIGN.md, Open Question 3).
func (o *Oracle) MaxPValueSubset(x, y int, given *bnset.Set, maxSize int) (float64, []int, error) {
	return o.maxPValueSubsetSeed(x, y, given, nil, maxSize)
}

// MaxPValueSubsetSeed behaves like MaxPValueSubset but always unions seed
// into every tested conditioning subset, keeping fixed variables in every
// tested set. Spouse-finding MB derivation does not call it: it uses
// MaxPValueSubset and adds y to the witness afterwards.
func (o *Oracle) MaxPValueSubsetSeed(x, y int, given *bnset.Set, seed []int, maxSize int) (float64, []int, error) {
	return o.maxPValueSubsetSeed(x, y, given, seed, maxSize)
}

func (o *Oracle) maxPValueSubsetSeed(x, y int, given *bnset.Set, seed []int, maxSize int) (float64, []int, error) {
	// NewSubsetIterator always yields the empty subset first, so the loop
	// below runs at least once even when given is empty (the marginal or
	// seed-only test).
	best := -1.0
	var bestSet []int

	it := bnset.NewSubsetIterator(given, maxSize)
	for it.Next() {
		cand := append(append([]int(nil), seed...), it.Elements()...)
		pv, err := o.PValue(x, y, cand)
		if err != nil {
			return 0, nil, err
		}
		if pv > best {
			best = pv
			bestSet = cand
		}
		if o.Indep(best) {
			break
		}
	}
	return best, bestSet, nil
}

// IndepAnySubset reports whether any subset of given, cardinality
// 0..min(given.Size(), maxSize), makes x and y independent, exiting at the
// first p-value found above alpha.
func (o *Oracle) IndepAnySubset(x, y int, given *bnset.Set, maxSize int) (bool, error) {
	it := bnset.NewSubsetIterator(given, maxSize)
	for it.Next() {
		pv, err := o.PValue(x, y, it.Elements())
		if err != nil {
			return false, err
		}
		if o.Indep(pv) {
			return true, nil
		}
	}
	return false, nil
}
