package orient

import (
	"sort"

	"github.com/asrivast28/ramble-go/bnet"
	"github.com/asrivast28/ramble-go/bnset"
	"github.com/asrivast28/ramble-go/ciquery"
	"github.com/asrivast28/ramble-go/learn"
)

// ColliderTest decides, for an unshielded triple y-x-z (x adjacent to both y
// and z, y and z not adjacent to each other), whether x is a collider
// (y -> x <- z) and returns the p-value used to break ties when multiple
// candidate orientations compete for the same edge.
type ColliderTest func(x, y, z int) (collider bool, pvalue float64, err error)

// LocalColliderTest implements spec §4.F's Blanket/Local rule: x is a
// collider on y-x-z unless some subset of S = smaller(MB(y)\{z}, MB(z)\{y}),
// with x excluded, already d-separates y and z — in which case x was never
// needed and isn't a collider.
func LocalColliderTest(oracle *ciquery.Oracle, mbOf func(int) (*bnset.Set, error), maxConditioning int) ColliderTest {
	return func(x, y, z int) (bool, float64, error) {
		mbY, err := mbOf(y)
		if err != nil {
			return false, 0, err
		}
		mbZ, err := mbOf(z)
		if err != nil {
			return false, 0, err
		}
		sy := mbY.Clone()
		_ = sy.Erase(z)
		sz := mbZ.Clone()
		_ = sz.Erase(y)
		s := sy
		if sz.Size() < sy.Size() {
			s = sz
		}
		s = s.Clone()
		_ = s.Erase(x)

		found, err := oracle.IndepAnySubset(y, z, s, maxConditioning)
		if err != nil {
			return false, 0, err
		}
		pv, err := oracle.PValue(y, z, nil)
		if err != nil {
			return false, 0, err
		}
		return !found, pv, nil
	}
}

// GlobalColliderTest implements spec §4.F's PC-Stable rule: look up the
// removed-edge record for (y, z); x is a collider iff it is absent from the
// stored d-separating set. An (y, z) pair with no stored record (never
// removed with a non-empty conditioning set, e.g. still adjacent or removed
// at s=0) falls back to the Local rule's direct p-value query as the only
// evidence available.
func GlobalColliderTest(oracle *ciquery.Oracle, removed []learn.RemovedEdge) ColliderTest {
	index := make(map[[2]int]learn.RemovedEdge, len(removed))
	for _, r := range removed {
		index[[2]int{r.U, r.V}] = r
	}
	return func(x, y, z int) (bool, float64, error) {
		u, v := y, z
		if u > v {
			u, v = v, u
		}
		if rec, ok := index[[2]int{u, v}]; ok {
			return !rec.DSep.Contains(x), rec.PValue, nil
		}
		pv, err := oracle.PValue(y, z, nil)
		if err != nil {
			return false, 0, err
		}
		return true, pv, nil
	}
}

// candidate is one detected v-structure awaiting orientation.
type candidate struct {
	x, y, z int
	pvalue  float64
}

// OrientVStructures runs spec §4.F Phase 1: for every vertex x, for every
// unshielded pair {y, z} in its neighborhood, test decides whether x is a
// collider; confirmed colliders are oriented y->x<-z by removing the two
// arcs running the other way. Candidates are applied in ascending p-value
// order so the strongest evidence is committed first; an orientation that
// would remove an arc already removed by an earlier candidate is skipped.
func OrientVStructures(g *bnet.Graph, test ColliderTest) error {
	var candidates []candidate
	for x := 0; x < g.N(); x++ {
		neighbors := g.Adjacent(x)
		for i := 0; i < len(neighbors); i++ {
			for j := i + 1; j < len(neighbors); j++ {
				y, z := neighbors[i], neighbors[j]
				if g.HasEdge(y, z) {
					continue // shielded, not a v-structure candidate
				}
				isCollider, pv, err := test(x, y, z)
				if err != nil {
					return err
				}
				if isCollider {
					candidates = append(candidates, candidate{x: x, y: y, z: z, pvalue: pv})
				}
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].pvalue < candidates[j].pvalue })

	for _, c := range candidates {
		if g.HasArc(c.x, c.y) {
			_ = g.RemoveArc(c.x, c.y)
		}
		if g.HasArc(c.x, c.z) {
			_ = g.RemoveArc(c.x, c.z)
		}
	}
	return nil
}
