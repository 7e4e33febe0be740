package orient

import "github.com/asrivast28/ramble-go/bnet"

// canOrientR1 implements Meek's rule 1 (unshielded-collider preservation):
// orienting x->z is forced if some w->x is directed and w is not adjacent
// to z, since leaving x-z undirected would create a new, spurious
// unshielded collider w->x-z.
func canOrientR1(dv bnet.DirectedView, g *bnet.Graph, x, z int) bool {
	for _, w := range dv.InNeighbors(x) {
		if !g.HasEdge(w, z) {
			return true
		}
	}
	return false
}

// canOrientR2 implements Meek's rule 2 (acyclicity): orienting x->z is
// forced if a directed path x->y->z already exists, since the opposite
// orientation z->x would close it into a cycle.
func canOrientR2(dv bnet.DirectedView, x, z int) bool {
	for _, y := range dv.OutNeighbors(x) {
		if dv.HasArc(y, z) {
			return true
		}
	}
	return false
}

// canOrientR3 implements Meek's rule 3 (hybrid): orienting x->z is forced
// if at least two vertices w1 != w2 have x-w undirected and a directed arc
// w->z (x-w1->z and x-w2->z). Whether w1 and w2 are adjacent to each other
// is not checked.
func canOrientR3(g *bnet.Graph, x, z int) bool {
	count := 0
	for _, w := range g.Adjacent(z) {
		if w == x {
			continue
		}
		if g.IsUndirected(x, w) && g.Directed().HasArc(w, z) {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// removeArcAcyclic removes the arc u->v, then rolls it back if doing so
// introduced a directed cycle. Returns whether the removal stuck.
func removeArcAcyclic(g *bnet.Graph, u, v int) (bool, error) {
	if err := g.RemoveArc(u, v); err != nil {
		return false, err
	}
	if g.Directed().HasCycles() {
		if err := g.AddArc(u, v); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

// applyMeekRulesOnce makes a single pass over every undirected edge,
// orienting it in whichever direction rule R1, R2, or R3 forces (x->z
// tried before z->x), and reports whether any orientation was made.
func applyMeekRulesOnce(g *bnet.Graph) (bool, error) {
	changed := false
	for x := 0; x < g.N(); x++ {
		for _, z := range g.Adjacent(x) {
			if x >= z || !g.IsUndirected(x, z) {
				continue
			}
			dv := g.Directed()
			forwardForced := canOrientR1(dv, g, x, z) || canOrientR2(dv, x, z) || canOrientR3(g, x, z)
			if forwardForced {
				ok, err := removeArcAcyclic(g, z, x)
				if err != nil {
					return changed, err
				}
				if ok {
					changed = true
					continue
				}
			}
			backwardForced := canOrientR1(dv, g, z, x) || canOrientR2(dv, z, x) || canOrientR3(g, z, x)
			if backwardForced {
				ok, err := removeArcAcyclic(g, x, z)
				if err != nil {
					return changed, err
				}
				if ok {
					changed = true
				}
			}
		}
	}
	return changed, nil
}

// ApplyMeekRules runs spec §4.F Phase 3: repeatedly applies R1, R2, and R3
// until a full pass leaves every remaining edge unchanged, since each
// successful orientation strictly removes one antiparallel pair and the
// process must terminate.
func ApplyMeekRules(g *bnet.Graph) error {
	for {
		changed, err := applyMeekRulesOnce(g)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
	}
}
