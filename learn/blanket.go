package learn

import (
	"github.com/asrivast28/ramble-go/bnset"
	"github.com/asrivast28/ramble-go/cache"
)

// GS implements the Grow-Shrink algorithm: grow picks the first y (in fixed
// ascending iteration order) with ¬indep(target, y | MB); shrink then
// removes any y from MB if indep(target, y | MB\{y}).
// Grounded on original_source/detail/BlanketLearning.hpp's GS::pickBestCandidate
// (first match, not argmin) and the shared growShrink/shrinkMB protocol.
type GS struct{ Config }

func NewGS(cfg Config) *GS { return &GS{cfg} }

func (d *GS) Name() string { return "gs" }

func (d *GS) CandidateMB(target int, _ *cache.Layer) (*bnset.Set, error) {
	mb := bnset.New(d.N)
	for {
		universe := d.allExcept(target, mb.Elements()...)
		y, found, err := firstDependent(d.Config, target, mb, universe)
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
		_ = mb.Insert(y)
	}
	if err := shrinkMB(d.Config, target, mb); err != nil {
		return nil, err
	}
	return mb, nil
}

func (d *GS) CandidatePC(target int, cacheLayer *cache.Layer) (*bnset.Set, error) {
	mb, _, err := cacheLayer.GetCandidateMB(target)
	if err != nil {
		return nil, err
	}
	return pcFromMB(d.Config, cacheLayer, target, mb)
}

// IAMB grows by argmin p-value rather than first match; shrink is identical
// to GS's (performed once, after grow converges).
type IAMB struct{ Config }

func NewIAMB(cfg Config) *IAMB { return &IAMB{cfg} }

func (d *IAMB) Name() string { return "iamb" }

func (d *IAMB) CandidateMB(target int, _ *cache.Layer) (*bnset.Set, error) {
	mb := bnset.New(d.N)
	for {
		universe := d.allExcept(target, mb.Elements()...)
		y, pv, found, err := argminDependent(d.Config, target, mb, universe)
		if err != nil {
			return nil, err
		}
		if !found || d.Oracle.Indep(pv) {
			break
		}
		_ = mb.Insert(y)
	}
	if err := shrinkMB(d.Config, target, mb); err != nil {
		return nil, err
	}
	return mb, nil
}

func (d *IAMB) CandidatePC(target int, cacheLayer *cache.Layer) (*bnset.Set, error) {
	mb, _, err := cacheLayer.GetCandidateMB(target)
	if err != nil {
		return nil, err
	}
	return pcFromMB(d.Config, cacheLayer, target, mb)
}

// InterIAMB shrinks after every add (not just once at the end); if a shrink
// removes the variable that was just added, that round makes no progress.
type InterIAMB struct{ Config }

func NewInterIAMB(cfg Config) *InterIAMB { return &InterIAMB{cfg} }

func (d *InterIAMB) Name() string { return "inter.iamb" }

func (d *InterIAMB) CandidateMB(target int, _ *cache.Layer) (*bnset.Set, error) {
	mb := bnset.New(d.N)
	for {
		universe := d.allExcept(target, mb.Elements()...)
		y, pv, found, err := argminDependent(d.Config, target, mb, universe)
		if err != nil {
			return nil, err
		}
		if !found || d.Oracle.Indep(pv) {
			break
		}
		_ = mb.Insert(y)
		removed, err := shrinkMBRemoved(d.Config, target, mb)
		if err != nil {
			return nil, err
		}
		noProgress := false
		for _, r := range removed {
			if r == y {
				noProgress = true
			}
		}
		if noProgress {
			break
		}
	}
	return mb, nil
}

func (d *InterIAMB) CandidatePC(target int, cacheLayer *cache.Layer) (*bnset.Set, error) {
	mb, _, err := cacheLayer.GetCandidateMB(target)
	if err != nil {
		return nil, err
	}
	return pcFromMB(d.Config, cacheLayer, target, mb)
}

// firstDependent returns the first y in universe (ascending) with
// ¬indep(target, y | given), in the teacher-agnostic fixed iteration order
// GS requires.
func firstDependent(cfg Config, target int, given *bnset.Set, universe *bnset.Set) (int, bool, error) {
	for _, y := range universe.Elements() {
		pv, err := cfg.Oracle.PValue(target, y, given.Elements())
		if err != nil {
			return 0, false, err
		}
		if !cfg.Oracle.Indep(pv) {
			return y, true, nil
		}
	}
	return 0, false, nil
}

// argminDependent returns the y in universe minimizing pv(target, y | given),
// used by IAMB/InterIAMB's grow step.
func argminDependent(cfg Config, target int, given *bnset.Set, universe *bnset.Set) (int, float64, bool, error) {
	best := -1
	bestPV := 2.0 // any valid p-value is <= 1
	for _, y := range universe.Elements() {
		pv, err := cfg.Oracle.PValue(target, y, given.Elements())
		if err != nil {
			return 0, 0, false, err
		}
		if pv < bestPV {
			bestPV = pv
			best = y
		}
	}
	if best < 0 {
		return 0, 0, false, nil
	}
	return best, bestPV, true, nil
}

// shrinkMB removes from mb (in place) every y such that
// indep(target, y | mb\{y}), iterating a snapshot of mb's current members.
func shrinkMB(cfg Config, target int, mb *bnset.Set) error {
	_, err := shrinkMBRemoved(cfg, target, mb)
	return err
}

// shrinkMBRemoved behaves like shrinkMB but also returns which variables
// were removed, needed by InterIAMB's no-progress check.
func shrinkMBRemoved(cfg Config, target int, mb *bnset.Set) ([]int, error) {
	var removed []int
	for _, y := range mb.Elements() {
		rest := mb.Clone()
		_ = rest.Erase(y)
		pv, err := cfg.Oracle.PValue(target, y, rest.Elements())
		if err != nil {
			return nil, err
		}
		if cfg.Oracle.Indep(pv) {
			_ = mb.Erase(y)
			removed = append(removed, y)
		}
	}
	return removed, nil
}

// pcFromMB derives PC(target) from MB(target): for each y in MB(target),
// Z is the smaller of MB(target)\{y} and MB(y)\{target}; y is kept iff
// ¬indep_any_subset(target, y, Z, maxConditioning).
func pcFromMB(cfg Config, cacheLayer *cache.Layer, target int, mb *bnset.Set) (*bnset.Set, error) {
	pc := bnset.New(cfg.N)
	for _, y := range mb.Elements() {
		mbY, _, err := cacheLayer.GetCandidateMB(y)
		if err != nil {
			return nil, err
		}
		zTarget := mb.Clone()
		_ = zTarget.Erase(y)
		zY := mbY.Clone()
		_ = zY.Erase(target)
		z := smallerOf(zTarget, zY)

		indepAny, err := cfg.Oracle.IndepAnySubset(target, y, z, cfg.MaxConditioning)
		if err != nil {
			return nil, err
		}
		if !indepAny {
			_ = pc.Insert(y)
		}
	}
	return pc, nil
}
