package learn

import (
	"github.com/asrivast28/ramble-go/bnset"
	"github.com/asrivast28/ramble-go/cache"
)

// removeFalsePC performs false-positive removal: iterate a snapshot of pc,
// remove y whose indep_any_subset(target, y, pc\{y}, maxConditioning) holds.
// Shared by MMPC, HITON, SI-HITON, and GetPC (spec §4.D).
func removeFalsePC(cfg Config, target int, pc *bnset.Set) (*bnset.Set, error) {
	for _, y := range pc.Elements() {
		rest := pc.Clone()
		_ = rest.Erase(y)
		indepAny, err := cfg.Oracle.IndepAnySubset(target, y, rest, cfg.MaxConditioning)
		if err != nil {
			return nil, err
		}
		if indepAny {
			_ = pc.Erase(y)
		}
	}
	return pc, nil
}

// spouseMB derives MB(target) = PC(target) ∪ {spouses} from an already
// computed PC(target): for each y in PC(target), for each z in
// PC(y) \ (PC(target) ∪ {target}), find the subset S of PC(target)
// maximizing pv(target, z | S); if that shows independence, test
// ¬indep(target, z | S ∪ {y}) — if dependent once y is added, z is a spouse.
// Grounded on original_source/detail/DirectLearning.hpp's
// DirectLearning::getCandidateMB.
func spouseMB(cfg Config, cacheLayer *cache.Layer, target int, pc *bnset.Set) (*bnset.Set, error) {
	mb := pc.Clone()
	for _, y := range pc.Elements() {
		pcY, _, err := cacheLayer.GetCandidatePC(y)
		if err != nil {
			return nil, err
		}
		for _, z := range pcY.Elements() {
			if z == target || pc.Contains(z) {
				continue
			}
			pvStar, witness, err := cfg.Oracle.MaxPValueSubset(target, z, pc, cfg.MaxConditioning)
			if err != nil {
				return nil, err
			}
			if !cfg.Oracle.Indep(pvStar) {
				continue
			}
			withY := append(append([]int(nil), witness...), y)
			pv, err := cfg.Oracle.PValue(target, z, withY)
			if err != nil {
				return nil, err
			}
			if !cfg.Oracle.Indep(pv) {
				_ = mb.Insert(z)
			}
		}
	}
	return mb, nil
}

// MMPC grows PC by repeatedly adding the candidate with the smallest
// max-p-value over subsets of the current PC, stopping once even the best
// candidate is independent; then runs false-positive removal once.
type MMPC struct{ Config }

func NewMMPC(cfg Config) *MMPC { return &MMPC{cfg} }

func (d *MMPC) Name() string { return "mmpc" }

func (d *MMPC) CandidatePC(target int, _ *cache.Layer) (*bnset.Set, error) {
	pc := bnset.New(d.N)
	candidates := d.allExcept(target)
	for !candidates.Empty() {
		best, bestPV, found, err := argminMaxPValue(d.Config, target, pc, candidates)
		if err != nil {
			return nil, err
		}
		if !found || d.Oracle.Indep(bestPV) {
			break
		}
		_ = pc.Insert(best)
		_ = candidates.Erase(best)
	}
	return removeFalsePC(d.Config, target, pc)
}

func (d *MMPC) CandidateMB(target int, cacheLayer *cache.Layer) (*bnset.Set, error) {
	pc, _, err := cacheLayer.GetCandidatePC(target)
	if err != nil {
		return nil, err
	}
	return spouseMB(d.Config, cacheLayer, target, pc)
}

// HITON grows PC by the marginal (unconditional) p-value, adding the
// argmin unconditionally every iteration and running false-positive removal
// after every add.
type HITON struct{ Config }

func NewHITON(cfg Config) *HITON { return &HITON{cfg} }

func (d *HITON) Name() string { return "hiton" }

func (d *HITON) CandidatePC(target int, _ *cache.Layer) (*bnset.Set, error) {
	pc := bnset.New(d.N)
	candidates := d.allExcept(target)
	for !candidates.Empty() {
		best, _, found, err := argminMarginalPValue(d.Config, target, candidates)
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
		_ = candidates.Erase(best)
		_ = pc.Insert(best)
		pc, err = removeFalsePC(d.Config, target, pc)
		if err != nil {
			return nil, err
		}
	}
	return pc, nil
}

func (d *HITON) CandidateMB(target int, cacheLayer *cache.Layer) (*bnset.Set, error) {
	pc, _, err := cacheLayer.GetCandidatePC(target)
	if err != nil {
		return nil, err
	}
	return spouseMB(d.Config, cacheLayer, target, pc)
}

// SIHITON (SI-HITON-PC) is HITON with early candidate pruning: before
// picking the argmin each iteration, candidates whose marginal p-value
// already shows independence are dropped from consideration.
type SIHITON struct{ Config }

func NewSIHITON(cfg Config) *SIHITON { return &SIHITON{cfg} }

func (d *SIHITON) Name() string { return "si.hiton.pc" }

func (d *SIHITON) CandidatePC(target int, _ *cache.Layer) (*bnset.Set, error) {
	pc := bnset.New(d.N)
	candidates := d.allExcept(target)
	for {
		filtered, err := pruneMarginalIndependent(d.Config, target, candidates)
		if err != nil {
			return nil, err
		}
		if filtered.Empty() {
			break
		}
		best, _, _, err := argminMarginalPValue(d.Config, target, filtered)
		if err != nil {
			return nil, err
		}
		_ = candidates.Erase(best)
		_ = pc.Insert(best)
		pc, err = removeFalsePC(d.Config, target, pc)
		if err != nil {
			return nil, err
		}
	}
	return pc, nil
}

func (d *SIHITON) CandidateMB(target int, cacheLayer *cache.Layer) (*bnset.Set, error) {
	pc, _, err := cacheLayer.GetCandidatePC(target)
	if err != nil {
		return nil, err
	}
	return spouseMB(d.Config, cacheLayer, target, pc)
}

// GetPC combines MMPC's conditional max-p-value scoring with SI-HITON's
// early-pruning style, dropping candidates whose max-p-value over subsets
// of the current PC already exceeds alpha.
type GetPC struct{ Config }

func NewGetPC(cfg Config) *GetPC { return &GetPC{cfg} }

func (d *GetPC) Name() string { return "getpc" }

func (d *GetPC) CandidatePC(target int, _ *cache.Layer) (*bnset.Set, error) {
	pc := bnset.New(d.N)
	candidates := d.allExcept(target)
	for {
		best, bestPV, found, err := argminMaxPValuePruned(d.Config, target, pc, candidates)
		if err != nil {
			return nil, err
		}
		if !found || d.Oracle.Indep(bestPV) {
			break
		}
		_ = candidates.Erase(best)
		_ = pc.Insert(best)
	}
	return removeFalsePC(d.Config, target, pc)
}

func (d *GetPC) CandidateMB(target int, cacheLayer *cache.Layer) (*bnset.Set, error) {
	pc, _, err := cacheLayer.GetCandidatePC(target)
	if err != nil {
		return nil, err
	}
	return spouseMB(d.Config, cacheLayer, target, pc)
}

func argminMarginalPValue(cfg Config, target int, candidates *bnset.Set) (int, float64, bool, error) {
	best := -1
	bestPV := 2.0
	for _, y := range candidates.Elements() {
		pv, err := cfg.Oracle.PValue(target, y, nil)
		if err != nil {
			return 0, 0, false, err
		}
		if pv < bestPV {
			bestPV = pv
			best = y
		}
	}
	return best, bestPV, best >= 0, nil
}

func pruneMarginalIndependent(cfg Config, target int, candidates *bnset.Set) (*bnset.Set, error) {
	out := bnset.New(cfg.N)
	for _, y := range candidates.Elements() {
		pv, err := cfg.Oracle.PValue(target, y, nil)
		if err != nil {
			return nil, err
		}
		if !cfg.Oracle.Indep(pv) {
			_ = out.Insert(y)
		}
	}
	return out, nil
}

func argminMaxPValue(cfg Config, target int, pc *bnset.Set, candidates *bnset.Set) (int, float64, bool, error) {
	best := -1
	bestPV := 2.0
	for _, y := range candidates.Elements() {
		pv, _, err := cfg.Oracle.MaxPValueSubset(target, y, pc, cfg.MaxConditioning)
		if err != nil {
			return 0, 0, false, err
		}
		if pv < bestPV {
			bestPV = pv
			best = y
		}
	}
	return best, bestPV, best >= 0, nil
}

func argminMaxPValuePruned(cfg Config, target int, pc *bnset.Set, candidates *bnset.Set) (int, float64, bool, error) {
	best := -1
	bestPV := 2.0
	for _, y := range candidates.Elements() {
		pv, _, err := cfg.Oracle.MaxPValueSubset(target, y, pc, cfg.MaxConditioning)
		if err != nil {
			return 0, 0, false, err
		}
		if cfg.Oracle.Indep(pv) {
			continue // early pruning: already independent, drop from consideration
		}
		if pv < bestPV {
			bestPV = pv
			best = y
		}
	}
	return best, bestPV, best >= 0, nil
}
