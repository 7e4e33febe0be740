package cache

import (
	"sync"

	"github.com/asrivast28/ramble-go/bnset"
)

// Computer produces the initial (uncorrected) candidate set for a target
// variable. Implementations are the learning drivers' CandidatePC/CandidateMB
// hooks (component D); the cache only owns memoization and symmetry
// correction, not discovery itself.
//
// Computer implementations routinely call back into the Layer for a
// different cache (a PC computer asking for a candidate MB, or vice versa)
// while their own entry is being computed, so entry computation must never
// run under a lock a Computer could re-acquire.
type Computer func(target int) (*bnset.Set, error)

type entry struct {
	once sync.Once
	set  *bnset.Set
	err  error

	mu          sync.RWMutex
	symmetryOK  bool
	correctOnce sync.Once
	correctErr  error
}

// subcache pairs a target->*entry map with the mutex that protects inserting
// new entries into it. The mutex is held only long enough to look up or
// create an entry pointer, never across a Computer call, so two targets'
// candidate sets can be computed concurrently and a Computer may freely call
// back into either subcache without deadlocking its own goroutine.
type subcache struct {
	mu      sync.Mutex
	entries map[int]*entry
	compute Computer
}

func newSubcache(compute Computer) *subcache {
	return &subcache{entries: make(map[int]*entry), compute: compute}
}

func (s *subcache) entryFor(target int) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[target]
	if !ok {
		e = &entry{}
		s.entries[target] = e
	}
	return e
}

// raw returns target's uncorrected candidate set, computing it at most once
// regardless of how many goroutines race to request it.
func (s *subcache) raw(target int) (*entry, error) {
	e := s.entryFor(target)
	e.once.Do(func() {
		e.set, e.err = s.compute(target)
	})
	return e, e.err
}

// Layer is the Set Cache & Symmetry Layer (component C). One Layer holds
// both the PC and MB caches for a single learning run.
type Layer struct {
	pc *subcache
	mb *subcache
}

// NewLayer constructs a Layer backed by the given candidate-set computers.
func NewLayer(pcOf, mbOf Computer) *Layer {
	return &Layer{pc: newSubcache(pcOf), mb: newSubcache(mbOf)}
}

// GetCandidatePC returns the cached candidate PC set for target, computing
// it via the Computer if absent, along with whether it has already been
// symmetry-corrected.
func (l *Layer) GetCandidatePC(target int) (*bnset.Set, bool, error) {
	e, err := l.pc.raw(target)
	if err != nil {
		return nil, false, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.set, e.symmetryOK, nil
}

// GetCandidateMB returns the cached candidate MB set for target, computing
// it via the Computer if absent, along with whether it has already been
// symmetry-corrected.
func (l *Layer) GetCandidateMB(target int) (*bnset.Set, bool, error) {
	e, err := l.mb.raw(target)
	if err != nil {
		return nil, false, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.set, e.symmetryOK, nil
}

// GetPC forces target's PC cache entry and, unless already corrected,
// applies symmetry correction: removes any y whose cached PC(y) does not
// reciprocally contain target. The correction looks up PC(y) via the
// cache-only raw getter (never recursing into GetPC itself), which is what
// keeps this terminating regardless of cycles in the candidate graph. The
// correction itself runs at most once per target, under a per-entry guard,
// so concurrent callers never see a partially corrected set.
func (l *Layer) GetPC(target int) (*bnset.Set, error) {
	return correct(l.pc, target)
}

// GetMB behaves like GetPC but over the MB cache.
func (l *Layer) GetMB(target int) (*bnset.Set, error) {
	return correct(l.mb, target)
}

func correct(s *subcache, target int) (*bnset.Set, error) {
	e, err := s.raw(target)
	if err != nil {
		return nil, err
	}

	e.correctOnce.Do(func() {
		corrected := e.set.Clone()
		for _, y := range e.set.Elements() {
			yEntry, yErr := s.raw(y)
			if yErr != nil {
				e.correctErr = yErr
				return
			}
			if !yEntry.set.Contains(target) {
				_ = corrected.Erase(y)
			}
		}
		e.mu.Lock()
		e.set = corrected
		e.symmetryOK = true
		e.mu.Unlock()
	})

	if e.correctErr != nil {
		return nil, e.correctErr
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.set, nil
}
