// Package learn implements the learning drivers (component D): the family
// of constraint-based structure-learning algorithms that share one loop
// skeleton — maintain a running candidate set, repeatedly select the best
// next variable under an algorithm-specific criterion, add or remove it
// under an algorithm-specific test — and differ only in score function,
// stop condition, and shrink policy (spec §4.D).
//
// Blanket family (GS, IAMB, InterIAMB) grows/shrinks a Markov blanket
// directly and derives PC from it. Local family (MMPC, HITON, SI-HITON,
// GetPC) grows a parents-and-children set directly and derives MB from it
// by spouse-finding. Global family (PCStable, PCStable2) operates on all
// pairs at once and produces a full skeleton rather than a per-target set;
// see global.go.
//
// Every Driver is re-architected per §9 as a small interface rather than a
// template-parametrized class hierarchy: CandidatePC/CandidateMB take a
// cache.Layer so that computing another variable's candidate set (needed by
// PC-from-MB derivation and MB-from-PC spouse-finding) goes through the same
// memoization every other call does, including the cache's symmetry
// correction.
package learn
