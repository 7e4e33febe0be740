// Package ciquery implements the conditional independence oracle: the G²
// statistic over contingency tables materialized on demand from a
// counter.Table, its chi-squared p-value, and the compound predicates
// (Indep, MaxPValueSubset, IndepAnySubset) the learning drivers query.
//
// An Oracle's scratch buffers are owned, mutable state reused across
// queries to avoid reallocating on every call (the oracle is the
// performance-critical numeric kernel of the system). Query holds a mutex
// around that state, so one Oracle may be shared by several goroutines;
// their queries then run one at a time.
package ciquery
