// Package counter holds the observed dataset column-major and answers the
// queries the CI oracle needs as its substrate: arity(v), the raw column
// for a variable, and the dataset's variable/observation counts.
//
// Counts are not precomputed here — counter is deliberately the thin
// storage layer; joint count tables are materialized on demand by
// package ciquery.
package counter
