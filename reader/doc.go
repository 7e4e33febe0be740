// Package reader turns a plain-text dataset file into the column-major
// (data, names) pair that counter.NewTable consumes. Layout is
// configurable the way original_source/ProgramOptions.hpp's reader flags
// describe: field separator, row/column orientation, and optional header
// row / row-index column. Parallel reads split the file into contiguous
// row stripes, one per worker, and replicate the assembled dataset.
package reader
