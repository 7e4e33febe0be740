package ciquery

import "errors"

// Sentinel errors for Oracle construction and queries.
var (
	// ErrScratchAllocation indicates the scratch buffers could not grow to
	// the size a query requires.
	ErrScratchAllocation = errors.New("ciquery: scratch buffer allocation failure")

	// ErrVariableRange indicates x, y, or a member of given is out of
	// [0, N). Reaching this is a programming bug, not a data error: callers
	// are expected to only ever query variable indices drawn from the table.
	ErrVariableRange = errors.New("ciquery: variable index out of range")
)
