package coordinator

import "errors"

var (
	// ErrNoWorkers indicates a worker count of zero or less was requested.
	ErrNoWorkers = errors.New("coordinator: worker count must be positive")

	// ErrCapacityMismatch indicates variable sets passed to a collective
	// were not all built against the same bitset capacity.
	ErrCapacityMismatch = errors.New("coordinator: set capacity mismatch")
)
