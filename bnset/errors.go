package bnset

import "errors"

// Sentinel errors for bnset operations.
var (
	// ErrCapacity indicates a variable index is out of the set's fixed universe.
	ErrCapacity = errors.New("bnset: variable index exceeds capacity")

	// ErrCapacityMismatch indicates two sets of different capacities were
	// combined by an operation that requires equal capacity.
	ErrCapacityMismatch = errors.New("bnset: capacity mismatch")
)
