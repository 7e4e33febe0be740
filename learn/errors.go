package learn

import "errors"

// Sentinel errors for learning drivers.
var (
	// ErrTargetRange indicates a target variable index outside [0, N).
	ErrTargetRange = errors.New("learn: target variable out of range")

	// ErrUnimplemented models the original's exception-for-not-implemented
	// idiom as an explicit result per §9, for an algorithm/mode combination
	// that is not implemented. No driver in this package returns it, and
	// cmd/ramble handles it like any other error (exit status 1).
	ErrUnimplemented = errors.New("learn: not implemented")

	// ErrUnknownAlgorithm indicates a --algorithm name not in the supported set.
	ErrUnknownAlgorithm = errors.New("learn: unknown algorithm")
)
