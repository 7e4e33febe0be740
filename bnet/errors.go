package bnet

import "errors"

// Sentinel errors for bnet operations.
var (
	// ErrVariableRange indicates a vertex index is out of [0, N).
	ErrVariableRange = errors.New("bnet: variable index out of range")

	// ErrSelfArc indicates u == v was passed to AddArc (data model invariant 2).
	ErrSelfArc = errors.New("bnet: self-arc not allowed")

	// ErrArcExists indicates AddArc was called for an arc already present
	// (data model invariant 2: the arc must be absent before insertion).
	ErrArcExists = errors.New("bnet: arc already exists")

	// ErrArcNotFound indicates RemoveArc was called for an absent arc.
	ErrArcNotFound = errors.New("bnet: arc not found")
)
