package counter

import "errors"

// Sentinel errors for Table construction and access.
var (
	// ErrNoVariables indicates a Table was built with zero variables.
	ErrNoVariables = errors.New("counter: no variables")

	// ErrColumnLength indicates a column's length does not equal the
	// observation count shared by the rest of the table.
	ErrColumnLength = errors.New("counter: column length mismatch")

	// ErrVariableRange indicates a variable index outside [0, N).
	ErrVariableRange = errors.New("counter: variable index out of range")

	// ErrCapacity indicates N exceeds the 16-bit variable index width, or a
	// column's arity exceeds 255. M is not checked.
	ErrCapacity = errors.New("counter: N or M exceeds index capacity")
)
