package orient

import "errors"

var (
	// ErrVariableRange indicates a vertex index outside the graph's range.
	ErrVariableRange = errors.New("orient: variable out of range")
)
