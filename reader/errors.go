package reader

import "errors"

var (
	// ErrShortFile indicates the file ended before the expected number of
	// rows (or columns, under the configured orientation) were read.
	ErrShortFile = errors.New("reader: file shorter than expected")

	// ErrRowWidth indicates a row does not have the expected number of
	// fields, given the configured orientation and header/index columns.
	ErrRowWidth = errors.New("reader: row width mismatch")

	// ErrNoWorkers is returned by ReadStriped when numWorkers <= 0.
	ErrNoWorkers = errors.New("reader: numWorkers must be positive")
)
