package iir

import "errors"

var (
	// ErrInvalidOrder is returned when the filter order is not positive.
	ErrInvalidOrder = errors.New("iir: filter order must be positive")

	// ErrInvalidCutoff is returned when a normalized cutoff frequency lies
	// outside (0, 1).
	ErrInvalidCutoff = errors.New("iir: cutoff must lie strictly between 0 and 1")
)
