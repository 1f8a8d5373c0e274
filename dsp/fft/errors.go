package fft

import "errors"

// Sentinel errors returned by transform construction and evaluation.
var (
	// ErrInvalidLength is returned when the requested transform size is below
	// the supported minimum (8 for complex, 16 for real transforms).
	ErrInvalidLength = errors.New("fft: invalid transform length")

	// ErrNotLinked is returned by the no-argument evaluate methods when the
	// sequence and transform buffers were never linked.
	ErrNotLinked = errors.New("fft: sequence and transform buffers are not linked")

	// ErrLengthMismatch is returned when a caller-supplied buffer does not
	// match the transform length fixed at construction.
	ErrLengthMismatch = errors.New("fft: buffer length mismatch")
)
