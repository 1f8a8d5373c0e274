package equiripple

import "errors"

// Errors returned by the design constructors.
var (
	// ErrInvalidOrder is returned when the design order is not positive.
	ErrInvalidOrder = errors.New("equiripple: design order must be positive")

	// ErrInvalidBand is returned when a band edge lies outside the valid
	// normalized frequency range or bands are malformed.
	ErrInvalidBand = errors.New("equiripple: invalid band specification")

	// ErrGridTooCoarse is returned when the frequency-sampling grid cannot
	// hold the order+1 alternation extrema the exchange algorithm needs.
	ErrGridTooCoarse = errors.New("equiripple: frequency grid too coarse for the requested order")
)
