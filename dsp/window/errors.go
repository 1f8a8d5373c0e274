package window

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs      = errors.New("window: coefficients must not be empty")
	errZeroCoherentGain = errors.New("window: coherent gain is zero")
	errMismatchedLength = errors.New("window: samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window: size must be > 0, got %d", size)
	}
	return nil
}

func validateAlpha(size int, v, lo, hi float64, name string) error {
	if err := validateLength(size); err != nil {
		return err
	}
	if v < lo || v > hi {
		return errAlphaRange(name, v)
	}
	return nil
}

func errAlphaRange(name string, v float64) error {
	return fmt.Errorf("window: %s out of range: %g", name, v)
}
