package conv

import "github.com/cwbudde/algo-sigproc/dsp/core"

// Correlate computes the full cross-correlation of a and b, defined as the
// convolution of a with the time-reversed b. The result has length
// len(a)+len(b)-1 with zero lag at index len(b)-1.
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	rev := make([]float64, len(b))
	copy(rev, b)
	core.Reverse(rev)

	return Convolve(a, rev)
}

// CorrelateMode computes cross-correlation and trims the result to the given
// mode.
func CorrelateMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// AutoCorrelate computes the full autocorrelation of x, with zero lag at
// index len(x)-1.
func AutoCorrelate(x []float64) ([]float64, error) {
	return Correlate(x, x)
}
