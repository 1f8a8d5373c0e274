package equiripple

import (
	"fmt"
	"math"
)

// NewCenteredDifferentiator designs an odd-length differentiator with
// 2*order+1 coefficients and odd symmetry about the center tap. The response
// approximates differentiation of data sampled at interval dt over the band
// [1/(2*order), 1-1/(2*order)]; the odd symmetry forces a zero at both 0 and
// the folding frequency, so accuracy falls off at the band extremes. The
// group delay is the integer order, which makes this variant the right choice
// when the derivative must stay sample-aligned with the input.
func NewCenteredDifferentiator(order int, dt float64, opts ...Option) (*Filter, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if dt <= 0 {
		return nil, fmt.Errorf("%w: sampling interval must be positive, got %g", ErrInvalidBand, dt)
	}

	lo := 1 / float64(2*order)
	hi := 1 - lo

	d := &design{
		symmetry: typeIII,
		bands:    [][2]float64{{lo, hi}},
		nbasis:   order,
		ncoeff:   2*order + 1,
		desired: func(omega float64) float64 {
			return -math.Pi * omega / dt
		},
		weight: func(omega float64) float64 {
			return 1 / omega
		},
	}

	return d.generate(newConfig(opts))
}

// NewStaggeredDifferentiator designs an even-length differentiator with
// 2*order coefficients whose point of odd symmetry falls between samples.
// The staggered grid removes the forced response zero at the folding
// frequency, so the differentiator band extends from 1/(2*order) all the way
// to Nyquist, at the cost of a half-sample group delay of (2*order-1)/2.
// dt is the sampling interval of the data to be differentiated.
func NewStaggeredDifferentiator(order int, dt float64, opts ...Option) (*Filter, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if dt <= 0 {
		return nil, fmt.Errorf("%w: sampling interval must be positive, got %g", ErrInvalidBand, dt)
	}

	lo := 1 / float64(2*order)

	d := &design{
		symmetry: typeIV,
		bands:    [][2]float64{{lo, 1}},
		nbasis:   order,
		ncoeff:   2 * order,
		desired: func(omega float64) float64 {
			return -math.Pi * omega / dt
		},
		weight: func(omega float64) float64 {
			return 1 / omega
		},
	}

	return d.generate(newConfig(opts))
}
