package equiripple

import "fmt"

// NewCenteredHilbert designs an odd-length Hilbert transform operator with
// 2*order+1 coefficients and odd symmetry about the center tap. The unit
// response is approximated on [omegaP1, omegaP2] with 0 < omegaP1 < omegaP2 < 1;
// the odd symmetry forces zeros at 0 and the folding frequency, so the band
// cannot touch either end. The integer group delay keeps the transform
// sample-aligned with the input, which matters when combining the two into an
// envelope or analytic signal.
func NewCenteredHilbert(order int, omegaP1, omegaP2 float64, opts ...Option) (*Filter, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if !(0 < omegaP1 && omegaP1 < omegaP2 && omegaP2 < 1) {
		return nil, fmt.Errorf("%w: need 0 < omegaP1 (%g) < omegaP2 (%g) < 1", ErrInvalidBand, omegaP1, omegaP2)
	}

	d := &design{
		symmetry: typeIII,
		bands:    [][2]float64{{omegaP1, omegaP2}},
		nbasis:   order,
		ncoeff:   2*order + 1,
		desired:  func(omega float64) float64 { return 1 },
		weight:   func(omega float64) float64 { return 1 },
	}

	return d.generate(newConfig(opts))
}

// NewStaggeredHilbert designs an even-length Hilbert transform operator with
// 2*order coefficients whose point of odd symmetry falls between samples. The
// approximation band [omegaP, 1] reaches the folding frequency, wider than
// the centered variant allows, at the cost of a half-sample group delay of
// (2*order-1)/2. The closer omegaP is to zero, the larger the order needed
// for an acceptable approximation.
func NewStaggeredHilbert(order int, omegaP float64, opts ...Option) (*Filter, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if !(0 < omegaP && omegaP < 1) {
		return nil, fmt.Errorf("%w: need 0 < omegaP (%g) < 1", ErrInvalidBand, omegaP)
	}

	d := &design{
		symmetry: typeIV,
		bands:    [][2]float64{{omegaP, 1}},
		nbasis:   order,
		ncoeff:   2 * order,
		desired:  func(omega float64) float64 { return 1 },
		weight:   func(omega float64) float64 { return 1 },
	}

	return d.generate(newConfig(opts))
}
