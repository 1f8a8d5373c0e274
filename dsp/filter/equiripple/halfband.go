package equiripple

import "fmt"

// NewHalfBand designs a half-band filter suitable for interpolation by a
// factor of two, using the half-band trick of Vaidyanathan and Nguyen (1987).
// An even-length single-band prototype is designed with band edge 2*omegaP,
// its taps are spread onto the even positions at half amplitude, and the
// center tap is pinned to 0.5. The result has 4*order-1 coefficients, even
// symmetry, and every other coefficient exactly zero apart from the center.
//
// omegaP is the upper passband cutoff, 0 < omegaP < 0.5; values near 0.5
// require a larger order for a usable transition.
func NewHalfBand(order int, omegaP float64, opts ...Option) (*Filter, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if !(0 < omegaP && omegaP < 0.5) {
		return nil, fmt.Errorf("%w: need 0 < omegaP (%g) < 0.5", ErrInvalidBand, omegaP)
	}

	proto, err := newHalfBandPrototype(order, 2*omegaP, opts)
	if err != nil {
		return nil, err
	}

	c := proto.coeffs
	coeffs := make([]float64, 2*len(c)-1)
	for i, v := range c {
		coeffs[2*i] = 0.5 * v
	}
	coeffs[len(c)-1] = 0.5

	return &Filter{coeffs: coeffs, report: proto.report}, nil
}

// newHalfBandPrototype designs the even-length single-band prototype used by
// NewHalfBand.
func newHalfBandPrototype(order int, omegaP float64, opts []Option) (*Filter, error) {
	d := &design{
		symmetry: typeII,
		bands:    [][2]float64{{0, omegaP}},
		nbasis:   order,
		ncoeff:   2 * order,
		desired: func(omega float64) float64 {
			if lte(omega, omegaP) {
				return 1
			}
			return 0
		},
		weight: func(omega float64) float64 {
			if lte(omega, omegaP) {
				return 1
			}
			return 0
		},
	}

	return d.generate(newConfig(opts))
}
