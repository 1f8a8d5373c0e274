package equiripple

import "fmt"

// NewLowpass designs an odd-length, even-symmetry lowpass filter with 2*order+1
// coefficients. omegaP and omegaS are the normalized passband and stopband
// edges (0 < omegaP < omegaS < 1); weightP and weightS trade ripple between
// the two bands: the band with the larger weight gets the smaller ripple, in
// inverse proportion.
func NewLowpass(order int, omegaP, weightP, omegaS, weightS float64, opts ...Option) (*Filter, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if !(0 < omegaP && omegaP < omegaS && omegaS < 1) {
		return nil, fmt.Errorf("%w: need 0 < omegaP (%g) < omegaS (%g) < 1", ErrInvalidBand, omegaP, omegaS)
	}
	if weightP <= 0 || weightS <= 0 {
		return nil, fmt.Errorf("%w: weights must be positive", ErrInvalidBand)
	}

	d := &design{
		symmetry: typeI,
		bands:    [][2]float64{{0, omegaP}, {omegaS, 1}},
		nbasis:   order + 1,
		ncoeff:   2*order + 1,
		desired: func(omega float64) float64 {
			if lte(omega, omegaP) {
				return 1
			}
			return 0
		},
		weight: func(omega float64) float64 {
			if lte(omega, omegaP) {
				return weightP
			}
			return weightS
		},
	}

	return d.generate(newConfig(opts))
}

// NewHighpass designs an odd-length, even-symmetry highpass filter with
// 2*order+1 coefficients. omegaS and omegaP are the normalized stopband and
// passband edges (0 < omegaS < omegaP < 1).
func NewHighpass(order int, omegaS, weightS, omegaP, weightP float64, opts ...Option) (*Filter, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if !(0 < omegaS && omegaS < omegaP && omegaP < 1) {
		return nil, fmt.Errorf("%w: need 0 < omegaS (%g) < omegaP (%g) < 1", ErrInvalidBand, omegaS, omegaP)
	}
	if weightP <= 0 || weightS <= 0 {
		return nil, fmt.Errorf("%w: weights must be positive", ErrInvalidBand)
	}

	d := &design{
		symmetry: typeI,
		bands:    [][2]float64{{0, omegaS}, {omegaP, 1}},
		nbasis:   order + 1,
		ncoeff:   2*order + 1,
		desired: func(omega float64) float64 {
			if lte(omegaP, omega) {
				return 1
			}
			return 0
		},
		weight: func(omega float64) float64 {
			if lte(omega, omegaS) {
				return weightS
			}
			return weightP
		},
	}

	return d.generate(newConfig(opts))
}

// NewBandpass designs an odd-length, even-symmetry bandpass filter with
// 2*order+1 coefficients. The passband [omegaP1, omegaP2] is flanked by the
// stopbands [0, omegaS1] and [omegaS2, 1]; the edges must satisfy
// 0 < omegaS1 < omegaP1 < omegaP2 < omegaS2 < 1.
func NewBandpass(order int, omegaS1, weightS1, omegaP1, omegaP2, weightP, omegaS2, weightS2 float64, opts ...Option) (*Filter, error) {
	if order < 1 {
		return nil, ErrInvalidOrder
	}
	if !(0 < omegaS1 && omegaS1 < omegaP1 && omegaP1 < omegaP2 && omegaP2 < omegaS2 && omegaS2 < 1) {
		return nil, fmt.Errorf("%w: need 0 < omegaS1 (%g) < omegaP1 (%g) < omegaP2 (%g) < omegaS2 (%g) < 1",
			ErrInvalidBand, omegaS1, omegaP1, omegaP2, omegaS2)
	}
	if weightS1 <= 0 || weightP <= 0 || weightS2 <= 0 {
		return nil, fmt.Errorf("%w: weights must be positive", ErrInvalidBand)
	}

	d := &design{
		symmetry: typeI,
		bands:    [][2]float64{{0, omegaS1}, {omegaP1, omegaP2}, {omegaS2, 1}},
		nbasis:   order + 1,
		ncoeff:   2*order + 1,
		desired: func(omega float64) float64 {
			if lte(omegaP1, omega) && lte(omega, omegaP2) {
				return 1
			}
			return 0
		},
		weight: func(omega float64) float64 {
			switch {
			case lte(omega, omegaS1):
				return weightS1
			case lte(omegaP1, omega) && lte(omega, omegaP2):
				return weightP
			default:
				return weightS2
			}
		},
	}

	return d.generate(newConfig(opts))
}
