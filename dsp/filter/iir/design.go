package iir

import (
	"fmt"
	"math"
)

const defaultQ = 1 / math.Sqrt2

// LowpassSection designs a single lowpass biquad at normalized cutoff omega
// with quality factor q. Invalid parameters yield zero coefficients.
func LowpassSection(omega, q float64) Coefficients {
	w0, ok := angularFreq(omega)
	if !ok {
		return Coefficients{}
	}

	q = clampQ(q)
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	return normalize((1-cw)/2, 1-cw, (1-cw)/2, 1+alpha, -2*cw, 1-alpha)
}

// HighpassSection designs a single highpass biquad at normalized cutoff omega
// with quality factor q.
func HighpassSection(omega, q float64) Coefficients {
	w0, ok := angularFreq(omega)
	if !ok {
		return Coefficients{}
	}

	q = clampQ(q)
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	return normalize((1+cw)/2, -(1 + cw), (1+cw)/2, 1+alpha, -2*cw, 1-alpha)
}

// BandpassSection designs a bandpass biquad centered at normalized frequency
// omega, with unity gain at the center regardless of q.
func BandpassSection(omega, q float64) Coefficients {
	w0, ok := angularFreq(omega)
	if !ok {
		return Coefficients{}
	}

	q = clampQ(q)
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	return normalize(alpha, 0, -alpha, 1+alpha, -2*cw, 1-alpha)
}

// NotchSection designs a notch biquad centered at normalized frequency omega.
func NotchSection(omega, q float64) Coefficients {
	w0, ok := angularFreq(omega)
	if !ok {
		return Coefficients{}
	}

	q = clampQ(q)
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	return normalize(1, -2*cw, 1, 1+alpha, -2*cw, 1-alpha)
}

// AllpassSection designs an allpass biquad centered at normalized frequency
// omega.
func AllpassSection(omega, q float64) Coefficients {
	w0, ok := angularFreq(omega)
	if !ok {
		return Coefficients{}
	}

	q = clampQ(q)
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	return normalize(1-alpha, -2*cw, 1+alpha, 1+alpha, -2*cw, 1-alpha)
}

// NewButterworthLowpass designs a lowpass Butterworth cascade of the given
// order at normalized cutoff omega. Odd orders end with a first-order
// section.
func NewButterworthLowpass(order int, omega float64) (*Cascade, error) {
	if err := validateDesign(order, omega); err != nil {
		return nil, err
	}

	sections := make([]Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, LowpassSection(omega, butterworthQ(order, i)))
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderLowpass(omega))
	}

	return NewCascade(sections), nil
}

// NewButterworthHighpass designs a highpass Butterworth cascade of the given
// order at normalized cutoff omega.
func NewButterworthHighpass(order int, omega float64) (*Cascade, error) {
	if err := validateDesign(order, omega); err != nil {
		return nil, err
	}

	sections := make([]Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, HighpassSection(omega, butterworthQ(order, i)))
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderHighpass(omega))
	}

	return NewCascade(sections), nil
}

// NewChebyshev1Lowpass designs a lowpass Chebyshev Type I cascade with the
// given passband ripple in dB. Odd orders end with a first-order Butterworth
// section.
func NewChebyshev1Lowpass(order int, omega, rippleDB float64) (*Cascade, error) {
	if err := validateDesign(order, omega); err != nil {
		return nil, err
	}

	k := math.Tan(math.Pi * omega / 2)
	k2 := k * k
	r0, r1 := cheby1RippleFactors(order, rippleDB)

	sections := make([]Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		tt := math.Cos(float64(2*i+1) * math.Pi / (2 * float64(order)))
		b := 1 / (r0 - tt*tt)
		a := k * 2 * b * r1 * tt
		t := 1 / (a + b + k2)
		sections = append(sections, Coefficients{
			B0: k2 * t,
			B1: 2 * k2 * t,
			B2: k2 * t,
			A1: 2 * (k2 - b) * t,
			A2: (b - a + k2) * t,
		})
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderLowpass(omega))
	}

	return NewCascade(sections), nil
}

// NewChebyshev1Highpass designs a highpass Chebyshev Type I cascade with the
// given passband ripple in dB.
func NewChebyshev1Highpass(order int, omega, rippleDB float64) (*Cascade, error) {
	if err := validateDesign(order, omega); err != nil {
		return nil, err
	}

	k := math.Tan(math.Pi * omega / 2)
	k2 := k * k
	r0, r1 := cheby1RippleFactors(order, rippleDB)

	sections := make([]Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		s := math.Sin(float64(2*i+1) * math.Pi / (4 * float64(order)))
		tt := s * s
		a := 1 / (r0 + 4*tt - 4*tt*tt - 1)
		b := 2 * k * a * r1 * (1 - 2*tt)
		t := 1 / (b + 1 + a*k2)
		sections = append(sections, Coefficients{
			B0: t,
			B1: -2 * t,
			B2: t,
			A1: 2 * (a*k2 - 1) * t,
			A2: (1 - b + a*k2) * t,
		})
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderHighpass(omega))
	}

	return NewCascade(sections), nil
}

func validateDesign(order int, omega float64) error {
	if order <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}
	if omega <= 0 || omega >= 1 || math.IsNaN(omega) {
		return fmt.Errorf("%w: got %g", ErrInvalidCutoff, omega)
	}
	return nil
}

// butterworthQ returns the quality factor of section index for the given
// order, from the pole angles of the analog Butterworth prototype.
func butterworthQ(order, index int) float64 {
	s := math.Sin(math.Pi * float64(2*index+1) / (2 * float64(order)))
	if s == 0 {
		return defaultQ
	}
	return 1 / (2 * s)
}

// cheby1RippleFactors returns (cosh^2(t), sinh(t)) with
// t = asinh(rippleDB)/order.
func cheby1RippleFactors(order int, rippleDB float64) (float64, float64) {
	if rippleDB <= 0 {
		rippleDB = 1
	}

	t := math.Asinh(rippleDB) / float64(order)
	c := math.Cosh(t)
	return c * c, math.Sinh(t)
}

func firstOrderLowpass(omega float64) Coefficients {
	k := math.Tan(math.Pi * omega / 2)
	norm := 1 / (1 + k)

	return Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

func firstOrderHighpass(omega float64) Coefficients {
	k := math.Tan(math.Pi * omega / 2)
	norm := 1 / (1 + k)

	return Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}

// normalize divides all coefficients by a0 so the section can run with an
// implicit unity leading denominator term.
func normalize(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	inv := 1 / a0
	return Coefficients{B0: b0 * inv, B1: b1 * inv, B2: b2 * inv, A1: a1 * inv, A2: a2 * inv}
}

func angularFreq(omega float64) (float64, bool) {
	if omega <= 0 || omega >= 1 || math.IsNaN(omega) {
		return 0, false
	}
	return math.Pi * omega, true
}

func clampQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}
	return q
}
