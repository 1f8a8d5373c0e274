package fir

import (
	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/filter/equiripple"
	"github.com/cwbudde/algo-vecmath"
)

// Hilbert transformer used for analytic signal construction: order 50 with
// passband [0.03, 0.97] covers most of the band while keeping the impulse
// response short enough for routine use.
const (
	analyticOrder   = 50
	analyticOmegaP1 = 0.03
	analyticOmegaP2 = 0.97
)

// AnalyticSignal holds a real signal and its Hilbert transform, aligned in
// time. The transform is computed with a centered equiripple Hilbert
// transformer whose integer group delay is compensated, so the quadrature
// component stays sample-aligned with the input.
type AnalyticSignal struct {
	re []float64
	im []float64
}

// NewAnalyticSignal computes the analytic signal of x.
func NewAnalyticSignal(x []float64) (*AnalyticSignal, error) {
	h, err := equiripple.NewCenteredHilbert(analyticOrder, analyticOmegaP1, analyticOmegaP2)
	if err != nil {
		return nil, err
	}

	tmp, err := h.Filter(x)
	if err != nil {
		return nil, err
	}

	// The transformer has 2*order+1 taps and a group delay of order samples.
	core.ZeroShift(tmp, -analyticOrder)

	a := &AnalyticSignal{
		re: make([]float64, len(x)),
		im: make([]float64, len(x)),
	}
	copy(a.re, x)
	copy(a.im, tmp[:len(x)])

	return a, nil
}

// Real returns a copy of the in-phase component.
func (a *AnalyticSignal) Real() []float64 {
	out := make([]float64, len(a.re))
	copy(out, a.re)
	return out
}

// Imag returns a copy of the quadrature component.
func (a *AnalyticSignal) Imag() []float64 {
	out := make([]float64, len(a.im))
	copy(out, a.im)
	return out
}

// Envelope returns sqrt(re^2 + im^2) per sample.
func (a *AnalyticSignal) Envelope() []float64 {
	out := make([]float64, len(a.re))
	vecmath.Magnitude(out, a.re, a.im)
	return out
}
