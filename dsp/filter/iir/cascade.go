package iir

import (
	"math"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// Cascade chains second-order sections in series. The zero value is a
// pass-through.
type Cascade struct {
	sections []*Section
}

// NewCascade builds a cascade from the given section coefficients.
func NewCascade(coeffs []Coefficients) *Cascade {
	c := &Cascade{sections: make([]*Section, len(coeffs))}
	for i, sc := range coeffs {
		c.sections[i] = NewSection(sc)
	}
	return c
}

// NumSections returns the number of second-order sections.
func (c *Cascade) NumSections() int { return len(c.sections) }

// Coefficients returns a copy of the per-section coefficients.
func (c *Cascade) Coefficients() []Coefficients {
	out := make([]Coefficients, len(c.sections))
	for i, s := range c.sections {
		out[i] = s.Coefficients
	}
	return out
}

// ProcessSample filters one sample through every section.
func (c *Cascade) ProcessSample(x float64) float64 {
	for _, s := range c.sections {
		x = s.ProcessSample(x)
	}
	return x
}

// ProcessBlock filters a block of samples in place.
func (c *Cascade) ProcessBlock(buf []float64) {
	for _, s := range c.sections {
		s.ProcessBlock(buf)
	}
}

// Reset clears the delay lines of every section.
func (c *Cascade) Reset() {
	for _, s := range c.sections {
		s.Reset()
	}
}

// Response evaluates the complex frequency response at normalized frequency
// omega in [0, 1], with 1.0 at Nyquist.
func (c *Cascade) Response(omega float64) complex128 {
	w := math.Pi * omega
	z1 := complex(math.Cos(w), -math.Sin(w)) // z^-1
	z2 := z1 * z1

	h := complex(1, 0)
	for _, s := range c.sections {
		num := complex(s.B0, 0) + complex(s.B1, 0)*z1 + complex(s.B2, 0)*z2
		den := complex(1, 0) + complex(s.A1, 0)*z1 + complex(s.A2, 0)*z2
		h *= num / den
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at normalized frequency
// omega.
func (c *Cascade) MagnitudeDB(omega float64) float64 {
	h := c.Response(omega)
	return core.LinearToDB(math.Hypot(real(h), imag(h)))
}
