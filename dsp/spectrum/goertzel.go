package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-sigproc/dsp/core"
)

// ErrInvalidFrequency is returned for a bin frequency outside [0, 1].
var ErrInvalidFrequency = errors.New("spectrum: frequency must be in [0, 1]")

// Goertzel evaluates a single DFT bin recursively, without a full transform.
// Frequencies are normalized so that 1 is the Nyquist rate. The recursion is
// stateful: Power and Magnitude reflect every sample processed since the last
// Reset, and are equivalent to |X[k]|^2 and |X[k]| of a DFT over that block.
//
// The main lobe of the implied analysis window spans 4/N in normalized
// frequency for a block of N samples, so N bounds the frequency resolution.
// Leakage from off-bin tones can be reduced by windowing the block first.
type Goertzel struct {
	omega  float64
	coeff  float64
	s0, s1 float64
}

// NewGoertzel creates an analyzer for the normalized frequency omega in
// [0, 1], where 1 is the Nyquist rate.
func NewGoertzel(omega float64) (*Goertzel, error) {
	if omega < 0 || omega > 1 || math.IsNaN(omega) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFrequency, omega)
	}

	return &Goertzel{
		omega: omega,
		coeff: 2 * math.Cos(math.Pi*omega),
	}, nil
}

// Omega returns the normalized target frequency.
func (g *Goertzel) Omega() float64 { return g.omega }

// Retune changes the target frequency and clears the recursion state.
func (g *Goertzel) Retune(omega float64) error {
	if omega < 0 || omega > 1 || math.IsNaN(omega) {
		return fmt.Errorf("%w: got %v", ErrInvalidFrequency, omega)
	}

	g.omega = omega
	g.coeff = 2 * math.Cos(math.Pi*omega)
	g.Reset()

	return nil
}

// Reset clears the recursion state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
}

// ProcessSample feeds one sample into the recursion.
func (g *Goertzel) ProcessSample(x float64) {
	s := x + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
}

// ProcessBlock feeds a block of samples into the recursion.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1
	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}
	g.s0, g.s1 = s0, s1
}

// Power returns |X[k]|^2 for the samples processed since the last Reset.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns |X[k]| for the samples processed since the last Reset.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}
	return math.Sqrt(p)
}

// PowerDB returns the bin power in decibels, floored at -300 dB.
func (g *Goertzel) PowerDB() float64 {
	p := g.Power()
	if p <= 1e-30 {
		return -300
	}
	return core.LinearPowerToDB(p)
}

// BinPower computes the single-bin power of one block in one shot.
func BinPower(input []float64, omega float64) (float64, error) {
	g, err := NewGoertzel(omega)
	if err != nil {
		return 0, err
	}

	g.ProcessBlock(input)
	return g.Power(), nil
}

// MultiGoertzel drives one analyzer per frequency over a shared input, for
// tone-set detection.
type MultiGoertzel struct {
	analyzers []*Goertzel
}

// NewMultiGoertzel creates analyzers for every frequency in omegas.
func NewMultiGoertzel(omegas []float64) (*MultiGoertzel, error) {
	analyzers := make([]*Goertzel, len(omegas))
	for i, w := range omegas {
		g, err := NewGoertzel(w)
		if err != nil {
			return nil, err
		}
		analyzers[i] = g
	}

	return &MultiGoertzel{analyzers: analyzers}, nil
}

// ProcessBlock feeds the same block to every analyzer.
func (m *MultiGoertzel) ProcessBlock(input []float64) {
	for _, g := range m.analyzers {
		g.ProcessBlock(input)
	}
}

// Powers returns the per-frequency bin powers.
func (m *MultiGoertzel) Powers() []float64 {
	p := make([]float64, len(m.analyzers))
	for i, g := range m.analyzers {
		p[i] = g.Power()
	}
	return p
}

// Reset clears every analyzer.
func (m *MultiGoertzel) Reset() {
	for _, g := range m.analyzers {
		g.Reset()
	}
}
