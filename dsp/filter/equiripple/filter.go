package equiripple

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sigproc/dsp/conv"
)

// symmetry enumerates the four linear-phase FIR classes.
type symmetry int

const (
	typeI   symmetry = iota + 1 // odd length, even symmetry
	typeII                      // even length, even symmetry
	typeIII                     // odd length, odd symmetry
	typeIV                      // even length, odd symmetry
)

// machineTolerance absorbs rounding in band-edge comparisons when mapping
// grid frequencies back to their band.
const machineTolerance = 1.0e-6

func lte(a, b float64) bool {
	return a < b || math.Abs(a-b) < machineTolerance
}

// design carries everything needed to run one Chebyshev approximation:
// the symmetry class, the approximation bands, the desired response and
// weight as functions of normalized frequency, the number of basis
// functions and the final tap count.
type design struct {
	symmetry symmetry
	bands    [][2]float64
	nbasis   int
	ncoeff   int
	desired  func(omega float64) float64
	weight   func(omega float64) float64
}

func (d *design) validate() error {
	if d.nbasis < 2 {
		return ErrInvalidOrder
	}

	prev := math.Inf(-1)
	for _, b := range d.bands {
		if b[0] < 0 || b[1] > 1 || b[0] >= b[1] {
			return fmt.Errorf("%w: [%g, %g]", ErrInvalidBand, b[0], b[1])
		}
		if b[0] <= prev {
			return fmt.Errorf("%w: bands must be disjoint and ascending", ErrInvalidBand)
		}
		prev = b[1]
	}

	return nil
}

// populateGrid fills in the desired response and weight on the grid. The
// even-length and odd-symmetry classes approximate against a trigonometric
// basis, so the desired values are divided by the basis envelope and the
// weights multiplied by it; the grid endpoints where the envelope vanishes
// are flagged unusable for the endpoint exchange.
func (d *design) populateGrid(g *designGrid) {
	for i, omega := range g.grid {
		h := d.desired(omega)
		w := d.weight(omega)

		switch d.symmetry {
		case typeII:
			b := math.Cos(omega * math.Pi / 2)
			h /= b
			w *= b
		case typeIII:
			b := math.Sin(omega * math.Pi)
			h /= b
			w *= b
		case typeIV:
			b := math.Sin(omega * math.Pi / 2)
			h /= b
			w *= b
		}

		g.h[i] = h
		g.w[i] = w
	}

	switch d.symmetry {
	case typeI:
		g.containsZero = true
		g.containsPi = true
	case typeII:
		g.containsZero = math.Abs(g.grid[0]) < machineTolerance
		g.containsPi = false
	case typeIII:
		g.containsZero = false
		g.containsPi = false
	case typeIV:
		g.containsZero = false
		g.containsPi = math.Abs(g.grid[len(g.grid)-1]-1) < machineTolerance
	}
}

func (d *design) generate(cfg config) (*Filter, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	g, err := newDesignGrid(d.bands, d.nbasis, cfg.gridDensity, cfg.rng)
	if err != nil {
		return nil, err
	}
	d.populateGrid(g)

	rep := remez(g, cfg.maxIter)

	cheb, err := chebyshevCoefficients(g, d.ncoeff)
	if err != nil {
		return nil, err
	}

	return &Filter{
		coeffs: interpretCoefficients(d.symmetry, d.nbasis, d.ncoeff, cheb),
		report: rep,
	}, nil
}

// Filter is a finished linear-phase FIR design.
type Filter struct {
	coeffs []float64
	report Report
}

// Coefficients returns a copy of the impulse response.
func (f *Filter) Coefficients() []float64 {
	out := make([]float64, len(f.coeffs))
	copy(out, f.coeffs)
	return out
}

// Len returns the number of taps.
func (f *Filter) Len() int { return len(f.coeffs) }

// Report returns the exchange-iteration diagnostics for this design.
func (f *Filter) Report() Report { return f.report }

// Response evaluates the complex frequency response at normalized frequency
// omega in [0, 1], with 1.0 at Nyquist.
func (f *Filter) Response(omega float64) complex128 {
	var re, im float64
	for n, c := range f.coeffs {
		phi := math.Pi * omega * float64(n)
		re += c * math.Cos(phi)
		im -= c * math.Sin(phi)
	}
	return complex(re, im)
}

// Filter convolves x with the impulse response, returning the full linear
// convolution of length len(x)+Len()-1. Long inputs run through the FFT
// overlap-add path.
func (f *Filter) Filter(x []float64) ([]float64, error) {
	return conv.Convolve(x, f.coeffs)
}
