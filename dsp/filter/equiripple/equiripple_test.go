package equiripple

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// amplitude evaluates the zero-phase amplitude response of a linear-phase
// filter with taps c at normalized frequency omega: the coefficients are
// rotated to their point of symmetry before summing.
func amplitude(c []float64, omega float64) float64 {
	mid := float64(len(c)-1) / 2
	var a float64
	for n, v := range c {
		a += v * math.Cos(math.Pi*omega*(float64(n)-mid))
	}
	return a
}

func TestLowpassBasics(t *testing.T) {
	f, err := NewLowpass(10, 0.3, 1, 0.5, 1)
	require.NoError(t, err)

	c := f.Coefficients()
	require.Len(t, c, 21)

	// Even symmetry about the center tap.
	for i := 0; i < len(c)/2; i++ {
		assert.InDelta(t, c[len(c)-1-i], c[i], 1e-9, "tap %d", i)
	}

	rep := f.Report()
	assert.True(t, rep.Converged, "exchange did not converge")
	dev := math.Abs(rep.Deviation)
	require.Greater(t, dev, 0.0)
	require.Less(t, dev, 0.2)

	// The equiripple bound holds on the design grid; allow a little headroom
	// for the continuum between grid points.
	tol := 1.1*dev + 1e-6
	for _, omega := range []float64{0, 0.1, 0.2, 0.3} {
		assert.InDelta(t, 1, amplitude(c, omega), tol, "passband omega=%g", omega)
	}
	for _, omega := range []float64{0.5, 0.6, 0.8, 1} {
		assert.InDelta(t, 0, amplitude(c, omega), tol, "stopband omega=%g", omega)
	}
}

func TestLowpassWeightsTradeRipple(t *testing.T) {
	// A heavier stopband weight buys a deeper stopband at the cost of more
	// passband ripple.
	balanced, err := NewLowpass(12, 0.25, 1, 0.4, 1)
	require.NoError(t, err)
	weighted, err := NewLowpass(12, 0.25, 1, 0.4, 10)
	require.NoError(t, err)

	worstStop := func(c []float64) float64 {
		var m float64
		for omega := 0.4; omega <= 1.0; omega += 0.01 {
			if v := math.Abs(amplitude(c, omega)); v > m {
				m = v
			}
		}
		return m
	}

	assert.Less(t, worstStop(weighted.Coefficients()), worstStop(balanced.Coefficients()))
}

func TestLowpassDeterministic(t *testing.T) {
	a, err := NewLowpass(8, 0.3, 1, 0.5, 1)
	require.NoError(t, err)
	b, err := NewLowpass(8, 0.3, 1, 0.5, 1)
	require.NoError(t, err)
	assert.Equal(t, a.Coefficients(), b.Coefficients())

	// An explicit source is honored and reproducible.
	c1, err := NewLowpass(8, 0.3, 1, 0.5, 1, WithRandSource(rand.NewSource(99)))
	require.NoError(t, err)
	c2, err := NewLowpass(8, 0.3, 1, 0.5, 1, WithRandSource(rand.NewSource(99)))
	require.NoError(t, err)
	assert.Equal(t, c1.Coefficients(), c2.Coefficients())
}

func TestHighpassBasics(t *testing.T) {
	f, err := NewHighpass(10, 0.3, 1, 0.5, 1)
	require.NoError(t, err)

	c := f.Coefficients()
	require.Len(t, c, 21)

	dev := math.Abs(f.Report().Deviation)
	tol := 1.1*dev + 1e-6
	assert.InDelta(t, 0, amplitude(c, 0), tol, "DC")
	assert.InDelta(t, 0, amplitude(c, 0.2), tol, "stopband")
	assert.InDelta(t, 1, amplitude(c, 0.7), tol, "passband")
	assert.InDelta(t, 1, amplitude(c, 1), tol, "Nyquist")
}

func TestBandpassBasics(t *testing.T) {
	f, err := NewBandpass(15, 0.2, 1, 0.3, 0.6, 1, 0.7, 1)
	require.NoError(t, err)

	c := f.Coefficients()
	require.Len(t, c, 31)

	dev := math.Abs(f.Report().Deviation)
	tol := 1.1*dev + 1e-6
	assert.InDelta(t, 0, amplitude(c, 0.1), tol, "lower stopband")
	assert.InDelta(t, 1, amplitude(c, 0.45), tol, "passband")
	assert.InDelta(t, 0, amplitude(c, 0.85), tol, "upper stopband")
}

func TestHalfBandStructure(t *testing.T) {
	const order = 8
	f, err := NewHalfBand(order, 0.45)
	require.NoError(t, err)

	c := f.Coefficients()
	require.Len(t, c, 4*order-1)

	center := len(c) / 2
	assert.InDelta(t, 0.5, c[center], 1e-12)

	// Every other tap away from the center is exactly zero.
	for i := 1; i < len(c); i += 2 {
		if i == center {
			continue
		}
		assert.Zero(t, c[i], "tap %d", i)
	}

	// Complementary response: A(omega) + A(1-omega) = 1.
	for _, omega := range []float64{0.1, 0.25, 0.4, 0.5} {
		sum := amplitude(c, omega) + amplitude(c, 1-omega)
		assert.InDelta(t, 1, sum, 1e-9, "omega=%g", omega)
	}
}

func TestCenteredHilbertBasics(t *testing.T) {
	const order = 15
	f, err := NewCenteredHilbert(order, 0.05, 0.95)
	require.NoError(t, err)

	c := f.Coefficients()
	require.Len(t, c, 2*order+1)

	// Odd symmetry, zero center tap.
	assert.InDelta(t, 0, c[order], 1e-9)
	for i := 0; i < order; i++ {
		assert.InDelta(t, -c[len(c)-1-i], c[i], 1e-9, "tap %d", i)
	}

	// Unit magnitude across the approximation band.
	for _, omega := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		assert.InDelta(t, 1, cmplx.Abs(f.Response(omega)), 0.05, "omega=%g", omega)
	}

	// Odd symmetry forces nulls at DC and Nyquist.
	assert.InDelta(t, 0, cmplx.Abs(f.Response(0)), 1e-9)
	assert.InDelta(t, 0, cmplx.Abs(f.Response(1)), 1e-9)
}

func TestStaggeredHilbertBasics(t *testing.T) {
	const order = 12
	f, err := NewStaggeredHilbert(order, 0.05)
	require.NoError(t, err)

	c := f.Coefficients()
	require.Len(t, c, 2*order)

	// Odd symmetry about the half-sample midpoint.
	for i := 0; i < order; i++ {
		assert.InDelta(t, -c[len(c)-1-i], c[i], 1e-9, "tap %d", i)
	}

	// The staggered band extends to the folding frequency.
	for _, omega := range []float64{0.1, 0.5, 0.9, 1} {
		assert.InDelta(t, 1, cmplx.Abs(f.Response(omega)), 0.05, "omega=%g", omega)
	}
}

func TestCenteredDifferentiatorResponse(t *testing.T) {
	const order = 16
	const dt = 1.0
	f, err := NewCenteredDifferentiator(order, dt)
	require.NoError(t, err)

	c := f.Coefficients()
	require.Len(t, c, 2*order+1)
	assert.InDelta(t, 0, c[order], 1e-9)

	// |H| tracks pi*omega/dt over the interior of the band. The weighting is
	// 1/omega, so the absolute error scales with omega.
	for _, omega := range []float64{0.1, 0.25, 0.5, 0.75} {
		want := math.Pi * omega / dt
		assert.InDelta(t, want, cmplx.Abs(f.Response(omega)), 0.05*want+1e-3, "omega=%g", omega)
	}
}

func TestStaggeredDifferentiatorResponse(t *testing.T) {
	const order = 16
	const dt = 0.5
	f, err := NewStaggeredDifferentiator(order, dt)
	require.NoError(t, err)

	c := f.Coefficients()
	require.Len(t, c, 2*order)

	for _, omega := range []float64{0.1, 0.5, 0.9} {
		want := math.Pi * omega / dt
		assert.InDelta(t, want, cmplx.Abs(f.Response(omega)), 0.05*want+1e-3, "omega=%g", omega)
	}
}

func TestDifferentiatorOnRamp(t *testing.T) {
	// Filtering a linear ramp and compensating the group delay recovers the
	// slope in the interior.
	const order = 16
	f, err := NewCenteredDifferentiator(order, 1)
	require.NoError(t, err)

	const n = 256
	const slope = 0.25
	x := make([]float64, n)
	for i := range x {
		x[i] = slope * float64(i)
	}

	y, err := f.Filter(x)
	require.NoError(t, err)

	// The centered design has an integer group delay of order samples; after
	// compensating it, the output magnitude tracks the ramp slope.
	for i := n / 4; i < n/2; i++ {
		assert.InDelta(t, slope, math.Abs(y[i+order]), 0.02, "sample %d", i)
	}
}

func TestExchangeEquioscillation(t *testing.T) {
	// At convergence the weighted error attains the deviation with
	// alternating sign at every extremum of the final alternation set.
	d := &design{
		symmetry: typeI,
		bands:    [][2]float64{{0, 0.3}, {0.5, 1}},
		nbasis:   11,
		ncoeff:   21,
		desired: func(omega float64) float64 {
			if lte(omega, 0.3) {
				return 1
			}
			return 0
		},
		weight: func(omega float64) float64 { return 1 },
	}
	require.NoError(t, d.validate())

	cfg := newConfig(nil)
	g, err := newDesignGrid(d.bands, d.nbasis, cfg.gridDensity, cfg.rng)
	require.NoError(t, err)
	d.populateGrid(g)

	rep := remez(g, cfg.maxIter)
	require.True(t, rep.Converged)
	delta := math.Abs(rep.Deviation)
	require.Greater(t, delta, 0.0)

	require.Len(t, g.extremaIndices, d.nbasis+1)
	for i := 1; i < len(g.extremaIndices); i++ {
		require.Greater(t, g.extremaIndices[i], g.extremaIndices[i-1], "extrema not ascending")
	}

	p := alternationInterpolant(g, rep.Deviation)
	prev := 0.0
	for k, j := range g.extremaIndices {
		werr := g.w[j] * (p.evaluate(g.x[j]) - g.h[j])
		assert.InDelta(t, delta, math.Abs(werr), 1e-7, "extremum %d magnitude", k)
		if k > 0 {
			assert.Negative(t, prev*werr, "extremum %d sign", k)
		}
		prev = werr
	}
}

func TestInvalidDesigns(t *testing.T) {
	_, err := NewLowpass(0, 0.3, 1, 0.5, 1)
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = NewLowpass(10, 0.5, 1, 0.3, 1)
	assert.ErrorIs(t, err, ErrInvalidBand)

	_, err = NewLowpass(10, 0.3, -1, 0.5, 1)
	assert.ErrorIs(t, err, ErrInvalidBand)

	_, err = NewHighpass(10, 0.5, 1, 0.5, 1)
	assert.ErrorIs(t, err, ErrInvalidBand)

	_, err = NewBandpass(10, 0.3, 1, 0.2, 0.6, 1, 0.7, 1)
	assert.ErrorIs(t, err, ErrInvalidBand)

	_, err = NewHalfBand(8, 0.5)
	assert.ErrorIs(t, err, ErrInvalidBand)

	_, err = NewCenteredHilbert(10, 0.9, 0.1)
	assert.ErrorIs(t, err, ErrInvalidBand)

	_, err = NewCenteredDifferentiator(10, 0)
	assert.ErrorIs(t, err, ErrInvalidBand)
}

func TestMaxIterationsCap(t *testing.T) {
	// With a single permitted step the exchange typically cannot settle;
	// the design still comes back usable with diagnostics set.
	f, err := NewLowpass(20, 0.28, 1, 0.32, 1, WithMaxIterations(1))
	require.NoError(t, err)

	rep := f.Report()
	assert.LessOrEqual(t, rep.Iterations, 1)
	require.Len(t, f.Coefficients(), 41)
}

func TestLagrangeInterpolation(t *testing.T) {
	// Interpolating x^2 through three nodes reproduces it exactly.
	p := newLagrangePolynomial([]float64{-1, 0, 2}, []float64{1, 0, 4})

	assert.InDelta(t, 0.25, p.evaluate(0.5), 1e-12)
	assert.InDelta(t, 1, p.evaluate(-1), 1e-12) // exact node short-circuit
	assert.InDelta(t, 4, p.evaluate(2), 1e-12)
	assert.InDelta(t, 9, p.evaluate(3), 1e-12) // extrapolation
}
