package equiripple

import (
	"math"
	"slices"

	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/fft"
)

// Report describes the outcome of the exchange iteration for a finished
// design.
type Report struct {
	// Iterations is the number of completed exchange steps.
	Iterations int

	// Converged reports whether the extremal set stopped changing before the
	// iteration cap. A non-converged design still carries the best
	// approximation reached.
	Converged bool

	// Deviation is the final weighted Chebyshev error delta. Its magnitude is
	// the ripple size on the approximation bands.
	Deviation float64
}

// remez runs the exchange iteration on the populated grid until the extremal
// set is stable or maxIter steps have been taken. The grid's extremaIndices
// hold the final alternation set afterwards.
func remez(g *designGrid, maxIter int) Report {
	gridSize := g.size()
	gridPi := gridSize - 1
	ne := len(g.extremaIndices)

	e := make([]float64, gridSize)
	newExtrema := make([]int, 0, ne)

	var rep Report
	for {
		rep.Deviation = computeDelta(g)
		p := alternationInterpolant(g, rep.Deviation)

		for i := range g.grid {
			e[i] = p.evaluate(g.x[i]) - g.h[i]
		}

		// March each current extremum to the nearest local maximum of the
		// error with the same sign, forward first, then backward.
		newExtrema = newExtrema[:0]
		change := 0
		for _, cur := range g.extremaIndices {
			s := sgn(e[cur])

			ptr := cur + 1
			if ptr < gridSize {
				for sgn(e[ptr]-e[ptr-1]) == s {
					ptr++
					if ptr == gridSize {
						break
					}
				}
			}
			ptr--

			if ptr == cur {
				ptr = cur - 1
				if ptr >= 0 {
					for sgn(e[ptr]-e[ptr+1]) == s {
						ptr--
						if ptr < 0 {
							break
						}
					}
				}
				ptr++
			}

			newExtrema = append(newExtrema, ptr)
			if ptr != cur {
				change++
			}
		}

		// When both endpoints of the grid are usable, allow the larger-error
		// endpoint to displace the other if it extends the alternation.
		if g.containsZero && g.containsPi {
			if slices.Contains(newExtrema, 0) {
				if !slices.Contains(newExtrema, gridPi) &&
					sgn(e[gridPi]) != sgn(e[g.extremaIndices[ne-1]]) &&
					math.Abs(e[gridPi]) > math.Abs(e[0]) {
					newExtrema = append(newExtrema[1:], gridPi)
					change++
				}
			} else if slices.Contains(newExtrema, gridPi) &&
				sgn(e[0]) != sgn(e[g.extremaIndices[0]]) &&
				math.Abs(e[0]) > math.Abs(e[gridPi]) {
				newExtrema = slices.Insert(newExtrema[:len(newExtrema)-1], 0, 0)
				change++
			}
		}

		if change == 0 {
			rep.Converged = true
			return rep
		}

		copy(g.extremaIndices, newExtrema)
		rep.Iterations++
		if rep.Iterations >= maxIter {
			return rep
		}
	}
}

// computeDelta evaluates the closed-form weighted Chebyshev error over the
// current extremal set using barycentric weights.
func computeDelta(g *designGrid) float64 {
	ne := len(g.extremaIndices)
	ext := make([]float64, ne)
	for i, j := range g.extremaIndices {
		ext[i] = g.x[j]
	}

	gamma := barycentricWeights(ext)

	var num, den float64
	s := 1.0
	for i, j := range g.extremaIndices {
		num += gamma[i] * g.h[j]
		den += s * gamma[i] / g.w[j]
		s = -s
	}

	return num / den
}

// alternationInterpolant constructs the polynomial through all but the last
// extremum, with ordinates offset by the signed weighted deviation.
func alternationInterpolant(g *designGrid, delta float64) *lagrangePolynomial {
	n := len(g.extremaIndices) - 1
	x := make([]float64, n)
	f := make([]float64, n)

	s := 1.0
	for i := 0; i < n; i++ {
		j := g.extremaIndices[i]
		x[i] = g.x[j]
		f[i] = g.h[j] - s*delta/g.w[j]
		s = -s
	}

	return newLagrangePolynomial(x, f)
}

// chebyshevCoefficients samples the final interpolant on a uniform frequency
// grid and recovers the cosine-series coefficients with an inverse real DFT.
func chebyshevCoefficients(g *designGrid, nc int) ([]float64, error) {
	p := alternationInterpolant(g, computeDelta(g))

	log2nfft := 6
	nfft := 64
	for nfft < nc {
		nfft *= 2
		log2nfft++
	}

	X := make([]float64, nfft)
	x := make([]float64, nfft)
	for i := 0; i <= nfft/2; i++ {
		X[i] = p.evaluate(math.Cos(2 * math.Pi * float64(i) / float64(nfft)))
	}

	d, err := fft.NewRealDFT(log2nfft)
	if err != nil {
		return nil, err
	}
	if err := d.EvaluateInverse(X, x); err != nil {
		return nil, err
	}

	return x, nil
}

// interpretCoefficients converts the raw cosine-series coefficients into the
// impulse response for the given symmetry class. The rotation centers the
// response on its point of symmetry; the per-class recurrences fold the basis
// change (half-sample shifts and sine bases) back into plain taps.
func interpretCoefficients(sym symmetry, nbasis, nc int, c []float64) []float64 {
	core.CircularShift(c, nbasis-1)
	out := make([]float64, nc)

	switch sym {
	case typeI:
		copy(out, c[:nc])

	case typeII:
		out[0] = 0.5 * c[0]
		for i := 1; i < nc-1; i++ {
			out[i] = 0.5 * (c[i] + c[i-1])
		}
		out[nc-1] = 0.5 * c[nc-2]

	case typeIII:
		out[0] = -0.5 * c[0]
		out[1] = -0.5 * c[1]
		for i := 2; i < nc-2; i++ {
			out[i] = 0.5 * (c[i-2] - c[i])
		}
		out[nc-2] = 0.5 * c[nc-4]
		out[nc-1] = 0.5 * c[nc-3]

	case typeIV:
		out[0] = -0.5 * c[0]
		for i := 1; i < nc-1; i++ {
			out[i] = 0.5 * (c[i-1] - c[i])
		}
		out[nc-1] = 0.5 * c[nc-2]
	}

	return out
}

func sgn(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
