package window

import "math"

// Analysis holds numerically computed spectral figures of merit of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the two-sided half-power main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the position of the first spectral null in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the response half a bin off center, the worst-case
	// amplitude error for a tone between bins.
	ScallopLossdB float64
}

// probe evaluates the window's power spectrum |W(omega)|^2 at arbitrary
// positions measured in DFT bins.
type probe struct {
	coeffs []float64
	dc     float64
}

func (p *probe) power(bins float64) float64 {
	w := 2 * math.Pi * bins / float64(len(p.coeffs))
	var re, im float64
	for k, c := range p.coeffs {
		phi := w * float64(k)
		re += c * math.Cos(phi)
		im -= c * math.Sin(phi)
	}
	return re*re + im*im
}

// relativeDB returns the power at the given bin offset relative to DC, in dB.
func (p *probe) relativeDB(bins float64) float64 {
	v := p.power(bins)
	if v <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(v/p.dc)
}

// Analyze computes spectral properties of the given window coefficients by
// numerical evaluation of its discrete-time Fourier transform.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	var sum, sumSq float64
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}
	if sum == 0 {
		return Analysis{}
	}

	p := &probe{coeffs: coeffs}
	p.dc = p.power(0)

	null := p.firstNull()

	return Analysis{
		CoherentGain:      sum / float64(n),
		ENBW:              float64(n) * sumSq / (sum * sum),
		Bandwidth3dB:      p.halfPowerWidth(),
		HighestSidelobedB: p.peakSidelobe(null),
		FirstMinimumBins:  null,
		ScallopLossdB:     p.relativeDB(0.5),
	}
}

// scanStep is the coarse search resolution, in bins. An eighth of a bin is
// fine enough that no main-lobe or sidelobe feature of a practical window
// slips between samples.
const scanStep = 0.125

// halfPowerWidth locates the frequency where the power falls to half the DC
// value and returns the two-sided width in bins. The main lobe is monotone
// down to the half-power point for every window in the catalog, so bisection
// applies.
func (p *probe) halfPowerWidth() float64 {
	half := p.dc / 2
	lo, hi := 0.0, float64(len(p.coeffs))/2
	for hi-lo > 1e-10 {
		mid := (lo + hi) / 2
		if p.power(mid) > half {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + hi
}

// firstNull scans outward from DC for the first local minimum of the power
// spectrum. The search only arms once the response has dropped below a tenth
// of DC, so the plateau of a flat-topped main lobe is not mistaken for a null.
func (p *probe) firstNull() float64 {
	nyquist := float64(len(p.coeffs)) / 2
	armed := p.dc / 10

	coarse := scanStep
	prev := p.dc
	for bins := scanStep; bins < nyquist; bins += scanStep {
		v := p.power(bins)
		if prev < armed && v > prev {
			coarse = bins - scanStep
			break
		}
		prev = v
	}

	return p.refine(coarse, scanStep, func(a, b float64) bool { return a < b })
}

// peakSidelobe returns the largest spectral level beyond the first null,
// relative to DC in dB.
func (p *probe) peakSidelobe(firstNull float64) float64 {
	nyquist := float64(len(p.coeffs)) / 2

	peakAt := firstNull
	peak := 0.0
	for bins := firstNull; bins < nyquist; bins += scanStep {
		if v := p.power(bins); v > peak {
			peak = v
			peakAt = bins
		}
	}

	best := p.refine(peakAt, scanStep, func(a, b float64) bool { return a > b })
	return p.relativeDB(best)
}

// refine sharpens a coarse extremum location by repeated grid refinement:
// each round samples a shrinking interval around the current best position.
// better reports whether its first argument improves on the second.
func (p *probe) refine(center, radius float64, better func(a, b float64) bool) float64 {
	best := center
	bestVal := p.power(center)

	for round := 0; round < 8; round++ {
		lo := math.Max(0, best-radius)
		step := radius / 16
		for i := 0; i <= 32; i++ {
			bins := lo + float64(i)*step
			if v := p.power(bins); better(v, bestVal) {
				bestVal = v
				best = bins
			}
		}
		radius = step
	}

	return best
}
