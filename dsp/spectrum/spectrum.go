// Package spectrum derives magnitude, power and phase views from transform
// output, in both the packed real-DFT layout and plain complex slices.
package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// ErrPackedLength is returned when a packed spectrum does not have the even
// length the layout requires.
var ErrPackedLength = errors.New("spectrum: packed spectrum length must be even and at least 2")

// scratchBuf holds pooled scratch memory for unpacking spectra.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	buf.data = core.EnsureLen(buf.data, need)
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// UnpackParts splits a packed real-DFT spectrum of even length N into real
// and imaginary parts over the N/2+1 non-negative frequency bins. In the
// packed layout the DC and Nyquist bins sit at indices 0 and N/2, the real
// parts of bins 1..N/2-1 follow DC in ascending order, and the matching
// imaginary parts occupy indices N-1 down to N/2+1.
func UnpackParts(packed []float64) (re, im []float64, err error) {
	n := len(packed)
	if n < 2 || n%2 != 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrPackedLength, n)
	}

	half := n / 2
	re = make([]float64, half+1)
	im = make([]float64, half+1)

	re[0] = packed[0]
	re[half] = packed[half]
	for k := 1; k < half; k++ {
		re[k] = packed[k]
		im[k] = packed[n-k]
	}

	return re, im, nil
}

// MagnitudePacked returns |X[k]| over the N/2+1 non-negative frequency bins
// of a packed real-DFT spectrum.
func MagnitudePacked(packed []float64) ([]float64, error) {
	return packedMap(packed, vecmath.Magnitude)
}

// PowerPacked returns |X[k]|^2 over the N/2+1 non-negative frequency bins of
// a packed real-DFT spectrum.
func PowerPacked(packed []float64) ([]float64, error) {
	return packedMap(packed, vecmath.Power)
}

func packedMap(packed []float64, op func(dst, re, im []float64)) ([]float64, error) {
	n := len(packed)
	if n < 2 || n%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrPackedLength, n)
	}

	half := n / 2
	re, im, buf := getScratch(half + 1)
	defer putScratch(buf)

	re[0], im[0] = packed[0], 0
	re[half], im[half] = packed[half], 0
	for k := 1; k < half; k++ {
		re[k] = packed[k]
		im[k] = packed[n-k]
	}

	out := make([]float64, half+1)
	op(out, re, im)
	return out, nil
}

// PhasePacked returns arg(X[k]) in radians over the N/2+1 non-negative
// frequency bins of a packed real-DFT spectrum.
func PhasePacked(packed []float64) ([]float64, error) {
	re, im, err := UnpackParts(packed)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(re))
	for k := range out {
		out[k] = math.Atan2(im[k], re[k])
	}
	return out, nil
}

// Magnitude returns |X[k]| for each complex spectrum bin. Uses vectorized
// kernels where available; scratch buffers are pooled, so in steady state
// only the output slice allocates.
func Magnitude(in []complex128) []float64 {
	return complexMap(in, vecmath.Magnitude)
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	return complexMap(in, vecmath.Power)
}

func complexMap(in []complex128, op func(dst, re, im []float64)) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	defer putScratch(buf)

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	op(out, re, im)
	return out
}

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
// Zero-allocation path for callers holding split real and imaginary slices.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// Phase returns arg(X[k]) for each complex spectrum bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// BinFrequency returns the normalized frequency of bin k in an fftSize-point
// transform, with 1.0 at the Nyquist rate. Bins beyond fftSize/2 map to the
// negative-frequency range (1, 2).
func BinFrequency(k, fftSize int) float64 {
	if fftSize <= 0 {
		return 0
	}
	return 2 * float64(k) / float64(fftSize)
}

// FrequencyBin returns the bin index nearest to the normalized frequency omega
// in an fftSize-point transform. Frequencies outside [0, 1] clamp to the DC
// and Nyquist bins.
func FrequencyBin(omega float64, fftSize int) int {
	if fftSize <= 0 {
		return 0
	}
	omega = core.Clamp(omega, 0, 1)
	return int(math.Round(omega * float64(fftSize) / 2))
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}

	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// GroupDelayFromPhase computes group delay in samples from unwrapped phase
// sampled on uniformly spaced bins of an fftSize-point transform. Centered
// differences on interior bins, one-sided at the ends.
func GroupDelayFromPhase(unwrapped []float64, fftSize int) ([]float64, error) {
	if len(unwrapped) < 2 {
		return nil, fmt.Errorf("spectrum: group delay requires at least 2 phase points, got %d", len(unwrapped))
	}
	if fftSize <= 0 {
		return nil, fmt.Errorf("spectrum: group delay fftSize must be > 0, got %d", fftSize)
	}

	dw := 2 * math.Pi / float64(fftSize)
	out := make([]float64, len(unwrapped))
	for i := range unwrapped {
		var dphi float64
		switch i {
		case 0:
			dphi = unwrapped[1] - unwrapped[0]
		case len(unwrapped) - 1:
			dphi = unwrapped[i] - unwrapped[i-1]
		default:
			dphi = (unwrapped[i+1] - unwrapped[i-1]) / 2
		}
		out[i] = -dphi / dw
	}
	return out, nil
}
