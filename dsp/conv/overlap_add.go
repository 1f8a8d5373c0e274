package conv

import (
	"fmt"

	"github.com/cwbudde/algo-sigproc/dsp/core"
	"github.com/cwbudde/algo-sigproc/dsp/fft"
)

// OverlapAdd implements FFT-based convolution using the overlap-add method:
// the input is cut into non-overlapping blocks, each block is convolved with
// the kernel through the packed real DFT, and the block results are summed at
// their offsets. The kernel spectrum is computed once, so the per-block cost
// is two real transforms and one packed product.
type OverlapAdd struct {
	kernelSpectrum []float64
	kernelLen      int
	blockSize      int
	fftSize        int

	dft *fft.RealDFT

	// scratch, fftSize each
	spectrum []float64
	segment  []float64
}

// NewOverlapAdd creates an overlap-add convolver for the given kernel.
// blockSize determines how the input is segmented; pass 0 to choose one
// automatically from the kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	kernelLen := len(kernel)
	if blockSize <= 0 {
		blockSize = 1 << log2Ceil(kernelLen)
		if blockSize < 256 {
			blockSize = 256
		}
	}

	log2fft := log2Ceil(blockSize + kernelLen - 1)
	if log2fft < 4 {
		log2fft = 4
	}
	fftSize := 1 << log2fft

	dft, err := fft.NewRealDFT(log2fft)
	if err != nil {
		return nil, fmt.Errorf("conv: %w", err)
	}

	oa := &OverlapAdd{
		kernelSpectrum: make([]float64, fftSize),
		kernelLen:      kernelLen,
		blockSize:      blockSize,
		fftSize:        fftSize,
		dft:            dft,
		spectrum:       make([]float64, fftSize),
		segment:        make([]float64, fftSize),
	}

	padded := make([]float64, fftSize)
	copy(padded, kernel)
	if err := dft.Evaluate(padded, oa.kernelSpectrum); err != nil {
		return nil, fmt.Errorf("conv: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int { return oa.blockSize }

// FFTSize returns the transform size used internally.
func (oa *OverlapAdd) FFTSize() int { return oa.fftSize }

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int { return oa.kernelLen }

// Process convolves the input signal with the kernel, returning the full
// linear convolution of length len(input)+KernelLen()-1.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, len(input)+oa.kernelLen-1)
	if err := oa.accumulate(output, input); err != nil {
		return nil, err
	}
	return output, nil
}

// ProcessTo convolves input into a pre-allocated output of length
// len(input)+KernelLen()-1.
func (oa *OverlapAdd) ProcessTo(output, input []float64) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}
	if want := len(input) + oa.kernelLen - 1; len(output) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(output))
	}

	core.Zero(output)
	return oa.accumulate(output, input)
}

func (oa *OverlapAdd) accumulate(output, input []float64) error {
	for start := 0; start < len(input); start += oa.blockSize {
		end := start + oa.blockSize
		if end > len(input) {
			end = len(input)
		}
		blockLen := end - start

		core.Zero(oa.segment)
		copy(oa.segment, input[start:end])

		if err := oa.dft.Evaluate(oa.segment, oa.spectrum); err != nil {
			return fmt.Errorf("conv: %w", err)
		}
		if err := fft.DFTProduct(oa.kernelSpectrum, oa.spectrum, 1); err != nil {
			return fmt.Errorf("conv: %w", err)
		}
		if err := oa.dft.EvaluateInverse(oa.spectrum, oa.segment); err != nil {
			return fmt.Errorf("conv: %w", err)
		}

		n := blockLen + oa.kernelLen - 1
		if start+n > len(output) {
			n = len(output) - start
		}
		for i := 0; i < n; i++ {
			output[start+i] += oa.segment[i]
		}
	}

	return nil
}

// OverlapAddConvolve performs one-shot overlap-add convolution.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(signal)
}
