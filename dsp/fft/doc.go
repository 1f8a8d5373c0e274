// Package fft provides fixed-size complex and real discrete Fourier transforms
// based on the split-radix algorithm.
//
// Transforms are limited to power-of-two lengths (complex >= 8, real >= 16).
// A transform object is constructed once for a given length and then reused for
// any number of evaluations; twiddle tables and the decomposition tree are
// precomputed at construction so the evaluation hot path performs no index
// arithmetic beyond loop counters.
//
//	d, err := fft.NewComplexDFT(10) // length 1024
//	...
//	err = d.Evaluate(xr, xi, Xr, Xi)
//
// Real transforms use the conjugate-symmetric packed storage of Sorensen et al.
// (1987): X[0] holds the DC bin, X[N/2] the Nyquist bin, X[1..N/2-1] the real
// parts in ascending order and X[N/2+1..N-1] the imaginary parts of bins
// N/2-1..1 in descending bin order. [DFTProduct] multiplies two packed spectra
// for FFT-based convolution and correlation.
//
// A transform instance mutates internal scratch buffers during evaluation and
// must not be shared between concurrently running evaluations. The precomputed
// tables are read-only after construction, so distinct instances may run in
// parallel.
package fft
