// Package fir provides a direct-form FIR filter runtime and analytic signal
// construction.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a circular-buffer delay line. It is suitable for short filters
// (order < ~256); long filters are better served by the FFT-based block
// convolvers in dsp/conv.
//
// Coefficient design is a separate concern: see dsp/filter/equiripple for
// Parks-McClellan designs. [AnalyticSignal] combines the two, pairing a
// signal with its Hilbert transform for envelope extraction.
package fir
