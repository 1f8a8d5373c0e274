// Package equiripple designs linear-phase FIR filters by Chebyshev (minimax)
// approximation using the Parks-McClellan variant of the Remez exchange
// algorithm.
//
// A filter is specified by a set of non-overlapping frequency bands on the
// normalized interval [0, 1] (1.0 is the Nyquist frequency), a desired
// response and a weight per band, and a design order that controls the number
// of approximating basis functions. All four linear-phase symmetry classes are
// covered through the concrete designs:
//
//   - [NewLowpass], [NewHighpass], [NewBandpass]: odd length, even symmetry
//   - [NewHalfBand]: even-length prototype, interleaved to a half-band filter
//   - [NewCenteredDifferentiator], [NewCenteredHilbert]: odd length, odd symmetry
//   - [NewStaggeredDifferentiator], [NewStaggeredHilbert]: even length, odd symmetry
//
// The exchange iteration is best-effort: if the alternation criterion is not
// met within the iteration cap (25 by default) the design still returns the
// best approximation reached, and [Filter.Report] exposes the iteration count,
// convergence flag and final deviation for inspection.
//
// References: Parks & McClellan (1972), McClellan & Parks (1973), Rabiner,
// McClellan & Parks (1975).
package equiripple
