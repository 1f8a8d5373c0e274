// Package iir implements recursive filters as cascades of second-order
// sections in Direct Form II Transposed, with closed-form Butterworth and
// Chebyshev Type I designs.
//
// All design functions take frequencies normalized to [0, 1] with 1.0 at the
// Nyquist frequency, matching the convention used across this module.
package iir
