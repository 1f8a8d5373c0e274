// Package conv provides convolution and correlation routines.
//
// Two strategies are available, selected automatically by [Convolve]:
//
//   - Direct convolution: O(N*M) time-domain evaluation, best for short kernels
//   - Overlap-add: block convolution through the packed real DFT, efficient
//     for long signals with medium to long kernels
//
// For repeated convolution with the same kernel, create a reusable
// [OverlapAdd]; for block-at-a-time processing of unbounded inputs, use
// [StreamingOverlapAdd], which carries the convolution tail across calls.
package conv
