package fft

import (
	"fmt"
	"math"
)

// RealDFT computes the DFT of a real sequence of fixed power-of-two length
// N = 2^log2N, N >= 16, using one complex DFT of length N/2 plus a butterfly
// pass that exploits the conjugate symmetry X[k] = conj(X[N-k]).
//
// The transform is stored in the packed form of Sorensen et al. (1987):
//
//	index 0         X[0]        (DC, real)
//	index 1..N/2-1  Re X[k]     ascending k
//	index N/2       X[N/2]      (Nyquist, real)
//	index N/2+1     Im X[N/2-1]
//	...             ...         descending k
//	index N-1       Im X[1]
//
// This layout is the external contract consumed by [DFTProduct] and by the
// convolution and filter-synthesis code built on top of this package.
type RealDFT struct {
	n, n2, n4 int

	// Half-length scratch: deinterleaved sequence and its complex transform.
	xr, xi []float64
	tr, ti []float64

	c, s []float64

	dft *ComplexDFT
}

// NewRealDFT constructs a real transform of length 2^log2N.
func NewRealDFT(log2N int) (*RealDFT, error) {
	if log2N < 4 {
		return nil, fmt.Errorf("%w: real DFT size must be >= 16, got log2N=%d", ErrInvalidLength, log2N)
	}

	n := 1 << log2N
	d := &RealDFT{
		n:  n,
		n2: n / 2,
		n4: n / 4,
		xr: make([]float64, n/2),
		xi: make([]float64, n/2),
		tr: make([]float64, n/2),
		ti: make([]float64, n/2),
		c:  make([]float64, n/4),
		s:  make([]float64, n/4),
	}

	for i := 0; i < d.n4; i++ {
		d.c[i] = math.Cos(2 * math.Pi / float64(n) * float64(i))
		d.s[i] = math.Sin(2 * math.Pi / float64(n) * float64(i))
	}

	var err error
	d.dft, err = NewComplexDFT(log2N - 1)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Len returns the transform length N.
func (d *RealDFT) Len() int { return d.n }

// Evaluate computes the DFT of the real sequence x (natural order) into X in
// conjugate-symmetric packed form. Both slices must have length N.
func (d *RealDFT) Evaluate(x, X []float64) error {
	if len(x) != d.n || len(X) != d.n {
		return fmt.Errorf("%w: transform length is %d", ErrLengthMismatch, d.n)
	}

	n2, n4 := d.n2, d.n4

	// Pack even samples into the real part and odd samples into the
	// imaginary part of a half-length complex sequence.
	for i := 0; i < n2; i++ {
		j := i << 1
		d.xr[i] = x[j]
		d.xi[i] = x[j+1]
	}

	if err := d.dft.Evaluate(d.xr, d.xi, d.tr, d.ti); err != nil {
		return err
	}

	// k = 0: no twiddle needed.
	X[0] = d.tr[0] + d.ti[0]
	X[n2] = d.tr[0] - d.ti[0]

	n2pk := n2 + 1
	n2mk := n2 - 1
	nmk := d.n - 1
	for k := 1; k < n4; k++ {
		xrk := d.tr[k]
		xik := d.ti[k]
		xrm := d.tr[n2mk]
		xim := d.ti[n2mk]

		sr := (xrk + xrm) / 2
		si := (xik - xim) / 2

		dr := (xik + xim) / 2
		di := (xrm - xrk) / 2

		tmp := d.c[k]*dr + d.s[k]*di
		di = d.c[k]*di - d.s[k]*dr
		dr = tmp

		X[k] = sr + dr
		X[nmk] = si + di

		X[n2mk] = sr - dr
		X[n2pk] = di - si

		n2pk++
		n2mk--
		nmk--
	}

	// k = N/4: the twiddle is exactly (0, 1).
	X[n4] = d.tr[n4]
	X[n2+n4] = -d.ti[n4]

	return nil
}

// EvaluateInverse computes the inverse DFT of the packed transform X into the
// real sequence x in natural order, scaled by 1/N.
func (d *RealDFT) EvaluateInverse(X, x []float64) error {
	if len(x) != d.n || len(X) != d.n {
		return fmt.Errorf("%w: transform length is %d", ErrLengthMismatch, d.n)
	}

	n2, n4 := d.n2, d.n4

	// Rebuild the half-length complex spectrum from the packed layout.
	d.tr[0] = X[0] + X[n2]
	d.ti[0] = X[0] - X[n2]

	n2pk := n2 + 1
	n2mk := n2 - 1
	nmk := d.n - 1
	for k := 1; k < n4; k++ {
		xrk := X[k]
		xik := X[nmk]
		xrm := X[n2mk]
		xim := -X[n2pk]

		dr := xrk - xrm
		di := xik - xim

		d.tr[k] = xrk + xrm - d.s[k]*dr - d.c[k]*di
		d.ti[k] = xik + xim + d.c[k]*dr - d.s[k]*di

		n2pk++
		n2mk--
		nmk--
	}

	// k = N/4.
	d.tr[n4] = 2 * X[n4]
	d.ti[n4] = -2 * X[n2+n4]

	// Upper half N/4 < k < N/2 with reflected twiddle lookup:
	// cos(2pi(N/4+m)/N) = -cos(2pi(N/4-m)/N), sin(2pi(N/4+m)/N) = sin(2pi(N/4-m)/N).
	n2pk = n2 + n4 + 1
	n2mk = n4 - 1
	nmk = d.n - n4 - 1
	reflect := n4 - 1
	for k := n4 + 1; k < n2; k++ {
		xrk := X[k]
		xik := X[nmk]
		xrm := X[n2mk]
		xim := -X[n2pk]

		dr := xrk - xrm
		di := xik - xim

		d.tr[k] = xrk + xrm - d.s[reflect]*dr + d.c[reflect]*di
		d.ti[k] = xik + xim - d.c[reflect]*dr - d.s[reflect]*di

		n2pk++
		n2mk--
		nmk--
		reflect--
	}

	if err := d.dft.Evaluate(d.tr, d.ti, d.xr, d.xi); err != nil {
		return err
	}

	// Re-interleave, reversing the half-length result and applying 1/N.
	scale := 1.0 / float64(d.n)
	x[0] = d.xr[0] * scale
	x[1] = d.xi[0] * scale

	j := n2 - 1
	for k := 1; k < n2; k++ {
		i := k << 1
		x[i] = d.xr[j] * scale
		x[i+1] = d.xi[j] * scale
		j--
	}

	return nil
}

// DFTProduct multiplies two conjugate-symmetric packed transforms of the same
// length, storing the product in transform. The DC and Nyquist bins are purely
// real and multiply directly; the remaining bins multiply as complex pairs
// (i, N-i). sign selects a convolution (+1) or correlation (-1) type product.
func DFTProduct(kernel, transform []float64, sign float64) error {
	if len(kernel) != len(transform) {
		return fmt.Errorf("%w: kernel and transform must have the same size", ErrLengthMismatch)
	}

	n := len(kernel)
	half := n / 2
	transform[0] *= kernel[0]
	transform[half] *= kernel[half]

	for i := 1; i < half; i++ {
		im := n - i
		tmp := kernel[i]*transform[i] - sign*kernel[im]*transform[im]
		transform[im] = kernel[i]*transform[im] + sign*kernel[im]*transform[i]
		transform[i] = tmp
	}

	return nil
}
