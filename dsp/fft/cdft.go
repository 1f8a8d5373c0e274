package fft

import "fmt"

// ComplexDFT computes forward and inverse complex DFTs of a fixed power-of-two
// length N = 2^log2N, N >= 8, using the split-radix decomposition.
//
// Sequences and transforms are represented as parallel real/imaginary float64
// slices. The forward transform is unnormalized; the inverse applies the 1/N
// scale. An instance is cheap to reuse: twiddle tables and the decomposition
// tree are built once at construction.
type ComplexDFT struct {
	n     int
	log2n int

	tw   *twiddles
	root node

	// Output buffers of the most recent link, needed by the inverse
	// post-processing pass.
	yr, yi []float64

	linked bool
}

// NewComplexDFT constructs a transform of length 2^log2N without binding any
// buffers. Use [ComplexDFT.Evaluate] or [ComplexDFT.EvaluateInverse] with
// explicit buffer arguments.
func NewComplexDFT(log2N int) (*ComplexDFT, error) {
	if log2N < 3 {
		return nil, fmt.Errorf("%w: complex DFT size must be >= 8, got log2N=%d", ErrInvalidLength, log2N)
	}

	n := 1 << log2N
	d := &ComplexDFT{
		n:     n,
		log2n: log2N,
		tw:    newTwiddles(n),
	}
	d.root = newNode(log2N, 0, 1, 0, d.tw)

	return d, nil
}

// NewComplexDFTLinked constructs a transform of length 2^log2N with the four
// buffers bound once at construction, for use with the no-argument
// [ComplexDFT.EvaluateLinked] and [ComplexDFT.EvaluateInverseLinked] methods.
// On forward evaluation (xr, xi) is the sequence and (yr, yi) receives the
// transform; on inverse evaluation the roles are reversed.
func NewComplexDFTLinked(xr, xi, yr, yi []float64, log2N int) (*ComplexDFT, error) {
	d, err := NewComplexDFT(log2N)
	if err != nil {
		return nil, err
	}
	if err := d.checkLen(xr, xi, yr, yi); err != nil {
		return nil, err
	}

	d.yr, d.yi = yr, yi
	d.root.link(xr, xi, yr, yi)
	d.linked = true

	return d, nil
}

// Len returns the transform length N.
func (d *ComplexDFT) Len() int { return d.n }

// Log2Len returns log2(N).
func (d *ComplexDFT) Log2Len() int { return d.log2n }

// Evaluate computes the forward DFT of (xr, xi) into (Xr, Xi). The buffers are
// relinked down the decomposition tree on every call; for repeated evaluation
// with identical buffers prefer [NewComplexDFTLinked] with
// [ComplexDFT.EvaluateLinked].
func (d *ComplexDFT) Evaluate(xr, xi, Xr, Xi []float64) error {
	if err := d.checkLen(xr, xi, Xr, Xi); err != nil {
		return err
	}

	d.yr, d.yi = Xr, Xi
	d.root.link(xr, xi, Xr, Xi)
	d.linked = true
	d.root.evaluate()

	return nil
}

// EvaluateInverse computes the inverse DFT of (Xr, Xi) into (xr, xi),
// including the 1/N normalization.
func (d *ComplexDFT) EvaluateInverse(Xr, Xi, xr, xi []float64) error {
	if err := d.checkLen(Xr, Xi, xr, xi); err != nil {
		return err
	}

	d.yr, d.yi = xr, xi
	d.root.link(Xr, Xi, xr, xi)
	d.linked = true
	d.root.evaluate()
	d.inversePost()

	return nil
}

// EvaluateLinked computes the forward DFT using the buffers bound at
// construction time.
func (d *ComplexDFT) EvaluateLinked() error {
	if !d.linked {
		return ErrNotLinked
	}
	d.root.evaluate()
	return nil
}

// EvaluateInverseLinked computes the inverse DFT using the buffers bound at
// construction time.
func (d *ComplexDFT) EvaluateInverseLinked() error {
	if !d.linked {
		return ErrNotLinked
	}
	d.root.evaluate()
	d.inversePost()
	return nil
}

// inversePost turns the forward transform sitting in (yr, yi) into the inverse
// transform: 1/N scaling plus index reversal. The DC and Nyquist bins are
// fixed points of the reversal and only scaled.
func (d *ComplexDFT) inversePost() {
	yr, yi := d.yr, d.yi
	scale := 1.0 / float64(d.n)
	n2 := d.n / 2

	yr[0] *= scale
	yi[0] *= scale
	yr[n2] *= scale
	yi[n2] *= scale

	i := 1
	j := d.n - 1
	for i < j {
		yr[i], yr[j] = yr[j]*scale, yr[i]*scale
		yi[i], yi[j] = yi[j]*scale, yi[i]*scale
		i++
		j--
	}
}

func (d *ComplexDFT) checkLen(a, b, c, e []float64) error {
	if len(a) != d.n || len(b) != d.n || len(c) != d.n || len(e) != d.n {
		return fmt.Errorf("%w: transform length is %d", ErrLengthMismatch, d.n)
	}
	return nil
}

// DFTProductComplex multiplies two complex transforms of the same length,
// storing the product in (Yr, Yi). sign selects a convolution (+1) or
// correlation (-1) type product.
func DFTProductComplex(Xr, Xi, Yr, Yi []float64, sign float64) error {
	if len(Xr) != len(Yr) || len(Xi) != len(Yi) || len(Xr) != len(Xi) {
		return fmt.Errorf("%w: transform arrays must have equal lengths", ErrLengthMismatch)
	}

	for i := range Xr {
		tmp := Xr[i]*Yr[i] - sign*Xi[i]*Yi[i]
		Yi[i] = Xr[i]*Yi[i] + sign*Xi[i]*Yr[i]
		Yr[i] = tmp
	}

	return nil
}
