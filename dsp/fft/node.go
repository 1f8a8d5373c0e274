package fft

import "math"

// twiddles holds the cos/sin tables shared by every level of a decomposition
// tree. The tables are sized n/8 for the top-level length n; deeper levels
// index them with a stride instead of recomputing per-level tables. The sine
// tables store -sin to match the forward rotation direction. Immutable after
// construction.
type twiddles struct {
	n            int
	c, c3, s, s3 []float64
}

func newTwiddles(n int) *twiddles {
	n8 := n / 8
	t := &twiddles{
		n:  n,
		c:  make([]float64, n8),
		c3: make([]float64, n8),
		s:  make([]float64, n8),
		s3: make([]float64, n8),
	}

	for i := 0; i < n8; i++ {
		t.c[i] = math.Cos(2 * math.Pi * float64(i) / float64(n))
		t.c3[i] = math.Cos(6 * math.Pi * float64(i) / float64(n))
		t.s[i] = -math.Sin(2 * math.Pi * float64(i) / float64(n))
		t.s3[i] = -math.Sin(6 * math.Pi * float64(i) / float64(n))
	}

	return t
}

// srNode is one internal level of the recursive split-radix decomposition:
// a length-n transform built from a length-n/2 child on the even samples and
// two length-n/4 children on the two odd sample sets. All offsets, strides and
// the twiddle table stride are fixed at construction.
type srNode struct {
	yr, yi []float64

	yoff         int
	n4, n8, f    int
	c, c3, s, s3 []float64

	child1, child2, child3 node
}

// newNode builds the sub-transform covering samples xoff, xoff+xstride, ...
// writing output at yoff. Recursion bottoms out at the length-8 and length-16
// hand kernels.
func newNode(log2N, xoff, xstride, yoff int, tw *twiddles) node {
	switch log2N {
	case 3:
		return &kernel8{xoff: xoff, xstride: xstride, yoff: yoff}
	case 4:
		return &kernel16{xoff: xoff, xstride: xstride, yoff: yoff}
	}

	n := 1 << log2N
	return &srNode{
		yoff: yoff,
		n4:   n / 4,
		n8:   n / 8,
		f:    tw.n / n,
		c:    tw.c,
		c3:   tw.c3,
		s:    tw.s,
		s3:   tw.s3,

		child1: newNode(log2N-1, xoff, xstride*2, yoff, tw),
		child2: newNode(log2N-2, xoff+xstride, xstride*4, yoff+n/2, tw),
		child3: newNode(log2N-2, xoff+3*xstride, xstride*4, yoff+3*n/4, tw),
	}
}

func (d *srNode) link(xr, xi, yr, yi []float64) {
	d.yr, d.yi = yr, yi
	d.child1.link(xr, xi, yr, yi)
	d.child2.link(xr, xi, yr, yi)
	d.child3.link(xr, xi, yr, yi)
}

func (d *srNode) evaluate() {
	d.child1.evaluate()
	d.child2.evaluate()
	d.child3.evaluate()

	yr, yi := d.yr, d.yi
	n4, n8, f := d.n4, d.n8, d.f

	kp := d.yoff
	kpN4 := kp + n4
	kpN2 := kp + 2*n4
	kp3N4 := kp + 3*n4

	srButterfly0(yr, yi, kp, kpN4, kpN2, kp3N4)

	kp++
	kpN4++
	kpN2++
	kp3N4++

	for k := 1; k < n8; k++ {
		j := k * f
		srButterfly(yr, yi, kp, kpN4, kpN2, kp3N4, d.c[j], d.s[j], d.c3[j], d.s3[j])
		kp++
		kpN4++
		kpN2++
		kp3N4++
	}

	srButterfly(yr, yi, kp, kpN4, kpN2, kp3N4,
		sqrt2by2, -sqrt2by2, -sqrt2by2, -sqrt2by2)

	kp++
	kpN4++
	kpN2++
	kp3N4++

	// Upper quarter: the tables only span one octant, so look them up with a
	// reflected index.
	for k := n8 + 1; k < n4; k++ {
		j := (n4 - k) * f
		srButterfly(yr, yi, kp, kpN4, kpN2, kp3N4, -d.s[j], -d.c[j], d.s3[j], d.c3[j])
		kp++
		kpN4++
		kpN2++
		kp3N4++
	}
}
