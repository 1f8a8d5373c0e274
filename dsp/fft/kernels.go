package fft

const (
	sqrt2by2 = 0.70710678118654752440
	cosPi8   = 0.92387953251128675613
	sinPi8   = 0.38268343236508977173
)

// node is one sub-transform in the split-radix decomposition tree. A node
// covers the input samples at xoffset, xoffset+xstride, ... and writes its
// transform into a contiguous run of the output starting at yoffset.
type node interface {
	link(xr, xi, yr, yi []float64)
	evaluate()
}

// srButterfly0 is the split-radix combine for k = 0, where both twiddle
// factors are unity.
func srButterfly0(yr, yi []float64, kp, kpN4, kpN2, kp3N4 int) {
	z1r, z1i := yr[kpN2], yi[kpN2]
	z3r, z3i := yr[kp3N4], yi[kp3N4]

	rr, ri := z1r+z3r, z1i+z3i
	dr, di := z1r-z3r, z1i-z3i

	ur, ui := yr[kp], yi[kp]
	u4r, u4i := yr[kpN4], yi[kpN4]

	yr[kp], yi[kp] = ur+rr, ui+ri
	yr[kpN2], yi[kpN2] = ur-rr, ui-ri
	yr[kpN4], yi[kpN4] = u4r+di, u4i-dr
	yr[kp3N4], yi[kp3N4] = u4r-di, u4i+dr
}

// srButterfly merges the three child transforms at one frequency index.
// (c1,s1) is W^k and (c3,s3) is W^3k, with the sine parts already negated for
// the forward rotation direction.
func srButterfly(yr, yi []float64, kp, kpN4, kpN2, kp3N4 int, c1, s1, c3, s3 float64) {
	z1r, z1i := yr[kpN2], yi[kpN2]
	z3r, z3i := yr[kp3N4], yi[kp3N4]

	t1r := c1*z1r - s1*z1i
	t1i := c1*z1i + s1*z1r
	t3r := c3*z3r - s3*z3i
	t3i := c3*z3i + s3*z3r

	rr, ri := t1r+t3r, t1i+t3i
	dr, di := t1r-t3r, t1i-t3i

	ur, ui := yr[kp], yi[kp]
	u4r, u4i := yr[kpN4], yi[kpN4]

	yr[kp], yi[kp] = ur+rr, ui+ri
	yr[kpN2], yi[kpN2] = ur-rr, ui-ri
	yr[kpN4], yi[kpN4] = u4r+di, u4i-dr
	yr[kp3N4], yi[kp3N4] = u4r-di, u4i+dr
}

// dft4 is a hand-unrolled length-4 complex DFT on strided input.
func dft4(xr, xi []float64, xoff, m int, yr, yi []float64, yoff int) {
	x0r, x0i := xr[xoff], xi[xoff]
	x1r, x1i := xr[xoff+m], xi[xoff+m]
	x2r, x2i := xr[xoff+2*m], xi[xoff+2*m]
	x3r, x3i := xr[xoff+3*m], xi[xoff+3*m]

	a0r, a0i := x0r+x2r, x0i+x2i
	a1r, a1i := x1r+x3r, x1i+x3i
	b0r, b0i := x0r-x2r, x0i-x2i
	b1r, b1i := x1r-x3r, x1i-x3i

	yr[yoff], yi[yoff] = a0r+a1r, a0i+a1i
	yr[yoff+2], yi[yoff+2] = a0r-a1r, a0i-a1i
	yr[yoff+1], yi[yoff+1] = b0r+b1i, b0i-b1r
	yr[yoff+3], yi[yoff+3] = b0r-b1i, b0i+b1r
}

// dft8 is a hand-unrolled length-8 split-radix DFT on strided input: a
// length-4 DFT of the even samples, two length-2 DFTs of the odd sample sets,
// and two combine butterflies with constant twiddles.
func dft8(xr, xi []float64, xoff, m int, yr, yi []float64, yoff int) {
	dft4(xr, xi, xoff, 2*m, yr, yi, yoff)

	o0r, o0i := xr[xoff+m], xi[xoff+m]
	o1r, o1i := xr[xoff+5*m], xi[xoff+5*m]
	yr[yoff+4], yi[yoff+4] = o0r+o1r, o0i+o1i
	yr[yoff+5], yi[yoff+5] = o0r-o1r, o0i-o1i

	p0r, p0i := xr[xoff+3*m], xi[xoff+3*m]
	p1r, p1i := xr[xoff+7*m], xi[xoff+7*m]
	yr[yoff+6], yi[yoff+6] = p0r+p1r, p0i+p1i
	yr[yoff+7], yi[yoff+7] = p0r-p1r, p0i-p1i

	srButterfly0(yr, yi, yoff, yoff+2, yoff+4, yoff+6)
	srButterfly(yr, yi, yoff+1, yoff+3, yoff+5, yoff+7,
		sqrt2by2, -sqrt2by2, -sqrt2by2, -sqrt2by2)
}

// kernel8 is the length-8 leaf of the decomposition tree.
type kernel8 struct {
	xr, xi, yr, yi []float64
	xoff, xstride  int
	yoff           int
}

func (k *kernel8) link(xr, xi, yr, yi []float64) {
	k.xr, k.xi, k.yr, k.yi = xr, xi, yr, yi
}

func (k *kernel8) evaluate() {
	dft8(k.xr, k.xi, k.xoff, k.xstride, k.yr, k.yi, k.yoff)
}

// kernel16 is the length-16 leaf: a length-8 DFT of the even samples, two
// length-4 DFTs of the odd sample sets, and four combine butterflies with
// construction-time constant twiddles.
type kernel16 struct {
	xr, xi, yr, yi []float64
	xoff, xstride  int
	yoff           int
}

func (k *kernel16) link(xr, xi, yr, yi []float64) {
	k.xr, k.xi, k.yr, k.yi = xr, xi, yr, yi
}

func (k *kernel16) evaluate() {
	xr, xi, yr, yi := k.xr, k.xi, k.yr, k.yi
	m := k.xstride
	o := k.xoff
	y := k.yoff

	dft8(xr, xi, o, 2*m, yr, yi, y)
	dft4(xr, xi, o+m, 4*m, yr, yi, y+8)
	dft4(xr, xi, o+3*m, 4*m, yr, yi, y+12)

	srButterfly0(yr, yi, y, y+4, y+8, y+12)
	srButterfly(yr, yi, y+1, y+5, y+9, y+13, cosPi8, -sinPi8, sinPi8, -cosPi8)
	srButterfly(yr, yi, y+2, y+6, y+10, y+14, sqrt2by2, -sqrt2by2, -sqrt2by2, -sqrt2by2)
	srButterfly(yr, yi, y+3, y+7, y+11, y+15, sinPi8, -cosPi8, -cosPi8, sinPi8)
}
