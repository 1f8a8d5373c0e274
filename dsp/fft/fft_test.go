package fft

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

func randomSignal(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

// naiveDFT is the O(n^2) reference evaluation.
func naiveDFT(xr, xi []float64) (Xr, Xi []float64) {
	n := len(xr)
	Xr = make([]float64, n)
	Xi = make([]float64, n)
	for k := 0; k < n; k++ {
		for m := 0; m < n; m++ {
			w := -2 * math.Pi * float64(k) * float64(m) / float64(n)
			c, s := math.Cos(w), math.Sin(w)
			Xr[k] += xr[m]*c - xi[m]*s
			Xi[k] += xr[m]*s + xi[m]*c
		}
	}
	return Xr, Xi
}

func maxAbsDiff(a, b []float64) float64 {
	var m float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}
	return m
}

func TestComplexDFTImpulse(t *testing.T) {
	for log2N := 3; log2N <= 7; log2N++ {
		n := 1 << log2N
		d, err := NewComplexDFT(log2N)
		if err != nil {
			t.Fatalf("NewComplexDFT(%d): %v", log2N, err)
		}

		xr := make([]float64, n)
		xi := make([]float64, n)
		Xr := make([]float64, n)
		Xi := make([]float64, n)
		xr[0] = 1

		if err := d.Evaluate(xr, xi, Xr, Xi); err != nil {
			t.Fatalf("Evaluate: %v", err)
		}

		// The transform of a unit impulse is flat.
		for k := 0; k < n; k++ {
			if math.Abs(Xr[k]-1) > 1e-12 || math.Abs(Xi[k]) > 1e-12 {
				t.Fatalf("n=%d bin %d: got (%v, %v), want (1, 0)", n, k, Xr[k], Xi[k])
			}
		}
	}
}

func TestComplexDFTShiftedImpulse(t *testing.T) {
	// A delayed impulse picks up a linear phase, exercising every twiddle.
	for log2N := 3; log2N <= 8; log2N++ {
		n := 1 << log2N
		d, _ := NewComplexDFT(log2N)

		for _, pos := range []int{1, 3, n/2 + 1, n - 1} {
			xr := make([]float64, n)
			xi := make([]float64, n)
			Xr := make([]float64, n)
			Xi := make([]float64, n)
			xr[pos] = 1

			if err := d.Evaluate(xr, xi, Xr, Xi); err != nil {
				t.Fatalf("Evaluate: %v", err)
			}

			for k := 0; k < n; k++ {
				w := -2 * math.Pi * float64(k) * float64(pos) / float64(n)
				if math.Abs(Xr[k]-math.Cos(w)) > 1e-11 || math.Abs(Xi[k]-math.Sin(w)) > 1e-11 {
					t.Fatalf("n=%d pos=%d bin %d: got (%v, %v), want (%v, %v)",
						n, pos, k, Xr[k], Xi[k], math.Cos(w), math.Sin(w))
				}
			}
		}
	}
}

func TestComplexDFTMatchesNaive(t *testing.T) {
	for log2N := 3; log2N <= 9; log2N++ {
		n := 1 << log2N
		d, _ := NewComplexDFT(log2N)

		xr := randomSignal(n, 1)
		xi := randomSignal(n, 2)
		Xr := make([]float64, n)
		Xi := make([]float64, n)

		if err := d.Evaluate(xr, xi, Xr, Xi); err != nil {
			t.Fatalf("Evaluate: %v", err)
		}

		wantR, wantI := naiveDFT(xr, xi)
		if d := maxAbsDiff(Xr, wantR); d > 1e-9 {
			t.Errorf("n=%d real parts differ from naive DFT by %g", n, d)
		}
		if d := maxAbsDiff(Xi, wantI); d > 1e-9 {
			t.Errorf("n=%d imag parts differ from naive DFT by %g", n, d)
		}
	}
}

func TestComplexDFTMatchesPlanFFT(t *testing.T) {
	// Independent cross-check against the complex FFT plans.
	for log2N := 3; log2N <= 10; log2N++ {
		n := 1 << log2N

		plan, err := algofft.NewPlan64(n)
		if err != nil {
			t.Fatalf("NewPlan64(%d): %v", n, err)
		}

		xr := randomSignal(n, 3)
		xi := randomSignal(n, 4)

		src := make([]complex128, n)
		ref := make([]complex128, n)
		for i := range src {
			src[i] = complex(xr[i], xi[i])
		}
		if err := plan.Forward(ref, src); err != nil {
			t.Fatalf("plan.Forward: %v", err)
		}

		d, _ := NewComplexDFT(log2N)
		Xr := make([]float64, n)
		Xi := make([]float64, n)
		if err := d.Evaluate(xr, xi, Xr, Xi); err != nil {
			t.Fatalf("Evaluate: %v", err)
		}

		for k := 0; k < n; k++ {
			if math.Abs(Xr[k]-real(ref[k])) > 1e-9 || math.Abs(Xi[k]-imag(ref[k])) > 1e-9 {
				t.Fatalf("n=%d bin %d: got (%v, %v), want (%v, %v)",
					n, k, Xr[k], Xi[k], real(ref[k]), imag(ref[k]))
			}
		}
	}
}

func TestComplexDFTRoundTrip(t *testing.T) {
	for log2N := 3; log2N <= 10; log2N++ {
		n := 1 << log2N
		d, _ := NewComplexDFT(log2N)

		xr := randomSignal(n, 5)
		xi := randomSignal(n, 6)
		Xr := make([]float64, n)
		Xi := make([]float64, n)
		backR := make([]float64, n)
		backI := make([]float64, n)

		if err := d.Evaluate(xr, xi, Xr, Xi); err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if err := d.EvaluateInverse(Xr, Xi, backR, backI); err != nil {
			t.Fatalf("EvaluateInverse: %v", err)
		}

		if d := maxAbsDiff(backR, xr); d > 1e-11 {
			t.Errorf("n=%d real round trip error %g", n, d)
		}
		if d := maxAbsDiff(backI, xi); d > 1e-11 {
			t.Errorf("n=%d imag round trip error %g", n, d)
		}
	}
}

func TestComplexDFTLinearity(t *testing.T) {
	const log2N = 6
	n := 1 << log2N
	d, _ := NewComplexDFT(log2N)

	a := randomSignal(n, 7)
	b := randomSignal(n, 8)
	zero := make([]float64, n)

	sum := make([]float64, n)
	for i := range sum {
		sum[i] = 2*a[i] - 3*b[i]
	}

	Ar := make([]float64, n)
	Ai := make([]float64, n)
	Br := make([]float64, n)
	Bi := make([]float64, n)
	Sr := make([]float64, n)
	Si := make([]float64, n)

	if err := d.Evaluate(a, zero, Ar, Ai); err != nil {
		t.Fatal(err)
	}
	if err := d.Evaluate(b, zero, Br, Bi); err != nil {
		t.Fatal(err)
	}
	if err := d.Evaluate(sum, zero, Sr, Si); err != nil {
		t.Fatal(err)
	}

	for k := 0; k < n; k++ {
		if math.Abs(Sr[k]-(2*Ar[k]-3*Br[k])) > 1e-10 {
			t.Fatalf("bin %d violates linearity", k)
		}
		if math.Abs(Si[k]-(2*Ai[k]-3*Bi[k])) > 1e-10 {
			t.Fatalf("bin %d violates linearity (imag)", k)
		}
	}
}

func TestComplexDFTLinked(t *testing.T) {
	const log2N = 5
	n := 1 << log2N

	xr := randomSignal(n, 9)
	xi := randomSignal(n, 10)
	yr := make([]float64, n)
	yi := make([]float64, n)

	d, err := NewComplexDFTLinked(xr, xi, yr, yi, log2N)
	if err != nil {
		t.Fatalf("NewComplexDFTLinked: %v", err)
	}
	if err := d.EvaluateLinked(); err != nil {
		t.Fatalf("EvaluateLinked: %v", err)
	}

	wantR, wantI := naiveDFT(xr, xi)
	if d := maxAbsDiff(yr, wantR); d > 1e-10 {
		t.Errorf("linked real parts differ by %g", d)
	}
	if d := maxAbsDiff(yi, wantI); d > 1e-10 {
		t.Errorf("linked imag parts differ by %g", d)
	}
}

func TestComplexDFTNotLinked(t *testing.T) {
	d, _ := NewComplexDFT(4)
	if err := d.EvaluateLinked(); !errors.Is(err, ErrNotLinked) {
		t.Errorf("EvaluateLinked on unbound transform: got %v, want ErrNotLinked", err)
	}
	if err := d.EvaluateInverseLinked(); !errors.Is(err, ErrNotLinked) {
		t.Errorf("EvaluateInverseLinked on unbound transform: got %v, want ErrNotLinked", err)
	}
}

func TestComplexDFTInvalidSize(t *testing.T) {
	for _, log2N := range []int{-1, 0, 1, 2} {
		if _, err := NewComplexDFT(log2N); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("NewComplexDFT(%d): got %v, want ErrInvalidLength", log2N, err)
		}
	}
}

func TestComplexDFTLengthMismatch(t *testing.T) {
	d, _ := NewComplexDFT(4)
	good := make([]float64, 16)
	bad := make([]float64, 8)
	if err := d.Evaluate(bad, good, good, good); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Evaluate with short buffer: got %v, want ErrLengthMismatch", err)
	}
}

func TestRealDFTMatchesGonum(t *testing.T) {
	for log2N := 4; log2N <= 10; log2N++ {
		n := 1 << log2N
		d, err := NewRealDFT(log2N)
		if err != nil {
			t.Fatalf("NewRealDFT(%d): %v", log2N, err)
		}

		x := randomSignal(n, 11)
		X := make([]float64, n)
		if err := d.Evaluate(x, X); err != nil {
			t.Fatalf("Evaluate: %v", err)
		}

		ref := fourier.NewFFT(n)
		bins := ref.Coefficients(nil, x)

		// Packed layout: DC, ascending real parts, Nyquist, then descending
		// imaginary parts.
		if math.Abs(X[0]-real(bins[0])) > 1e-9 {
			t.Fatalf("n=%d DC: got %v, want %v", n, X[0], real(bins[0]))
		}
		if math.Abs(X[n/2]-real(bins[n/2])) > 1e-9 {
			t.Fatalf("n=%d Nyquist: got %v, want %v", n, X[n/2], real(bins[n/2]))
		}
		for k := 1; k < n/2; k++ {
			if math.Abs(X[k]-real(bins[k])) > 1e-9 {
				t.Fatalf("n=%d bin %d real: got %v, want %v", n, k, X[k], real(bins[k]))
			}
			if math.Abs(X[n-k]-imag(bins[k])) > 1e-9 {
				t.Fatalf("n=%d bin %d imag: got %v, want %v", n, k, X[n-k], imag(bins[k]))
			}
		}
	}
}

func TestRealDFTRoundTrip(t *testing.T) {
	for log2N := 4; log2N <= 10; log2N++ {
		n := 1 << log2N
		d, _ := NewRealDFT(log2N)

		x := randomSignal(n, 12)
		X := make([]float64, n)
		back := make([]float64, n)

		if err := d.Evaluate(x, X); err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if err := d.EvaluateInverse(X, back); err != nil {
			t.Fatalf("EvaluateInverse: %v", err)
		}

		if diff := maxAbsDiff(back, x); diff > 1e-11 {
			t.Errorf("n=%d round trip error %g", n, diff)
		}
	}
}

func TestRealDFTInvalidSize(t *testing.T) {
	for _, log2N := range []int{0, 1, 2, 3} {
		if _, err := NewRealDFT(log2N); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("NewRealDFT(%d): got %v, want ErrInvalidLength", log2N, err)
		}
	}
}

func circularConvolve(a, b []float64) []float64 {
	n := len(a)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[(i+j)%n] += a[i] * b[j]
		}
	}
	return out
}

func TestDFTProductCircularConvolution(t *testing.T) {
	const log2N = 6
	n := 1 << log2N
	d, _ := NewRealDFT(log2N)

	a := randomSignal(n, 13)
	b := randomSignal(n, 14)

	A := make([]float64, n)
	B := make([]float64, n)
	if err := d.Evaluate(a, A); err != nil {
		t.Fatal(err)
	}
	if err := d.Evaluate(b, B); err != nil {
		t.Fatal(err)
	}

	if err := DFTProduct(A, B, 1); err != nil {
		t.Fatalf("DFTProduct: %v", err)
	}

	got := make([]float64, n)
	if err := d.EvaluateInverse(B, got); err != nil {
		t.Fatal(err)
	}

	want := circularConvolve(a, b)
	if diff := maxAbsDiff(got, want); diff > 1e-10 {
		t.Errorf("circular convolution via DFTProduct differs by %g", diff)
	}
}

func TestDFTProductCircularCorrelation(t *testing.T) {
	const log2N = 5
	n := 1 << log2N
	d, _ := NewRealDFT(log2N)

	a := randomSignal(n, 15)
	b := randomSignal(n, 16)

	A := make([]float64, n)
	B := make([]float64, n)
	if err := d.Evaluate(a, A); err != nil {
		t.Fatal(err)
	}
	if err := d.Evaluate(b, B); err != nil {
		t.Fatal(err)
	}

	if err := DFTProduct(A, B, -1); err != nil {
		t.Fatalf("DFTProduct: %v", err)
	}

	got := make([]float64, n)
	if err := d.EvaluateInverse(B, got); err != nil {
		t.Fatal(err)
	}

	// Circular correlation: r[k] = sum_m a[m] * b[m+k mod n].
	want := make([]float64, n)
	for k := 0; k < n; k++ {
		for m := 0; m < n; m++ {
			want[k] += a[m] * b[(m+k)%n]
		}
	}

	if diff := maxAbsDiff(got, want); diff > 1e-10 {
		t.Errorf("circular correlation via DFTProduct differs by %g", diff)
	}
}

func TestDFTProductLengthMismatch(t *testing.T) {
	if err := DFTProduct(make([]float64, 16), make([]float64, 32), 1); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
}

func BenchmarkComplexDFT1024(b *testing.B) {
	const log2N = 10
	n := 1 << log2N

	xr := randomSignal(n, 17)
	xi := randomSignal(n, 18)
	yr := make([]float64, n)
	yi := make([]float64, n)

	d, _ := NewComplexDFTLinked(xr, xi, yr, yi, log2N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.EvaluateLinked()
	}
}

func BenchmarkRealDFT1024(b *testing.B) {
	const log2N = 10
	n := 1 << log2N

	x := randomSignal(n, 19)
	X := make([]float64, n)
	d, _ := NewRealDFT(log2N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Evaluate(x, X)
	}
}

func TestDFTProductComplex(t *testing.T) {
	n := 16
	xr := randomSignal(n, 17)
	xi := randomSignal(n, 18)
	yr := randomSignal(n, 19)
	yi := randomSignal(n, 20)

	// sign=+1 is the plain elementwise complex product.
	pr := append([]float64(nil), yr...)
	pi := append([]float64(nil), yi...)
	if err := DFTProductComplex(xr, xi, pr, pi, 1); err != nil {
		t.Fatalf("DFTProductComplex: %v", err)
	}
	for i := 0; i < n; i++ {
		wr := xr[i]*yr[i] - xi[i]*yi[i]
		wi := xr[i]*yi[i] + xi[i]*yr[i]
		if math.Abs(pr[i]-wr) > 1e-12 || math.Abs(pi[i]-wi) > 1e-12 {
			t.Fatalf("bin %d: got (%v, %v), want (%v, %v)", i, pr[i], pi[i], wr, wi)
		}
	}

	// sign=-1 conjugates the first operand.
	cr := append([]float64(nil), yr...)
	ci := append([]float64(nil), yi...)
	if err := DFTProductComplex(xr, xi, cr, ci, -1); err != nil {
		t.Fatalf("DFTProductComplex: %v", err)
	}
	for i := 0; i < n; i++ {
		wr := xr[i]*yr[i] + xi[i]*yi[i]
		wi := xr[i]*yi[i] - xi[i]*yr[i]
		if math.Abs(cr[i]-wr) > 1e-12 || math.Abs(ci[i]-wi) > 1e-12 {
			t.Fatalf("bin %d: got (%v, %v), want (%v, %v)", i, cr[i], ci[i], wr, wi)
		}
	}

	if err := DFTProductComplex(make([]float64, 4), make([]float64, 4),
		make([]float64, 8), make([]float64, 8), 1); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got %v, want ErrLengthMismatch", err)
	}
}

func TestDFTProductComplexConvolution(t *testing.T) {
	const log2N = 5
	n := 1 << log2N
	d, _ := NewComplexDFT(log2N)

	ar := randomSignal(n, 21)
	ai := randomSignal(n, 22)
	br := randomSignal(n, 23)
	bi := randomSignal(n, 24)

	Ar := make([]float64, n)
	Ai := make([]float64, n)
	Br := make([]float64, n)
	Bi := make([]float64, n)
	if err := d.Evaluate(ar, ai, Ar, Ai); err != nil {
		t.Fatal(err)
	}
	if err := d.Evaluate(br, bi, Br, Bi); err != nil {
		t.Fatal(err)
	}

	if err := DFTProductComplex(Ar, Ai, Br, Bi, 1); err != nil {
		t.Fatalf("DFTProductComplex: %v", err)
	}

	gr := make([]float64, n)
	gi := make([]float64, n)
	if err := d.EvaluateInverse(Br, Bi, gr, gi); err != nil {
		t.Fatal(err)
	}

	wr := make([]float64, n)
	wi := make([]float64, n)
	for k := 0; k < n; k++ {
		for m := 0; m < n; m++ {
			j := (k - m + n) % n
			wr[k] += ar[m]*br[j] - ai[m]*bi[j]
			wi[k] += ar[m]*bi[j] + ai[m]*br[j]
		}
	}

	if diff := maxAbsDiff(gr, wr); diff > 1e-10 {
		t.Errorf("real part of complex circular convolution differs by %g", diff)
	}
	if diff := maxAbsDiff(gi, wi); diff > 1e-10 {
		t.Errorf("imaginary part of complex circular convolution differs by %g", diff)
	}
}
