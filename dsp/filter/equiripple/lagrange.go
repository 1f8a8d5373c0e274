package equiripple

// lagrangePolynomial is a barycentric-form Lagrange interpolating polynomial.
// Precomputing the barycentric weights makes each evaluation O(n).
type lagrangePolynomial struct {
	x     []float64
	f     []float64
	gamma []float64
}

func newLagrangePolynomial(x, f []float64) *lagrangePolynomial {
	p := &lagrangePolynomial{
		x:     make([]float64, len(x)),
		f:     make([]float64, len(f)),
		gamma: barycentricWeights(x),
	}
	copy(p.x, x)
	copy(p.f, f)

	return p
}

// barycentricWeights computes gamma[j] = 1 / prod_{i != j} (x[j] - x[i]).
// The abscissas must be pairwise distinct.
func barycentricWeights(x []float64) []float64 {
	gamma := make([]float64, len(x))
	for j := range x {
		p := 1.0
		for i := range x {
			if i != j {
				p *= x[j] - x[i]
			}
		}
		gamma[j] = 1 / p
	}

	return gamma
}

// evaluate computes the interpolant at q. A query coinciding exactly with a
// node returns that node's ordinate, avoiding the 0/0 in the barycentric
// formula.
func (p *lagrangePolynomial) evaluate(q float64) float64 {
	var num, den float64
	for j, xj := range p.x {
		d := q - xj
		if d == 0 {
			return p.f[j]
		}

		t := p.gamma[j] / d
		num += t * p.f[j]
		den += t
	}

	return num / den
}
