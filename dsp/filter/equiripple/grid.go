package equiripple

import (
	"fmt"
	"math"
	"math/rand"
)

// designGrid is the dense frequency sampling of the approximation bands used
// by the exchange algorithm. Frequencies are normalized to [0, 1] with 1.0 at
// Nyquist; x holds the Chebyshev abscissas cos(pi*grid) so the approximation
// runs over ordinary polynomials in x.
type designGrid struct {
	grid []float64 // normalized band frequencies, ascending
	x    []float64 // cos(pi * grid[i])
	h    []float64 // desired response on the grid (basis-adjusted)
	w    []float64 // weight on the grid (basis-adjusted)

	bandEdgeIndices []int
	extremaIndices  []int // current alternation candidates, strictly ascending

	containsZero bool
	containsPi   bool
}

// newDesignGrid lays out roughly density points per basis function across the
// union of the bands, band edges always included, and seeds the initial
// extrema evenly over the grid with a one-point random jitter on the interior
// candidates to break symmetric ties.
func newDesignGrid(bands [][2]float64, nbasis, density int, rng *rand.Rand) (*designGrid, error) {
	var width float64
	for _, b := range bands {
		width += b[1] - b[0]
	}

	spacing := width / float64(density*nbasis)
	g := &designGrid{}

	for _, b := range bands {
		bw := b[1] - b[0]
		npts := int(math.Round(bw/spacing)) + 1
		if npts < 2 {
			npts = 2
		}

		g.bandEdgeIndices = append(g.bandEdgeIndices, len(g.grid))
		for i := 0; i < npts; i++ {
			g.grid = append(g.grid, b[0]+bw*float64(i)/float64(npts-1))
		}
		g.bandEdgeIndices = append(g.bandEdgeIndices, len(g.grid)-1)
	}

	gridSize := len(g.grid)
	ne := nbasis + 1
	if gridSize < ne+1 {
		return nil, fmt.Errorf("%w: %d points for %d extrema", ErrGridTooCoarse, gridSize, ne)
	}

	g.x = make([]float64, gridSize)
	g.h = make([]float64, gridSize)
	g.w = make([]float64, gridSize)
	for i, omega := range g.grid {
		g.x[i] = math.Cos(math.Pi * omega)
	}

	g.extremaIndices = make([]int, ne)
	for i := range g.extremaIndices {
		g.extremaIndices[i] = int(math.Round(float64(i) * float64(gridSize-1) / float64(ne-1)))
	}
	for i := 1; i < ne-1; i++ {
		j := g.extremaIndices[i] + rng.Intn(3) - 1
		if j > g.extremaIndices[i-1] && j < g.extremaIndices[i+1] {
			g.extremaIndices[i] = j
		}
	}

	return g, nil
}

func (g *designGrid) size() int { return len(g.grid) }
