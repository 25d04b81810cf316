package Ring1D

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cfdlabs/ringdiff/utils"
)

// Grid is a uniform discretization of the circle [-pi, pi) with N nodes and
// spacing H = 2*pi/N. Node N is identified with node 0 and is never
// materialized; neighbor lookups wrap modulo N. N must be even so the
// half-circle integrals of the nonlocal operator split the ring exactly.
type Grid struct {
	N     int
	H     float64
	Theta []float64
}

func NewGrid(N int) (g *Grid, err error) {
	if N <= 0 {
		return nil, fmt.Errorf("invalid grid size N = %d, must be positive", N)
	}
	if N%2 != 0 {
		return nil, fmt.Errorf("invalid grid size N = %d, must be even", N)
	}
	g = &Grid{
		N:     N,
		H:     2 * math.Pi / float64(N),
		Theta: make([]float64, N),
	}
	for i := range g.Theta {
		g.Theta[i] = -math.Pi + float64(i)*g.H
	}
	return
}

// Wrap maps any index offset by at most one period onto [0, N).
func (g *Grid) Wrap(i int) int {
	i = i % g.N
	if i < 0 {
		i += g.N
	}
	return i
}

// Mass is the discrete integral H * sum(rho) over one period.
func (g *Grid) Mass(rho utils.Vector) float64 {
	return g.H * floats.Sum(rho.Data())
}
