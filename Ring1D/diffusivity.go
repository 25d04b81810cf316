package Ring1D

import (
	"fmt"
	"math"

	"github.com/cfdlabs/ringdiff/utils"
)

// Diffusivity is the spatially varying diffusion coefficient
//
//	D(theta) = D0 + ((1 - cos(theta))/2)^2 * D1
//
// with D1 fixed at 2*D0 (a modeling invariant, not a free parameter). It is
// 2*pi periodic and bounded below by D0 > 0, and may be evaluated at
// arbitrary theta, not only at grid nodes.
type Diffusivity struct {
	D0, D1 float64
}

func NewDiffusivity(D0 float64) (d Diffusivity, err error) {
	if D0 <= 0 {
		return d, fmt.Errorf("invalid diffusivity D0 = %v, must be positive", D0)
	}
	return Diffusivity{D0: D0, D1: 2 * D0}, nil
}

func (d Diffusivity) Eval(theta float64) float64 {
	s := 0.5 * (1 - math.Cos(theta))
	return d.D0 + utils.POW(s, 2)*d.D1
}

// AtNodes samples D at every grid node.
func (d Diffusivity) AtNodes(g *Grid) (vals []float64) {
	vals = make([]float64, g.N)
	for i, theta := range g.Theta {
		vals[i] = d.Eval(theta)
	}
	return
}
