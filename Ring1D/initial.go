package Ring1D

import (
	"math"

	"github.com/cfdlabs/ringdiff/utils"
)

// InitialCondition samples
//
//	rho0(theta) = (1 + cos(theta)/2) / (2*pi)
//
// at the grid nodes. The cosine perturbation integrates to zero over one
// period, so the discrete mass H*sum(rho0) is exactly 1 on any uniform grid,
// and values stay within [1/(4*pi), 3/(4*pi)].
func InitialCondition(g *Grid) (rho utils.Vector) {
	rho = utils.NewVector(g.N)
	data := rho.Data()
	for i, theta := range g.Theta {
		data[i] = (1 + 0.5*math.Cos(theta)) / (2 * math.Pi)
	}
	return
}
