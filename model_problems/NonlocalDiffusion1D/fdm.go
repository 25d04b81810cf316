package NonlocalDiffusion1D

import (
	"github.com/cfdlabs/ringdiff/Ring1D"
	"github.com/cfdlabs/ringdiff/utils"
)

// FiniteDifference is the matrix-free variant: the diffusive term is the
// periodic second difference of q = D*rho divided by H^2. No linear solve is
// required per step.
type FiniteDifference struct {
	g     *Ring1D.Grid
	dNode utils.Vector // D sampled at the grid nodes
}

func NewFiniteDifference(g *Ring1D.Grid, diffuse func(float64) float64) (s *FiniteDifference) {
	s = &FiniteDifference{
		g:     g,
		dNode: utils.NewVector(g.N),
	}
	for i, theta := range g.Theta {
		s.dNode.Set(i, diffuse(theta))
	}
	return
}

func (s *FiniteDifference) Name() string { return FDM.String() }

// LoadVector is the identity: nodal source terms enter the strong-form
// update directly.
func (s *FiniteDifference) LoadVector(v utils.Vector) utils.Vector { return v }

func (s *FiniteDifference) DiffusiveTerm(rho utils.Vector) (out utils.Vector) {
	var (
		n  = s.g.N
		h2 = s.g.H * s.g.H
		q  = rho.Copy().ElMul(s.dNode).Data()
	)
	out = utils.NewVector(n)
	data := out.Data()
	for i := 0; i < n; i++ {
		ip := s.g.Wrap(i + 1)
		im := s.g.Wrap(i - 1)
		data[i] = (q[ip] - 2*q[i] + q[im]) / h2
	}
	return
}

func (s *FiniteDifference) Step(rho, rhs utils.Vector, dt float64) (utils.Vector, error) {
	return rho.Copy().Add(rhs.Copy().Scale(dt)), nil
}
