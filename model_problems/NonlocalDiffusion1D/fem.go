package NonlocalDiffusion1D

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/cfdlabs/ringdiff/Ring1D"
	"github.com/cfdlabs/ringdiff/utils"
)

// FiniteElement is the Galerkin variant on N linear elements spanning
// adjacent node pairs around the ring. The global mass matrix M and
// stiffness matrix K are assembled once with 2-point Gauss-Legendre
// quadrature and kept in two forms: CSR for the per-step mat-vec products
// and cyclic tridiagonal bands for the O(N) solve of M*rhoNew = rhs. The
// explicit scheme is written in weak form, so every step projects the update
// back through the mass matrix.
type FiniteElement struct {
	g    *Ring1D.Grid
	M, K utils.CyclicTriDiag
	Msp  *sparse.CSR
	Ksp  *sparse.CSR
}

func NewFiniteElement(g *Ring1D.Grid, diffuse func(float64) float64) (s *FiniteElement) {
	s = &FiniteElement{
		g: g,
		M: utils.NewCyclicTriDiag(g.N),
		K: utils.NewCyclicTriDiag(g.N),
	}
	s.assemble(diffuse)
	return
}

// assemble accumulates the element mass and stiffness integrals
//
//	M_ab = integral( psi_a * psi_b )
//	K_ab = integral( D(theta) * psi_a' * psi_b' )
//
// over each element with the affine map from the reference interval [-1,1]
// and 2-point Gauss-Legendre quadrature (points +-1/sqrt(3), weights 1),
// exact for the polynomial degree involved.
func (s *FiniteElement) assemble(diffuse func(float64) float64) {
	var (
		n      = s.g.N
		mDOK   = sparse.NewDOK(n, n)
		kDOK   = sparse.NewDOK(n, n)
		gp     = 1 / math.Sqrt(3)
		points = [2]float64{-gp, gp}
	)
	for e := 0; e < n; e++ {
		var (
			i  = e
			j  = s.g.Wrap(e + 1)
			le = s.g.Theta[j] - s.g.Theta[i]
		)
		if le <= 0 {
			le += 2 * math.Pi // element crossing the period boundary
		}
		jac := 0.5 * le
		for _, xi := range points {
			var (
				theta = s.g.Theta[i] + 0.5*le*(1+xi)
				dval  = diffuse(theta)
				psi   = [2]float64{0.5 * (1 - xi), 0.5 * (1 + xi)}
				dpsi  = [2]float64{-1 / le, 1 / le}
				glob  = [2]int{i, j}
			)
			for a := 0; a < 2; a++ {
				for b := 0; b < 2; b++ {
					mv := jac * psi[a] * psi[b]
					kv := jac * dval * dpsi[a] * dpsi[b]
					A, B := glob[a], glob[b]
					mDOK.Set(A, B, mDOK.At(A, B)+mv)
					kDOK.Set(A, B, kDOK.At(A, B)+kv)
					if A == B {
						s.M.Diag[A] += mv
						s.K.Diag[A] += kv
					} else if a == 0 && b == 1 {
						// one symmetric coupling per element, stored on the
						// band index of the element
						s.M.Off[e] += mv
						s.K.Off[e] += kv
					}
				}
			}
		}
	}
	s.Msp = mDOK.ToCSR()
	s.Ksp = kDOK.ToCSR()
}

func (s *FiniteElement) Name() string { return FEM.String() }

// LoadVector is the Galerkin projection M*v of a nodal source term. The
// per-step solve applies M inverse to the whole right hand side, so a nodal
// term injected without the mass weighting would be amplified by 1/H.
func (s *FiniteElement) LoadVector(v utils.Vector) utils.Vector {
	var mv mat.VecDense
	mv.MulVec(s.Msp, v.V)
	return utils.Vector{V: &mv}
}

// DiffusiveTerm is the weak-form diffusive load -K*rho.
func (s *FiniteElement) DiffusiveTerm(rho utils.Vector) (out utils.Vector) {
	var v mat.VecDense
	v.MulVec(s.Ksp, rho.V)
	out = utils.Vector{V: &v}
	return out.Scale(-1)
}

// Step solves M*rhoNew = M*rho + dt*rhs. A numerically singular mass matrix
// aborts the step with ErrSingularMass rather than propagating NaN.
func (s *FiniteElement) Step(rho, rhs utils.Vector, dt float64) (utils.Vector, error) {
	var (
		mr mat.VecDense
		r  = rhs.Data()
	)
	mr.MulVec(s.Msp, rho.V)
	b := mr.RawVector().Data
	for i := range b {
		b[i] += dt * r[i]
	}
	x, err := s.M.Solve(b)
	if err != nil {
		return utils.Vector{}, ErrSingularMass
	}
	return utils.NewVector(s.g.N, x), nil
}
