package NonlocalDiffusion1D

import (
	"fmt"
	"strings"

	"github.com/cfdlabs/ringdiff/utils"
)

// SpatialScheme is one spatial discretization of the diffusive operator on
// the ring. Both variants share the grid, the diffusivity model, the
// nonlocal operator and the explicit Euler update; only the diffusive term
// and the completion of a step differ.
type SpatialScheme interface {
	Name() string
	// DiffusiveTerm produces the diffusive right-hand-side contribution for
	// the current state. The receiver does not modify rho.
	DiffusiveTerm(rho utils.Vector) utils.Vector
	// LoadVector maps a nodal source term into the scheme's right-hand-side
	// space. The strong-form update takes nodal values directly; the weak
	// form weights them by the mass matrix so the per-step solve against M
	// recovers the nodal term. The receiver does not modify v.
	LoadVector(v utils.Vector) utils.Vector
	// Step completes one explicit Euler update from rho using the combined
	// right hand side (diffusive plus scaled nonlocal term). The returned
	// state is a fresh vector; rho is left untouched.
	Step(rho, rhs utils.Vector, dt float64) (utils.Vector, error)
}

type SchemeType uint8

const (
	FDM SchemeType = iota
	FEM
)

var (
	scheme_names = []string{
		"Finite Difference",
		"Finite Element, Galerkin",
	}
)

func (st SchemeType) String() string {
	return scheme_names[st]
}

func NewSchemeType(label string) (st SchemeType, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "fdm", "fd", "finitedifference":
		st = FDM
	case "fem", "fe", "finiteelement":
		st = FEM
	default:
		err = fmt.Errorf("unknown scheme %q, must be one of: fdm, fem", label)
	}
	return
}
