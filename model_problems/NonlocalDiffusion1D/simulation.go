package NonlocalDiffusion1D

import (
	"fmt"
	"math"

	"github.com/cfdlabs/ringdiff/Ring1D"
	"github.com/cfdlabs/ringdiff/utils"
)

// Config is the immutable per-run configuration. A sweep over Beta values
// executes independent runs; no run mutates another run's configuration or
// state.
type Config struct {
	Scheme    SchemeType
	N         int
	Dt        float64
	FinalTime float64
	Beta      float64
	D0        float64
}

func (c Config) Validate() (err error) {
	if c.N <= 0 || c.N%2 != 0 {
		return fmt.Errorf("invalid N = %d, must be positive and even", c.N)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("invalid Dt = %v, must be positive", c.Dt)
	}
	if c.FinalTime <= 0 {
		return fmt.Errorf("invalid FinalTime = %v, must be positive", c.FinalTime)
	}
	if c.D0 <= 0 {
		return fmt.Errorf("invalid D0 = %v, must be positive", c.D0)
	}
	return nil
}

// Steps is the fixed step count floor(FinalTime / Dt).
func (c Config) Steps() int {
	return int(math.Floor(c.FinalTime / c.Dt))
}

// Result carries a run's final (or last valid) state. Err is non-nil when
// the run aborted on a detected numerical failure; Steps then records how
// many steps completed.
type Result struct {
	Beta  float64
	Grid  *Ring1D.Grid
	Rho   utils.Vector
	Steps int
	Err   error
}

// Simulation advances one state vector with explicit (forward) Euler. Each
// step fully consumes the previous state before the new one is swapped in;
// the state is never partially updated. Stability of the explicit scheme,
// dt <~ H^2/(2*max D), is the caller's responsibility.
type Simulation struct {
	Config
	Grid    *Ring1D.Grid
	Diffuse Ring1D.Diffusivity
	Rho     utils.Vector

	// LogFrequency > 0 prints a progress line every LogFrequency steps. The
	// default is silent; the solver itself performs no other I/O.
	LogFrequency int

	scheme   SpatialScheme
	nonlocal *Ring1D.NonlocalOperator
}

func NewSimulation(cfg Config) (s *Simulation, err error) {
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := Ring1D.NewGrid(cfg.N)
	if err != nil {
		return nil, err
	}
	d, err := Ring1D.NewDiffusivity(cfg.D0)
	if err != nil {
		return nil, err
	}
	s = &Simulation{
		Config:   cfg,
		Grid:     g,
		Diffuse:  d,
		Rho:      Ring1D.InitialCondition(g),
		nonlocal: Ring1D.NewNonlocalOperator(g),
	}
	switch cfg.Scheme {
	case FEM:
		s.scheme = NewFiniteElement(g, d.Eval)
	case FDM:
		fallthrough
	default:
		s.scheme = NewFiniteDifference(g, d.Eval)
	}
	return
}

func (s *Simulation) Run() (res Result) {
	var (
		nsteps = s.Steps()
		t      float64
	)
	res = Result{Beta: s.Beta, Grid: s.Grid}
	for tstep := 0; tstep < nsteps; tstep++ {
		rhs := s.scheme.DiffusiveTerm(s.Rho)
		rhs.Add(s.scheme.LoadVector(s.nonlocal.Apply(s.Rho)).Scale(-s.Beta))
		next, err := s.scheme.Step(s.Rho, rhs, s.Dt)
		if err != nil {
			res.Rho = s.Rho
			res.Steps = tstep
			res.Err = &StepError{Step: tstep, Err: err}
			return
		}
		s.Rho = next
		t += s.Dt
		if s.LogFrequency > 0 && tstep%s.LogFrequency == 0 {
			fmt.Printf("Time = %8.4f, step = %6d, rhomin = %8.6f, rhomax = %8.6f, mass = %8.6f\n",
				t, tstep, s.Rho.Min(), s.Rho.Max(), s.Grid.Mass(s.Rho))
		}
	}
	res.Rho = s.Rho
	res.Steps = nsteps
	return
}
