package NonlocalDiffusion1D

import (
	"errors"
	"fmt"
)

// ErrSingularMass reports a numerically singular mass matrix in the finite
// element linear solve. It should not occur for a well-formed periodic mesh
// but is guarded so the failure surfaces as an error instead of NaN.
var ErrSingularMass = errors.New("singular mass matrix")

// StepError identifies the time step at which a run aborted. The run's last
// valid state is preserved in the returned Result.
type StepError struct {
	Step int
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("aborted at step %d: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
