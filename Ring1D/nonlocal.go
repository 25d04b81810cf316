package Ring1D

import (
	"github.com/cfdlabs/ringdiff/utils"
)

// NonlocalOperator turns a state vector into its nonlocal coupling
// derivative. For each node i it forms the half-circle integrals
//
//	I1(i) = H * sum of rho over the N/2 nodes starting at i, wrapping forward
//	I2(i) = H * sum of rho over the N/2 nodes ending at i, wrapping backward
//
// and returns the centered difference of G(i) = rho(i)*(I1(i) - I2(i)) with
// periodic neighbor lookup. I1 - I2 measures the asymmetry of mass between
// the two half circles centered at node i.
//
// The half-circle sums are taken from a periodic prefix sum rebuilt once per
// application, so the whole operator is O(N). The operator owns scratch
// storage and must not be shared between concurrent runs.
type NonlocalOperator struct {
	g      *Grid
	prefix []float64 // prefix[k] = sum of rho[0:k], length N+1
	flux   []float64 // G = rho * (I1 - I2)
}

func NewNonlocalOperator(g *Grid) *NonlocalOperator {
	return &NonlocalOperator{
		g:      g,
		prefix: make([]float64, g.N+1),
		flux:   make([]float64, g.N),
	}
}

func (op *NonlocalOperator) Apply(rho utils.Vector) (out utils.Vector) {
	var (
		n    = op.g.N
		h    = op.g.H
		half = n / 2
		r    = rho.Data()
	)
	op.prefix[0] = 0
	for i, val := range r {
		op.prefix[i+1] = op.prefix[i] + val
	}
	for i := 0; i < n; i++ {
		i1 := h * op.rangeSum(i, half)
		i2 := h * op.rangeSum(op.g.Wrap(i-half), half)
		op.flux[i] = r[i] * (i1 - i2)
	}
	return op.centeredDiff()
}

// applyDirect recomputes every half-circle sum term by term, O(N^2). It is
// the reference the prefix-sum path is tested against.
func (op *NonlocalOperator) applyDirect(rho utils.Vector) (out utils.Vector) {
	var (
		n    = op.g.N
		h    = op.g.H
		half = n / 2
		r    = rho.Data()
	)
	for i := 0; i < n; i++ {
		var fwd, bwd float64
		for k := 0; k < half; k++ {
			fwd += r[op.g.Wrap(i+k)]
			bwd += r[op.g.Wrap(i-1-k)]
		}
		op.flux[i] = r[i] * h * (fwd - bwd)
	}
	return op.centeredDiff()
}

// rangeSum sums rho over the wrapped index range [start, start+length).
func (op *NonlocalOperator) rangeSum(start, length int) float64 {
	var (
		n = op.g.N
	)
	if start+length <= n {
		return op.prefix[start+length] - op.prefix[start]
	}
	return (op.prefix[n] - op.prefix[start]) + op.prefix[start+length-n]
}

func (op *NonlocalOperator) centeredDiff() (out utils.Vector) {
	var (
		n = op.g.N
		h = op.g.H
	)
	out = utils.NewVector(n)
	data := out.Data()
	for i := 0; i < n; i++ {
		ip := op.g.Wrap(i + 1)
		im := op.g.Wrap(i - 1)
		data[i] = (op.flux[ip] - op.flux[im]) / (2 * h)
	}
	return
}
