package utils

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var ErrSingular = errors.New("cyclic tridiagonal matrix is singular")

// CyclicTriDiag is a symmetric tridiagonal matrix with periodic wraparound,
// stored by bands. Diag[i] holds A[i,i] and Off[i] holds the coupling between
// node i and node (i+1) mod n, so Off[n-1] is the corner pair A[0,n-1] and
// A[n-1,0]. This is the structure of periodic nearest-neighbor operators on a
// ring: each node couples only to its two immediate neighbors.
type CyclicTriDiag struct {
	Diag, Off []float64
}

func NewCyclicTriDiag(n int) (A CyclicTriDiag) {
	A = CyclicTriDiag{
		Diag: make([]float64, n),
		Off:  make([]float64, n),
	}
	return
}

func (a CyclicTriDiag) Len() int { return len(a.Diag) }

// MulVec computes A*x. For n = 2 both Off entries couple the same node pair
// and the formula accumulates them, matching Dense().
func (a CyclicTriDiag) MulVec(x []float64) (y []float64) {
	var (
		n = a.Len()
	)
	if len(x) != n {
		panic("dimension mismatch in CyclicTriDiag.MulVec")
	}
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		ip := i + 1
		if ip == n {
			ip = 0
		}
		im := i - 1
		if im < 0 {
			im = n - 1
		}
		y[i] = a.Diag[i]*x[i] + a.Off[i]*x[ip] + a.Off[im]*x[im]
	}
	return
}

// Dense expands the banded storage into a dense gonum matrix. Entries are
// accumulated rather than assigned so the degenerate n = 2 ring, where both
// elements couple the same node pair, expands correctly.
func (a CyclicTriDiag) Dense() (D *mat.Dense) {
	var (
		n = a.Len()
	)
	D = mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		ip := i + 1
		if ip == n {
			ip = 0
		}
		D.Set(i, i, D.At(i, i)+a.Diag[i])
		D.Set(i, ip, D.At(i, ip)+a.Off[i])
		D.Set(ip, i, D.At(ip, i)+a.Off[i])
	}
	return
}

// Solve solves A*x = b in O(n) using the Thomas algorithm with a
// Sherman-Morrison correction for the periodic corner entries. Rings too
// small to be strictly tridiagonal (n < 4) fall back to a dense LU solve.
// A singular system returns ErrSingular.
func (a CyclicTriDiag) Solve(b []float64) (x []float64, err error) {
	var (
		n = a.Len()
	)
	if len(b) != n {
		panic("dimension mismatch in CyclicTriDiag.Solve")
	}
	if n < 4 || a.Diag[0] == 0 {
		return a.solveDense(b)
	}
	var (
		c     = a.Off[n-1]  // periodic corner coupling
		gamma = -a.Diag[0]  // free parameter of the rank-one split
		scale = a.maxAbs()
	)
	if scale == 0 {
		return nil, ErrSingular
	}
	// A = T + u*v^T with u = (gamma, 0, ..., c), v = (1, 0, ..., c/gamma)
	d := make([]float64, n)
	copy(d, a.Diag)
	d[0] -= gamma
	d[n-1] -= c * c / gamma

	y, err := a.thomas(d, b, scale)
	if err != nil {
		return nil, err
	}
	u := make([]float64, n)
	u[0] = gamma
	u[n-1] = c
	z, err := a.thomas(d, u, scale)
	if err != nil {
		return nil, err
	}
	denom := 1 + z[0] + c/gamma*z[n-1]
	if math.Abs(denom) <= 1.e-14*scale {
		return nil, ErrSingular
	}
	fact := (y[0] + c/gamma*y[n-1]) / denom
	x = y
	for i := range x {
		x[i] -= fact * z[i]
	}
	return x, nil
}

// thomas solves the strictly tridiagonal system with diagonal d and
// sub/super diagonals Off[0:n-1].
func (a CyclicTriDiag) thomas(d, b []float64, scale float64) (x []float64, err error) {
	var (
		n  = len(d)
		cp = make([]float64, n)
	)
	x = make([]float64, n)
	piv := d[0]
	if math.Abs(piv) <= 1.e-14*scale {
		return nil, ErrSingular
	}
	cp[0] = a.Off[0] / piv
	x[0] = b[0] / piv
	for i := 1; i < n; i++ {
		piv = d[i] - a.Off[i-1]*cp[i-1]
		if math.Abs(piv) <= 1.e-14*scale {
			return nil, ErrSingular
		}
		if i < n-1 {
			cp[i] = a.Off[i] / piv
		}
		x[i] = (b[i] - a.Off[i-1]*x[i-1]) / piv
	}
	for i := n - 2; i >= 0; i-- {
		x[i] -= cp[i] * x[i+1]
	}
	return x, nil
}

func (a CyclicTriDiag) solveDense(b []float64) (x []float64, err error) {
	var (
		n  = a.Len()
		lu mat.LU
	)
	lu.Factorize(a.Dense())
	xv := mat.NewVecDense(n, nil)
	if err = lu.SolveVecTo(xv, false, mat.NewVecDense(n, b)); err != nil {
		// an ill-conditioned solve is reported but usable; an infinite
		// condition number is an exactly singular factorization
		if c, ok := err.(mat.Condition); !ok || math.IsInf(float64(c), 1) {
			return nil, ErrSingular
		}
	}
	return xv.RawVector().Data, nil
}

func (a CyclicTriDiag) maxAbs() (m float64) {
	for _, val := range a.Diag {
		if math.Abs(val) > m {
			m = math.Abs(val)
		}
	}
	for _, val := range a.Off {
		if math.Abs(val) > m {
			m = math.Abs(val)
		}
	}
	return
}
