package element

import (
	"fmt"
	"math"

	"github.com/notargets/gofea/utils"
)

// Lagrange1D generates the one dimensional Lagrange basis of arbitrary
// order from a set of distinct nodal coordinates on [-1,1].
//
// The nodal interpolation conditions are solved once: with R the matrix
// whose column j is the power series vector [1, r_j, r_j^2/2!, ...] at
// node j, the curve parameter matrix A satisfies At*R = I, so At is the
// inverse of R. Basis values follow as h(r) = At*r(r), and the exact
// derivative as At*rminus(r) with rminus the index-shifted power vector.
type Lagrange1D struct {
	Order int
	R     utils.Vector // nodal coordinates
	At    utils.Matrix // transposed curve parameter matrix, At = inv(R)
}

// NewLagrange1D solves the nodal interpolation system for the given
// coordinates. Fails with ErrDegenerateNodeSet when coordinates repeat.
func NewLagrange1D(nodes utils.Vector) (lg *Lagrange1D, err error) {
	var (
		n = nodes.Len()
		x = nodes.DataP()
	)
	if n < 1 {
		err = fmt.Errorf("%w: empty node set", ErrDegenerateNodeSet)
		return
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(x[i]-x[j]) < 1.e-12 {
				err = fmt.Errorf("%w: nodes %d and %d coincide at r = %g",
					ErrDegenerateNodeSet, i, j, x[i])
				return
			}
		}
	}
	R := utils.NewMatrix(n, n)
	for j := 0; j < n; j++ {
		R.SetCol(j, powerVector(x[j], n).DataP())
	}
	var At utils.Matrix
	if At, err = R.Inverse(); err != nil {
		// Coordinates are distinct but the system is still singular,
		// only possible through numerically coincident nodes.
		err = fmt.Errorf("%w: interpolation system is singular: %v",
			ErrDegenerateNodeSet, err)
		return
	}
	lg = &Lagrange1D{
		Order: n - 1,
		R:     nodes.Copy(),
		At:    At,
	}
	return
}

// NP returns the number of basis functions, order+1.
func (lg *Lagrange1D) NP() int { return lg.Order + 1 }

// Basis evaluates the basis vector h(r). Each entry is the value of one
// nodal basis function; the vector satisfies partition of unity and the
// Kronecker property at the nodes.
func (lg *Lagrange1D) Basis(r float64) (h utils.Vector) {
	h = lg.At.MulVec(powerVector(r, lg.NP()))
	return
}

// GradBasis evaluates dh/dr through the shifted power vector. This is a
// re-indexing of the power series, not a numerical derivative, and is
// exact to machine precision.
func (lg *Lagrange1D) GradBasis(r float64) (dh utils.Vector) {
	dh = lg.At.MulVec(shiftedPowerVector(r, lg.NP()))
	return
}

// powerVector is [1, r, r^2/2!, ..., r^p/p!].
func powerVector(r float64, n int) (v utils.Vector) {
	v = utils.NewVector(n)
	var (
		data = v.DataP()
		term = 1.
	)
	for i := 0; i < n; i++ {
		data[i] = term
		term *= r / float64(i+1)
	}
	return
}

// shiftedPowerVector is [0, 1, r, r^2/2!, ...]: entry i holds the
// derivative of entry i of the power vector.
func shiftedPowerVector(r float64, n int) (v utils.Vector) {
	v = utils.NewVector(n)
	var (
		data = v.DataP()
		term = 1.
	)
	for i := 1; i < n; i++ {
		data[i] = term
		term *= r / float64(i)
	}
	return
}
