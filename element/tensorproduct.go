package element

import (
	"fmt"

	"github.com/notargets/gofea/utils"
)

// Basis is a 1, 2 or 3 dimensional Lagrange element basis built as the
// tensor (dyadic) product of per-axis one dimensional bases.
//
// Flattening convention: the first parametric axis varies fastest over
// its full node range before the next axis increments, so the flat index
// of node (i,j,k) is i + nr*(j + ns*k). External connectivity tables are
// aligned with this ordering; for the linear hexahedron it traverses the
// corners (-1,-1,-1), (1,-1,-1), (-1,1,-1), (1,1,-1), then the t = 1
// plane in the same order.
type Basis struct {
	Dim   int
	Lines []*Lagrange1D // one per axis
}

// NewBasis combines per-axis 1D bases into a multi-dimensional element
// basis. One to three axes are supported.
func NewBasis(lines ...*Lagrange1D) (b *Basis, err error) {
	if len(lines) < 1 || len(lines) > 3 {
		err = fmt.Errorf("%w: need 1 to 3 axes, have %d",
			ErrDimensionMismatch, len(lines))
		return
	}
	for d, lg := range lines {
		if lg == nil {
			err = fmt.Errorf("%w: axis %d has no basis", ErrDimensionMismatch, d)
			return
		}
	}
	b = &Basis{
		Dim:   len(lines),
		Lines: lines,
	}
	return
}

// NP returns the total number of basis functions, the product of the
// per-axis node counts.
func (b *Basis) NP() (np int) {
	np = 1
	for _, lg := range b.Lines {
		np *= lg.NP()
	}
	return
}

// NodeCoordinates returns the NP x Dim matrix of nodal parametric
// coordinates in flattening order.
func (b *Basis) NodeCoordinates() (X utils.Matrix) {
	X = utils.NewMatrix(b.NP(), b.Dim)
	for flat := 0; flat < b.NP(); flat++ {
		rem := flat
		for d, lg := range b.Lines {
			id := rem % lg.NP()
			rem /= lg.NP()
			X.Set(flat, d, lg.R.AtVec(id))
		}
	}
	return
}

// Eval returns the flattened basis vector H at the parametric point.
func (b *Basis) Eval(point ...float64) (H utils.Vector, err error) {
	if len(point) != b.Dim {
		err = fmt.Errorf("%w: point has %d coordinates, basis is %dD",
			ErrDimensionMismatch, len(point), b.Dim)
		return
	}
	axis := make([]utils.Vector, b.Dim)
	for d, lg := range b.Lines {
		axis[d] = lg.Basis(point[d])
	}
	H = b.outer(axis)
	return
}

// EvalGrad returns the NP x Dim matrix of parametric partial derivatives
// of the basis at the point. Column d replaces axis d's basis vector
// with its derivative vector and keeps the others, the product rule for
// independent axes.
func (b *Basis) EvalGrad(point ...float64) (dH utils.Matrix, err error) {
	if len(point) != b.Dim {
		err = fmt.Errorf("%w: point has %d coordinates, basis is %dD",
			ErrDimensionMismatch, len(point), b.Dim)
		return
	}
	var (
		h  = make([]utils.Vector, b.Dim)
		dh = make([]utils.Vector, b.Dim)
	)
	for d, lg := range b.Lines {
		h[d] = lg.Basis(point[d])
		dh[d] = lg.GradBasis(point[d])
	}
	dH = utils.NewMatrix(b.NP(), b.Dim)
	axis := make([]utils.Vector, b.Dim)
	for d := 0; d < b.Dim; d++ {
		copy(axis, h)
		axis[d] = dh[d]
		dH.SetCol(d, b.outer(axis).DataP())
	}
	return
}

// outer flattens the dyadic product of per-axis vectors, first axis
// fastest.
func (b *Basis) outer(axis []utils.Vector) (H utils.Vector) {
	H = utils.NewVector(b.NP())
	data := H.DataP()
	for flat := 0; flat < len(data); flat++ {
		rem := flat
		val := 1.
		for d, lg := range b.Lines {
			id := rem % lg.NP()
			rem /= lg.NP()
			val *= axis[d].AtVec(id)
		}
		data[flat] = val
	}
	return
}
