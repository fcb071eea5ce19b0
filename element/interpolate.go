package element

import (
	"fmt"

	"github.com/notargets/gofea/utils"
)

// Interpolate evaluates a scalar field at a parametric point from its
// nodal values and the basis vector there: value = sum_i v_i h_i.
func Interpolate(values, h utils.Vector) (val float64, err error) {
	if values.Len() != h.Len() {
		err = fmt.Errorf("%w: %d nodal values for a basis of length %d",
			ErrDimensionMismatch, values.Len(), h.Len())
		return
	}
	val = values.Dot(h)
	return
}

// InterpolateGradient evaluates the parametric gradient of a scalar
// field from its nodal values and the NP x Dim basis derivative matrix.
// The physical gradient additionally needs the geometric Jacobian of the
// parametric-to-physical map, which is supplied by the caller.
func InterpolateGradient(values utils.Vector, dH utils.Matrix) (grad utils.Vector, err error) {
	nr, nc := dH.Dims()
	if values.Len() != nr {
		err = fmt.Errorf("%w: %d nodal values for a basis of length %d",
			ErrDimensionMismatch, values.Len(), nr)
		return
	}
	grad = utils.NewVector(nc)
	for d := 0; d < nc; d++ {
		grad.V.SetVec(d, values.Dot(dH.Col(d)))
	}
	return
}

// InterpolateVector evaluates a vector field with one column of nodal
// values per component.
func InterpolateVector(values utils.Matrix, h utils.Vector) (val utils.Vector, err error) {
	nr, nc := values.Dims()
	if nr != h.Len() {
		err = fmt.Errorf("%w: %d nodal values for a basis of length %d",
			ErrDimensionMismatch, nr, h.Len())
		return
	}
	val = utils.NewVector(nc)
	for c := 0; c < nc; c++ {
		val.V.SetVec(c, values.Col(c).Dot(h))
	}
	return
}

// InterpolateVectorGradient evaluates the ncomp x dim parametric
// gradient of a vector field.
func InterpolateVectorGradient(values utils.Matrix, dH utils.Matrix) (grad utils.Matrix, err error) {
	var (
		nv, ncomp = values.Dims()
		nh, dim   = dH.Dims()
	)
	if nv != nh {
		err = fmt.Errorf("%w: %d nodal values for a basis of length %d",
			ErrDimensionMismatch, nv, nh)
		return
	}
	grad = utils.NewMatrix(ncomp, dim)
	for c := 0; c < ncomp; c++ {
		vc := values.Col(c)
		for d := 0; d < dim; d++ {
			grad.Set(c, d, vc.Dot(dH.Col(d)))
		}
	}
	return
}
