package quadrature

import (
	"fmt"

	"github.com/notargets/gofea/utils"
)

// Rule is a set of parametric evaluation points with integration weights
// on the reference line, quadrilateral or hexahedron.
type Rule struct {
	Dim    int
	Points utils.Matrix // one point per row, Dim columns
	Weight utils.Vector
}

// NPoints returns the number of evaluation points in the rule.
func (q Rule) NPoints() int {
	nr, _ := q.Points.Dims()
	return nr
}

// NewTensorProduct builds the dim-dimensional tensor product of the n
// point Gauss-Legendre rule. Points are flattened axis-major: the first
// parametric axis varies fastest, flat = i + n*(j + n*k), matching the
// element node ordering convention.
func NewTensorProduct(dim, n int) (q Rule, err error) {
	if dim < 1 || dim > 3 {
		err = fmt.Errorf("unsupported dimension %d, must be 1, 2 or 3", dim)
		return
	}
	var x, w utils.Vector
	if x, w, err = GaussLegendre(n); err != nil {
		return
	}
	nTot := 1
	for d := 0; d < dim; d++ {
		nTot *= n
	}
	q = Rule{
		Dim:    dim,
		Points: utils.NewMatrix(nTot, dim),
		Weight: utils.NewVector(nTot),
	}
	var (
		xd = x.DataP()
		wd = w.DataP()
		wq = q.Weight.DataP()
	)
	for flat := 0; flat < nTot; flat++ {
		rem := flat
		wt := 1.
		for d := 0; d < dim; d++ {
			id := rem % n
			rem /= n
			q.Points.Set(flat, d, xd[id])
			wt *= wd[id]
		}
		wq[flat] = wt
	}
	return
}
