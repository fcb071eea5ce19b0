package utils

import "gonum.org/v1/gonum/mat"

// NewSymTriDiagonal builds a symmetric tridiagonal matrix from the main
// diagonal d0 and the first super/sub diagonal d1.
func NewSymTriDiagonal(d0, d1 []float64) (J *mat.SymDense) {
	n := len(d0)
	J = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		J.SetSym(i, i, d0[i])
		if i < n-1 {
			J.SetSym(i, i+1, d1[i])
		}
	}
	return
}

func POW(x float64, p int) (r float64) {
	if p < 0 {
		return 1. / POW(x, -p)
	}
	r = 1
	for i := 0; i < p; i++ {
		r *= x
	}
	return
}
