// Package tensor provides the fixed-size second and fourth order tensor
// algebra used by the mixed three-field formulation: double-dot
// contractions, dyadic and index-permuted dyadic products, determinants
// and inverses of 3x3 tensors. Index conventions are spelled out on each
// routine since sign and transpose errors here are the dominant bug
// source.
package tensor

import (
	"errors"
	"fmt"
)

// Mat3 is a second order tensor in three dimensions.
type Mat3 [3][3]float64

// ErrSingular reports a 3x3 tensor with (near) zero determinant.
var ErrSingular = errors.New("singular tensor")

// Identity returns the second order identity.
func Identity() (I Mat3) {
	I[0][0], I[1][1], I[2][2] = 1, 1, 1
	return
}

// Diag builds a diagonal tensor from three values.
func Diag(a, b, c float64) (D Mat3) {
	D[0][0], D[1][1], D[2][2] = a, b, c
	return
}

func (A Mat3) Add(B Mat3) (C Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j] = A[i][j] + B[i][j]
		}
	}
	return
}

func (A Mat3) Sub(B Mat3) (C Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j] = A[i][j] - B[i][j]
		}
	}
	return
}

func (A Mat3) Scale(s float64) (C Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j] = s * A[i][j]
		}
	}
	return
}

func (A Mat3) Transpose() (C Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j] = A[j][i]
		}
	}
	return
}

// Mul is the single contraction (A B)_ij = A_ik B_kj.
func (A Mat3) Mul(B Mat3) (C Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += A[i][k] * B[k][j]
			}
			C[i][j] = sum
		}
	}
	return
}

// Det returns the determinant.
func (A Mat3) Det() float64 {
	return A[0][0]*(A[1][1]*A[2][2]-A[1][2]*A[2][1]) -
		A[0][1]*(A[1][0]*A[2][2]-A[1][2]*A[2][0]) +
		A[0][2]*(A[1][0]*A[2][1]-A[1][1]*A[2][0])
}

// Inverse returns the inverse by the adjugate rule.
func (A Mat3) Inverse() (C Mat3, err error) {
	d := A.Det()
	if d == 0 {
		err = fmt.Errorf("%w: det = 0", ErrSingular)
		return
	}
	id := 1. / d
	C[0][0] = id * (A[1][1]*A[2][2] - A[1][2]*A[2][1])
	C[0][1] = id * (A[0][2]*A[2][1] - A[0][1]*A[2][2])
	C[0][2] = id * (A[0][1]*A[1][2] - A[0][2]*A[1][1])
	C[1][0] = id * (A[1][2]*A[2][0] - A[1][0]*A[2][2])
	C[1][1] = id * (A[0][0]*A[2][2] - A[0][2]*A[2][0])
	C[1][2] = id * (A[0][2]*A[1][0] - A[0][0]*A[1][2])
	C[2][0] = id * (A[1][0]*A[2][1] - A[1][1]*A[2][0])
	C[2][1] = id * (A[0][1]*A[2][0] - A[0][0]*A[2][1])
	C[2][2] = id * (A[0][0]*A[1][1] - A[0][1]*A[1][0])
	return
}

// DDot is the full double contraction A:B = A_ij B_ij.
func DDot(A, B Mat3) (s float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s += A[i][j] * B[i][j]
		}
	}
	return
}

// Trace returns A_ii.
func (A Mat3) Trace() float64 {
	return A[0][0] + A[1][1] + A[2][2]
}
