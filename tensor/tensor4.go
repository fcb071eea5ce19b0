package tensor

// Tensor4 is a fourth order tensor in three dimensions, a linear map
// from index pairs (i,j) x (k,l) to scalars.
type Tensor4 [3][3][3][3]float64

func (T Tensor4) Add(U Tensor4) (V Tensor4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					V[i][j][k][l] = T[i][j][k][l] + U[i][j][k][l]
				}
			}
		}
	}
	return
}

func (T Tensor4) Sub(U Tensor4) (V Tensor4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					V[i][j][k][l] = T[i][j][k][l] - U[i][j][k][l]
				}
			}
		}
	}
	return
}

func (T Tensor4) Scale(s float64) (V Tensor4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					V[i][j][k][l] = s * T[i][j][k][l]
				}
			}
		}
	}
	return
}

// Dya is the dyadic product (A dya B)_ijkl = A_ij B_kl.
func Dya(A, B Mat3) (T Tensor4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					T[i][j][k][l] = A[i][j] * B[k][l]
				}
			}
		}
	}
	return
}

// CdyaIL is the index-permuted dyadic product
// (A cdya B)_ijkl = A_il B_kj. It carries the minor symmetry the plain
// dyadic product lacks; in particular the derivative of the transposed
// inverse is d(inv(F)^T)_ij / dF_kl = -CdyaIL(iFT, iFT)_ijkl.
func CdyaIL(A, B Mat3) (T Tensor4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					T[i][j][k][l] = A[i][l] * B[k][j]
				}
			}
		}
	}
	return
}

// IdentityDya is the fourth order identity (II)_ijkl = d_ik d_jl, the
// unit of the double contraction: II:A = A.
func IdentityDya() (T Tensor4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T[i][j][i][j] = 1
		}
	}
	return
}

// DDot42 contracts the trailing pair: (T:A)_ij = T_ijkl A_kl.
func DDot42(T Tensor4, A Mat3) (C Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					sum += T[i][j][k][l] * A[k][l]
				}
			}
			C[i][j] = sum
		}
	}
	return
}

// DDot24 contracts the leading pair: (A:T)_kl = A_ij T_ijkl.
func DDot24(A Mat3, T Tensor4) (C Mat3) {
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			var sum float64
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					sum += A[i][j] * T[i][j][k][l]
				}
			}
			C[k][l] = sum
		}
	}
	return
}

// DDot242 is the scalar A:T:B = A_ij T_ijkl B_kl.
func DDot242(A Mat3, T Tensor4, B Mat3) (s float64) {
	s = DDot(DDot24(A, T), B)
	return
}
