package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixInverse(t *testing.T) {
	A := NewMatrix(3, 3, []float64{
		2, 1, 0,
		0, 3, 1,
		1, 0, 2,
	})
	Ai, err := A.Inverse()
	require.NoError(t, err)
	P := A.Mul(Ai)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			expected := 0.
			if i == j {
				expected = 1.
			}
			assert.True(t, near(P.At(i, j), expected))
		}
	}

	S := NewMatrix(2, 2, []float64{1, 2, 2, 4})
	_, err = S.Inverse()
	require.Error(t, err)

	R := NewMatrix(2, 3)
	_, err = R.Inverse()
	require.Error(t, err)
}

func TestMatrixMulVec(t *testing.T) {
	A := NewMatrix(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	v := NewVector(3, []float64{1, 0, -1})
	r := A.MulVec(v)
	assert.True(t, near(r.AtVec(0), -2))
	assert.True(t, near(r.AtVec(1), -2))

	assert.Panics(t, func() { A.MulVec(NewVector(2)) })
}

func TestMatrixTranspose(t *testing.T) {
	A := NewMatrix(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	At := A.Transpose()
	nr, nc := At.Dims()
	assert.Equal(t, 3, nr)
	assert.Equal(t, 2, nc)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, A.At(i, j), At.At(j, i))
		}
	}
}

func TestMatrixRowCol(t *testing.T) {
	A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
	assert.True(t, near(A.Col(1).AtVec(0), 2))
	assert.True(t, near(A.Col(1).AtVec(1), 4))
	assert.True(t, near(A.Row(1).AtVec(0), 3))
	assert.True(t, near(A.Row(1).AtVec(1), 4))
}

func TestVectorOps(t *testing.T) {
	v := NewVector(3, []float64{1, 2, 3})
	assert.True(t, near(v.Sum(), 6))
	assert.True(t, near(v.Dot(v), 14))

	w := v.Copy().Scale(2)
	assert.True(t, near(w.Sum(), 12))
	assert.True(t, near(v.Sum(), 6)) // copy leaves the original alone

	u := NewVector(2).Set(5).AddScalar(1)
	assert.True(t, near(u.AtVec(0), 6))
	assert.True(t, near(u.AtVec(1), 6))

	assert.Panics(t, func() { v.Dot(NewVector(2)) })
	assert.Panics(t, func() { NewVector(3, []float64{1, 2}) })
}

func TestSymTriDiagonal(t *testing.T) {
	J := NewSymTriDiagonal([]float64{1, 2, 3}, []float64{4, 5})
	assert.Equal(t, 4., J.At(0, 1))
	assert.Equal(t, 4., J.At(1, 0))
	assert.Equal(t, 5., J.At(1, 2))
	assert.Equal(t, 0., J.At(0, 2))
	assert.Equal(t, 2., J.At(1, 1))
}

func TestPOW(t *testing.T) {
	assert.True(t, near(POW(2, 10), 1024))
	assert.True(t, near(POW(2, -2), 0.25))
	assert.True(t, near(POW(7, 0), 1))
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*(math.Abs(a)+1) {
		l = true
	}
	return
}
