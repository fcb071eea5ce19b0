package element

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofea/utils"
)

// A Lagrange basis of any order reproduces linear fields exactly.
func TestInterpolateLinearField(t *testing.T) {
	table := NewTable()
	b, err := table.Basis(2, 2, Lobatto)
	require.NoError(t, err)

	// u(r,s) = 2 + 3r - s at the nodes
	X := b.NodeCoordinates()
	values := utils.NewVector(b.NP())
	for i := 0; i < b.NP(); i++ {
		values.V.SetVec(i, 2+3*X.At(i, 0)-X.At(i, 1))
	}

	pts := [][2]float64{{0.2, 0.6}, {-0.8, -0.1}, {0, 0}}
	for _, pt := range pts {
		H, err := b.Eval(pt[0], pt[1])
		require.NoError(t, err)
		val, err := Interpolate(values, H)
		require.NoError(t, err)
		assert.InDelta(t, 2+3*pt[0]-pt[1], val, 1.e-12)

		dH, err := b.EvalGrad(pt[0], pt[1])
		require.NoError(t, err)
		grad, err := InterpolateGradient(values, dH)
		require.NoError(t, err)
		assert.InDelta(t, 3, grad.AtVec(0), 1.e-11)
		assert.InDelta(t, -1, grad.AtVec(1), 1.e-11)
	}
}

func TestInterpolateVectorField(t *testing.T) {
	table := NewTable()
	b, err := table.Basis(1, 3, Equispaced)
	require.NoError(t, err)

	// displacement field u = (r, 2s, -t) at the nodes
	X := b.NodeCoordinates()
	values := utils.NewMatrix(b.NP(), 3)
	for i := 0; i < b.NP(); i++ {
		values.Set(i, 0, X.At(i, 0))
		values.Set(i, 1, 2*X.At(i, 1))
		values.Set(i, 2, -X.At(i, 2))
	}

	H, err := b.Eval(0.25, -0.5, 0.75)
	require.NoError(t, err)
	val, err := InterpolateVector(values, H)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, val.AtVec(0), 1.e-12)
	assert.InDelta(t, -1.0, val.AtVec(1), 1.e-12)
	assert.InDelta(t, -0.75, val.AtVec(2), 1.e-12)

	dH, err := b.EvalGrad(0.25, -0.5, 0.75)
	require.NoError(t, err)
	grad, err := InterpolateVectorGradient(values, dH)
	require.NoError(t, err)
	expected := [3][3]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, -1}}
	for c := 0; c < 3; c++ {
		for d := 0; d < 3; d++ {
			assert.InDelta(t, expected[c][d], grad.At(c, d), 1.e-12,
				"component %d axis %d", c, d)
		}
	}
}

func TestInterpolateDimensionMismatch(t *testing.T) {
	table := NewTable()
	b, err := table.Basis(1, 2, Equispaced)
	require.NoError(t, err)
	H, err := b.Eval(0, 0)
	require.NoError(t, err)

	short := utils.NewVector(b.NP() - 1)
	_, err = Interpolate(short, H)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))

	dH, err := b.EvalGrad(0, 0)
	require.NoError(t, err)
	_, err = InterpolateGradient(short, dH)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))

	shortM := utils.NewMatrix(b.NP()-1, 2)
	_, err = InterpolateVector(shortM, H)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = InterpolateVectorGradient(shortM, dH)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}
