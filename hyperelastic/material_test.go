package hyperelastic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofea/tensor"
)

func testMaterials() []Material {
	return []Material{
		NeoHooke{Mu: 1, Lambda: 10},
		StVenantKirchhoff{Mu: 1, Lambda: 10},
	}
}

func testStates() []tensor.Mat3 {
	shear := tensor.Identity()
	shear[0][1] = 0.3
	return []tensor.Mat3{
		tensor.Identity(),
		tensor.Diag(1.3, 0.9, 0.9),
		shear,
		{{1.1, 0.2, 0}, {0.1, 0.95, -0.1}, {0, 0.05, 1.05}},
	}
}

func TestStressFreeReference(t *testing.T) {
	for _, m := range testMaterials() {
		P, err := m.FirstDerivative(tensor.Identity())
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				assert.InDelta(t, 0, P[i][j], 1.e-14,
					"%s P_%d%d at F=I", m.Name(), i, j)
			}
		}
		psi, err := m.Energy(tensor.Identity())
		require.NoError(t, err)
		assert.InDelta(t, 0, psi, 1.e-14)
	}
}

func TestFirstDerivativeMatchesEnergy(t *testing.T) {
	const h = 1.e-6
	for _, m := range testMaterials() {
		for _, F := range testStates() {
			P, err := m.FirstDerivative(F)
			require.NoError(t, err)
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					Fp, Fm := F, F
					Fp[k][l] += h
					Fm[k][l] -= h
					psiP, errP := m.Energy(Fp)
					require.NoError(t, errP)
					psiM, errM := m.Energy(Fm)
					require.NoError(t, errM)
					fd := (psiP - psiM) / (2 * h)
					assert.InDelta(t, fd, P[k][l], 1.e-5,
						"%s dpsi/dF_%d%d", m.Name(), k, l)
				}
			}
		}
	}
}

func TestSecondDerivativeMatchesFirst(t *testing.T) {
	const h = 1.e-6
	for _, m := range testMaterials() {
		for _, F := range testStates() {
			A, err := m.SecondDerivative(F)
			require.NoError(t, err)
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					Fp, Fm := F, F
					Fp[k][l] += h
					Fm[k][l] -= h
					Pp, errP := m.FirstDerivative(Fp)
					require.NoError(t, errP)
					Pm, errM := m.FirstDerivative(Fm)
					require.NoError(t, errM)
					for i := 0; i < 3; i++ {
						for j := 0; j < 3; j++ {
							fd := (Pp[i][j] - Pm[i][j]) / (2 * h)
							assert.InDelta(t, fd, A[i][j][k][l], 1.e-5,
								"%s A_%d%d%d%d", m.Name(), i, j, k, l)
						}
					}
				}
			}
		}
	}
}

// The second derivative must carry major symmetry, A_ijkl = A_klij.
func TestSecondDerivativeMajorSymmetry(t *testing.T) {
	for _, m := range testMaterials() {
		for _, F := range testStates() {
			A, err := m.SecondDerivative(F)
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					for k := 0; k < 3; k++ {
						for l := 0; l < 3; l++ {
							assert.InDelta(t, A[k][l][i][j], A[i][j][k][l], 1.e-12,
								"%s major symmetry %d%d%d%d", m.Name(), i, j, k, l)
						}
					}
				}
			}
		}
	}
}

func TestNeoHookeRejectsInvertedState(t *testing.T) {
	nh := NeoHooke{Mu: 1, Lambda: 10}
	F := tensor.Diag(-1, 1, 1)
	_, err := nh.Energy(F)
	assert.ErrorIs(t, err, ErrInvalidDeformation)
	_, err = nh.FirstDerivative(F)
	assert.ErrorIs(t, err, ErrInvalidDeformation)
	_, err = nh.SecondDerivative(F)
	assert.ErrorIs(t, err, ErrInvalidDeformation)
}
