package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCase(t *testing.T) {
	data := []byte(`
Title: "Uniaxial Stretch"
PolynomialOrder: 2
Dimension: 3
NodeSpacing: lobatto
QuadraturePoints: 3
Material: neo-hooke
Constants:
  mu: 1.0
  lambda: 10.0
Pressure: 0.1
VolumeRatio: 1.05
DeformationGradient:
  - [1.2, 0.0, 0.0]
  - [0.0, 0.95, 0.0]
  - [0.0, 0.0, 0.95]
`)
	cp := &CaseParameters{}
	require.NoError(t, cp.Parse(data))
	assert.Equal(t, "Uniaxial Stretch", cp.Title)
	assert.Equal(t, 2, cp.PolynomialOrder)
	assert.Equal(t, 3, cp.Dimension)
	assert.Equal(t, "lobatto", cp.NodeSpacing)
	assert.Equal(t, 3, cp.QuadraturePts)
	assert.Equal(t, "neo-hooke", cp.Material)
	assert.Equal(t, 1.0, cp.Constants["mu"])
	assert.Equal(t, 10.0, cp.Constants["lambda"])
	assert.Equal(t, 0.1, cp.Pressure)
	assert.Equal(t, 1.05, cp.VolumeRatio)
	require.Len(t, cp.DefGradient, 3)
	assert.Equal(t, 1.2, cp.DefGradient[0][0])
	assert.Equal(t, 0.95, cp.DefGradient[2][2])
}

func TestParseBadYAML(t *testing.T) {
	cp := &CaseParameters{}
	assert.Error(t, cp.Parse([]byte("Title: [unterminated")))
}
