package hyperelastic

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/gofea/tensor"
)

// ErrInvalidDeformation reports a physically inadmissible deformation
// state, det F <= 0 (element inversion or excessive distortion). It is
// surfaced to the enclosing nonlinear solver, never clamped.
var ErrInvalidDeformation = errors.New("invalid deformation")

// Kinematics holds the volumetric-correction kinematic state at one
// quadrature point. It is a pure value, recomputed every evaluation and
// never cached across field updates.
type Kinematics struct {
	F     tensor.Mat3 // physical deformation gradient
	J     float64     // det F
	Jbar  float64     // independent averaged volume ratio field
	IFT   tensor.Mat3 // transposed inverse of F
	Fbar  tensor.Mat3 // modified gradient (Jbar/J)^(1/3) F
	Scale float64     // (Jbar/J)^(1/3)
}

// NewKinematics computes the modified deformation gradient state from F
// and the averaged volume ratio Jbar. Fails with ErrInvalidDeformation
// when det F or Jbar is non-positive.
func NewKinematics(F tensor.Mat3, Jbar float64) (kin Kinematics, err error) {
	J := F.Det()
	if J <= 0 {
		err = fmt.Errorf("%w: det F = %g", ErrInvalidDeformation, J)
		return
	}
	if Jbar <= 0 {
		err = fmt.Errorf("%w: Jbar = %g", ErrInvalidDeformation, Jbar)
		return
	}
	Fi, _ := F.Inverse() // det already checked
	s := math.Cbrt(Jbar / J)
	kin = Kinematics{
		F:     F,
		J:     J,
		Jbar:  Jbar,
		IFT:   Fi.Transpose(),
		Fbar:  F.Scale(s),
		Scale: s,
	}
	return
}

// DefGradProjection is the fourth order operator
//
//	dFbar/dF = (Jbar/J)^(1/3) (II - 1/3 F dya inv(F)^T)
//
// materialized on demand; the residual and tangent use the contracted
// forms directly and never need the dense operator.
func (kin Kinematics) DefGradProjection() (T tensor.Tensor4) {
	T = tensor.IdentityDya().
		Sub(tensor.Dya(kin.F, kin.IFT).Scale(1. / 3.)).
		Scale(kin.Scale)
	return
}

// DefGradVolumeSensitivity is dFbar/dJbar = Fbar / (3 Jbar).
func (kin Kinematics) DefGradVolumeSensitivity() (T tensor.Mat3) {
	T = kin.Fbar.Scale(1. / (3. * kin.Jbar))
	return
}
