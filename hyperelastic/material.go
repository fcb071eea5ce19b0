// Package hyperelastic implements the per-point core of the mixed
// three-field (u, p, Jbar) variational formulation for nearly
// incompressible hyperelastic solids: modified kinematics, the weak-form
// residual contributions and the six consistent tangent blocks.
package hyperelastic

import (
	"fmt"
	"math"

	"github.com/notargets/gofea/tensor"
)

// Material is the constitutive contract consumed by the formulation.
// The formulation evaluates it at the modified gradient Fbar; any
// hyperelastic model satisfying it plugs in unchanged.
type Material interface {
	Name() string
	// Energy is the strain energy density psi(F).
	Energy(F tensor.Mat3) (float64, error)
	// FirstDerivative is dpsi/dF, the first Piola-Kirchhoff stress.
	FirstDerivative(F tensor.Mat3) (tensor.Mat3, error)
	// SecondDerivative is d2psi/dFdF, major-symmetric.
	SecondDerivative(F tensor.Mat3) (tensor.Tensor4, error)
}

// NeoHooke is the compressible neo-Hookean model
//
//	psi = mu/2 (I1 - 3) - mu ln J + lambda/2 (ln J)^2
//
// with analytic first and second derivatives.
type NeoHooke struct {
	Mu, Lambda float64
}

func (nh NeoHooke) Name() string { return "neo-hooke" }

func (nh NeoHooke) Energy(F tensor.Mat3) (psi float64, err error) {
	J := F.Det()
	if J <= 0 {
		err = fmt.Errorf("%w: det F = %g", ErrInvalidDeformation, J)
		return
	}
	lnJ := math.Log(J)
	I1 := tensor.DDot(F, F)
	psi = 0.5*nh.Mu*(I1-3) - nh.Mu*lnJ + 0.5*nh.Lambda*lnJ*lnJ
	return
}

func (nh NeoHooke) FirstDerivative(F tensor.Mat3) (P tensor.Mat3, err error) {
	J := F.Det()
	if J <= 0 {
		err = fmt.Errorf("%w: det F = %g", ErrInvalidDeformation, J)
		return
	}
	Fi, _ := F.Inverse()
	iFT := Fi.Transpose()
	// P = mu F + (lambda ln J - mu) inv(F)^T
	P = F.Scale(nh.Mu).Add(iFT.Scale(nh.Lambda*math.Log(J) - nh.Mu))
	return
}

func (nh NeoHooke) SecondDerivative(F tensor.Mat3) (A tensor.Tensor4, err error) {
	J := F.Det()
	if J <= 0 {
		err = fmt.Errorf("%w: det F = %g", ErrInvalidDeformation, J)
		return
	}
	Fi, _ := F.Inverse()
	iFT := Fi.Transpose()
	// A = mu II + lambda iFT dya iFT - (lambda ln J - mu) iFT cdya iFT
	A = tensor.IdentityDya().Scale(nh.Mu).
		Add(tensor.Dya(iFT, iFT).Scale(nh.Lambda)).
		Sub(tensor.CdyaIL(iFT, iFT).Scale(nh.Lambda*math.Log(J) - nh.Mu))
	return
}

// StVenantKirchhoff is the St. Venant-Kirchhoff model
//
//	psi = lambda/2 (tr E)^2 + mu E:E,  E = (F^T F - I)/2
//
// included as a second reference model for the tangent verification
// suite. Not suited to strong compression, but its derivatives are
// polynomial in F and therefore a good independent cross-check.
type StVenantKirchhoff struct {
	Mu, Lambda float64
}

func (sv StVenantKirchhoff) Name() string { return "svk" }

func (sv StVenantKirchhoff) green(F tensor.Mat3) (E tensor.Mat3) {
	E = F.Transpose().Mul(F).Sub(tensor.Identity()).Scale(0.5)
	return
}

func (sv StVenantKirchhoff) Energy(F tensor.Mat3) (psi float64, err error) {
	E := sv.green(F)
	trE := E.Trace()
	psi = 0.5*sv.Lambda*trE*trE + sv.Mu*tensor.DDot(E, E)
	return
}

func (sv StVenantKirchhoff) FirstDerivative(F tensor.Mat3) (P tensor.Mat3, err error) {
	E := sv.green(F)
	// S = lambda tr(E) I + 2 mu E, P = F S
	S := tensor.Identity().Scale(sv.Lambda * E.Trace()).Add(E.Scale(2 * sv.Mu))
	P = F.Mul(S)
	return
}

func (sv StVenantKirchhoff) SecondDerivative(F tensor.Mat3) (A tensor.Tensor4, err error) {
	E := sv.green(F)
	S := tensor.Identity().Scale(sv.Lambda * E.Trace()).Add(E.Scale(2 * sv.Mu))
	b := F.Mul(F.Transpose())
	// A_iJkL = d_ik S_JL + lambda F_iJ F_kL + mu (F_iL F_kJ + b_ik d_JL)
	for i := 0; i < 3; i++ {
		for jj := 0; jj < 3; jj++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					val := sv.Lambda*F[i][jj]*F[k][l] + sv.Mu*F[i][l]*F[k][jj]
					if i == k {
						val += S[jj][l]
					}
					if jj == l {
						val += sv.Mu * b[i][k]
					}
					A[i][jj][k][l] = val
				}
			}
		}
	}
	return
}
