package hyperelastic

import "github.com/notargets/gofea/tensor"

// Residual holds the three weak-form integrand contributions at one
// quadrature point. The three are always evaluated together since they
// share the modified stress Pbb.
type Residual struct {
	Fu  tensor.Mat3 // stress-like term driving the displacement variation
	Fp  float64     // volumetric consistency, J - Jbar
	FJ  float64     // pressure consistency
	Pbb tensor.Mat3 // modified stress (Jbar/J)^(1/3) dpsi/dFbar, reused by the tangent
}

// NewResidual evaluates the three-field residual contributions for a
// material at the kinematic state (F, Jbar) and pressure p:
//
//	Pbb = (Jbar/J)^(1/3) dpsi/dFbar
//	f_u = Pbb - (Pbb:F)/3 inv(F)^T + p J inv(F)^T
//	f_p = J - Jbar
//	f_J = (Pbb:F)/(3 Jbar) - p
//
// The p J inv(F)^T term is the pressure contribution to the stress; it
// pairs with the A_up = J inv(F)^T tangent block.
func NewResidual(m Material, kin Kinematics, p float64) (res Residual, err error) {
	var Phat tensor.Mat3
	if Phat, err = m.FirstDerivative(kin.Fbar); err != nil {
		return
	}
	Pbb := Phat.Scale(kin.Scale)
	PbbF := tensor.DDot(Pbb, kin.F)
	res = Residual{
		Fu:  Pbb.Add(kin.IFT.Scale(p*kin.J - PbbF/3)),
		Fp:  kin.J - kin.Jbar,
		FJ:  PbbF/(3*kin.Jbar) - p,
		Pbb: Pbb,
	}
	return
}

// Tangent holds the six consistent tangent blocks of the three-field
// formulation at one quadrature point. The blocks are pairwise
// symmetric by construction: A_up = A_pu, A_uJ = A_Ju, A_pJ = A_Jp.
type Tangent struct {
	Auu tensor.Tensor4
	Aup tensor.Mat3
	AuJ tensor.Mat3
	App float64 // identically 0 for every constitutive model
	ApJ float64 // identically -1 for every constitutive model
	AJJ float64
}

// NewTangent linearizes the residual at the state (F, Jbar, p) using the
// constitutive second derivative and the modified stress Pbb from the
// residual evaluation. With s = (Jbar/J)^(1/3) and Abar = s^2
// d2psi/dFbar2:
//
//	A_uu = Abar + (F:Abar:F/9 + pJ + Pbb:F/9) iFT dya iFT
//	       - 1/3 [ iFT dya (Pbb + F:Abar) + (Pbb + Abar:F) dya iFT ]
//	       - (pJ - Pbb:F/3) iFT cdya iFT
//	A_up = J iFT
//	A_uJ = (P' + F:Abar - (F:Abar:F)/3 iFT) / (3 Jbar),  P' = f_u - pJ iFT
//	A_JJ = (F:Abar:F - 2 Pbb:F) / (9 Jbar^2)
//	A_pp = 0, A_pJ = -1
func NewTangent(m Material, kin Kinematics, p float64, Pbb tensor.Mat3) (tg Tangent, err error) {
	var Ahat tensor.Tensor4
	if Ahat, err = m.SecondDerivative(kin.Fbar); err != nil {
		return
	}
	var (
		s    = kin.Scale
		J    = kin.J
		Jbar = kin.Jbar
		iFT  = kin.IFT
		Abar = Ahat.Scale(s * s)
		FA   = tensor.DDot24(kin.F, Abar)
		AF   = tensor.DDot42(Abar, kin.F)
		FAF  = tensor.DDot(FA, kin.F)
		PbbF = tensor.DDot(Pbb, kin.F)
	)
	Auu := Abar.
		Add(tensor.Dya(iFT, iFT).Scale(FAF/9 + p*J + PbbF/9)).
		Sub(tensor.Dya(iFT, Pbb.Add(FA)).Add(tensor.Dya(Pbb.Add(AF), iFT)).Scale(1. / 3.)).
		Sub(tensor.CdyaIL(iFT, iFT).Scale(p*J - PbbF/3))

	Pprime := Pbb.Sub(iFT.Scale(PbbF / 3))
	tg = Tangent{
		Auu: Auu,
		Aup: iFT.Scale(J),
		AuJ: Pprime.Add(FA).Sub(iFT.Scale(FAF / 3)).Scale(1. / (3. * Jbar)),
		App: 0,
		ApJ: -1,
		AJJ: (FAF - 2*PbbF) / (9 * Jbar * Jbar),
	}
	return
}

// Evaluate computes residual and tangent together at one quadrature
// point, sharing the kinematic state and the modified stress.
func Evaluate(m Material, F tensor.Mat3, p, Jbar float64) (res Residual, tg Tangent, err error) {
	var kin Kinematics
	if kin, err = NewKinematics(F, Jbar); err != nil {
		return
	}
	if res, err = NewResidual(m, kin, p); err != nil {
		return
	}
	tg, err = NewTangent(m, kin, p, res.Pbb)
	return
}
