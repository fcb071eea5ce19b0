// Package quadrature supplies Gauss-Legendre and Gauss-Lobatto point and
// weight rules on [-1,1], plus axis-major tensor-product rules for
// quadrilateral and hexahedral reference elements.
package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofea/utils"
)

// JacobiGQ computes the N+1 point Gauss quadrature rule for the Jacobi
// polynomial family (alpha, beta) via the Golub-Welsch eigenvalue method.
func JacobiGQ(alpha, beta float64, N int) (X, W utils.Vector) {
	var (
		x, w       []float64
		fac        float64
		h1, d0, d1 []float64
		VVr        *mat.Dense
	)
	if N == 0 {
		x = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w = []float64{2.}
		return utils.NewVector(len(x), x), utils.NewVector(len(w), w)
	}

	h1 = make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: diag(-1/2*(alpha^2-beta^2)./(h1+2)./h1)
	d0 = make([]float64, N+1)
	fac = -.5 * (alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// 1st upper diagonal:
	// diag(2./(h1(1:N)+2).*sqrt((1:N).*((1:N)+alpha+beta)
	//      .*((1:N)+alpha).*((1:N)+beta)./(h1(1:N)+1)./(h1(1:N)+3)),1)
	var ip1 float64
	d1 = make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 = float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := utils.NewSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	ok := eig.Factorize(JJ, true)
	if !ok {
		panic("eigenvalue decomposition failed")
	}
	x = eig.Values(x)
	X = utils.NewVector(N+1, x)

	VVr = mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	W = utils.NewVector(len(x), VVr.RawRowView(0)).Apply(func(v float64) float64 {
		return v * v
	}).Scale(gamma0(alpha, beta))
	return X, W
}

// GaussLegendre returns the n point Gauss-Legendre rule, exact for
// polynomials of degree 2n-1 on [-1,1].
func GaussLegendre(n int) (X, W utils.Vector, err error) {
	if n < 1 {
		err = fmt.Errorf("gauss rule needs at least one point, have %d", n)
		return
	}
	X, W = JacobiGQ(0, 0, n-1)
	return
}

// GaussLobatto returns the n point Gauss-Lobatto-Legendre rule. The
// endpoints -1 and 1 are always included; interior points are the Gauss
// points of the (1,1) Jacobi family, as in JacobiGL.
func GaussLobatto(n int) (X, W utils.Vector, err error) {
	if n < 2 {
		err = fmt.Errorf("lobatto rule needs at least two points, have %d", n)
		return
	}
	x := make([]float64, n)
	w := make([]float64, n)
	x[0] = -1
	x[n-1] = 1
	if n > 2 {
		xint, _ := JacobiGQ(1, 1, n-3)
		dataXint := xint.DataP()
		for i := 1; i < n-1; i++ {
			x[i] = dataXint[i-1]
		}
	}
	// w_j = 2/(n(n-1) P_{n-1}(x_j)^2)
	fac := 2. / float64(n*(n-1))
	for j := 0; j < n; j++ {
		p := legendreP(n-1, x[j])
		w[j] = fac / (p * p)
	}
	X = utils.NewVector(n, x)
	W = utils.NewVector(n, w)
	return
}

// legendreP evaluates the degree n Legendre polynomial by the three term
// recurrence.
func legendreP(n int, x float64) (p float64) {
	var (
		pm1, pm2 = x, 1.
	)
	switch n {
	case 0:
		return 1
	case 1:
		return x
	}
	for i := 2; i <= n; i++ {
		fi := float64(i)
		p = ((2*fi-1)*x*pm1 - (fi-1)*pm2) / fi
		pm2, pm1 = pm1, p
	}
	return
}

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}
