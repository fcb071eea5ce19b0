package element

import (
	"fmt"

	"github.com/notargets/gofea/quadrature"
	"github.com/notargets/gofea/utils"
)

// NodeSpacing selects one of the standard nodal coordinate layouts on
// [-1,1] used by the element library.
type NodeSpacing uint8

const (
	Equispaced NodeSpacing = iota
	Lobatto
)

func (s NodeSpacing) String() string {
	switch s {
	case Equispaced:
		return "equispaced"
	case Lobatto:
		return "lobatto"
	}
	return fmt.Sprintf("NodeSpacing(%d)", uint8(s))
}

// Nodes returns the order+1 nodal coordinates on [-1,1] for the given
// spacing. An order 0 element has its single node at the center.
func Nodes(order int, spacing NodeSpacing) (R utils.Vector, err error) {
	if order < 0 {
		err = fmt.Errorf("polynomial order must be non-negative, have %d", order)
		return
	}
	switch spacing {
	case Equispaced:
		R = equispacedNodes(order)
	case Lobatto:
		R, err = lobattoNodes(order)
	default:
		err = fmt.Errorf("unknown node spacing %v", spacing)
	}
	return
}

func equispacedNodes(order int) (R utils.Vector) {
	n := order + 1
	x := make([]float64, n)
	if order == 0 {
		return utils.NewVector(1, x)
	}
	h := 2. / float64(order)
	for i := 0; i < n; i++ {
		x[i] = -1 + h*float64(i)
	}
	x[n-1] = 1 // kill accumulated roundoff at the endpoint
	return utils.NewVector(n, x)
}

func lobattoNodes(order int) (R utils.Vector, err error) {
	if order == 0 {
		return utils.NewVector(1, []float64{0}), nil
	}
	R, _, err = quadrature.GaussLobatto(order + 1)
	return
}
