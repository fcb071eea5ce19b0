package element

import "errors"

var (
	// ErrDegenerateNodeSet reports nodal coordinates that are not pairwise
	// distinct, which makes the nodal interpolation system singular.
	ErrDegenerateNodeSet = errors.New("degenerate node set")
	// ErrDimensionMismatch reports caller wiring defects: nodal value
	// counts or point dimensions that disagree with the basis.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
