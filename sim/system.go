package sim

import (
	"fmt"

	"github.com/livingmap/go-kalman/matrix"
)

// System defines a linear model of a plant using
// traditional matrices of modern control theory.
//
// It contains the system (F), input (B) and observation (H) matrices.
// B and H are optional: an empty matrix means the system has no input
// or no observable output respectively.
type System struct {
	// System/State matrix F
	F matrix.Matrix
	// Control/Input Matrix B
	B matrix.Matrix
	// Observation/Output Matrix H
	H matrix.Matrix
}

func newSystem(F, B, H matrix.Matrix) (System, error) {
	if !F.IsSquare() {
		return System{}, fmt.Errorf("invalid system matrix dimensions: [%d x %d]", F.Rows(), F.Cols())
	}

	nx := F.Rows()
	if !B.IsEmpty() && B.Rows() != nx {
		return System{}, fmt.Errorf("%w: invalid control matrix dimensions: [%d x %d]", matrix.ErrDimensionMismatch, B.Rows(), B.Cols())
	}

	if !H.IsEmpty() && H.Cols() != nx {
		return System{}, fmt.Errorf("%w: invalid output matrix dimensions: [%d x %d]", matrix.ErrDimensionMismatch, H.Rows(), H.Cols())
	}

	return System{F: F, B: B, H: H}, nil
}

// SystemDims returns internal state length (nx), input vector length (nu)
// and external/observable/output state length (ny).
func (s System) SystemDims() (nx, nu, ny int) {
	nx = s.F.Rows()
	if !s.B.IsEmpty() {
		nu = s.B.Cols()
	}
	if !s.H.IsEmpty() {
		ny = s.H.Rows()
	}

	return nx, nu, ny
}

// SystemMatrix returns state propagation matrix `F`.
func (s System) SystemMatrix() matrix.Matrix { return s.F }

// ControlMatrix returns state propagation control matrix `B`
func (s System) ControlMatrix() matrix.Matrix { return s.B }

// OutputMatrix returns observation matrix `H`
func (s System) OutputMatrix() matrix.Matrix { return s.H }

// Observe returns external/observable state given internal state x.
// wn is added to the output as a noise vector unless it is empty.
func (s System) Observe(x, wn matrix.Matrix) (matrix.Matrix, error) {
	nx, _, ny := s.SystemDims()
	if ny == 0 {
		return matrix.Matrix{}, fmt.Errorf("system has no output matrix")
	}

	if x.Rows() != nx || x.Cols() != 1 {
		return matrix.Matrix{}, fmt.Errorf("%w: invalid state vector: [%d x %d]", matrix.ErrDimensionMismatch, x.Rows(), x.Cols())
	}

	out, err := s.H.Mul(x)
	if err != nil {
		return matrix.Matrix{}, err
	}

	if !wn.IsEmpty() {
		return out.Add(wn)
	}

	return out, nil
}

// control returns B*u or an empty matrix if either B or u is empty.
func (s System) control(u matrix.Matrix) (matrix.Matrix, error) {
	if u.IsEmpty() || s.B.IsEmpty() {
		return matrix.Matrix{}, nil
	}

	_, nu, _ := s.SystemDims()
	if u.Rows() != nu || u.Cols() != 1 {
		return matrix.Matrix{}, fmt.Errorf("%w: invalid input vector: [%d x %d]", matrix.ErrDimensionMismatch, u.Rows(), u.Cols())
	}

	return s.B.Mul(u)
}
