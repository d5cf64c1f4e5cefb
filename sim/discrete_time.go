package sim

import (
	"fmt"

	"github.com/livingmap/go-kalman/matrix"
)

// Discrete is a basic model of a linear, discrete-time, dynamical system
type Discrete struct {
	System
}

// NewDiscrete creates a linear discrete-time model based on the control theory equations.
//
//	x[n+1] = F*x[n] + B*u[n] + wd[n]
//	y[n] = H*x[n] + wn[n]
func NewDiscrete(F, B, H matrix.Matrix) (*Discrete, error) {
	sys, err := newSystem(F, B, H)
	if err != nil {
		return nil, err
	}

	return &Discrete{System: sys}, nil
}

// Propagate returns the next internal state x of a linear, discrete-time
// system given an input vector u and process noise sample wd.
// Empty u or wd are ignored.
func (d *Discrete) Propagate(x, u, wd matrix.Matrix) (matrix.Matrix, error) {
	nx, _, _ := d.SystemDims()
	if x.Rows() != nx || x.Cols() != 1 {
		return matrix.Matrix{}, fmt.Errorf("%w: invalid state vector: [%d x %d]", matrix.ErrDimensionMismatch, x.Rows(), x.Cols())
	}

	out, err := d.F.Mul(x)
	if err != nil {
		return matrix.Matrix{}, err
	}

	bu, err := d.control(u)
	if err != nil {
		return matrix.Matrix{}, err
	}

	if !bu.IsEmpty() {
		if out, err = out.Add(bu); err != nil {
			return matrix.Matrix{}, err
		}
	}

	if !wd.IsEmpty() {
		return out.Add(wd)
	}

	return out, nil
}
