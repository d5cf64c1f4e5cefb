package sim

import (
	"fmt"

	"github.com/livingmap/go-kalman/matrix"
	"gonum.org/v1/gonum/mat"
)

// Continuous is a basic model of a linear, continuous-time, dynamical system.
// Its System matrix F holds the continuous state matrix A.
type Continuous struct {
	System
}

// NewContinuous creates a linear continuous-time model based on the control theory equations
//
//	dx/dt = A*x + B*u + wd
//	y = H*x + wn
func NewContinuous(A, B, H matrix.Matrix) (*Continuous, error) {
	sys, err := newSystem(A, B, H)
	if err != nil {
		return nil, err
	}

	return &Continuous{System: sys}, nil
}

// ToDiscrete creates a discrete-time model from a continuous time model
// using ts as the sampling time (zero-order hold):
//
//	F = exp(A*ts)
//	Bd = integrate(exp(A*t)dt, 0, ts) * B
//
// When A is invertible the integral has the closed form (F - I)*inv(A);
// otherwise it is approximated with the trapezoidal rule.
func (ct *Continuous) ToDiscrete(ts float64) (*Discrete, error) {
	if ts <= 0 {
		return nil, fmt.Errorf("invalid sampling time: %g", ts)
	}

	nx, _, _ := ct.SystemDims()

	a := ct.F.Dense()
	a.Scale(ts, a)
	expA := &mat.Dense{}
	expA.Exp(a)
	F := matrix.FromMat(expA)

	if ct.B.IsEmpty() {
		return NewDiscrete(F, ct.B, ct.H)
	}

	eye, err := matrix.Identity(nx)
	if err != nil {
		return nil, err
	}

	var integral matrix.Matrix
	if aInv, err := ct.F.Inverse(); err == nil {
		aux, err := F.Sub(eye)
		if err != nil {
			return nil, err
		}
		if integral, err = aux.Mul(aInv); err != nil {
			return nil, err
		}
	} else {
		integral = trapezoidExp(ct.F.Dense(), nx, ts)
	}

	Bd, err := integral.Mul(ct.B)
	if err != nil {
		return nil, err
	}

	return NewDiscrete(F, Bd, ct.H)
}

// trapezoidExp integrates exp(a*t) over [0, ts].
func trapezoidExp(a *mat.Dense, nx int, ts float64) matrix.Matrix {
	const n = 100
	dt := ts / n

	sum := mat.NewDense(nx, nx, nil)
	at := &mat.Dense{}
	expAt := &mat.Dense{}
	for i := 0; i <= n; i++ {
		at.Scale(dt*float64(i), a)
		expAt.Exp(at)
		w := dt
		if i == 0 || i == n {
			w = dt / 2
		}
		expAt.Scale(w, expAt)
		sum.Add(sum, expAt)
	}

	return matrix.FromMat(sum)
}

// Propagate returns the next internal state x of a linear, continuous-time
// system given an input vector u and process noise sample wd.
// It integrates the state derivative with Euler's method over timestep dt.
func (ct *Continuous) Propagate(x, u, wd matrix.Matrix, dt float64) (matrix.Matrix, error) {
	nx, _, _ := ct.SystemDims()
	if x.Rows() != nx || x.Cols() != 1 {
		return matrix.Matrix{}, fmt.Errorf("%w: invalid state vector: [%d x %d]", matrix.ErrDimensionMismatch, x.Rows(), x.Cols())
	}

	dx, err := ct.F.Mul(x)
	if err != nil {
		return matrix.Matrix{}, err
	}

	bu, err := ct.control(u)
	if err != nil {
		return matrix.Matrix{}, err
	}

	if !bu.IsEmpty() {
		if dx, err = dx.Add(bu); err != nil {
			return matrix.Matrix{}, err
		}
	}

	if !wd.IsEmpty() {
		if dx, err = dx.Add(wd); err != nil {
			return matrix.Matrix{}, err
		}
	}

	return x.Add(dx.Scale(dt))
}
