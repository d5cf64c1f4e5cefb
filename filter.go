package filter

import "github.com/livingmap/go-kalman/matrix"

// Estimate is dynamical system filter estimate
type Estimate interface {
	// Val returns estimate value
	Val() matrix.Matrix
	// Cov returns estimate covariance
	Cov() matrix.Matrix
}

// InitCond is initial state condition of the filter
type InitCond interface {
	// State returns initial filter state
	State() matrix.Matrix
	// Cov returns initial state covariance
	Cov() matrix.Matrix
}

// Noise is dynamical system noise
type Noise interface {
	// Mean returns noise mean
	Mean() []float64
	// Cov returns covariance matrix of the noise
	Cov() matrix.Matrix
	// Sample returns a sample of the noise
	Sample() matrix.Matrix
	// Reset resets the noise
	Reset() error
}

// Propagator propagates internal state of the system to the next step
type Propagator interface {
	// Propagate propagates internal state x of the system to the next step
	// given the input u and the process noise sample wd.
	Propagate(x, u, wd matrix.Matrix) (matrix.Matrix, error)
}

// Observer observes external state (output) of the system
type Observer interface {
	// Observe observes external state of the system given its internal
	// state x and the measurement noise sample wn.
	Observe(x, wn matrix.Matrix) (matrix.Matrix, error)
}

// DiscreteModel is a linear discrete-time model of a dynamical system
type DiscreteModel interface {
	// Propagator is system propagator
	Propagator
	// Observer is system observer
	Observer
	// SystemDims returns internal state length (nx), input vector length (nu)
	// and output vector length (ny)
	SystemDims() (nx, nu, ny int)
	// SystemMatrix returns state propagation matrix F
	SystemMatrix() matrix.Matrix
	// ControlMatrix returns state propagation control matrix B
	ControlMatrix() matrix.Matrix
	// OutputMatrix returns observation matrix H
	OutputMatrix() matrix.Matrix
}
