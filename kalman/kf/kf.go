package kf

import (
	"fmt"

	filter "github.com/livingmap/go-kalman"
	"github.com/livingmap/go-kalman/estimate"
	"github.com/livingmap/go-kalman/matrix"
)

// KF is Kalman Filter.
//
// KF is immutable: Predict and Update leave the receiver untouched and
// return a new filter, so any intermediate filter can be retained and
// branched from. A failed call returns no filter and the receiver remains
// the last valid one.
type KF struct {
	// x is the state estimate
	x matrix.Matrix
	// p is the error covariance matrix
	p matrix.Matrix
	// k is Kalman gain of the last update
	k matrix.Matrix
	// inn is innovation vector of the last update
	inn matrix.Matrix
}

// New creates new KF from the prior state estimate x and its error covariance p.
// It returns error if x is not a column vector or p is not a square matrix
// with as many rows as x.
func New(x, p matrix.Matrix) (*KF, error) {
	if x.IsEmpty() || x.Cols() != 1 {
		return nil, fmt.Errorf("%w: invalid state dimensions: [%d x %d]", matrix.ErrDimensionMismatch, x.Rows(), x.Cols())
	}

	if !p.IsSquare() || p.Rows() != x.Rows() {
		return nil, fmt.Errorf("%w: invalid covariance dimensions: [%d x %d]", matrix.ErrDimensionMismatch, p.Rows(), p.Cols())
	}

	return &KF{x: x, p: p}, nil
}

// NewFromInitCond creates new KF from the initial condition init.
func NewFromInitCond(init filter.InitCond) (*KF, error) {
	return New(init.State(), init.Cov())
}

// Predict computes the a-priori estimate of the next state given the state
// transition model f, control input model b, control vector u and the
// covariance of the process noise q:
//
//	x' = F*x + B*u
//	P' = F*P*F' + Q
//
// Empty b and u mean there is no control input; empty q means no process noise.
// It returns error wrapping matrix.ErrDimensionMismatch if the model matrices
// are not sized consistently with the filter state.
func (k *KF) Predict(f, b, u, q matrix.Matrix) (*KF, error) {
	n := k.x.Rows()

	if !f.IsSquare() || f.Rows() != n {
		return nil, fmt.Errorf("%w: invalid state transition model dimensions: [%d x %d]", matrix.ErrDimensionMismatch, f.Rows(), f.Cols())
	}

	if !q.IsEmpty() && (!q.IsSquare() || q.Rows() != n) {
		return nil, fmt.Errorf("%w: invalid process noise dimensions: [%d x %d]", matrix.ErrDimensionMismatch, q.Rows(), q.Cols())
	}

	// F*x
	x, err := f.Mul(k.x)
	if err != nil {
		return nil, fmt.Errorf("state propagation failed: %w", err)
	}

	if !b.IsEmpty() || !u.IsEmpty() {
		// B*u
		bu, err := b.Mul(u)
		if err != nil {
			return nil, fmt.Errorf("control input failed: %w", err)
		}

		if x, err = x.Add(bu); err != nil {
			return nil, fmt.Errorf("control input failed: %w", err)
		}
	}

	// F*P*F'
	fp, err := f.Mul(k.p)
	if err != nil {
		return nil, fmt.Errorf("covariance propagation failed: %w", err)
	}

	p, err := fp.Mul(f.T())
	if err != nil {
		return nil, fmt.Errorf("covariance propagation failed: %w", err)
	}

	if !q.IsEmpty() {
		if p, err = p.Add(q); err != nil {
			return nil, fmt.Errorf("covariance propagation failed: %w", err)
		}
	}

	return &KF{x: x, p: p}, nil
}

// Update corrects the state estimate with measurement z given the observation
// model h and the covariance of the observation noise r:
//
//	y = z - H*x
//	S = H*P*H' + R
//	K = P*H'*inv(S)
//	x' = x + K*y
//	P' = (I - K*H)*P
//
// Empty r means the measurement carries no noise. It returns error wrapping
// matrix.ErrDimensionMismatch if z, h or r are not sized consistently with the
// filter state, or matrix.ErrSingular if S can not be inverted.
func (k *KF) Update(z, h, r matrix.Matrix) (*KF, error) {
	n := k.x.Rows()

	if h.Cols() != n {
		return nil, fmt.Errorf("%w: invalid observation model dimensions: [%d x %d]", matrix.ErrDimensionMismatch, h.Rows(), h.Cols())
	}

	if z.Rows() != h.Rows() || z.Cols() != 1 {
		return nil, fmt.Errorf("%w: invalid measurement dimensions: [%d x %d]", matrix.ErrDimensionMismatch, z.Rows(), z.Cols())
	}

	// innovation: z - H*x
	hx, err := h.Mul(k.x)
	if err != nil {
		return nil, fmt.Errorf("failed to observe state: %w", err)
	}

	inn, err := z.Sub(hx)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate innovation: %w", err)
	}

	// P*H'
	pht, err := k.p.Mul(h.T())
	if err != nil {
		return nil, fmt.Errorf("failed to calculate innovation covariance: %w", err)
	}

	// Note: pht = P*H' so we reuse the result here
	// H*P*H' + R
	s, err := h.Mul(pht)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate innovation covariance: %w", err)
	}

	if !r.IsEmpty() {
		if s, err = s.Add(r); err != nil {
			return nil, fmt.Errorf("failed to calculate innovation covariance: %w", err)
		}
	}

	sInv, err := s.Inverse()
	if err != nil {
		return nil, fmt.Errorf("failed to invert innovation covariance: %w", err)
	}

	gain, err := pht.Mul(sInv)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate Kalman gain: %w", err)
	}

	// x + K*y
	corr, err := gain.Mul(inn)
	if err != nil {
		return nil, fmt.Errorf("failed to correct state: %w", err)
	}

	x, err := k.x.Add(corr)
	if err != nil {
		return nil, fmt.Errorf("failed to correct state: %w", err)
	}

	// (I - K*H)*P
	eye, err := matrix.Identity(n)
	if err != nil {
		return nil, err
	}

	kh, err := gain.Mul(h)
	if err != nil {
		return nil, fmt.Errorf("failed to correct covariance: %w", err)
	}

	a, err := eye.Sub(kh)
	if err != nil {
		return nil, fmt.Errorf("failed to correct covariance: %w", err)
	}

	p, err := a.Mul(k.p)
	if err != nil {
		return nil, fmt.Errorf("failed to correct covariance: %w", err)
	}

	return &KF{x: x, p: p, k: gain, inn: inn}, nil
}

// Run runs one step of KF for the model m: it predicts the next state given
// the input u and then corrects it using the measurement z.
// Process and measurement noise covariances are read from q and r.
// It returns error if it either fails to propagate or correct the state.
func (k *KF) Run(m filter.DiscreteModel, q, r filter.Noise, u, z matrix.Matrix) (*KF, error) {
	var b matrix.Matrix
	if !u.IsEmpty() {
		b = m.ControlMatrix()
	}

	pred, err := k.Predict(m.SystemMatrix(), b, u, q.Cov())
	if err != nil {
		return nil, err
	}

	return pred.Update(z, m.OutputMatrix(), r.Cov())
}

// Dims returns the dimension of the filter state.
func (k *KF) Dims() int {
	return k.x.Rows()
}

// State returns KF state estimate
func (k *KF) State() matrix.Matrix {
	return k.x
}

// Val returns KF state estimate. It implements filter.Estimate.
func (k *KF) Val() matrix.Matrix {
	return k.x
}

// Cov returns KF covariance
func (k *KF) Cov() matrix.Matrix {
	return k.p
}

// Gain returns Kalman gain of the last update.
// It returns empty matrix if the filter has not been updated since its last prediction.
func (k *KF) Gain() matrix.Matrix {
	return k.k
}

// Innovation returns innovation vector of the last update.
// It returns empty matrix if the filter has not been updated since its last prediction.
func (k *KF) Innovation() matrix.Matrix {
	return k.inn
}

// Estimate returns KF estimate
func (k *KF) Estimate() (*estimate.Base, error) {
	return estimate.NewBaseWithCov(k.x, k.p)
}

// WithCov returns a copy of KF whose covariance matrix is set to cov.
// It returns error if cov dimensions are not the same as KF covariance dimensions.
func (k *KF) WithCov(cov matrix.Matrix) (*KF, error) {
	if !cov.IsSquare() || cov.Rows() != k.p.Rows() {
		return nil, fmt.Errorf("%w: invalid covariance matrix dims: [%d x %d]", matrix.ErrDimensionMismatch, cov.Rows(), cov.Cols())
	}

	return &KF{x: k.x, p: cov, k: k.k, inn: k.inn}, nil
}

// Symmetrize returns a copy of KF whose covariance matrix is replaced with (P + P')/2.
// It removes the asymmetry floating point rounding accumulates over many updates.
func (k *KF) Symmetrize() (*KF, error) {
	p, err := k.p.Symmetrize()
	if err != nil {
		return nil, err
	}

	return &KF{x: k.x, p: p, k: k.k, inn: k.inn}, nil
}
