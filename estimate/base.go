package estimate

import (
	"fmt"

	"github.com/livingmap/go-kalman/matrix"
)

// Base is base estimate
type Base struct {
	// val is estimated value
	val matrix.Matrix
	// cov is estimated covariance
	cov matrix.Matrix
}

// NewBase returns base estimate given val.
// The covariance of the estimate is set to zero matrix.
// It returns error if val is not a column vector.
func NewBase(val matrix.Matrix) (*Base, error) {
	if val.IsEmpty() || val.Cols() != 1 {
		return nil, fmt.Errorf("invalid estimate value dimensions: [%d x %d]", val.Rows(), val.Cols())
	}

	cov, err := matrix.Zero(val.Rows(), val.Rows())
	if err != nil {
		return nil, err
	}

	return &Base{
		val: val,
		cov: cov,
	}, nil
}

// NewBaseWithCov returns base estimate given val and its covariance cov.
// It returns error if val is not a column vector or if cov is not a square matrix
// with the same number of rows as val.
func NewBaseWithCov(val, cov matrix.Matrix) (*Base, error) {
	if val.IsEmpty() || val.Cols() != 1 {
		return nil, fmt.Errorf("invalid estimate value dimensions: [%d x %d]", val.Rows(), val.Cols())
	}

	if !cov.IsSquare() || cov.Rows() != val.Rows() {
		return nil, fmt.Errorf("%w: val: %d, cov: [%d x %d]", matrix.ErrDimensionMismatch, val.Rows(), cov.Rows(), cov.Cols())
	}

	return &Base{
		val: val,
		cov: cov,
	}, nil
}

// Val returns estimated value
func (b *Base) Val() matrix.Matrix {
	return b.val
}

// Cov returns covariance estimate
func (b *Base) Cov() matrix.Matrix {
	return b.cov
}
