package sim

import (
	"fmt"

	"github.com/livingmap/go-kalman/matrix"
)

// InitCond implements filter.InitCond
type InitCond struct {
	state matrix.Matrix
	cov   matrix.Matrix
}

// NewInitCond creates new InitCond and returns it.
// It returns error if state is not a column vector or cov is not a square
// matrix of the same size.
func NewInitCond(state, cov matrix.Matrix) (*InitCond, error) {
	if state.IsEmpty() || state.Cols() != 1 {
		return nil, fmt.Errorf("invalid initial state dimensions: [%d x %d]", state.Rows(), state.Cols())
	}

	if !cov.IsSquare() || cov.Rows() != state.Rows() {
		return nil, fmt.Errorf("%w: state: %d, cov: [%d x %d]", matrix.ErrDimensionMismatch, state.Rows(), cov.Rows(), cov.Cols())
	}

	return &InitCond{
		state: state,
		cov:   cov,
	}, nil
}

// State returns initial state
func (c *InitCond) State() matrix.Matrix {
	return c.state
}

// Cov returns initial covariance
func (c *InitCond) Cov() matrix.Matrix {
	return c.cov
}
