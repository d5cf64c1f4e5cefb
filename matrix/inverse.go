package matrix

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Inverse returns the multiplicative inverse of m.
//
// The inverse is computed from the LU factorization of m with partial
// pivoting, so it works for square matrices of any size and tolerates zero
// pivots that a row swap can remove. It returns ErrNotSquare if m is not
// square and ErrSingular if m is singular or so badly conditioned that its
// inverse is numerically meaningless, i.e. its condition number exceeds
// mat.ConditionTolerance.
func (m Matrix) Inverse() (Matrix, error) {
	if m.IsEmpty() {
		return Matrix{}, fmt.Errorf("inverse: %w: empty matrix", ErrBadShape)
	}

	if !m.IsSquare() {
		return Matrix{}, fmt.Errorf("inverse: %w: [%d x %d]", ErrNotSquare, m.rows, m.cols)
	}

	inv := &mat.Dense{}
	if err := inv.Inverse(m.dense()); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return Matrix{}, fmt.Errorf("inverse: %w: condition number %g", ErrSingular, float64(cond))
		}
		return Matrix{}, fmt.Errorf("inverse: %w", err)
	}

	return fromDense(inv), nil
}
