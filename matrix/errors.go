package matrix

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are non-positive
	// or the supplied grid does not hold rows*cols values.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates an index (row or column) outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Add of different shapes or Mul where a.cols != b.rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals a square matrix was required.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a matrix has no unique inverse.
	ErrSingular = errors.New("matrix: singular matrix")
)
