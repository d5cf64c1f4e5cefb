package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

func sameShape(op string, a, b Matrix) error {
	if a.IsEmpty() || b.IsEmpty() {
		return fmt.Errorf("%s: %w: empty operand", op, ErrBadShape)
	}

	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("%s: %w: [%d x %d] and [%d x %d]", op, ErrDimensionMismatch, a.rows, a.cols, b.rows, b.cols)
	}

	return nil
}

// Add returns the element-wise sum of m and o.
// It returns ErrDimensionMismatch if m and o do not have the same dimensions.
func (m Matrix) Add(o Matrix) (Matrix, error) {
	if err := sameShape("add", m, o); err != nil {
		return Matrix{}, err
	}

	grid := make([]float64, len(m.grid))
	floats.AddTo(grid, m.grid, o.grid)

	return Matrix{rows: m.rows, cols: m.cols, grid: grid}, nil
}

// Sub returns the element-wise difference m - o.
// It returns ErrDimensionMismatch if m and o do not have the same dimensions.
func (m Matrix) Sub(o Matrix) (Matrix, error) {
	if err := sameShape("sub", m, o); err != nil {
		return Matrix{}, err
	}

	grid := make([]float64, len(m.grid))
	floats.SubTo(grid, m.grid, o.grid)

	return Matrix{rows: m.rows, cols: m.cols, grid: grid}, nil
}

// Mul returns the matrix product m*o which has m.Rows() rows and o.Cols() columns.
// It returns ErrDimensionMismatch if the number of columns of m differs from the number of rows of o.
func (m Matrix) Mul(o Matrix) (Matrix, error) {
	if m.IsEmpty() || o.IsEmpty() {
		return Matrix{}, fmt.Errorf("mul: %w: empty operand", ErrBadShape)
	}

	if m.cols != o.rows {
		return Matrix{}, fmt.Errorf("mul: %w: [%d x %d] * [%d x %d]", ErrDimensionMismatch, m.rows, m.cols, o.rows, o.cols)
	}

	out := &mat.Dense{}
	out.Mul(m.dense(), o.dense())

	return fromDense(out), nil
}

// T returns the transpose of m.
func (m Matrix) T() Matrix {
	grid := make([]float64, len(m.grid))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			grid[j*m.rows+i] = m.grid[i*m.cols+j]
		}
	}

	return Matrix{rows: m.cols, cols: m.rows, grid: grid}
}

// Scale returns m with every element multiplied by f.
func (m Matrix) Scale(f float64) Matrix {
	grid := m.Grid()
	floats.Scale(f, grid)

	return Matrix{rows: m.rows, cols: m.cols, grid: grid}
}

// Trace returns the sum of the diagonal elements of m.
// It returns ErrNotSquare if m is not square.
func (m Matrix) Trace() (float64, error) {
	if !m.IsSquare() {
		return 0, fmt.Errorf("trace: %w: [%d x %d]", ErrNotSquare, m.rows, m.cols)
	}

	return mat.Trace(m.dense()), nil
}

// IsSymmetric returns true if m is square and m[i,j] equals m[j,i]
// within the absolute or relative tolerance tol.
func (m Matrix) IsSymmetric(tol float64) bool {
	if !m.IsSquare() {
		return false
	}

	n := m.rows
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !scalar.EqualWithinAbsOrRel(m.grid[i*n+j], m.grid[j*n+i], tol, tol) {
				return false
			}
		}
	}

	return true
}

// Symmetrize returns (m + m')/2.
// It returns ErrNotSquare if m is not square.
func (m Matrix) Symmetrize() (Matrix, error) {
	if !m.IsSquare() {
		return Matrix{}, fmt.Errorf("symmetrize: %w: [%d x %d]", ErrNotSquare, m.rows, m.cols)
	}

	n := m.rows
	grid := make([]float64, len(m.grid))
	for i := 0; i < n; i++ {
		grid[i*n+i] = m.grid[i*n+i]
		for j := i + 1; j < n; j++ {
			v := (m.grid[i*n+j] + m.grid[j*n+i]) / 2
			grid[i*n+j], grid[j*n+i] = v, v
		}
	}

	return Matrix{rows: n, cols: n, grid: grid}, nil
}

// ColSums returns a slice containing m column sums.
func (m Matrix) ColSums() []float64 {
	sum := make([]float64, m.cols)
	for i := 0; i < m.rows; i++ {
		floats.Add(sum, m.grid[i*m.cols:(i+1)*m.cols])
	}

	return sum
}
