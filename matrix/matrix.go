// Package matrix provides an immutable dense matrix of float64 values.
//
// Matrix is a value type: constructors copy the data they are given and
// every operation returns a fresh Matrix, so a value can be shared freely
// between goroutines and retained as a checkpoint without copying.
package matrix

import (
	"fmt"

	mx "github.com/milosgajdos/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense matrix stored in row-major order.
// The zero value is an empty matrix with no rows and no columns.
type Matrix struct {
	rows int
	cols int
	grid []float64
}

// New creates a rows x cols matrix from grid which holds the matrix
// elements in row-major order. grid is copied.
// It returns ErrBadShape if the dimensions are not positive or if len(grid) != rows*cols.
func New(grid []float64, rows, cols int) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return Matrix{}, fmt.Errorf("%w: [%d x %d]", ErrBadShape, rows, cols)
	}

	if len(grid) != rows*cols {
		return Matrix{}, fmt.Errorf("%w: %d values for [%d x %d]", ErrBadShape, len(grid), rows, cols)
	}

	g := make([]float64, len(grid))
	copy(g, grid)

	return Matrix{rows: rows, cols: cols, grid: g}, nil
}

// NewFromRows creates a matrix from a slice of rows.
// It returns ErrBadShape if rows is empty or ragged.
func NewFromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, fmt.Errorf("%w: no rows", ErrBadShape)
	}

	cols := len(rows[0])
	grid := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadShape, i, len(row), cols)
		}
		grid = append(grid, row...)
	}

	return Matrix{rows: len(rows), cols: cols, grid: grid}, nil
}

// NewVector creates a column vector with len(data) rows and a single column.
func NewVector(data []float64) (Matrix, error) {
	return New(data, len(data), 1)
}

// Identity returns size x size identity matrix.
func Identity(size int) (Matrix, error) {
	if size <= 0 {
		return Matrix{}, fmt.Errorf("%w: [%d x %d]", ErrBadShape, size, size)
	}

	eye, err := mx.NewDenseValIdentity(size, 1.0)
	if err != nil {
		return Matrix{}, err
	}

	return fromDense(mat.DenseCopyOf(eye)), nil
}

// Zero returns rows x cols matrix with all elements set to zero.
func Zero(rows, cols int) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return Matrix{}, fmt.Errorf("%w: [%d x %d]", ErrBadShape, rows, cols)
	}

	return Matrix{rows: rows, cols: cols, grid: make([]float64, rows*cols)}, nil
}

// Diag returns a square diagonal matrix with values on its diagonal.
func Diag(values ...float64) (Matrix, error) {
	m, err := Zero(len(values), len(values))
	if err != nil {
		return Matrix{}, err
	}

	for i, v := range values {
		m.grid[i*m.cols+i] = v
	}

	return m, nil
}

// FromMat returns a copy of the gonum matrix m.
func FromMat(m mat.Matrix) Matrix {
	return fromDense(mat.DenseCopyOf(m))
}

// Must returns m if err is nil and panics otherwise.
// It simplifies initialization of matrices from literals.
func Must(m Matrix, err error) Matrix {
	if err != nil {
		panic(err)
	}

	return m
}

// fromDense takes ownership of the data backing d.
func fromDense(d *mat.Dense) Matrix {
	raw := d.RawMatrix()
	if raw.Stride == raw.Cols {
		return Matrix{rows: raw.Rows, cols: raw.Cols, grid: raw.Data[:raw.Rows*raw.Cols]}
	}

	grid := make([]float64, 0, raw.Rows*raw.Cols)
	for i := 0; i < raw.Rows; i++ {
		grid = append(grid, d.RawRowView(i)...)
	}

	return Matrix{rows: raw.Rows, cols: raw.Cols, grid: grid}
}

// dense returns a gonum view of m. The view shares m's data
// so it must only ever be used as a read-only operand.
func (m Matrix) dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.grid)
}

// Dims returns the number of rows and columns of m.
func (m Matrix) Dims() (r, c int) {
	return m.rows, m.cols
}

// Rows returns the number of rows of m.
func (m Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns of m.
func (m Matrix) Cols() int {
	return m.cols
}

// IsEmpty returns true if m has no elements.
func (m Matrix) IsEmpty() bool {
	return m.rows == 0 || m.cols == 0
}

// IsSquare returns true if m is a non-empty square matrix.
func (m Matrix) IsSquare() bool {
	return !m.IsEmpty() && m.rows == m.cols
}

// At returns the element of m at row i and column j.
// Indices are 0-based. At panics with ErrOutOfRange if either index is out of bounds.
func (m Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Errorf("%w: (%d, %d) in [%d x %d]", ErrOutOfRange, i, j, m.rows, m.cols))
	}

	return m.grid[i*m.cols+j]
}

// Grid returns a copy of the elements of m in row-major order.
func (m Matrix) Grid() []float64 {
	g := make([]float64, len(m.grid))
	copy(g, m.grid)

	return g
}

// Dense returns a copy of m as a gonum matrix.
// It returns an empty gonum matrix if m is empty.
func (m Matrix) Dense() *mat.Dense {
	if m.IsEmpty() {
		return &mat.Dense{}
	}

	return mat.NewDense(m.rows, m.cols, m.Grid())
}

// Equal returns true if m and o have the same dimensions and identical elements.
func (m Matrix) Equal(o Matrix) bool {
	return m.rows == o.rows && m.cols == o.cols && floats.Equal(m.grid, o.grid)
}

// EqualApprox returns true if m and o have the same dimensions and all their
// elements are equal within the absolute or relative tolerance tol.
func (m Matrix) EqualApprox(o Matrix, tol float64) bool {
	return m.rows == o.rows && m.cols == o.cols && floats.EqualApprox(m.grid, o.grid, tol)
}

// String implements the Stringer interface.
func (m Matrix) String() string {
	if m.IsEmpty() {
		return "[]"
	}

	return fmt.Sprintf("%v", mat.Formatted(m.dense(), mat.Squeeze()))
}
