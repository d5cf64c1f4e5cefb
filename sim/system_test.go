package sim

import (
	"os"
	"testing"

	"github.com/livingmap/go-kalman/matrix"
	"github.com/stretchr/testify/assert"
)

var (
	x, u, q, r matrix.Matrix
	F, B, H    matrix.Matrix
)

func setup() {
	x = matrix.Must(matrix.NewVector([]float64{0.5, 0.6}))
	u = matrix.Must(matrix.NewVector([]float64{-1.0}))

	// state and output noise
	q = matrix.Must(matrix.NewVector([]float64{0.1, -0.1}))
	r = matrix.Must(matrix.NewVector([]float64{0.2}))

	F = matrix.Must(matrix.New([]float64{1.0, 1.0, 0.0, 1.0}, 2, 2))
	B = matrix.Must(matrix.New([]float64{0.5, 1.0}, 2, 1))
	H = matrix.Must(matrix.New([]float64{1.0, 0.0}, 1, 2))
}

func TestMain(m *testing.M) {
	// set up tests
	setup()
	// run the tests
	retCode := m.Run()
	// call with result of m.Run()
	os.Exit(retCode)
}

func TestInitCond(t *testing.T) {
	assert := assert.New(t)

	state := matrix.Must(matrix.NewVector([]float64{1.0, 3.0}))
	cov := matrix.Must(matrix.Diag(0.25, 0.25))

	ic, err := NewInitCond(state, cov)
	assert.NoError(err)
	assert.True(state.Equal(ic.State()))
	assert.True(cov.Equal(ic.Cov()))

	ic, err = NewInitCond(state, matrix.Must(matrix.Diag(1)))
	assert.Nil(ic)
	assert.ErrorIs(err, matrix.ErrDimensionMismatch)

	ic, err = NewInitCond(cov, cov)
	assert.Nil(ic)
	assert.Error(err)
}

func TestNewSystem(t *testing.T) {
	assert := assert.New(t)

	_, err := newSystem(F, B, H)
	assert.NoError(err)

	// no input and no output
	_, err = newSystem(F, matrix.Matrix{}, matrix.Matrix{})
	assert.NoError(err)

	_, err = newSystem(B, B, H)
	assert.Error(err)

	_, err = newSystem(F, H, H)
	assert.ErrorIs(err, matrix.ErrDimensionMismatch)

	_, err = newSystem(F, B, B)
	assert.ErrorIs(err, matrix.ErrDimensionMismatch)
}

func TestSystemMatrices(t *testing.T) {
	assert := assert.New(t)

	s, err := newSystem(F, B, H)
	assert.NoError(err)

	assert.True(s.SystemMatrix().Equal(F))
	assert.True(s.ControlMatrix().Equal(B))
	assert.True(s.OutputMatrix().Equal(H))
}

func TestSystemDims(t *testing.T) {
	assert := assert.New(t)

	s, err := newSystem(F, B, H)
	assert.NoError(err)

	nx, nu, ny := s.SystemDims()
	assert.Equal(2, nx)
	assert.Equal(1, nu)
	assert.Equal(1, ny)

	s, err = newSystem(F, matrix.Matrix{}, matrix.Matrix{})
	assert.NoError(err)

	nx, nu, ny = s.SystemDims()
	assert.Equal(2, nx)
	assert.Equal(0, nu)
	assert.Equal(0, ny)
}

func TestSystemObserve(t *testing.T) {
	assert := assert.New(t)

	s, err := newSystem(F, B, H)
	assert.NoError(err)

	y, err := s.Observe(x, matrix.Matrix{})
	assert.NoError(err)
	assert.Equal([]float64{0.5}, y.Grid())

	y, err = s.Observe(x, r)
	assert.NoError(err)
	assert.InDeltaSlice([]float64{0.7}, y.Grid(), 1e-12)

	_x := matrix.Must(matrix.Zero(10, 1))
	_, err = s.Observe(_x, r)
	assert.ErrorIs(err, matrix.ErrDimensionMismatch)

	_, err = s.Observe(x, q)
	assert.ErrorIs(err, matrix.ErrDimensionMismatch)

	s, err = newSystem(F, B, matrix.Matrix{})
	assert.NoError(err)
	_, err = s.Observe(x, r)
	assert.Error(err)
}
