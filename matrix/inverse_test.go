package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInverse(t *testing.T) {
	assert := assert.New(t)

	for _, test := range []struct {
		m   Matrix
		inv Matrix
	}{
		{
			m:   Must(New([]float64{4}, 1, 1)),
			inv: Must(New([]float64{0.25}, 1, 1)),
		},
		{
			m:   Must(NewFromRows([][]float64{{4, 7}, {2, 6}})),
			inv: Must(NewFromRows([][]float64{{0.6, -0.7}, {-0.2, 0.4}})),
		},
		{
			// zero leading pivot requires a row swap
			m:   Must(NewFromRows([][]float64{{0, 1}, {1, 0}})),
			inv: Must(NewFromRows([][]float64{{0, 1}, {1, 0}})),
		},
		{
			m:   Must(NewFromRows([][]float64{{2, 0, 0}, {0, 4, 0}, {0, 0, 8}})),
			inv: Must(NewFromRows([][]float64{{0.5, 0, 0}, {0, 0.25, 0}, {0, 0, 0.125}})),
		},
	} {
		inv, err := test.m.Inverse()
		assert.NoError(err)
		assert.True(inv.EqualApprox(test.inv, 1e-12), "got %v want %v", inv, test.inv)
	}
}

func TestInverseIdentityProperty(t *testing.T) {
	assert := assert.New(t)

	for _, m := range []Matrix{
		Must(NewFromRows([][]float64{{3, 1}, {2, 5}})),
		Must(NewFromRows([][]float64{{0, 2, 1}, {1, 0, 3}, {4, 1, 0}})),
		Must(NewFromRows([][]float64{
			{1e-18, 1, 0, 2},
			{1, 1e-18, 3, 0},
			{0, 2, 1, 1},
			{5, 0, 1, 1},
		})),
		Must(NewFromRows([][]float64{
			{10, -1, 2, 0, 0},
			{-1, 11, -1, 3, 0},
			{2, -1, 10, -1, 0},
			{0, 3, -1, 8, 1},
			{0, 0, 0, 1, 6},
		})),
	} {
		inv, err := m.Inverse()
		assert.NoError(err)

		eye, err := m.Mul(inv)
		assert.NoError(err)
		assert.True(eye.EqualApprox(Must(Identity(m.Rows())), 1e-9), "got %v", eye)
	}
}

func TestInverseErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Must(NewFromRows([][]float64{{1, 2}, {2, 4}})).Inverse()
	assert.ErrorIs(err, ErrSingular)

	_, err = Must(NewFromRows([][]float64{{1, 2, 3}, {0, 0, 0}, {7, 8, 9}})).Inverse()
	assert.ErrorIs(err, ErrSingular)

	_, err = Must(Zero(3, 3)).Inverse()
	assert.ErrorIs(err, ErrSingular)

	_, err = Must(NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})).Inverse()
	assert.ErrorIs(err, ErrNotSquare)

	_, err = Matrix{}.Inverse()
	assert.ErrorIs(err, ErrBadShape)
}
