package noise

import (
	"testing"

	"github.com/livingmap/go-kalman/matrix"
	"github.com/stretchr/testify/assert"
)

func TestNewZero(t *testing.T) {
	assert := assert.New(t)

	e, err := NewZero(2)
	assert.NotNil(e)
	assert.NoError(err)

	e, err = NewZero(-10)
	assert.Nil(e)
	assert.Error(err)

	e, err = NewZero(0)
	assert.Nil(e)
	assert.Error(err)
}

func TestZeroMeanCov(t *testing.T) {
	assert := assert.New(t)

	size := 2
	e, err := NewZero(size)
	assert.NotNil(e)
	assert.NoError(err)

	assert.True(e.Cov().Equal(matrix.Must(matrix.Zero(size, size))))
	assert.EqualValues([]float64{0, 0}, e.Mean())
}

func TestZeroSample(t *testing.T) {
	assert := assert.New(t)

	e, err := NewZero(3)
	assert.NotNil(e)
	assert.NoError(err)

	sample := e.Sample()
	r, c := sample.Dims()
	assert.Equal(3, r)
	assert.Equal(1, c)
	assert.Equal([]float64{0, 0, 0}, sample.Grid())
}

func TestZeroReset(t *testing.T) {
	assert := assert.New(t)

	e, err := NewZero(2)
	assert.NotNil(e)
	assert.NoError(err)

	sample1 := e.Sample()
	assert.NoError(e.Reset())
	sample2 := e.Sample()
	assert.True(sample1.Equal(sample2))
}

func TestZeroString(t *testing.T) {
	assert := assert.New(t)

	str := `Zero{
Mean=[0 0]
Cov=⎡0  0⎤
    ⎣0  0⎦
}`

	e, err := NewZero(2)
	assert.NotNil(e)
	assert.NoError(err)
	assert.Equal(str, e.String())
}
