package fusion

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	tr, err := New(orb.Point{1, 2}, DefaultConfig())
	assert.NotNil(tr)
	assert.NoError(err)
	assert.Equal(orb.Point{1, 2}, tr.Position())
	assert.Equal([]float64{4, 0, 0, 4}, tr.Cov().Grid())
	assert.Equal(8.0, tr.Uncertainty())

	for _, cfg := range []Config{
		{StrideLength: 0, StrideVariance: 0.1, FixAccuracy: 2},
		{StrideLength: 0.7, StrideVariance: -1, FixAccuracy: 2},
		{StrideLength: 0.7, StrideVariance: 0.1, FixAccuracy: 0},
	} {
		tr, err := New(orb.Point{}, cfg)
		assert.Nil(tr)
		assert.Error(err)
	}
}

func TestLivingMap(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	start := orb.Point{530369.1952072862, 181399.91357055644}
	fix := orb.Point{530375.1952072862, 181405.91357055644}
	stride := orb.Point{MeanStrideLength / 2, MeanStrideLength / 2}

	tr, err := New(start, DefaultConfig())
	require.NoError(err)

	for i := 0; i < 3; i++ {
		tr, err = tr.Move(stride)
		require.NoError(err)
	}

	tr, err = tr.Fix(fix, WiFiAccuracy)
	require.NoError(err)

	accuracy := 0.0000000001
	assert.InDelta(530372.8823501434, tr.Position().X(), accuracy)
	assert.InDelta(181403.6007134136, tr.Position().Y(), accuracy)
}

func TestMoveGrowsUncertainty(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tr, err := New(orb.Point{0, 0}, DefaultConfig())
	require.NoError(err)

	start := tr
	prev := tr.Uncertainty()
	for i := 0; i < 10; i++ {
		tr, err = tr.Step(math.Pi / 2)
		require.NoError(err)
		assert.Greater(tr.Uncertainty(), prev)
		prev = tr.Uncertainty()
	}

	// ten strides due east
	assert.InDelta(10*MeanStrideLength, tr.Position().X(), 1e-9)
	assert.InDelta(0, tr.Position().Y(), 1e-9)
	assert.InDelta(8+10*2*StrideLengthVariance, tr.Uncertainty(), 1e-9)

	// the starting tracker is left untouched
	assert.Equal(orb.Point{0, 0}, start.Position())
	assert.Equal(8.0, start.Uncertainty())
}

func TestFixReducesUncertainty(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tr, err := New(orb.Point{0, 0}, DefaultConfig())
	require.NoError(err)

	for i := 0; i < 20; i++ {
		tr, err = tr.Step(0)
		require.NoError(err)
	}
	before := tr.Uncertainty()

	truth := orb.Point{0, 20 * MeanStrideLength}
	fixed, err := tr.Fix(orb.Point{0.5, truth.Y() - 0.5}, 1.0)
	require.NoError(err)

	assert.Less(fixed.Uncertainty(), before)
	assert.Less(planar.Distance(truth, fixed.Position()), 1.0)
	assert.True(fixed.Cov().IsSymmetric(1e-12))
	assert.False(fixed.Filter().Gain().IsEmpty())

	_, err = tr.Fix(truth, 0)
	assert.Error(err)
}

func TestStrideVector(t *testing.T) {
	assert := assert.New(t)

	for _, test := range []struct {
		heading float64
		want    orb.Point
	}{
		{heading: 0, want: orb.Point{0, 1}},
		{heading: math.Pi / 2, want: orb.Point{1, 0}},
		{heading: math.Pi, want: orb.Point{0, -1}},
		{heading: -math.Pi / 2, want: orb.Point{-1, 0}},
	} {
		v := StrideVector(1, test.heading)
		assert.InDelta(test.want.X(), v.X(), 1e-12)
		assert.InDelta(test.want.Y(), v.Y(), 1e-12)
	}
}
