package noise

import (
	"fmt"

	"github.com/livingmap/go-kalman/matrix"
)

// None is noise with empty mean and empty covariance matrix.
// None is different from Zero: its mean vector length is 0 and its covariance
// matrix is zero size, which filters and models read as "no noise term".
type None struct{}

// NewNone creates new None noise and returns it
func NewNone() (*None, error) {
	return &None{}, nil
}

// Sample returns zero size vector.
func (e *None) Sample() matrix.Matrix {
	return matrix.Matrix{}
}

// Cov returns zero size covariance matrix.
func (e *None) Cov() matrix.Matrix {
	return matrix.Matrix{}
}

// Mean returns None mean.
func (e *None) Mean() []float64 {
	var mean []float64

	return mean
}

// Reset does nothing: it's here to implement filter.Noise interface
func (e *None) Reset() error { return nil }

// String implements the Stringer interface.
func (e *None) String() string {
	return fmt.Sprintf("None{\nMean=%v\nCov=%v\n}", e.Mean(), e.Cov())
}
