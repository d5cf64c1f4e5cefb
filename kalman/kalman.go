package kalman

import (
	filter "github.com/livingmap/go-kalman"
	"github.com/livingmap/go-kalman/matrix"
)

// Kalman is Kalman Filter
type Kalman interface {
	// filter.Estimate is the current state estimate and its covariance
	filter.Estimate
	// Gain returns Kalman filter gain
	Gain() matrix.Matrix
}
