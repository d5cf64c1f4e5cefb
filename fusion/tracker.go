// Package fusion fuses stride based dead reckoning with absolute position
// fixes, e.g. WiFi or GNSS, into a single planar position estimate.
package fusion

import (
	"fmt"
	"math"

	"github.com/livingmap/go-kalman/kalman/kf"
	"github.com/livingmap/go-kalman/matrix"
	"github.com/paulmach/orb"
)

const (
	// MeanStrideLength is the average human stride length in metres
	MeanStrideLength = 0.762
	// StrideLengthVariance is the variance of stride length in square metres
	StrideLengthVariance = 0.1
	// WiFiAccuracy is the typical accuracy of a WiFi position fix in metres
	WiFiAccuracy = 2.0
)

// Config configures Tracker
type Config struct {
	// StrideLength is the length of a single stride in metres
	StrideLength float64
	// StrideVariance is the process noise variance added by every movement
	StrideVariance float64
	// FixAccuracy is the accuracy of the starting position in metres
	FixAccuracy float64
}

// DefaultConfig returns the default Tracker configuration.
func DefaultConfig() Config {
	return Config{
		StrideLength:   MeanStrideLength,
		StrideVariance: StrideLengthVariance,
		FixAccuracy:    WiFiAccuracy,
	}
}

// Tracker tracks a planar position. Like the filter it is built on, Tracker
// is immutable: every movement and fix returns a new Tracker.
type Tracker struct {
	cfg Config
	f   *kf.KF
	// eye is used as state transition, control and observation model
	eye matrix.Matrix
	// q is process noise covariance
	q matrix.Matrix
}

// New creates new Tracker starting at start, given in grid metres.
// It returns error if the configuration contains non-positive values.
func New(start orb.Point, cfg Config) (*Tracker, error) {
	if cfg.StrideLength <= 0 || cfg.StrideVariance <= 0 || cfg.FixAccuracy <= 0 {
		return nil, fmt.Errorf("invalid tracker config: %+v", cfg)
	}

	x, err := matrix.NewVector(start[:])
	if err != nil {
		return nil, err
	}

	acc := cfg.FixAccuracy * cfg.FixAccuracy
	p, err := matrix.Diag(acc, acc)
	if err != nil {
		return nil, err
	}

	f, err := kf.New(x, p)
	if err != nil {
		return nil, err
	}

	eye, err := matrix.Identity(2)
	if err != nil {
		return nil, err
	}

	q, err := matrix.Diag(cfg.StrideVariance, cfg.StrideVariance)
	if err != nil {
		return nil, err
	}

	return &Tracker{cfg: cfg, f: f, eye: eye, q: q}, nil
}

// Move dead-reckons the position by displacement d given in grid metres.
func (t *Tracker) Move(d orb.Point) (*Tracker, error) {
	u, err := matrix.NewVector(d[:])
	if err != nil {
		return nil, err
	}

	f, err := t.f.Predict(t.eye, t.eye, u, t.q)
	if err != nil {
		return nil, fmt.Errorf("failed to move: %w", err)
	}

	return t.with(f), nil
}

// Step dead-reckons the position by a single stride along heading,
// given in radians clockwise from grid north.
func (t *Tracker) Step(heading float64) (*Tracker, error) {
	return t.Move(StrideVector(t.cfg.StrideLength, heading))
}

// Fix corrects the position with the position fix p given in grid metres
// with accuracy in metres. The time elapsed since the last movement is
// accounted for with a stationary prediction before the correction.
func (t *Tracker) Fix(p orb.Point, accuracy float64) (*Tracker, error) {
	if accuracy <= 0 {
		return nil, fmt.Errorf("invalid fix accuracy: %g", accuracy)
	}

	still, err := t.Move(orb.Point{0, 0})
	if err != nil {
		return nil, err
	}

	z, err := matrix.NewVector(p[:])
	if err != nil {
		return nil, err
	}

	acc := accuracy * accuracy
	r, err := matrix.Diag(acc, acc)
	if err != nil {
		return nil, err
	}

	f, err := still.f.Update(z, t.eye, r)
	if err != nil {
		return nil, fmt.Errorf("failed to apply fix: %w", err)
	}

	return t.with(f), nil
}

// Position returns the current position estimate in grid metres.
func (t *Tracker) Position() orb.Point {
	x := t.f.State()
	return orb.Point{x.At(0, 0), x.At(1, 0)}
}

// Cov returns the position covariance.
func (t *Tracker) Cov() matrix.Matrix {
	return t.f.Cov()
}

// Uncertainty returns the total position variance: the trace of its covariance.
func (t *Tracker) Uncertainty() float64 {
	// covariance is always 2x2
	tr, _ := t.f.Cov().Trace()
	return tr
}

// Filter returns the underlying Kalman filter.
func (t *Tracker) Filter() *kf.KF {
	return t.f
}

func (t *Tracker) with(f *kf.KF) *Tracker {
	return &Tracker{cfg: t.cfg, f: f, eye: t.eye, q: t.q}
}

// StrideVector returns displacement of a stride of length l along heading,
// given in radians clockwise from grid north.
func StrideVector(l, heading float64) orb.Point {
	return orb.Point{l * math.Sin(heading), l * math.Cos(heading)}
}
