package noise

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/livingmap/go-kalman/matrix"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// Gaussian is gaussian noise
type Gaussian struct {
	// dist is a multivariate normal distribution
	dist *distmv.Normal
	// mean is Gaussian mean
	mean []float64
	// cov is Gaussian covariance
	cov matrix.Matrix
	// seed is the random source seed; zero means time based seed
	seed uint64
}

// NewGaussian creates new Gaussian noise with given mean and covariance.
// It returns error if it fails to create Gaussian.
func NewGaussian(mean []float64, cov matrix.Matrix) (*Gaussian, error) {
	return NewGaussianWithSeed(mean, cov, 0)
}

// NewGaussianWithSeed creates new Gaussian noise with given mean and covariance
// whose samples are drawn from a random source seeded with seed.
// A zero seed seeds the random source from the current time.
// It returns error if cov is not a symmetric positive definite matrix matching the size of mean.
func NewGaussianWithSeed(mean []float64, cov matrix.Matrix, seed uint64) (*Gaussian, error) {
	if !cov.IsSymmetric(0) {
		return nil, fmt.Errorf("invalid Gaussian covariance: %v", cov)
	}

	if len(mean) != cov.Rows() {
		return nil, fmt.Errorf("%w: mean: %d, cov: [%d x %d]", matrix.ErrDimensionMismatch, len(mean), cov.Rows(), cov.Cols())
	}

	m := make([]float64, len(mean))
	copy(m, mean)

	dist, ok := newGaussianDist(m, cov, seed)
	if !ok {
		return nil, fmt.Errorf("failed to create new Gaussian noise")
	}

	return &Gaussian{
		dist: dist,
		mean: m,
		cov:  cov,
		seed: seed,
	}, nil
}

// Sample generates a sample from Gaussian noise and returns it.
func (g *Gaussian) Sample() matrix.Matrix {
	return matrix.Must(matrix.NewVector(g.dist.Rand(nil)))
}

// Cov returns covariance matrix of Gaussian noise.
func (g *Gaussian) Cov() matrix.Matrix {
	return g.cov
}

// Mean returns Gaussian mean.
func (g *Gaussian) Mean() []float64 {
	mean := make([]float64, len(g.mean))
	copy(mean, g.mean)

	return mean
}

// Reset resets Gaussian noise: a seeded noise replays its samples from the start.
// It returns error if it fails to reset the noise.
func (g *Gaussian) Reset() error {
	dist, ok := newGaussianDist(g.mean, g.cov, g.seed)
	if !ok {
		return fmt.Errorf("failed to reset Gaussian noise")
	}
	g.dist = dist

	return nil
}

func newGaussianDist(mean []float64, cov matrix.Matrix, seed uint64) (*distmv.Normal, bool) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.New(rand.NewSource(seed))
	// cov is square; rows and cols are the same size
	size := cov.Rows()
	sym := mat.NewSymDense(size, cov.Grid())

	return distmv.NewNormal(mean, sym, src)
}

// String implements the Stringer interface.
func (g *Gaussian) String() string {
	return fmt.Sprintf("Gaussian{\nMean=%v\nCov=%v\n}", g.mean, mat.Formatted(g.cov.Dense(), mat.Prefix("    "), mat.Squeeze()))
}
