// Package background estimates the continuum under an XRF spectrum using
// the SNIP (statistics-sensitive non-linear iterative peak-clipping)
// algorithm. Counts are compressed with the LLS operator, clipped against
// a shrinking symmetric window, and transformed back.
package background

import (
	"errors"
	"math"
)

// Errors returned by the estimator.
var (
	ErrEmptyInput   = errors.New("background: empty input")
	ErrInvalidWidth = errors.New("background: width must be > 0")
)

const defaultWidth = 24

// Config controls the SNIP estimator.
type Config struct {
	// Width is the maximum clipping half-window in channels. Wider windows
	// preserve broader structures as background. Defaults to 24.
	Width int

	// Iterations is the number of passes of the shrinking-window clipping
	// loop. Additional passes suppress residual peak structure under broad
	// peaks. Defaults to 1.
	Iterations int

	// Smooth is the boxcar pre-smoothing half-window in channels.
	// Zero disables smoothing.
	Smooth int
}

func normalizeConfig(cfg Config) Config {
	if cfg.Width == 0 {
		cfg.Width = defaultWidth
	}

	if cfg.Iterations < 1 {
		cfg.Iterations = 1
	}

	if cfg.Smooth < 0 {
		cfg.Smooth = 0
	}

	return cfg
}

// Estimator computes SNIP backgrounds with a fixed configuration.
type Estimator struct {
	cfg Config
}

// NewEstimator creates an estimator. Invalid widths surface from Estimate.
func NewEstimator(cfg Config) *Estimator {
	return &Estimator{cfg: normalizeConfig(cfg)}
}

// Estimate is a one-shot SNIP background estimation.
func Estimate(counts []float64, cfg Config) ([]float64, error) {
	return NewEstimator(cfg).Estimate(counts)
}

// Estimate returns the estimated background, same length as counts.
// The input is not modified.
func (e *Estimator) Estimate(counts []float64) ([]float64, error) {
	if len(counts) == 0 {
		return nil, ErrEmptyInput
	}

	if e.cfg.Width <= 0 {
		return nil, ErrInvalidWidth
	}

	work := make([]float64, len(counts))
	copy(work, counts)

	if e.cfg.Smooth > 0 {
		boxcar(work, e.cfg.Smooth)
	}

	// LLS transform compresses the dynamic range so that large peaks do
	// not dominate the clipping step.
	for i, v := range work {
		work[i] = lls(v)
	}

	width := e.cfg.Width
	if width >= len(work) {
		width = len(work) - 1
	}

	clipped := make([]float64, len(work))

	// Shrinking-window clipping: each pass replaces every channel by the
	// minimum of itself and the mean of its neighbors at distance p.
	for it := 0; it < e.cfg.Iterations; it++ {
		for p := width; p >= 1; p-- {
			copy(clipped, work)

			for i := p; i < len(work)-p; i++ {
				m := (work[i-p] + work[i+p]) / 2
				if m < clipped[i] {
					clipped[i] = m
				}
			}

			copy(work, clipped)
		}
	}

	for i, v := range work {
		work[i] = llsInverse(v)
	}

	return work, nil
}

// lls is the log-log-sqrt compression operator.
func lls(v float64) float64 {
	if v < 0 {
		v = 0
	}

	return math.Log(math.Log(math.Sqrt(v+1)+1) + 1)
}

// llsInverse undoes lls.
func llsInverse(v float64) float64 {
	t := math.Exp(math.Exp(v)-1) - 1

	return t*t - 1
}

// boxcar smooths data in place with a symmetric moving average of
// half-window h.
func boxcar(data []float64, h int) {
	src := make([]float64, len(data))
	copy(src, data)

	for i := range data {
		lo := i - h
		if lo < 0 {
			lo = 0
		}

		hi := i + h
		if hi >= len(src) {
			hi = len(src) - 1
		}

		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += src[j]
		}

		data[i] = sum / float64(hi-lo+1)
	}
}
