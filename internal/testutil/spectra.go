package testutil

import (
	"math"
	"math/rand"
)

// Channels returns the channel axis 0..n-1 as float64.
func Channels(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// AddGaussianPeak accumulates an area-normalized Gaussian peak into dst
// over the energy axis x.
func AddGaussianPeak(dst, x []float64, area, center, sigma float64) {
	norm := area / (sigma * math.Sqrt(2*math.Pi))
	for i, e := range x {
		d := (e - center) / sigma
		dst[i] += norm * math.Exp(-0.5*d*d)
	}
}

// SyntheticSpectrum builds a test spectrum over the energy axis x: a slowly
// decaying continuum plus the given peaks. Peaks are (area, center, sigma)
// triples.
func SyntheticSpectrum(x []float64, continuum float64, peaks ...[3]float64) []float64 {
	out := make([]float64, len(x))
	for i, e := range x {
		out[i] = continuum * math.Exp(-e/8)
	}
	for _, p := range peaks {
		AddGaussianPeak(out, x, p[0], p[1], p[2])
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// ArgMax returns the index of the largest element, or -1 for an empty slice.
func ArgMax(data []float64) int {
	best := -1
	bestV := math.Inf(-1)
	for i, v := range data {
		if v > bestV {
			best, bestV = i, v
		}
	}
	return best
}
