package lineshape

import (
	"errors"
	"math"
)

// Errors returned by profile evaluators.
var (
	ErrLengthMismatch = errors.New("lineshape: dst and x length mismatch")
	ErrInvalidSigma   = errors.New("lineshape: sigma must be > 0")
)

// fwhmToSigma converts a FWHM to a Gaussian sigma: fwhm = sigma * 2*sqrt(2 ln 2).
var fwhmToSigma = 2 * math.Sqrt(2*math.Ln2)

// erfc underflows to zero well before this argument; beyond it the tail
// product exp(a)*erfc(u) is zero but would otherwise evaluate as Inf*0.
const erfcCutoff = 26.0

// GaussianAt evaluates an area-normalized Gaussian at a single energy.
func GaussianAt(x, area, center, sigma float64) float64 {
	if sigma <= 0 {
		return 0
	}

	d := (x - center) / sigma

	return area / (math.Sqrt(2*math.Pi) * sigma) * math.Exp(-0.5*d*d)
}

// Gaussian fills dst with an area-normalized Gaussian over x.
func Gaussian(dst, x []float64, area, center, sigma float64) error {
	if len(dst) != len(x) {
		return ErrLengthMismatch
	}

	if sigma <= 0 {
		return ErrInvalidSigma
	}

	norm := area / (math.Sqrt(2*math.Pi) * sigma)
	for i, xv := range x {
		d := (xv - center) / sigma
		dst[i] = norm * math.Exp(-0.5*d*d)
	}

	return nil
}

// StepAt evaluates the erfc step profile at a single energy. The step rises
// below the peak center and is normalized by the peak energy, matching the
// plateau observed under scatter peaks.
func StepAt(x, area, center, sigma, peakEnergy float64) float64 {
	if sigma <= 0 || peakEnergy == 0 {
		return 0
	}

	return area * math.Erfc((x-center)/(math.Sqrt2*sigma)) / (2 * peakEnergy)
}

// Step fills dst with the erfc step profile over x.
func Step(dst, x []float64, area, center, sigma, peakEnergy float64) error {
	if len(dst) != len(x) {
		return ErrLengthMismatch
	}

	if sigma <= 0 {
		return ErrInvalidSigma
	}

	for i, xv := range x {
		dst[i] = StepAt(xv, area, center, sigma, peakEnergy)
	}

	return nil
}

// TailAt evaluates the exponential low-energy tail profile at a single
// energy. gamma controls the tail slope in units of sigma.
func TailAt(x, area, center, sigma, gamma float64) float64 {
	if sigma <= 0 || gamma <= 0 {
		return 0
	}

	u := (x-center)/(math.Sqrt2*sigma) + 1/(gamma*math.Sqrt2)
	if u > erfcCutoff {
		return 0
	}

	norm := area / (2 * gamma * sigma * math.Exp(-0.5/(gamma*gamma)))

	return norm * math.Exp((x-center)/(gamma*sigma)) * math.Erfc(u)
}

// Tail fills dst with the exponential low-energy tail profile over x.
func Tail(dst, x []float64, area, center, sigma, gamma float64) error {
	if len(dst) != len(x) {
		return ErrLengthMismatch
	}

	if sigma <= 0 {
		return ErrInvalidSigma
	}

	for i, xv := range x {
		dst[i] = TailAt(xv, area, center, sigma, gamma)
	}

	return nil
}

// Response holds the detector resolution parameters shared by every peak
// in a spectrum model.
type Response struct {
	FWHMOffset float64 // electronic noise contribution, keV FWHM
	FanoPrime  float64 // Fano-factor contribution, dimensionless
	Epsilon    float64 // energy per charge pair; defaults to 2.96 (Si)
}

// DefaultEpsilon is the conventional energy per electron-hole pair for a
// silicon detector, in the keV-channel unit system used throughout.
const DefaultEpsilon = 2.96

func (r Response) epsilon() float64 {
	if r.Epsilon > 0 {
		return r.Epsilon
	}

	return DefaultEpsilon
}

// Sigma returns the Gaussian sigma of a peak at the given energy:
// sigma^2 = (FWHMOffset/(2*sqrt(2 ln 2)))^2 + E * epsilon * FanoPrime.
func (r Response) Sigma(energy float64) float64 {
	base := r.FWHMOffset / fwhmToSigma
	v := base*base + energy*r.epsilon()*r.FanoPrime

	if v <= 0 {
		return 0
	}

	return math.Sqrt(v)
}
