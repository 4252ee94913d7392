package lineshape

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// electronRestEnergy is m_e c^2 in keV, used for the Compton energy shift.
const electronRestEnergy = 511.0

// Elastic models the coherent (Rayleigh) scatter peak: a Gaussian at the
// incident beam energy whose width follows the detector response.
type Elastic struct {
	Amplitude float64
	Energy    float64 // incident (coherent scatter) energy, keV
	Response  Response
}

// At evaluates the elastic peak at a single energy.
func (e Elastic) At(x float64) float64 {
	return GaussianAt(x, e.Amplitude, e.Energy, e.Response.Sigma(e.Energy))
}

// Eval fills dst with the elastic peak over x.
func (e Elastic) Eval(dst, x []float64) error {
	return Gaussian(dst, x, e.Amplitude, e.Energy, e.Response.Sigma(e.Energy))
}

// Compton models the incoherent scatter peak. The peak sits at the
// Compton-shifted energy for the configured scatter angle and is composed
// of a broadened Gaussian core, low- and high-energy exponential tails,
// and an erfc step.
type Compton struct {
	Amplitude      float64
	IncidentEnergy float64 // keV
	Angle          float64 // scatter angle, degrees

	FWHMCorr float64 // core width multiplier relative to the detector sigma
	FStep    float64 // step fraction
	FTail    float64 // low-energy tail fraction
	Gamma    float64 // low-energy tail slope
	HiFTail  float64 // high-energy tail fraction
	HiGamma  float64 // high-energy tail slope

	Response Response
}

// Energy returns the Compton-shifted peak position:
// E = E0 / (1 + (E0/511)*(1-cos(angle))).
func (c Compton) Energy() float64 {
	theta := c.Angle * math.Pi / 180

	return c.IncidentEnergy / (1 + c.IncidentEnergy/electronRestEnergy*(1-math.Cos(theta)))
}

// At evaluates the Compton peak at a single energy.
func (c Compton) At(x float64) float64 {
	center := c.Energy()
	sigma := c.Response.Sigma(center)

	if sigma <= 0 {
		return 0
	}

	fwhmCorr := c.FWHMCorr
	if fwhmCorr <= 0 {
		fwhmCorr = 1
	}

	factor := 1 / (1 + c.FStep + c.FTail + c.HiFTail)

	v := GaussianAt(x, 1, center, sigma*fwhmCorr)

	if c.FStep > 0 {
		v += c.FStep * StepAt(x, 1, center, sigma, center)
	}

	if c.FTail > 0 {
		v += c.FTail * TailAt(x, 1, center, sigma, c.Gamma)
	}

	// The high-energy tail is the mirrored low-energy tail.
	if c.HiFTail > 0 {
		v += c.HiFTail * TailAt(-x, 1, -center, sigma, c.HiGamma)
	}

	return c.Amplitude * factor * v
}

// Eval fills dst with the Compton peak over x.
func (c Compton) Eval(dst, x []float64) error {
	if len(dst) != len(x) {
		return ErrLengthMismatch
	}

	center := c.Energy()
	sigma := c.Response.Sigma(center)

	if sigma <= 0 {
		return ErrInvalidSigma
	}

	fwhmCorr := c.FWHMCorr
	if fwhmCorr <= 0 {
		fwhmCorr = 1
	}

	factor := 1 / (1 + c.FStep + c.FTail + c.HiFTail)

	for i, xv := range x {
		v := GaussianAt(xv, 1, center, sigma*fwhmCorr)

		if c.FStep > 0 {
			v += c.FStep * StepAt(xv, 1, center, sigma, center)
		}

		if c.FTail > 0 {
			v += c.FTail * TailAt(xv, 1, center, sigma, c.Gamma)
		}

		if c.HiFTail > 0 {
			v += c.HiFTail * TailAt(-xv, 1, -center, sigma, c.HiGamma)
		}

		dst[i] = v
	}

	vecmath.ScaleBlock(dst, dst, c.Amplitude*factor)

	return nil
}
