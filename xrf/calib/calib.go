// Package calib maps detector channels to energies with a quadratic
// calibration E(ch) = Offset + Linear*ch + Quadratic*ch^2, and fits the
// calibration from reference line positions.
package calib

import (
	"errors"

	"github.com/cwbudde/algo-xrf/internal/linalg"
)

// Errors returned by calibration fitting.
var (
	ErrTooFewPoints = errors.New("calib: need at least two reference points")
	ErrDegenerate   = errors.New("calib: degenerate reference channels")
	ErrShape        = errors.New("calib: channels and energies length mismatch")
)

// Energy is a quadratic channel-to-energy calibration.
type Energy struct {
	Offset    float64 // keV
	Linear    float64 // keV per channel
	Quadratic float64 // keV per channel^2
}

// Apply converts one channel position to energy.
func (e Energy) Apply(ch float64) float64 {
	return e.Offset + ch*e.Linear + ch*ch*e.Quadratic
}

// ApplyTo fills dst with the calibrated energies of channels.
// dst and channels must have the same length.
func (e Energy) ApplyTo(dst, channels []float64) error {
	if len(dst) != len(channels) {
		return ErrShape
	}

	for i, ch := range channels {
		dst[i] = e.Apply(ch)
	}

	return nil
}

// Grid returns the calibrated energy axis for channels 0..n-1.
func (e Energy) Grid(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = e.Apply(float64(i))
	}

	return out
}

// FitEnergy fits a calibration from reference (channel, energy) pairs by
// least squares. Two points fit a linear calibration; three or more fit
// the full quadratic.
func FitEnergy(channels, energies []float64) (Energy, error) {
	if len(channels) != len(energies) {
		return Energy{}, ErrShape
	}

	if len(channels) < 2 {
		return Energy{}, ErrTooFewPoints
	}

	terms := 3
	if len(channels) == 2 {
		terms = 2
	}

	a := make([][]float64, len(channels))
	for i, ch := range channels {
		row := make([]float64, terms)
		row[0] = 1
		row[1] = ch

		if terms == 3 {
			row[2] = ch * ch
		}

		a[i] = row
	}

	ata, atb, err := linalg.NormalEquations(a, energies)
	if err != nil {
		return Energy{}, err
	}

	x, err := linalg.Solve(ata, atb)
	if err != nil {
		return Energy{}, ErrDegenerate
	}

	cal := Energy{Offset: x[0], Linear: x[1]}
	if terms == 3 {
		cal.Quadratic = x[2]
	}

	return cal, nil
}
