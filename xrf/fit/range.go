package fit

import "github.com/cwbudde/algo-xrf/xrf/calib"

// ClipRange returns the channels of x (and the matching counts of y) whose
// calibrated energy falls strictly inside (lowKeV, highKeV). Channels that
// land exactly on a bound are excluded. The returned slices are fresh
// copies.
func ClipRange(cal calib.Energy, lowKeV, highKeV float64, x, y []float64) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, ErrLengthMismatch
	}

	var cx, cy []float64

	for i, ch := range x {
		e := cal.Apply(ch)
		if e <= lowKeV || e >= highKeV {
			continue
		}

		cx = append(cx, ch)
		cy = append(cy, y[i])
	}

	return cx, cy, nil
}
