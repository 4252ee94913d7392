package align

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by AlignAndScale.
var (
	ErrEmptyInput     = errors.New("align: empty input")
	ErrLengthMismatch = errors.New("align: energies and counts length mismatch")
	ErrBadReference   = errors.New("align: reference index out of range")
	ErrTooShort       = errors.New("align: scans need at least 4 samples")
	ErrNonUniform     = errors.New("align: energy axis must be uniform")
)

// Option configures AlignAndScale.
type Option func(*settings)

type settings struct {
	reference int
	scale     bool
}

// WithReference selects which scan the others are aligned to. Default 0.
func WithReference(i int) Option {
	return func(s *settings) { s.reference = i }
}

// WithoutScaling aligns the energy axes but leaves amplitudes untouched.
func WithoutScaling() Option {
	return func(s *settings) { s.scale = false }
}

// AlignAndScale shifts every scan onto the reference scan's energy grid and
// scales its counts to the reference peak amplitude. Each scan is a pair of
// equally long energies[i] and counts[i] slices over a uniform energy grid;
// the grids may differ in offset between scans but must share the step size.
// The returned slices are fresh copies; the inputs are not modified.
func AlignAndScale(energies, counts [][]float64, opts ...Option) ([][]float64, [][]float64, error) {
	if len(energies) == 0 {
		return nil, nil, ErrEmptyInput
	}

	if len(energies) != len(counts) {
		return nil, nil, ErrLengthMismatch
	}

	s := settings{scale: true}
	for _, o := range opts {
		o(&s)
	}

	if s.reference < 0 || s.reference >= len(energies) {
		return nil, nil, ErrBadReference
	}

	for i := range energies {
		if len(energies[i]) != len(counts[i]) {
			return nil, nil, fmt.Errorf("%w: scan %d", ErrLengthMismatch, i)
		}

		if len(energies[i]) < 4 {
			return nil, nil, fmt.Errorf("%w: scan %d", ErrTooShort, i)
		}
	}

	refE := energies[s.reference]
	refC := counts[s.reference]

	step, err := gridStep(refE)
	if err != nil {
		return nil, nil, err
	}

	outE := make([][]float64, len(energies))
	outC := make([][]float64, len(energies))

	refMax := maxVal(refC)

	for i := range energies {
		outE[i] = append([]float64(nil), refE...)

		if i == s.reference {
			outC[i] = append([]float64(nil), refC...)
			continue
		}

		st, err := gridStep(energies[i])
		if err != nil {
			return nil, nil, err
		}

		if math.Abs(st-step) > 1e-9*math.Abs(step) {
			return nil, nil, fmt.Errorf("%w: scan %d step %g vs reference %g", ErrNonUniform, i, st, step)
		}

		lag, err := bestLag(refC, counts[i])
		if err != nil {
			return nil, nil, err
		}

		// The scan's recorded energy offset is exactly what drifted, so it
		// is ignored: the correlation lag places the scan on the
		// reference grid.
		start := refE[0] - lag*step

		out := make([]float64, len(refE))
		resample(out, counts[i], refE, start, step)

		if s.scale && refMax > 0 {
			if m := maxVal(out); m > 0 {
				f := refMax / m
				for j := range out {
					out[j] *= f
				}
			}
		}

		outC[i] = out
	}

	return outE, outC, nil
}

// gridStep returns the step of a uniform axis.
func gridStep(e []float64) (float64, error) {
	step := e[1] - e[0]
	if step == 0 {
		return 0, ErrNonUniform
	}

	for i := 2; i < len(e); i++ {
		if math.Abs(e[i]-e[i-1]-step) > 1e-6*math.Abs(step) {
			return 0, ErrNonUniform
		}
	}

	return step, nil
}

// bestLag returns the lag (in samples, possibly fractional) at which b best
// matches a, estimated from the FFT cross-correlation peak with 3-point
// parabolic refinement. A positive lag means b is shifted right of a.
func bestLag(a, b []float64) (float64, error) {
	n := len(a)
	m := len(b)
	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("align: fft plan: %w", err)
	}

	// Mean-subtract so a slowly varying background does not dominate the
	// correlation.
	ac := padCentered(a, fftSize)
	bc := padCentered(b, fftSize)

	af := make([]complex128, fftSize)
	bf := make([]complex128, fftSize)

	if err := plan.Forward(af, ac); err != nil {
		return 0, fmt.Errorf("align: forward fft: %w", err)
	}

	if err := plan.Forward(bf, bc); err != nil {
		return 0, fmt.Errorf("align: forward fft: %w", err)
	}

	for i := range af {
		af[i] *= complex(real(bf[i]), -imag(bf[i]))
	}

	ct := make([]complex128, fftSize)
	if err := plan.Inverse(ct, af); err != nil {
		return 0, fmt.Errorf("align: inverse fft: %w", err)
	}

	// Rearrange circular correlation into linear lags -(m-1)..n-1.
	corr := make([]float64, n+m-1)
	for i := 0; i < n; i++ {
		corr[m-1+i] = real(ct[i])
	}

	for i := 0; i < m-1; i++ {
		corr[i] = real(ct[fftSize-m+1+i])
	}

	best := 0
	for i := range corr {
		if corr[i] > corr[best] {
			best = i
		}
	}

	lag := float64((m - 1) - best)

	// Parabolic refinement of the peak position.
	if best > 0 && best < len(corr)-1 {
		y0, y1, y2 := corr[best-1], corr[best], corr[best+1]
		denom := y0 - 2*y1 + y2

		if denom < 0 {
			lag -= 0.5 * (y0 - y2) / denom
		}
	}

	return lag, nil
}

func padCentered(x []float64, fftSize int) []complex128 {
	mean := 0.0
	for _, v := range x {
		mean += v
	}

	mean /= float64(len(x))

	out := make([]complex128, fftSize)
	for i, v := range x {
		out[i] = complex(v-mean, 0)
	}

	return out
}

// resample evaluates the scan counts (uniform axis with the given start and
// step) at every target energy using cubic 4-point interpolation. Targets
// outside the scan are clamped to the edge samples.
func resample(dst, src, targets []float64, start, step float64) {
	n := len(src)

	for i, e := range targets {
		pos := (e - start) / step

		switch {
		case pos <= 0:
			dst[i] = src[0]
		case pos >= float64(n-1):
			dst[i] = src[n-1]
		default:
			k := int(pos)
			frac := pos - float64(k)

			xm1 := src[maxInt(k-1, 0)]
			x2 := src[minInt(k+2, n-1)]
			dst[i] = hermite4(frac, xm1, src[k], src[k+1], x2)
		}
	}
}

// hermite4 computes cubic 4-point interpolation from x0 to x1 with
// neighbors xm1 and x2, t in [0,1].
func hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)

	return ((c3*t+c2)*t+c1)*t + c0
}

func maxVal(x []float64) float64 {
	m := math.Inf(-1)
	for _, v := range x {
		if v > m {
			m = v
		}
	}

	return m
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
