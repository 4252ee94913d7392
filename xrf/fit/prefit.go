package fit

import (
	"math"

	"github.com/cwbudde/algo-xrf/internal/nnls"
	"github.com/cwbudde/algo-xrf/xrf/model"
)

// NNLS solves min |a*x - b| subject to x >= 0 and returns x and the
// residual norm. a is row-major, one row per channel.
func NNLS(a [][]float64, b []float64) ([]float64, float64, error) {
	return nnls.Solve(a, b)
}

// NNLSWeighted is NNLS with every channel weighted by 1/(1+b), damping
// the channels with the highest counts. The weights are normalized to a
// peak of one and enter the least-squares objective linearly, so each
// row of a and b is scaled by the square root of its normalized weight.
// a and b are not modified.
func NNLSWeighted(a [][]float64, b []float64) ([]float64, float64, error) {
	if len(a) != len(b) {
		return nil, 0, ErrLengthMismatch
	}

	w := make([]float64, len(b))
	maxW := 0.0

	for i := range b {
		w[i] = 1 / (1 + b[i])
		if w[i] > maxW {
			maxW = w[i]
		}
	}

	wa := make([][]float64, len(a))
	wb := make([]float64, len(b))

	for i := range a {
		s := math.Sqrt(w[i] / maxW)

		wa[i] = make([]float64, len(a[i]))
		for j := range a[i] {
			wa[i][j] = a[i][j] * s
		}

		wb[i] = b[i] * s
	}

	return nnls.Solve(wa, wb)
}

// ComponentMatrix evaluates every model component at unit amplitude over
// the channels x and returns the m-by-n design matrix (one column per
// component, in ComponentNames order).
func ComponentMatrix(m *model.Spectrum, x []float64) ([][]float64, []string, error) {
	names := m.ComponentNames()
	v := m.Params().Values()

	cols := make([][]float64, len(names))
	col := make([]float64, len(x))

	for j, name := range names {
		if err := m.EvalComponent(name, col, x, v); err != nil {
			return nil, nil, err
		}

		cols[j] = make([]float64, len(x))
		copy(cols[j], col)
	}

	a := make([][]float64, len(x))
	for i := range a {
		a[i] = make([]float64, len(names))
		for j := range names {
			a[i][j] = cols[j][i]
		}
	}

	return a, names, nil
}

// Amplitude is one component's non-negative linear amplitude relative to
// the model's current parameter values.
type Amplitude struct {
	Name  string
	Scale float64
}

// Screen runs a weighted non-negative linear fit of the model components
// against y and reports per-component amplitude scales. Channels are
// weighted by 1/(1+y), damping the influence of the strongest peaks.
// A scale near zero means the component is absent from the spectrum.
func Screen(m *model.Spectrum, x, y []float64) ([]Amplitude, float64, error) {
	if len(x) != len(y) {
		return nil, 0, ErrLengthMismatch
	}

	if len(x) == 0 {
		return nil, 0, ErrEmptyInput
	}

	a, names, err := ComponentMatrix(m, x)
	if err != nil {
		return nil, 0, err
	}

	scales, rnorm, err := NNLSWeighted(a, y)
	if err != nil {
		return nil, 0, err
	}

	out := make([]Amplitude, len(names))
	for j, name := range names {
		out[j] = Amplitude{Name: name, Scale: scales[j]}
	}

	return out, rnorm, nil
}

// ScreenUnweighted is Screen without the 1/(1+y) channel weighting.
func ScreenUnweighted(m *model.Spectrum, x, y []float64) ([]Amplitude, float64, error) {
	if len(x) != len(y) {
		return nil, 0, ErrLengthMismatch
	}

	if len(x) == 0 {
		return nil, 0, ErrEmptyInput
	}

	a, names, err := ComponentMatrix(m, x)
	if err != nil {
		return nil, 0, err
	}

	scales, rnorm, err := NNLS(a, y)
	if err != nil {
		return nil, 0, err
	}

	out := make([]Amplitude, len(names))
	for j, name := range names {
		out[j] = Amplitude{Name: name, Scale: scales[j]}
	}

	return out, rnorm, nil
}
