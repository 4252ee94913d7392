package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-xrf/internal/levmar"
	"github.com/cwbudde/algo-xrf/xrf/model"
)

// Errors returned by Fit.
var (
	ErrLengthMismatch = errors.New("fit: x and y length mismatch")
	ErrEmptyInput     = errors.New("fit: empty input")
	ErrNothingToFit   = errors.New("fit: no varying parameters")
	ErrWeightLength   = errors.New("fit: weights length mismatch")
)

// Option configures a Fit call.
type Option func(*settings)

type settings struct {
	weights       []float64
	counting      bool
	maxIterations int
	ftol, xtol    float64
}

// WithWeights supplies explicit per-channel residual weights.
func WithWeights(w []float64) Option {
	return func(s *settings) { s.weights = w }
}

// WithCountingWeights weights each channel by 1/sqrt(max(y, 1)), the
// Poisson counting-statistics weight.
func WithCountingWeights() Option {
	return func(s *settings) { s.counting = true }
}

// WithMaxIterations caps the minimizer iterations.
func WithMaxIterations(n int) Option {
	return func(s *settings) { s.maxIterations = n }
}

// WithTolerance sets the chi-square and step-size convergence tolerances.
func WithTolerance(ftol, xtol float64) Option {
	return func(s *settings) { s.ftol, s.xtol = ftol, xtol }
}

// Result reports a completed fit.
type Result struct {
	// Values holds every model parameter after the fit, fixed ones
	// included.
	Values map[string]float64

	// Residual is model minus data, unweighted.
	Residual []float64

	ChiSquare        float64
	ReducedChiSquare float64
	Iterations       int
	NFev             int
	Converged        bool
}

// Report returns a one-line fit summary.
func (r *Result) Report() string {
	return fmt.Sprintf("converged=%v iterations=%d nfev=%d chi2=%.6g reduced=%.6g",
		r.Converged, r.Iterations, r.NFev, r.ChiSquare, r.ReducedChiSquare)
}

// Fit adjusts the model's non-fixed parameters to the measured counts y at
// the channel positions x and writes the fitted values back into the model.
func Fit(m *model.Spectrum, x, y []float64, opts ...Option) (*Result, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}

	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	var s settings
	for _, o := range opts {
		o(&s)
	}

	w, err := resolveWeights(s, y)
	if err != nil {
		return nil, err
	}

	params := m.Params()
	varying := params.Varying()

	if len(varying) == 0 {
		return nil, ErrNothingToFit
	}

	full := params.Values()
	p0 := make([]float64, len(varying))
	lower := make([]float64, len(varying))
	upper := make([]float64, len(varying))

	for k, i := range varying {
		p := params.At(i)
		p0[k] = p.Value
		lower[k], upper[k] = p.Limits()
	}

	work := make([]float64, len(x))

	residual := func(dst, p []float64) {
		for k, i := range varying {
			full[i] = p[k]
		}

		if err := m.Eval(work, x, full); err != nil {
			// Eval only fails on length mismatches, which are checked
			// up front.
			panic(fmt.Sprintf("fit: eval: %v", err))
		}

		for j := range dst {
			dst[j] = (work[j] - y[j]) * w[j]
		}
	}

	lm, err := levmar.Minimize(residual, p0, len(x), lower, upper, levmar.Settings{
		MaxIterations: s.maxIterations,
		FTol:          s.ftol,
		XTol:          s.xtol,
	})
	if err != nil && !errors.Is(err, levmar.ErrStalled) {
		return nil, err
	}

	for k, i := range varying {
		full[i] = lm.Params[k]
	}

	if err := params.SetValues(full); err != nil {
		return nil, err
	}

	res := &Result{
		Values:     make(map[string]float64, params.Len()),
		Residual:   make([]float64, len(x)),
		ChiSquare:  lm.ChiSquare,
		Iterations: lm.Iterations,
		NFev:       lm.NFev,
		Converged:  lm.Converged,
	}

	for _, name := range params.Names() {
		p, _ := params.Get(name)
		res.Values[name] = p.Value
	}

	if err := m.Eval(work, x, full); err != nil {
		return nil, err
	}

	for j := range res.Residual {
		res.Residual[j] = work[j] - y[j]
	}

	if dof := len(x) - len(varying); dof > 0 {
		res.ReducedChiSquare = lm.ChiSquare / float64(dof)
	}

	return res, nil
}

func resolveWeights(s settings, y []float64) ([]float64, error) {
	switch {
	case s.weights != nil:
		if len(s.weights) != len(y) {
			return nil, ErrWeightLength
		}

		return s.weights, nil
	case s.counting:
		w := make([]float64, len(y))
		for i, v := range y {
			w[i] = 1 / math.Sqrt(math.Max(v, 1))
		}

		return w, nil
	default:
		w := make([]float64, len(y))
		for i := range w {
			w[i] = 1
		}

		return w, nil
	}
}
