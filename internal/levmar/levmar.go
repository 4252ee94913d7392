// Package levmar implements a bounded Levenberg-Marquardt minimizer for
// the spectrum fitting engine. The Jacobian is built by forward
// differences and the damped normal equations are solved densely; with
// the modest parameter counts of spectrum models this is both robust and
// cheap.
package levmar

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-xrf/internal/linalg"
)

// Errors returned by Minimize.
var (
	ErrInvalidProblem = errors.New("levmar: invalid problem")
	ErrStalled        = errors.New("levmar: cannot reduce chi-square")
)

// ResidualFunc fills dst (length m) with the residual vector at p.
type ResidualFunc func(dst, p []float64)

// Settings tunes the minimizer. Zero values select defaults.
type Settings struct {
	MaxIterations int     // default 200
	FTol          float64 // relative chi-square change, default 1e-10
	XTol          float64 // relative step size, default 1e-10
	InitialLambda float64 // default 1e-3
	RelStep       float64 // forward-difference relative step, default 1e-7
}

func (s Settings) normalized() Settings {
	if s.MaxIterations <= 0 {
		s.MaxIterations = 200
	}

	if s.FTol <= 0 {
		s.FTol = 1e-10
	}

	if s.XTol <= 0 {
		s.XTol = 1e-10
	}

	if s.InitialLambda <= 0 {
		s.InitialLambda = 1e-3
	}

	if s.RelStep <= 0 {
		s.RelStep = 1e-7
	}

	return s
}

// Result reports the outcome of a minimization.
type Result struct {
	Params     []float64
	ChiSquare  float64
	Iterations int
	NFev       int
	Converged  bool
}

// Minimize runs the bounded Levenberg-Marquardt iteration.
// m is the residual vector length. lower and upper bound each parameter;
// use -Inf/+Inf entries (or nil slices) for unbounded parameters.
func Minimize(f ResidualFunc, p0 []float64, m int, lower, upper []float64, s Settings) (Result, error) {
	n := len(p0)
	if f == nil || n == 0 || m <= 0 {
		return Result{}, ErrInvalidProblem
	}

	if lower != nil && len(lower) != n {
		return Result{}, ErrInvalidProblem
	}

	if upper != nil && len(upper) != n {
		return Result{}, ErrInvalidProblem
	}

	s = s.normalized()

	p := make([]float64, n)
	copy(p, p0)
	clampAll(p, lower, upper)

	r := make([]float64, m)
	rTrial := make([]float64, m)
	jac := make([][]float64, m)

	for i := range jac {
		jac[i] = make([]float64, n)
	}

	res := Result{Params: p}

	f(r, p)
	res.NFev++
	chi2 := dot(r, r)

	lambda := s.InitialLambda

	for iter := 0; iter < s.MaxIterations; iter++ {
		res.Iterations = iter + 1

		jacobian(f, p, r, jac, lower, upper, s.RelStep, &res.NFev)

		jtj, jtr, err := linalg.NormalEquations(jac, r)
		if err != nil {
			return res, err
		}

		improved := false

		// Retry with growing damping until the step reduces chi-square.
		for attempt := 0; attempt < 30; attempt++ {
			step, serr := dampedStep(jtj, jtr, lambda)
			if serr != nil {
				lambda *= 10
				continue
			}

			// jac holds d r/d p, so the descent step is subtracted.
			trial := make([]float64, n)
			for j := range trial {
				trial[j] = p[j] - step[j]
			}

			clampAll(trial, lower, upper)

			f(rTrial, trial)
			res.NFev++

			trialChi2 := dot(rTrial, rTrial)
			if trialChi2 < chi2 {
				stepNorm := maxRelStep(p, trial)

				copy(p, trial)
				copy(r, rTrial)

				dChi := chi2 - trialChi2
				chi2 = trialChi2
				lambda = math.Max(lambda/10, 1e-12)
				improved = true

				if dChi <= s.FTol*math.Max(chi2, 1e-300) || stepNorm <= s.XTol {
					res.Converged = true
				}

				break
			}

			lambda *= 10
		}

		if !improved {
			// Damping exhausted; treat the current point as converged if
			// the gradient is already tiny, otherwise report the stall.
			if linalg.Norm2(jtr) <= 1e-12*(1+math.Sqrt(chi2)) {
				res.Converged = true
				break
			}

			res.ChiSquare = chi2
			return res, ErrStalled
		}

		if res.Converged {
			break
		}
	}

	res.ChiSquare = chi2

	return res, nil
}

// jacobian fills jac with d r_i / d p_j by forward differences, stepping
// away from active bounds.
func jacobian(f ResidualFunc, p, r []float64, jac [][]float64, lower, upper []float64, relStep float64, nfev *int) {
	m := len(r)
	n := len(p)

	rh := make([]float64, m)
	ph := make([]float64, n)

	for j := 0; j < n; j++ {
		copy(ph, p)

		h := relStep * math.Max(math.Abs(p[j]), 1)

		// Step inward when sitting on the upper bound.
		if upper != nil && !math.IsInf(upper[j], 1) && p[j]+h > upper[j] {
			h = -h
		}

		ph[j] = p[j] + h

		f(rh, ph)
		*nfev++

		inv := 1 / h
		for i := 0; i < m; i++ {
			jac[i][j] = (rh[i] - r[i]) * inv
		}
	}
}

// dampedStep solves (JtJ + lambda*diag(JtJ)) step = Jt r.
func dampedStep(jtj [][]float64, jtr []float64, lambda float64) ([]float64, error) {
	n := len(jtr)

	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		copy(a[i], jtj[i])

		d := jtj[i][i]
		if d == 0 {
			d = 1e-12
		}

		a[i][i] += lambda * d
	}

	return linalg.Solve(a, jtr)
}

func clampAll(p, lower, upper []float64) {
	for j := range p {
		if lower != nil && p[j] < lower[j] {
			p[j] = lower[j]
		}

		if upper != nil && p[j] > upper[j] {
			p[j] = upper[j]
		}
	}
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

func maxRelStep(p, trial []float64) float64 {
	v := 0.0

	for j := range p {
		d := math.Abs(trial[j]-p[j]) / math.Max(math.Abs(p[j]), 1)
		if d > v {
			v = d
		}
	}

	return v
}
