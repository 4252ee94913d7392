// Package nnls implements the Lawson-Hanson active-set algorithm for
// non-negative least squares: min |a*x - b| subject to x >= 0.
package nnls

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-xrf/internal/linalg"
)

// Errors returned by Solve.
var (
	ErrShape         = errors.New("nnls: dimension mismatch")
	ErrNoConvergence = errors.New("nnls: iteration limit reached")
)

const innerEps = 1e-12

// Solve returns the non-negative x minimizing |a*x - b| and the residual
// norm |a*x - b|. a is m-by-n row-major and is not modified.
func Solve(a [][]float64, b []float64) (x []float64, rnorm float64, err error) {
	m := len(a)
	if m == 0 || len(b) != m {
		return nil, 0, ErrShape
	}

	n := len(a[0])
	for _, row := range a {
		if len(row) != n {
			return nil, 0, ErrShape
		}
	}

	x = make([]float64, n)
	passive := make([]bool, n)

	maxIter := 3 * n
	if maxIter < 30 {
		maxIter = 30
	}

	for iter := 0; iter < maxIter; iter++ {
		// Gradient of the unconstrained objective at x.
		resid := residual(a, x, b)

		w, werr := linalg.MulTVec(a, resid)
		if werr != nil {
			return nil, 0, werr
		}

		// Pick the most promising free variable.
		best, bestW := -1, 0.0
		for j := 0; j < n; j++ {
			if !passive[j] && w[j] > bestW+innerEps {
				best, bestW = j, w[j]
			}
		}

		if best < 0 {
			break // KKT satisfied
		}

		passive[best] = true

		// Inner loop: solve on the passive set, clip variables that went
		// negative back onto the boundary.
		for {
			z, zerr := solvePassive(a, b, passive)
			if zerr != nil {
				// Degenerate column; freeze it at zero and move on.
				passive[best] = false
				break
			}

			if allPositive(z, passive) {
				for j := range x {
					if passive[j] {
						x[j] = z[j]
					} else {
						x[j] = 0
					}
				}
				break
			}

			alpha := math.Inf(1)
			for j := range x {
				if passive[j] && z[j] <= innerEps {
					if t := x[j] / (x[j] - z[j]); t < alpha {
						alpha = t
					}
				}
			}

			if math.IsInf(alpha, 1) {
				alpha = 0
			}

			for j := range x {
				if passive[j] {
					x[j] += alpha * (z[j] - x[j])
					if x[j] <= innerEps {
						x[j] = 0
						passive[j] = false
					}
				}
			}
		}
	}

	return x, linalg.Norm2(residual(a, x, b)), nil
}

func residual(a [][]float64, x, b []float64) []float64 {
	out := make([]float64, len(b))

	for i, row := range a {
		s := b[i]
		for j, v := range row {
			s -= v * x[j]
		}

		out[i] = s
	}

	return out
}

// solvePassive solves the unconstrained least squares restricted to the
// passive columns; frozen columns get zero.
func solvePassive(a [][]float64, b []float64, passive []bool) ([]float64, error) {
	n := len(passive)

	cols := make([]int, 0, n)
	for j, p := range passive {
		if p {
			cols = append(cols, j)
		}
	}

	if len(cols) == 0 {
		return make([]float64, n), nil
	}

	sub := make([][]float64, len(a))
	for i, row := range a {
		sub[i] = make([]float64, len(cols))
		for k, j := range cols {
			sub[i][k] = row[j]
		}
	}

	ata, atb, err := linalg.NormalEquations(sub, b)
	if err != nil {
		return nil, err
	}

	zs, err := linalg.Solve(ata, atb)
	if err != nil {
		return nil, err
	}

	z := make([]float64, n)
	for k, j := range cols {
		z[j] = zs[k]
	}

	return z, nil
}

func allPositive(z []float64, passive []bool) bool {
	for j, p := range passive {
		if p && z[j] <= innerEps {
			return false
		}
	}

	return true
}
