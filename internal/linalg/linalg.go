// Package linalg provides the small dense linear algebra kernels shared by
// the fitting solvers. Matrices are row-major [][]float64.
package linalg

import (
	"errors"
	"math"
)

// ErrSingular is returned when a system has no unique solution.
var ErrSingular = errors.New("linalg: singular system")

// ErrShape is returned on dimension mismatches.
var ErrShape = errors.New("linalg: dimension mismatch")

// Solve solves a*x = b by Gaussian elimination with partial pivoting.
// a and b are not modified.
func Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	if n == 0 || len(b) != n {
		return nil, ErrShape
	}

	// Augmented working copy.
	m := make([][]float64, n)
	for i := range m {
		if len(a[i]) != n {
			return nil, ErrShape
		}

		m[i] = make([]float64, n+1)
		copy(m[i], a[i])
		m[i][n] = b[i]
	}

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}

		if math.Abs(m[pivot][col]) < 1e-300 {
			return nil, ErrSingular
		}

		m[col], m[pivot] = m[pivot], m[col]

		inv := 1 / m[col][col]
		for r := col + 1; r < n; r++ {
			f := m[r][col] * inv
			if f == 0 {
				continue
			}

			for c := col; c <= n; c++ {
				m[r][c] -= f * m[col][c]
			}
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		s := m[i][n]
		for c := i + 1; c < n; c++ {
			s -= m[i][c] * x[c]
		}

		x[i] = s / m[i][i]
	}

	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrSingular
		}
	}

	return x, nil
}

// MulVec computes a*x for an m-by-n matrix a.
func MulVec(a [][]float64, x []float64) ([]float64, error) {
	out := make([]float64, len(a))

	for i, row := range a {
		if len(row) != len(x) {
			return nil, ErrShape
		}

		s := 0.0
		for j, v := range row {
			s += v * x[j]
		}

		out[i] = s
	}

	return out, nil
}

// MulTVec computes transpose(a)*x for an m-by-n matrix a and length-m x.
func MulTVec(a [][]float64, x []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrShape
	}

	if len(a) != len(x) {
		return nil, ErrShape
	}

	n := len(a[0])
	out := make([]float64, n)

	for i, row := range a {
		if len(row) != n {
			return nil, ErrShape
		}

		for j, v := range row {
			out[j] += v * x[i]
		}
	}

	return out, nil
}

// NormalEquations builds transpose(a)*a and transpose(a)*b for the least
// squares system min |a*x - b|.
func NormalEquations(a [][]float64, b []float64) ([][]float64, []float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return nil, nil, ErrShape
	}

	n := len(a[0])

	ata := make([][]float64, n)
	for i := range ata {
		ata[i] = make([]float64, n)
	}

	atb := make([]float64, n)

	for r, row := range a {
		if len(row) != n {
			return nil, nil, ErrShape
		}

		for i := 0; i < n; i++ {
			if row[i] == 0 {
				continue
			}

			atb[i] += row[i] * b[r]
			for j := i; j < n; j++ {
				ata[i][j] += row[i] * row[j]
			}
		}
	}

	// Mirror the upper triangle.
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			ata[i][j] = ata[j][i]
		}
	}

	return ata, atb, nil
}

// Norm2 returns the Euclidean norm of v.
func Norm2(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x * x
	}

	return math.Sqrt(s)
}
