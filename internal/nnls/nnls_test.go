package nnls

import (
	"math"
	"testing"
)

func TestSolveExactSystem(t *testing.T) {
	// b is an exact non-negative combination of the columns.
	a := [][]float64{
		{1, 0},
		{0, 1},
		{1, 1},
	}
	b := []float64{2, 3, 5}

	x, rnorm, err := Solve(a, b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if math.Abs(x[0]-2) > 1e-9 || math.Abs(x[1]-3) > 1e-9 {
		t.Fatalf("solution mismatch: got %v", x)
	}

	if rnorm > 1e-9 {
		t.Fatalf("residual should vanish: got %v", rnorm)
	}
}

func TestSolveClipsNegative(t *testing.T) {
	// Unconstrained solution has a negative component; NNLS must clip it.
	a := [][]float64{
		{1, 1},
		{1, 1.0001},
	}
	b := []float64{1, -1}

	x, _, err := Solve(a, b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	for j, v := range x {
		if v < 0 {
			t.Fatalf("x[%d] negative: %v", j, v)
		}
	}
}

func TestSolveZeroRHS(t *testing.T) {
	a := [][]float64{
		{1, 2},
		{3, 4},
	}

	x, rnorm, err := Solve(a, []float64{0, 0})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if x[0] != 0 || x[1] != 0 || rnorm != 0 {
		t.Fatalf("expected zero solution, got %v (rnorm %v)", x, rnorm)
	}
}

func TestSolveShapeMismatch(t *testing.T) {
	if _, _, err := Solve([][]float64{{1}}, []float64{1, 2}); err != ErrShape {
		t.Fatalf("expected ErrShape, got %v", err)
	}
}

func TestSolveOverdeterminedNoisy(t *testing.T) {
	// Two Gaussian-ish columns plus noise; coefficients stay non-negative
	// and the residual is bounded by the noise level.
	n := 64
	a := make([][]float64, n)
	b := make([]float64, n)

	col := func(i int, c float64) float64 {
		d := (float64(i) - c) / 4
		return math.Exp(-0.5 * d * d)
	}

	for i := 0; i < n; i++ {
		a[i] = []float64{col(i, 20), col(i, 40)}
		b[i] = 3*a[i][0] + 7*a[i][1] + 0.01*math.Sin(float64(i))
	}

	x, rnorm, err := Solve(a, b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if math.Abs(x[0]-3) > 0.1 || math.Abs(x[1]-7) > 0.1 {
		t.Fatalf("coefficients mismatch: got %v", x)
	}

	if rnorm > 0.2 {
		t.Fatalf("residual too large: %v", rnorm)
	}
}
