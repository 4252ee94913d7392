package linalg

import (
	"math"
	"testing"
)

func TestSolveKnownSystem(t *testing.T) {
	a := [][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	}
	b := []float64{8, -11, -3}

	x, err := Solve(a, b)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	want := []float64{2, 3, -1}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-10 {
			t.Fatalf("x[%d]: got %v, want %v", i, x[i], want[i])
		}
	}
}

func TestSolveSingular(t *testing.T) {
	a := [][]float64{
		{1, 2},
		{2, 4},
	}

	if _, err := Solve(a, []float64{1, 2}); err != ErrSingular {
		t.Fatalf("expected ErrSingular, got %v", err)
	}
}

func TestSolveShapeMismatch(t *testing.T) {
	if _, err := Solve([][]float64{{1, 2}}, []float64{1}); err != ErrShape {
		t.Fatalf("expected ErrShape, got %v", err)
	}
}

func TestNormalEquationsLeastSquares(t *testing.T) {
	// Overdetermined line fit: y = 1 + 2x with exact data.
	a := [][]float64{
		{1, 0},
		{1, 1},
		{1, 2},
		{1, 3},
	}
	b := []float64{1, 3, 5, 7}

	ata, atb, err := NormalEquations(a, b)
	if err != nil {
		t.Fatalf("NormalEquations failed: %v", err)
	}

	x, err := Solve(ata, atb)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if math.Abs(x[0]-1) > 1e-10 || math.Abs(x[1]-2) > 1e-10 {
		t.Fatalf("fit mismatch: got %v", x)
	}
}

func TestMulVecAndTranspose(t *testing.T) {
	a := [][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	}

	y, err := MulVec(a, []float64{1, 1})
	if err != nil {
		t.Fatalf("MulVec failed: %v", err)
	}

	wantY := []float64{3, 7, 11}
	for i := range wantY {
		if y[i] != wantY[i] {
			t.Fatalf("MulVec[%d]: got %v, want %v", i, y[i], wantY[i])
		}
	}

	z, err := MulTVec(a, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("MulTVec failed: %v", err)
	}

	wantZ := []float64{9, 12}
	for i := range wantZ {
		if z[i] != wantZ[i] {
			t.Fatalf("MulTVec[%d]: got %v, want %v", i, z[i], wantZ[i])
		}
	}
}
