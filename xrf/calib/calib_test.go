package calib

import (
	"math"
	"testing"
)

func TestApplyAndGrid(t *testing.T) {
	e := Energy{Offset: 0.05, Linear: 0.01, Quadratic: 1e-7}

	if math.Abs(e.Apply(0)-0.05) > 1e-12 {
		t.Fatalf("Apply(0) mismatch: %v", e.Apply(0))
	}

	g := e.Grid(100)
	if len(g) != 100 {
		t.Fatalf("grid length: got %d", len(g))
	}

	for i := 1; i < len(g); i++ {
		if g[i] <= g[i-1] {
			t.Fatalf("grid not increasing at %d", i)
		}
	}
}

func TestFitEnergyQuadratic(t *testing.T) {
	truth := Energy{Offset: -0.02, Linear: 0.0102, Quadratic: 3e-8}

	channels := []float64{100, 500, 900, 1300, 1700}
	energies := make([]float64, len(channels))

	for i, ch := range channels {
		energies[i] = truth.Apply(ch)
	}

	got, err := FitEnergy(channels, energies)
	if err != nil {
		t.Fatalf("FitEnergy failed: %v", err)
	}

	if math.Abs(got.Offset-truth.Offset) > 1e-9 ||
		math.Abs(got.Linear-truth.Linear) > 1e-12 ||
		math.Abs(got.Quadratic-truth.Quadratic) > 1e-14 {
		t.Fatalf("calibration mismatch: got %+v, want %+v", got, truth)
	}
}

func TestFitEnergyTwoPointsLinear(t *testing.T) {
	got, err := FitEnergy([]float64{100, 600}, []float64{1.0, 6.0})
	if err != nil {
		t.Fatalf("FitEnergy failed: %v", err)
	}

	if got.Quadratic != 0 {
		t.Fatalf("two-point fit must stay linear: %+v", got)
	}

	if math.Abs(got.Apply(100)-1.0) > 1e-12 || math.Abs(got.Apply(600)-6.0) > 1e-12 {
		t.Fatalf("fit does not reproduce anchors: %+v", got)
	}
}

func TestFitEnergyErrors(t *testing.T) {
	if _, err := FitEnergy([]float64{1}, []float64{1}); err != ErrTooFewPoints {
		t.Fatalf("expected ErrTooFewPoints, got %v", err)
	}

	if _, err := FitEnergy([]float64{1, 2}, []float64{1}); err != ErrShape {
		t.Fatalf("expected ErrShape, got %v", err)
	}

	if _, err := FitEnergy([]float64{5, 5, 5}, []float64{1, 2, 3}); err != ErrDegenerate {
		t.Fatalf("expected ErrDegenerate, got %v", err)
	}
}
