package testutil

import (
	"math"
	"testing"
)

func TestChannels(t *testing.T) {
	x := Channels(4)
	want := []float64{0, 1, 2, 3}
	RequireSliceNearlyEqual(t, x, want, 0)
}

func TestAddGaussianPeakArea(t *testing.T) {
	x := Channels(2000)
	for i := range x {
		x[i] *= 0.01
	}

	dst := make([]float64, len(x))
	AddGaussianPeak(dst, x, 500, 10, 0.2)

	sum := 0.0
	for _, v := range dst {
		sum += v * 0.01
	}

	RequireNear(t, sum, 500, 1)
}

func TestSyntheticSpectrumPeakPosition(t *testing.T) {
	x := Channels(1000)
	for i := range x {
		x[i] *= 0.02
	}

	y := SyntheticSpectrum(x, 10, [3]float64{1000, 6.4, 0.1})
	RequireFinite(t, y)

	peak := ArgMax(y)
	if math.Abs(x[peak]-6.4) > 0.05 {
		t.Fatalf("peak at %v keV, want 6.4", x[peak])
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	RequireSliceNearlyEqual(t, a, b, 0)
}

func TestArgMaxEmpty(t *testing.T) {
	if ArgMax(nil) != -1 {
		t.Fatal("ArgMax(nil) != -1")
	}
}
