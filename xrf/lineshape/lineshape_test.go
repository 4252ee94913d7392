package lineshape

import (
	"math"
	"testing"
)

func TestGaussianAreaNormalized(t *testing.T) {
	const (
		area   = 1234.5
		center = 6.4
		sigma  = 0.08
		dx     = 0.001
	)

	sum := 0.0
	for x := center - 10*sigma; x <= center+10*sigma; x += dx {
		sum += GaussianAt(x, area, center, sigma) * dx
	}

	if math.Abs(sum-area)/area > 1e-4 {
		t.Fatalf("integrated area mismatch: got %f, want %f", sum, area)
	}
}

func TestGaussianPeakValue(t *testing.T) {
	got := GaussianAt(2.0, 1.0, 2.0, 0.5)
	want := 1 / (math.Sqrt(2*math.Pi) * 0.5)

	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("peak value mismatch: got %v, want %v", got, want)
	}
}

func TestGaussianLengthMismatch(t *testing.T) {
	err := Gaussian(make([]float64, 3), make([]float64, 4), 1, 0, 1)
	if err != ErrLengthMismatch {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestStepShape(t *testing.T) {
	const (
		center = 10.0
		sigma  = 0.1
	)

	below := StepAt(center-1, 1, center, sigma, center)
	above := StepAt(center+1, 1, center, sigma, center)
	at := StepAt(center, 1, center, sigma, center)

	if below <= above {
		t.Fatalf("step should be higher below the center: below %v, above %v", below, above)
	}

	// erfc(0) == 1, so the mid-point is area/(2*peakEnergy).
	if math.Abs(at-1/(2*center)) > 1e-12 {
		t.Fatalf("mid-step value mismatch: got %v", at)
	}

	// Far below the center the plateau approaches area/peakEnergy.
	if math.Abs(below-1/center) > 1e-9 {
		t.Fatalf("plateau value mismatch: got %v", below)
	}
}

func TestStepSliceMatchesAt(t *testing.T) {
	x := []float64{8.5, 9.5, 10.0, 10.5, 11.5}
	dst := make([]float64, len(x))

	if err := Step(dst, x, 2.5, 10.0, 0.1, 10.0); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	for i, xv := range x {
		want := StepAt(xv, 2.5, 10.0, 0.1, 10.0)
		if math.Abs(dst[i]-want) > 1e-15 {
			t.Fatalf("Step[%d] = %v, want %v", i, dst[i], want)
		}
	}

	if err := Step(make([]float64, 2), x, 1, 10, 0.1, 10); err != ErrLengthMismatch {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}

	if err := Step(dst, x, 1, 10, 0, 10); err != ErrInvalidSigma {
		t.Fatalf("expected ErrInvalidSigma, got %v", err)
	}
}

func TestTailSliceMatchesAt(t *testing.T) {
	x := []float64{7.0, 7.8, 8.0, 8.2, 9.0}
	dst := make([]float64, len(x))

	if err := Tail(dst, x, 3.0, 8.0, 0.09, 2.5); err != nil {
		t.Fatalf("Tail failed: %v", err)
	}

	for i, xv := range x {
		want := TailAt(xv, 3.0, 8.0, 0.09, 2.5)
		if math.Abs(dst[i]-want) > 1e-15 {
			t.Fatalf("Tail[%d] = %v, want %v", i, dst[i], want)
		}
	}

	if err := Tail(make([]float64, 2), x, 1, 8, 0.09, 2.5); err != ErrLengthMismatch {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}

	if err := Tail(dst, x, 1, 8, -1, 2.5); err != ErrInvalidSigma {
		t.Fatalf("expected ErrInvalidSigma, got %v", err)
	}
}

func TestTailFiniteEverywhere(t *testing.T) {
	const (
		center = 8.0
		sigma  = 0.09
		gamma  = 2.5
	)

	for x := 0.0; x < 40; x += 0.01 {
		v := TailAt(x, 1, center, sigma, gamma)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("tail non-finite at x=%v: %v", x, v)
		}

		if v < 0 {
			t.Fatalf("tail negative at x=%v: %v", x, v)
		}
	}

	// Tail mass concentrates below the center.
	if TailAt(center-2*sigma, 1, center, sigma, gamma) <= TailAt(center+4*sigma, 1, center, sigma, gamma) {
		t.Fatal("tail should decay above the center")
	}
}

func TestResponseSigma(t *testing.T) {
	r := Response{FWHMOffset: 0.12, FanoPrime: 1.15e-4}

	s0 := r.Sigma(0)
	want := 0.12 / fwhmToSigma

	if math.Abs(s0-want) > 1e-12 {
		t.Fatalf("zero-energy sigma mismatch: got %v, want %v", s0, want)
	}

	if r.Sigma(20) <= r.Sigma(5) {
		t.Fatal("sigma must grow with energy")
	}
}

func TestComptonEnergyShift(t *testing.T) {
	c := Compton{IncidentEnergy: 11.0, Angle: 90}

	e := c.Energy()
	want := 11.0 / (1 + 11.0/511.0)

	if math.Abs(e-want) > 1e-12 {
		t.Fatalf("compton energy mismatch: got %v, want %v", e, want)
	}

	if e >= c.IncidentEnergy {
		t.Fatal("compton peak must sit below the incident energy")
	}
}

func TestComptonEvalMatchesAt(t *testing.T) {
	c := Compton{
		Amplitude:      5e4,
		IncidentEnergy: 11.0,
		Angle:          90,
		FWHMCorr:       1.5,
		FStep:          0.01,
		FTail:          0.1,
		Gamma:          2.0,
		HiFTail:        0.01,
		HiGamma:        1.0,
		Response:       Response{FWHMOffset: 0.12, FanoPrime: 1.15e-4},
	}

	x := make([]float64, 200)
	for i := range x {
		x[i] = 5 + float64(i)*0.05
	}

	dst := make([]float64, len(x))
	if err := c.Eval(dst, x); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}

	for i, xv := range x {
		if math.Abs(dst[i]-c.At(xv)) > math.Abs(c.At(xv))*1e-12+1e-12 {
			t.Fatalf("Eval/At mismatch at %v: %v vs %v", xv, dst[i], c.At(xv))
		}
	}
}

func TestElasticPeakPosition(t *testing.T) {
	e := Elastic{
		Amplitude: 1e4,
		Energy:    11.0,
		Response:  Response{FWHMOffset: 0.12, FanoPrime: 1.15e-4},
	}

	x := make([]float64, 400)
	for i := range x {
		x[i] = 10 + float64(i)*0.005
	}

	dst := make([]float64, len(x))
	if err := e.Eval(dst, x); err != nil {
		t.Fatalf("Eval failed: %v", err)
	}

	maxIdx := 0
	for i, v := range dst {
		if v > dst[maxIdx] {
			maxIdx = i
		}
	}

	if math.Abs(x[maxIdx]-11.0) > 0.01 {
		t.Fatalf("elastic peak at %v, want 11.0", x[maxIdx])
	}
}
