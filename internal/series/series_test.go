package series

import (
	"errors"
	"math"
	"testing"
)

func TestLinspaceEndpoints(t *testing.T) {
	xs := Linspace(0.5, 1.5, DefaultSamples)
	if len(xs) != DefaultSamples {
		t.Fatalf("expected %d samples, got %d", DefaultSamples, len(xs))
	}
	if xs[0] != 0.5 || xs[len(xs)-1] != 1.5 {
		t.Errorf("expected endpoints 0.5 and 1.5, got %f and %f", xs[0], xs[len(xs)-1])
	}
	step := xs[1] - xs[0]
	if math.Abs(step-1.0/99) > 1e-12 {
		t.Errorf("unexpected step %f", step)
	}
}

func TestLinspaceDegenerate(t *testing.T) {
	if len(Linspace(0, 1, 0)) != 0 {
		t.Error("expected empty slice for n=0")
	}
	if xs := Linspace(3, 7, 1); len(xs) != 1 || xs[0] != 3 {
		t.Errorf("expected [3], got %v", xs)
	}
}

func TestMonotonic(t *testing.T) {
	tests := []struct {
		y   []float64
		dir int
		ok  bool
	}{
		{[]float64{1, 2, 3}, 1, true},
		{[]float64{3, 2, 2, 1}, -1, true},
		{[]float64{2, 2, 2}, 0, true},
		{[]float64{1, 3, 2}, 1, false},
	}

	for _, tt := range tests {
		s := Series{X: make([]float64, len(tt.y)), Y: tt.y}
		dir, ok := s.Monotonic()
		if dir != tt.dir || ok != tt.ok {
			t.Errorf("%v: expected (%d, %v), got (%d, %v)", tt.y, tt.dir, tt.ok, dir, ok)
		}
	}
}

func TestTrapezoidLinear(t *testing.T) {
	s := Map(Linspace(0, 2, 11), func(x float64) float64 { return 3 * x })
	if got := s.Trapezoid(); math.Abs(got-6) > 1e-12 {
		t.Errorf("expected 6, got %f", got)
	}
}

func TestArgMinAndBounds(t *testing.T) {
	s := Series{X: []float64{0, 1, 2, 3}, Y: []float64{4, 1, 2, 9}}
	if s.ArgMin() != 1 {
		t.Errorf("expected argmin 1, got %d", s.ArgMin())
	}
	lo, hi := s.Bounds()
	if lo != 1 || hi != 9 {
		t.Errorf("expected bounds (1, 9), got (%f, %f)", lo, hi)
	}
	if (Series{}).ArgMin() != -1 {
		t.Error("expected -1 for empty series")
	}
}

func TestIsValid(t *testing.T) {
	if !(Series{X: []float64{1}, Y: []float64{2}}).IsValid() {
		t.Error("expected valid series")
	}
	if (Series{X: []float64{1}, Y: []float64{math.NaN()}}).IsValid() {
		t.Error("NaN should be invalid")
	}
	if (Series{X: []float64{1, 2}, Y: []float64{1}}).IsValid() {
		t.Error("length mismatch should be invalid")
	}
}

func TestParallel(t *testing.T) {
	boom := errors.New("boom")
	out := make([]int, 3)
	errs := Parallel(
		func() error { out[0] = 1; return nil },
		func() error { out[1] = 2; return boom },
		func() error { out[2] = 3; return nil },
	)
	if out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Errorf("not all functions ran: %v", out)
	}
	if errs[0] != nil || !errors.Is(errs[1], boom) || errs[2] != nil {
		t.Errorf("unexpected errors: %v", errs)
	}
}
