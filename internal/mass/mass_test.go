package mass

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/tanklab/internal/geometry"
)

func referenceGeometry(t *testing.T, shape geometry.Shape) geometry.Optimal {
	t.Helper()
	opt, err := geometry.Solve(geometry.Spec{Shape: shape, Volume: 1000, BaseCost: 20, SideCost: 10})
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	return opt
}

func TestComputeReference(t *testing.T) {
	opt := referenceGeometry(t, geometry.Cylinder())
	res, err := Compute(opt, 8000, 7500)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	// Linear density: mass = V·(ρ_base+ρ_top)/2.
	if math.Abs(res.TotalMass-7.75e6) > 1e-3 {
		t.Errorf("expected mass 7.75e6, got %f", res.TotalMass)
	}
	// z_cm/h = (ρ_base + 2ρ_top)/(3(ρ_base+ρ_top)).
	want := (8000.0 + 2*7500) / (3 * (8000.0 + 7500))
	if math.Abs(res.CenterFraction-want) > 1e-12 {
		t.Errorf("expected center fraction %f, got %f", want, res.CenterFraction)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings %v", res.Warnings)
	}
}

func TestUniformDensityCenter(t *testing.T) {
	for _, shape := range []geometry.Shape{geometry.Cylinder(), geometry.Prism(3), geometry.Prism(8)} {
		opt := referenceGeometry(t, shape)
		res, err := Compute(opt, 7800, 7800)
		if err != nil {
			t.Fatalf("compute failed: %v", err)
		}
		if res.Gradient != 0 {
			t.Errorf("expected zero gradient, got %f", res.Gradient)
		}
		if math.Abs(res.CenterOfMass-opt.Height/2) > 1e-12*opt.Height {
			t.Errorf("%s: expected center %f, got %f", shape, opt.Height/2, res.CenterOfMass)
		}
	}
}

func TestCenterWithinHeight(t *testing.T) {
	opt := referenceGeometry(t, geometry.Prism(5))
	tests := [][2]float64{{8000, 7500}, {8000, 0}, {1, 1}, {1000, 999}, {5000, 1}}

	for _, tt := range tests {
		res, err := Compute(opt, tt[0], tt[1])
		if err != nil {
			t.Fatalf("%v: compute failed: %v", tt, err)
		}
		if res.CenterOfMass < 0 || res.CenterOfMass > opt.Height {
			t.Errorf("%v: center %f outside [0, %f]", tt, res.CenterOfMass, opt.Height)
		}
		if res.CenterOfMass > opt.Height/2+1e-9 {
			t.Errorf("%v: decreasing density should put center at or below mid-height", tt)
		}
	}
}

func TestInvertedGradientWarns(t *testing.T) {
	opt := referenceGeometry(t, geometry.Cylinder())
	res, err := Compute(opt, 7500, 8000)
	if err != nil {
		t.Fatalf("inverted gradient should not fail: %v", err)
	}
	if len(res.Warnings) != 1 || res.Warnings[0] != WarnInvertedGradient {
		t.Errorf("expected inverted gradient warning, got %v", res.Warnings)
	}
	if res.Gradient >= 0 {
		t.Errorf("expected negative gradient, got %f", res.Gradient)
	}
	if res.CenterOfMass <= opt.Height/2 {
		t.Errorf("density rising with height should lift the center above mid-height")
	}
}

func TestRiemannRoundTrip(t *testing.T) {
	opt := referenceGeometry(t, geometry.Prism(6))
	res, err := Compute(opt, 8000, 6000)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	profile := SampleDensityProfile(res.Height, res.BaseDensity, res.Gradient)
	if profile.Len() != 100 {
		t.Fatalf("expected 100 samples, got %d", profile.Len())
	}
	if profile.X[0] != 0 || profile.X[99] != res.Height {
		t.Errorf("profile should span [0, h]")
	}
	if math.Abs(profile.Y[99]-6000) > 1e-9 {
		t.Errorf("expected top density 6000, got %f", profile.Y[99])
	}

	approx := RiemannMass(profile, res.BaseArea)
	tol := res.TotalMass / float64(profile.Len())
	if math.Abs(approx-res.TotalMass) > tol {
		t.Errorf("riemann mass %f differs from closed form %f by more than %f", approx, res.TotalMass, tol)
	}
}

func TestComputeFromSpec(t *testing.T) {
	spec := geometry.Spec{Shape: geometry.Prism(4), Volume: 64, BaseCost: 1, SideCost: 1}
	res, err := ComputeFromSpec(spec, 100, 100)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if math.Abs(res.TotalMass-6400) > 1e-9 {
		t.Errorf("expected mass 6400, got %f", res.TotalMass)
	}

	spec.Shape = geometry.Prism(2)
	if _, err := ComputeFromSpec(spec, 100, 100); !errors.Is(err, geometry.ErrSideCount) {
		t.Errorf("expected ErrSideCount, got %v", err)
	}
}

func TestComputeRejectsBadInputs(t *testing.T) {
	opt := referenceGeometry(t, geometry.Cylinder())
	if _, err := Compute(opt, 0, 100); !errors.Is(err, ErrNonPositiveDensity) {
		t.Errorf("expected ErrNonPositiveDensity, got %v", err)
	}
	if _, err := Compute(opt, 100, -1); !errors.Is(err, ErrNonPositiveDensity) {
		t.Errorf("expected ErrNonPositiveDensity, got %v", err)
	}
	if _, err := Compute(geometry.Optimal{}, 100, 100); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("expected ErrDegenerateGeometry, got %v", err)
	}
}

func TestComputeRejectsOverflow(t *testing.T) {
	opt := referenceGeometry(t, geometry.Cylinder())
	if _, err := Compute(opt, 1e306, 1e306); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}
