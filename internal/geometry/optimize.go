package geometry

import (
	"math"

	"github.com/san-kum/tanklab/internal/series"
)

// Spec is the input of the optimization.
type Spec struct {
	Shape    Shape   `json:"shape" yaml:"shape"`
	Volume   float64 `json:"volume" yaml:"volume"`
	BaseCost float64 `json:"base_cost" yaml:"base_cost"`
	SideCost float64 `json:"side_cost" yaml:"side_cost"`
}

func (s Spec) Validate() error {
	if err := s.Shape.Validate(); err != nil {
		return err
	}
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"volume", s.Volume},
		{"base_cost", s.BaseCost},
		{"side_cost", s.SideCost},
	} {
		if !positiveFinite(p.v) {
			return &ParamError{Param: p.name, Value: p.v, Wrapped: ErrNonPositive}
		}
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Optimal is the solved geometry. It is a value; callers pass it on
// instead of solving again.
type Optimal struct {
	Shape          Shape   `json:"shape"`
	Dimension      float64 `json:"dimension"`
	Height         float64 `json:"height"`
	MinimumCost    float64 `json:"minimum_cost"`
	AreaConstant   float64 `json:"area_constant"`
	DimensionLabel string  `json:"dimension_label"`
	BaseArea       float64 `json:"base_area"`
	LateralArea    float64 `json:"lateral_area"`
	BaseCost       float64 `json:"base_cost"`
	LateralCost    float64 `json:"lateral_cost"`
	AspectRatio    float64 `json:"aspect_ratio"`
}

// Solve evaluates the closed-form Lagrange solution for spec.
func Solve(spec Spec) (Optimal, error) {
	if err := spec.Validate(); err != nil {
		return Optimal{}, err
	}

	k := spec.Shape.AreaConstant()
	p := spec.Shape.PerimeterFactor()

	d := math.Cbrt(p * spec.Volume * spec.SideCost / (4 * k * k * spec.BaseCost))
	baseArea := k * d * d
	h := spec.Volume / baseArea
	lateralArea := p * d * h

	baseCost := 2 * baseArea * spec.BaseCost
	lateralCost := lateralArea * spec.SideCost

	for _, p := range []struct {
		name string
		v    float64
	}{
		{"dimension", d},
		{"height", h},
		{"minimum_cost", baseCost + lateralCost},
	} {
		if !positiveFinite(p.v) {
			return Optimal{}, &ParamError{Param: p.name, Value: p.v, Wrapped: ErrOutOfRange}
		}
	}

	return Optimal{
		Shape:          spec.Shape,
		Dimension:      d,
		Height:         h,
		MinimumCost:    baseCost + lateralCost,
		AreaConstant:   k,
		DimensionLabel: spec.Shape.DimensionLabel(),
		BaseArea:       baseArea,
		LateralArea:    lateralArea,
		BaseCost:       baseCost,
		LateralCost:    lateralCost,
		AspectRatio:    h / d,
	}, nil
}

// Cost is the total material cost of a tank with characteristic dimension
// d whose height is fixed by the volume constraint.
func Cost(spec Spec, d float64) float64 {
	h := spec.Volume / (spec.Shape.AreaConstant() * d * d)
	return CostAt(spec, d, h)
}

// CostAt is the cost of an arbitrary (d, h) pair, ignoring the volume.
func CostAt(spec Spec, d, h float64) float64 {
	k := spec.Shape.AreaConstant()
	p := spec.Shape.PerimeterFactor()
	return 2*k*d*d*spec.BaseCost + p*d*h*spec.SideCost
}

// SweepCost samples C(d) for d in [0.5·opt, 1.5·opt].
func SweepCost(spec Spec, opt Optimal) series.Series {
	xs := series.Linspace(0.5*opt.Dimension, 1.5*opt.Dimension, series.DefaultSamples)
	return series.Map(xs, func(d float64) float64 {
		return Cost(spec, d)
	})
}
