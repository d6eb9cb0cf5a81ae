// Package mass integrates a linearly varying density over a tank's height.
//
// The density is ρ(z) = ρ_base − B·z with B = (ρ_base − ρ_top)/h. Both the
// mass and the first moment have exact polynomial antiderivatives, so no
// quadrature is performed.
package mass

import (
	"math"

	"github.com/san-kum/tanklab/internal/geometry"
	"github.com/san-kum/tanklab/internal/series"
)

type Result struct {
	TotalMass      float64   `json:"total_mass"`
	CenterOfMass   float64   `json:"center_of_mass"`
	CenterFraction float64   `json:"center_fraction"`
	Gradient       float64   `json:"gradient"`
	Height         float64   `json:"height"`
	BaseArea       float64   `json:"base_area"`
	BaseDensity    float64   `json:"base_density"`
	TopDensity     float64   `json:"top_density"`
	Warnings       []Warning `json:"warnings,omitempty"`
}

// Gradient returns B for the given densities and height.
func Gradient(rhoBase, rhoTop, height float64) float64 {
	return (rhoBase - rhoTop) / height
}

// Compute evaluates mass and center of mass for an already solved geometry.
func Compute(opt geometry.Optimal, rhoBase, rhoTop float64) (Result, error) {
	if !(rhoBase > 0) || !(rhoTop >= 0) || math.IsInf(rhoBase, 0) || math.IsInf(rhoTop, 0) {
		return Result{}, ErrNonPositiveDensity
	}
	h := opt.Height
	area := opt.BaseArea
	if area == 0 {
		area = opt.AreaConstant * opt.Dimension * opt.Dimension
	}
	if !(h > 0) || !(area > 0) {
		return Result{}, ErrDegenerateGeometry
	}

	b := Gradient(rhoBase, rhoTop, h)
	total := area * (rhoBase*h - b*h*h/2)
	moment := area * (rhoBase*h*h/2 - b*h*h*h/3)
	zcm := moment / total
	if math.IsInf(total, 0) || math.IsNaN(zcm) || math.IsInf(zcm, 0) {
		return Result{}, ErrOutOfRange
	}

	res := Result{
		TotalMass:      total,
		CenterOfMass:   zcm,
		CenterFraction: zcm / h,
		Gradient:       b,
		Height:         h,
		BaseArea:       area,
		BaseDensity:    rhoBase,
		TopDensity:     rhoTop,
	}
	if rhoTop > rhoBase {
		res.Warnings = append(res.Warnings, WarnInvertedGradient)
	}
	return res, nil
}

// ComputeFromSpec solves the geometry for spec and then calls Compute.
func ComputeFromSpec(spec geometry.Spec, rhoBase, rhoTop float64) (Result, error) {
	opt, err := geometry.Solve(spec)
	if err != nil {
		return Result{}, err
	}
	return Compute(opt, rhoBase, rhoTop)
}

// SampleDensityProfile samples ρ(z) over [0, height]. X holds heights and
// Y densities.
func SampleDensityProfile(height, rhoBase, gradient float64) series.Series {
	zs := series.Linspace(0, height, series.DefaultSamples)
	return series.Map(zs, func(z float64) float64 {
		return rhoBase - gradient*z
	})
}

// RiemannMass integrates baseArea·ρ(z) over a sampled profile.
func RiemannMass(profile series.Series, baseArea float64) float64 {
	return baseArea * profile.Trapezoid()
}
