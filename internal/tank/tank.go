// Package tank wires the three calculation panels into one evaluation.
//
// The optimal geometry is solved once per parameter set and handed to the
// mass integrator as a value. The thermal panel is independent and runs
// concurrently. A failure in one panel never hides the results of another.
package tank

import (
	"errors"

	"github.com/san-kum/tanklab/internal/geometry"
	"github.com/san-kum/tanklab/internal/mass"
	"github.com/san-kum/tanklab/internal/series"
	"github.com/san-kum/tanklab/internal/thermal"
)

type Params struct {
	Geometry    geometry.Spec `json:"geometry"`
	BaseDensity float64       `json:"base_density"`
	TopDensity  float64       `json:"top_density"`
	Thermal     thermal.Spec  `json:"thermal"`
}

type Design struct {
	Params    Params           `json:"params"`
	Optimal   geometry.Optimal `json:"optimal"`
	CostCurve series.Series    `json:"-"`
	Mass      mass.Result      `json:"mass"`
	Density   series.Series    `json:"-"`
	Thermal   thermal.Result   `json:"thermal"`

	GeometryErr error `json:"-"`
	MassErr     error `json:"-"`
	ThermalErr  error `json:"-"`
}

// Err joins every panel error.
func (d *Design) Err() error {
	return errors.Join(d.GeometryErr, d.MassErr, d.ThermalErr)
}

func (d *Design) GeometryOK() bool { return d.GeometryErr == nil }
func (d *Design) MassOK() bool     { return d.GeometryErr == nil && d.MassErr == nil }
func (d *Design) ThermalOK() bool  { return d.ThermalErr == nil }

// Evaluate recomputes every panel from p.
func Evaluate(p Params) (*Design, error) {
	d := &Design{Params: p}

	series.Parallel(
		func() error {
			d.evaluateStructure()
			return nil
		},
		func() error {
			d.Thermal, d.ThermalErr = thermal.Simulate(p.Thermal)
			return nil
		},
	)

	return d, d.Err()
}

func (d *Design) evaluateStructure() {
	p := d.Params
	d.Optimal, d.GeometryErr = geometry.Solve(p.Geometry)
	if d.GeometryErr != nil {
		return
	}
	d.CostCurve = geometry.SweepCost(p.Geometry, d.Optimal)

	d.Mass, d.MassErr = mass.Compute(d.Optimal, p.BaseDensity, p.TopDensity)
	if d.MassErr != nil {
		return
	}
	d.Density = mass.SampleDensityProfile(d.Mass.Height, d.Mass.BaseDensity, d.Mass.Gradient)
}
