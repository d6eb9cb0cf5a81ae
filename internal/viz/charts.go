package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/tanklab/internal/geometry"
	"github.com/san-kum/tanklab/internal/mass"
	"github.com/san-kum/tanklab/internal/series"
	"github.com/san-kum/tanklab/internal/thermal"
)

type ChartSize struct {
	Width, Height int
}

var DefaultChartSize = ChartSize{Width: 60, Height: 12}

func (s ChartSize) options(caption string) []asciigraph.Option {
	return []asciigraph.Option{
		asciigraph.Width(s.Width),
		asciigraph.Height(s.Height),
		asciigraph.Caption(caption),
	}
}

// CostChart plots C(d) over the sweep with the analytic minimum in the caption.
func CostChart(curve series.Series, opt geometry.Optimal, size ChartSize) string {
	if curve.Len() < 2 {
		return ""
	}
	caption := fmt.Sprintf("cost vs %s [%.2f, %.2f] m, min %.2f at %.3f",
		opt.DimensionLabel, curve.X[0], curve.X[curve.Len()-1], opt.MinimumCost, opt.Dimension)
	opts := append(size.options(caption), asciigraph.Precision(0), asciigraph.SeriesColors(asciigraph.Blue))
	return asciigraph.Plot(curve.Y, opts...)
}

// DensityChart plots ρ(z) from the base (left) to the top (right).
func DensityChart(profile series.Series, res mass.Result, size ChartSize) string {
	if profile.Len() < 2 {
		return ""
	}
	caption := fmt.Sprintf("density (kg/m³) over height 0 → %.2f m, z_cm %.2f m", res.Height, res.CenterOfMass)
	opts := append(size.options(caption), asciigraph.Precision(0), asciigraph.SeriesColors(asciigraph.Green))
	return asciigraph.Plot(profile.Y, opts...)
}

// ThermalChart plots the temperature curve against the critical line.
func ThermalChart(res thermal.Result, spec thermal.Spec, size ChartSize) string {
	if len(res.Temps) < 2 {
		return ""
	}
	limit := make([]float64, len(res.Temps))
	for i := range limit {
		limit[i] = spec.Critical
	}
	caption := fmt.Sprintf("temperature (°C) over 0 → %.1f h, critical %.1f °C", spec.Horizon, spec.Critical)
	opts := append(size.options(caption),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.DarkOrange, asciigraph.Red),
	)
	return asciigraph.PlotMany([][]float64{res.Temps, limit}, opts...)
}
