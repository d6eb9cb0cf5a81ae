package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/tanklab/internal/tank"
	"github.com/san-kum/tanklab/internal/thermal"
)

func errorBlock(title string, err error) string {
	return Title.Render(title) + "\n\n" + StatusDanger.Render("invalid parameters") + "\n" + Subtle.Render(err.Error())
}

// TankSketch draws the optimal tank as a wireframe next to its base outline.
func TankSketch(d *tank.Design, cam *Camera, w, h int) string {
	if !d.GeometryOK() {
		return ""
	}
	opt := d.Optimal

	solid := NewCanvas(w, h)
	Render3D(solid, TankWireframe(opt.Shape, opt.Dimension, opt.Height, 48), cam)

	base := NewCanvas(h*2, h)
	base.DrawOutline(outlineFor(d))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		Subtle.Render(solid.String()),
		"  ",
		Subtle.Render(base.String()),
	)
}

func OptimizationPanel(d *tank.Design, size ChartSize) string {
	if !d.GeometryOK() {
		return errorBlock("Optimization", d.GeometryErr)
	}
	opt := d.Optimal
	spec := d.Params.Geometry

	var b strings.Builder
	b.WriteString(Title.Render("Optimization · "+spec.Shape.String()) + "\n\n")
	b.WriteString(Metric("optimal "+opt.DimensionLabel, fmt.Sprintf("%.4f m", opt.Dimension)) + "\n")
	b.WriteString(Metric("optimal height (h)", fmt.Sprintf("%.4f m", opt.Height)) + "\n")
	b.WriteString(Metric("minimum cost", FormatMoney(opt.MinimumCost)) + "\n")
	b.WriteString(Metric("  caps", FormatMoney(opt.BaseCost)) + "\n")
	b.WriteString(Metric("  wall", FormatMoney(opt.LateralCost)) + "\n")
	b.WriteString(Metric("area constant k", fmt.Sprintf("%.6f", opt.AreaConstant)) + "\n")
	b.WriteString(Metric("aspect h/d", fmt.Sprintf("%.3f", opt.AspectRatio)) + "\n\n")
	b.WriteString(CostChart(d.CostCurve, opt, size))
	return b.String()
}

func MassPanel(d *tank.Design, size ChartSize) string {
	if !d.GeometryOK() {
		return errorBlock("Mass & Volume", d.GeometryErr)
	}
	if d.MassErr != nil {
		return errorBlock("Mass & Volume", d.MassErr)
	}
	m := d.Mass

	var b strings.Builder
	b.WriteString(Title.Render("Mass & Volume") + "\n\n")
	b.WriteString(Metric("total mass", fmt.Sprintf("%s kg", FormatThousands(m.TotalMass, 2))) + "\n")
	b.WriteString(Metric("center of mass z", fmt.Sprintf("%.3f m", m.CenterOfMass)) + "\n")
	b.WriteString(Metric("gradient B", fmt.Sprintf("%.4f kg/m⁴", m.Gradient)) + "\n")
	b.WriteString(Metric("balance point", fmt.Sprintf("%.1f%% of height", m.CenterFraction*100)) + "\n")
	b.WriteString(MetricLabel.Render("") + ProgressBar(m.CenterFraction, 30) + "\n")
	for _, w := range m.Warnings {
		b.WriteString(StatusWarning.Render("⚠ "+string(w)) + "\n")
	}
	b.WriteString("\n" + DensityChart(d.Density, m, size))
	return b.String()
}

func ThermalPanel(d *tank.Design, size ChartSize) string {
	if !d.ThermalOK() {
		return errorBlock("Thermal", d.ThermalErr)
	}
	res := d.Thermal
	spec := d.Params.Thermal

	var b strings.Builder
	b.WriteString(Title.Render("Thermal · Newton cooling") + "\n\n")
	if res.Critical {
		b.WriteString(StatusDanger.Render(thermal.StatusCritical) + "\n")
	} else {
		b.WriteString(StatusSafe.Render(thermal.StatusSafe) + "\n")
	}
	b.WriteString(Metric("sampled crossing", formatHours(res.TimeToThreshold)) + "\n")
	b.WriteString(Metric("exact crossing", formatHours(res.ExactCrossing)) + "\n")
	b.WriteString(Metric("k", fmt.Sprintf("%g 1/h", spec.K)) + "\n")
	b.WriteString(Metric("T ambient", fmt.Sprintf("%.1f °C", spec.Ambient)) + "\n\n")
	b.WriteString(ThermalChart(res, spec, size))
	return b.String()
}

func formatHours(t *float64) string {
	if t == nil {
		return "none in horizon"
	}
	return fmt.Sprintf("%.2f h", *t)
}
