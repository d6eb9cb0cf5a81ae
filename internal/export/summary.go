package export

import (
	"github.com/san-kum/tanklab/internal/tank"
)

// Row is one line of the summary table shared by the workbook and the PDF.
// Value is a float64 or a string.
type Row struct {
	Section string
	Label   string
	Value   any
	Unit    string
}

func SummaryRows(d *tank.Design) []Row {
	p := d.Params
	rows := []Row{
		{"input", "shape", p.Geometry.Shape.String(), ""},
		{"input", "volume", p.Geometry.Volume, "m³"},
		{"input", "base unit cost", p.Geometry.BaseCost, "per m²"},
		{"input", "side unit cost", p.Geometry.SideCost, "per m²"},
	}

	if d.GeometryOK() {
		o := d.Optimal
		rows = append(rows,
			Row{"optimization", "optimal " + o.DimensionLabel, o.Dimension, "m"},
			Row{"optimization", "optimal height", o.Height, "m"},
			Row{"optimization", "minimum cost", o.MinimumCost, ""},
			Row{"optimization", "cap cost", o.BaseCost, ""},
			Row{"optimization", "wall cost", o.LateralCost, ""},
			Row{"optimization", "area constant k", o.AreaConstant, ""},
		)
	} else {
		rows = append(rows, Row{"optimization", "error", d.GeometryErr.Error(), ""})
	}

	switch {
	case d.MassOK():
		m := d.Mass
		rows = append(rows,
			Row{"mass", "base density", m.BaseDensity, "kg/m³"},
			Row{"mass", "top density", m.TopDensity, "kg/m³"},
			Row{"mass", "total mass", m.TotalMass, "kg"},
			Row{"mass", "center of mass", m.CenterOfMass, "m"},
			Row{"mass", "density gradient", m.Gradient, "kg/m⁴"},
		)
		for _, w := range m.Warnings {
			rows = append(rows, Row{"mass", "warning", string(w), ""})
		}
	case d.MassErr != nil:
		rows = append(rows, Row{"mass", "error", d.MassErr.Error(), ""})
	}

	if d.ThermalOK() {
		t := d.Thermal
		rows = append(rows,
			Row{"thermal", "ambient", p.Thermal.Ambient, "°C"},
			Row{"thermal", "initial", p.Thermal.Initial, "°C"},
			Row{"thermal", "critical", p.Thermal.Critical, "°C"},
			Row{"thermal", "cooling constant k", p.Thermal.K, "1/h"},
			Row{"thermal", "status", t.Status, ""},
		)
		if t.TimeToThreshold != nil {
			rows = append(rows, Row{"thermal", "sampled crossing", *t.TimeToThreshold, "h"})
		}
		if t.ExactCrossing != nil {
			rows = append(rows, Row{"thermal", "exact crossing", *t.ExactCrossing, "h"})
		}
	} else {
		rows = append(rows, Row{"thermal", "error", d.ThermalErr.Error(), ""})
	}

	return rows
}
