package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/tanklab/internal/series"
	"github.com/san-kum/tanklab/internal/tank"
)

type Curve struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Document is the full design as written by WriteJSON. Panels that
// failed are absent and their error text is listed instead.
type Document struct {
	Params  tank.Params       `json:"params"`
	Optimal any               `json:"optimal,omitempty"`
	Mass    any               `json:"mass,omitempty"`
	Thermal any               `json:"thermal,omitempty"`
	Curves  map[string]Curve  `json:"curves"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func NewDocument(d *tank.Design) Document {
	doc := Document{
		Params: d.Params,
		Curves: make(map[string]Curve),
	}
	errs := make(map[string]string)
	add := func(name string, s series.Series) {
		if s.Len() > 0 {
			doc.Curves[name] = Curve{X: s.X, Y: s.Y}
		}
	}

	if d.GeometryOK() {
		doc.Optimal = d.Optimal
		add(SeriesCost, d.CostCurve)
	} else {
		errs["geometry"] = d.GeometryErr.Error()
	}
	if d.MassOK() {
		doc.Mass = d.Mass
		add(SeriesDensity, d.Density)
	} else if d.MassErr != nil {
		errs["mass"] = d.MassErr.Error()
	}
	if d.ThermalOK() {
		doc.Thermal = d.Thermal
		add(SeriesThermal, d.Thermal.Curve)
	} else {
		errs["thermal"] = d.ThermalErr.Error()
	}
	if len(errs) > 0 {
		doc.Errors = errs
	}
	return doc
}

func WriteJSON(w io.Writer, d *tank.Design) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewDocument(d))
}
