package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/san-kum/tanklab/internal/geometry"
)

func TestWriteJSON(t *testing.T) {
	d := testDesign(t, geometry.Prism(6))

	var buf bytes.Buffer
	if err := WriteJSON(&buf, d); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var got struct {
		Params struct {
			Geometry struct {
				Shape struct {
					Kind  string `json:"kind"`
					Sides int    `json:"sides"`
				} `json:"shape"`
			} `json:"geometry"`
		} `json:"params"`
		Optimal map[string]any   `json:"optimal"`
		Curves  map[string]Curve `json:"curves"`
		Errors  map[string]string
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Params.Geometry.Shape.Kind != "prism" || got.Params.Geometry.Shape.Sides != 6 {
		t.Errorf("unexpected shape: %+v", got.Params.Geometry.Shape)
	}
	if got.Optimal["dimension"].(float64) != d.Optimal.Dimension {
		t.Errorf("dimension mismatch: %v", got.Optimal["dimension"])
	}
	for _, name := range []string{SeriesCost, SeriesDensity, SeriesThermal} {
		if len(got.Curves[name].X) != 100 {
			t.Errorf("%s: expected 100 samples, got %d", name, len(got.Curves[name].X))
		}
	}
	if got.Errors != nil {
		t.Errorf("unexpected errors: %v", got.Errors)
	}
}

func TestNewDocumentReportsPanelErrors(t *testing.T) {
	d := testDesign(t, geometry.Prism(2))
	doc := NewDocument(d)
	if doc.Optimal != nil || doc.Mass != nil {
		t.Error("failed geometry must not carry results")
	}
	if doc.Thermal == nil {
		t.Error("thermal should survive a geometry error")
	}
	if doc.Errors["geometry"] == "" {
		t.Error("expected a geometry error entry")
	}
	if _, ok := doc.Curves[SeriesCost]; ok {
		t.Error("cost curve should be absent")
	}
}
