package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/san-kum/tanklab/internal/config"
	"github.com/san-kum/tanklab/internal/export"
	"github.com/san-kum/tanklab/internal/geometry"
	"github.com/san-kum/tanklab/internal/mass"
	"github.com/san-kum/tanklab/internal/series"
	"github.com/san-kum/tanklab/internal/tank"
	"github.com/san-kum/tanklab/internal/thermal"
	"k8s.io/klog/v2"
)

// GeometryInput names the shape as text: {"shape": "prism", "sides": 6}.
type GeometryInput struct {
	Shape    string  `json:"shape"`
	Sides    int     `json:"sides"`
	Volume   float64 `json:"volume"`
	BaseCost float64 `json:"base_cost"`
	SideCost float64 `json:"side_cost"`
}

func (in GeometryInput) Spec() (geometry.Spec, error) {
	shape, err := geometry.ParseShape(in.Shape, in.Sides)
	if err != nil {
		return geometry.Spec{}, err
	}
	return geometry.Spec{Shape: shape, Volume: in.Volume, BaseCost: in.BaseCost, SideCost: in.SideCost}, nil
}

type MassInput struct {
	GeometryInput
	BaseDensity float64 `json:"base_density"`
	TopDensity  float64 `json:"top_density"`
}

type DesignInput struct {
	MassInput
	Thermal thermal.Spec `json:"thermal"`
}

type ReportInput struct {
	DesignInput
	Report export.ReportInfo `json:"report"`
}

type Curve struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

func curve(s series.Series) Curve { return Curve{X: s.X, Y: s.Y} }

type GeometryResponse struct {
	Optimal   geometry.Optimal `json:"optimal"`
	CostCurve Curve            `json:"cost_curve"`
}

type MassResponse struct {
	Optimal geometry.Optimal `json:"optimal"`
	Mass    mass.Result      `json:"mass"`
	Density Curve            `json:"density_profile"`
}

type PanelError struct {
	Geometry string `json:"geometry,omitempty"`
	Mass     string `json:"mass,omitempty"`
	Thermal  string `json:"thermal,omitempty"`
}

type DesignResponse struct {
	Optimal   *geometry.Optimal `json:"optimal,omitempty"`
	CostCurve *Curve            `json:"cost_curve,omitempty"`
	Mass      *mass.Result      `json:"mass,omitempty"`
	Density   *Curve            `json:"density_profile,omitempty"`
	Thermal   *thermal.Result   `json:"thermal,omitempty"`
	Errors    *PanelError       `json:"errors,omitempty"`
}

type Handler struct {
	Now func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) Geometry(w http.ResponseWriter, r *http.Request) {
	var in GeometryInput
	if !decode(w, r, &in) {
		return
	}
	spec, err := in.Spec()
	if err != nil {
		writeCalcError(w, r, err)
		return
	}
	opt, err := geometry.Solve(spec)
	if err != nil {
		writeCalcError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, GeometryResponse{Optimal: opt, CostCurve: curve(geometry.SweepCost(spec, opt))})
}

func (h *Handler) Mass(w http.ResponseWriter, r *http.Request) {
	var in MassInput
	if !decode(w, r, &in) {
		return
	}
	spec, err := in.Spec()
	if err != nil {
		writeCalcError(w, r, err)
		return
	}
	opt, err := geometry.Solve(spec)
	if err != nil {
		writeCalcError(w, r, err)
		return
	}
	res, err := mass.Compute(opt, in.BaseDensity, in.TopDensity)
	if err != nil {
		writeCalcError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MassResponse{
		Optimal: opt,
		Mass:    res,
		Density: curve(mass.SampleDensityProfile(res.Height, res.BaseDensity, res.Gradient)),
	})
}

func (h *Handler) Thermal(w http.ResponseWriter, r *http.Request) {
	var in thermal.Spec
	if !decode(w, r, &in) {
		return
	}
	res, err := thermal.Simulate(in)
	if err != nil {
		writeCalcError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Design evaluates every panel. Panel failures are reported inline with a
// 200 so the other panels stay usable.
func (h *Handler) Design(w http.ResponseWriter, r *http.Request) {
	d, ok := h.evaluate(w, r)
	if !ok {
		return
	}

	resp := DesignResponse{}
	errs := PanelError{}
	if d.GeometryOK() {
		c := curve(d.CostCurve)
		resp.Optimal, resp.CostCurve = &d.Optimal, &c
	} else {
		errs.Geometry = d.GeometryErr.Error()
	}
	if d.MassOK() {
		c := curve(d.Density)
		resp.Mass, resp.Density = &d.Mass, &c
	} else if d.MassErr != nil {
		errs.Mass = d.MassErr.Error()
	}
	if d.ThermalOK() {
		resp.Thermal = &d.Thermal
	} else {
		errs.Thermal = d.ThermalErr.Error()
	}
	if errs != (PanelError{}) {
		resp.Errors = &errs
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ReportPDF(w http.ResponseWriter, r *http.Request) {
	var in ReportInput
	if !decode(w, r, &in) {
		return
	}
	d, ok := h.design(w, r, in.DesignInput)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="tank-report.pdf"`)
	if err := export.Report(w, d, in.Report, h.now()); err != nil {
		klog.FromContext(r.Context()).Error(err, "pdf report failed")
		http.Error(w, "report generation error", http.StatusInternalServerError)
	}
}

func (h *Handler) ReportXLSX(w http.ResponseWriter, r *http.Request) {
	d, ok := h.evaluate(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="tank-design.xlsx"`)
	if err := export.WriteWorkbook(w, d); err != nil {
		klog.FromContext(r.Context()).Error(err, "xlsx export failed")
		http.Error(w, "workbook generation error", http.StatusInternalServerError)
	}
}

type PresetInfo struct {
	Shape  string         `json:"shape"`
	Name   string         `json:"name"`
	Config *config.Config `json:"config"`
}

func (h *Handler) Presets(w http.ResponseWriter, r *http.Request) {
	out := []PresetInfo{}
	for _, shape := range config.Shapes() {
		for _, name := range config.ListPresets(shape) {
			out = append(out, PresetInfo{Shape: shape, Name: name, Config: config.GetPreset(shape, name)})
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) evaluate(w http.ResponseWriter, r *http.Request) (*tank.Design, bool) {
	var in DesignInput
	if !decode(w, r, &in) {
		return nil, false
	}
	return h.design(w, r, in)
}

func (h *Handler) design(w http.ResponseWriter, r *http.Request, in DesignInput) (*tank.Design, bool) {
	// An invalid side count is a geometry panel error, not a bad request.
	shape, err := geometry.ParseShape(in.Shape, in.Sides)
	if errors.Is(err, geometry.ErrUnknownShape) {
		writeCalcError(w, r, err)
		return nil, false
	}
	d, _ := tank.Evaluate(tank.Params{
		Geometry:    geometry.Spec{Shape: shape, Volume: in.Volume, BaseCost: in.BaseCost, SideCost: in.SideCost},
		BaseDensity: in.BaseDensity,
		TopDensity:  in.TopDensity,
		Thermal:     in.Thermal,
	})
	return d, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return false
	}
	return true
}

func writeCalcError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusUnprocessableEntity
	if errors.Is(err, geometry.ErrUnknownShape) {
		status = http.StatusBadRequest
	}
	klog.FromContext(r.Context()).V(2).Info("calculation rejected", "path", r.URL.Path, "err", err)
	writeError(w, status, err.Error())
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		klog.ErrorS(err, "encoding response")
		http.Error(w, `{"error":"response could not be encoded"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}
