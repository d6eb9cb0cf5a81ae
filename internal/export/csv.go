package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/tanklab/internal/series"
	"github.com/san-kum/tanklab/internal/tank"
)

// Series names accepted by Pick.
const (
	SeriesCost    = "cost"
	SeriesDensity = "density"
	SeriesThermal = "thermal"
)

// Column headers per series.
var headers = map[string][2]string{
	SeriesCost:    {"dimension_m", "cost"},
	SeriesDensity: {"height_m", "density_kg_m3"},
	SeriesThermal: {"time_h", "temperature_c"},
}

// Pick returns the named series of a design and its column headers.
func Pick(d *tank.Design, name string) (series.Series, [2]string, error) {
	h, ok := headers[name]
	if !ok {
		return series.Series{}, h, fmt.Errorf("export: unknown series %q", name)
	}
	var s series.Series
	switch name {
	case SeriesCost:
		s = d.CostCurve
	case SeriesDensity:
		s = d.Density
	case SeriesThermal:
		s = d.Thermal.Curve
	}
	if s.Len() == 0 {
		return s, h, fmt.Errorf("export: series %q is empty: %w", name, d.Err())
	}
	if !s.IsValid() {
		return s, h, fmt.Errorf("export: series %q has non-finite samples", name)
	}
	return s, h, nil
}

func WriteCSV(w io.Writer, s series.Series, header [2]string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header[:]); err != nil {
		return err
	}
	for i := range s.X {
		row := []string{
			strconv.FormatFloat(s.X[i], 'f', 6, 64),
			strconv.FormatFloat(s.Y[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
