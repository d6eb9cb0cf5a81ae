package export

import (
	"fmt"
	"io"

	"github.com/san-kum/tanklab/internal/series"
	"github.com/san-kum/tanklab/internal/tank"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary = "Summary"
	sheetCost    = "CostCurve"
	sheetDensity = "Density"
	sheetThermal = "Thermal"
)

// Workbook builds an XLSX file with a summary sheet and one sheet per
// sampled series. Panels that failed are listed on the summary with their
// error instead of a sheet.
func Workbook(d *tank.Design) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		f.Close()
		return nil, err
	}

	if err := writeSummary(f, d); err != nil {
		f.Close()
		return nil, err
	}

	for _, sh := range []struct {
		name, key string
		ok        bool
	}{
		{sheetCost, SeriesCost, d.GeometryOK()},
		{sheetDensity, SeriesDensity, d.MassOK()},
		{sheetThermal, SeriesThermal, d.ThermalOK()},
	} {
		if !sh.ok {
			continue
		}
		s, header, err := Pick(d, sh.key)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := writeSeriesSheet(f, sh.name, s, header); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// WriteWorkbook streams the workbook for d to w.
func WriteWorkbook(w io.Writer, d *tank.Design) error {
	f, err := Workbook(d)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func writeSummary(f *excelize.File, d *tank.Design) error {
	rows := SummaryRows(d)
	if err := f.SetSheetRow(sheetSummary, "A1", &[]any{"quantity", "value", "unit"}); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetSummary, cell, &[]any{r.Label, r.Value, r.Unit}); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetSummary, "A", "A", 28)
}

func writeSeriesSheet(f *excelize.File, name string, s series.Series, header [2]string) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	if err := f.SetSheetRow(name, "A1", &[]any{header[0], header[1]}); err != nil {
		return err
	}
	for i := range s.X {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &[]any{s.X[i], s.Y[i]}); err != nil {
			return fmt.Errorf("export: sheet %s row %d: %w", name, i+2, err)
		}
	}
	return nil
}
