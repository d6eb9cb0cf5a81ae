package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/san-kum/tanklab/internal/tank"
)

type ReportInfo struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// Report writes a one-page PDF with the summary table of d.
func Report(w io.Writer, d *tank.Design, info ReportInfo, now time.Time) error {
	if info.Title == "" {
		info.Title = "Optimal Tank Design Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(info.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if info.Project != "" {
		pdf.Cell(0, 6, tr("Project: "+info.Project))
		pdf.Ln(6)
	}
	if info.Author != "" {
		pdf.Cell(0, 6, tr("Author: "+info.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	section := ""
	for _, r := range SummaryRows(d) {
		if r.Section != section {
			section = r.Section
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 7, tr(section), "B", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.CellFormat(70, 6, tr(r.Label), "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, tr(formatValue(r.Value)), "", 0, "R", false, 0, "")
		pdf.CellFormat(0, 6, tr(" "+pdfUnit(r.Unit)), "", 1, "L", false, 0, "")
	}

	if info.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(info.Notes), "", "L", false)
	}

	return pdf.Output(w)
}

// The core fonts are cp1252, which has ¹²³ but no other superscripts.
var superscripts = strings.NewReplacer("⁴", "^4")

func pdfUnit(u string) string {
	return superscripts.Replace(u)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%.4f", x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
