package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/phpdave11/gofpdf"

	"github.com/rshade/isleprint/internal/engine"
	"github.com/rshade/isleprint/internal/greenops"
	"github.com/rshade/isleprint/internal/travel"
)

const (
	pdfFont       = "Helvetica"
	pdfLineHeight = 7
	pdfRowHeight  = 6
	pdfTitleSize  = 18
	pdfBodySize   = 11
	pdfSmallSize  = 9
)

// pdfDoc wraps gofpdf with a cp1252 translator so core fonts can print
// characters such as "×" and "³".
type pdfDoc struct {
	*gofpdf.Fpdf
	tr func(string) string
}

func newPDF(title string) *pdfDoc {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()
	d := &pdfDoc{Fpdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	d.SetFont(pdfFont, "B", pdfTitleSize)
	d.Cell(0, 10, d.tr(title))
	d.Ln(12)
	d.SetFont(pdfFont, "", pdfBodySize)
	return d
}

func (d *pdfDoc) line(s string) {
	d.Cell(0, pdfLineHeight, d.tr(s))
	d.Ln(pdfLineHeight)
}

func (d *pdfDoc) heading(s string) {
	d.Ln(3)
	d.SetFont(pdfFont, "B", pdfBodySize+1)
	d.line(s)
	d.SetFont(pdfFont, "", pdfBodySize)
}

// table draws a bordered grid; widths are in mm.
func (d *pdfDoc) table(widths []float64, header []string, rows [][]string) {
	d.SetFont(pdfFont, "B", pdfSmallSize)
	for i, h := range header {
		d.CellFormat(widths[i], pdfRowHeight, d.tr(h), "1", 0, "L", false, 0, "")
	}
	d.Ln(-1)
	d.SetFont(pdfFont, "", pdfSmallSize)
	for _, row := range rows {
		for i, cell := range row {
			align := "L"
			if i > 0 {
				align = "R"
			}
			d.CellFormat(widths[i], pdfRowHeight, d.tr(cell), "1", 0, align, false, 0, "")
		}
		d.Ln(-1)
	}
	d.SetFont(pdfFont, "", pdfBodySize)
}

func (d *pdfDoc) write(w io.Writer) error {
	if err := d.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// TravelPDF writes a one-page traveler summary.
func TravelPDF(w io.Writer, s travel.Summary) error {
	d := newPDF("Traveler footprint")

	d.line(fmt.Sprintf("From: %s", s.Trip.Origin))
	d.line(fmt.Sprintf("To: %s", s.Trip.Destination))
	d.line(fmt.Sprintf("Mode: %s (%s)", s.Trip.Mode, s.Trip.FactorName))

	d.heading("Components")
	rows := make([][]string, 0, len(s.Components))
	for _, c := range s.Components {
		rows = append(rows, []string{
			c.Name + ": " + c.Details,
			greenops.FormatFloat(c.KgCO2e, DefaultPrecision),
			greenops.FormatFloat(c.TCO2e, tonnePrecision),
		})
	}
	d.table([]float64{120, 35, 35}, []string{"Component", "kgCO2e", "tCO2e"}, rows)

	d.heading("Total")
	d.line(fmt.Sprintf("%s tCO2e", greenops.FormatFloat(s.TotalT, tonnePrecision)))
	d.line("Trip share: " + greenops.FormatPercent(s.TripSharePct))
	if !s.Equivalency.IsEmpty {
		d.SetFont(pdfFont, "I", pdfSmallSize+1)
		d.MultiCell(0, pdfRowHeight, d.tr(s.Equivalency.DisplayText), "", "", false)
	}
	return d.write(w)
}

// LedgerPDF writes the ledger summary and per-category breakdown.
func LedgerPDF(w io.Writer, rep *engine.Report) error {
	d := newPDF("Island activity footprint")
	s := rep.Summary

	if rep.Source != "" {
		d.line("Ledger: " + rep.Source)
	}
	d.line("Factors: " + rep.FactorsSource)
	d.line("Records: " + greenops.FormatNumber(int64(s.Count)))
	if s.UnmatchedCount > 0 {
		d.line(fmt.Sprintf("Unmatched records: %d (counted as 0)", s.UnmatchedCount))
	}

	d.heading("Summary")
	d.line("Total: " + greenops.FormatFloat(s.TotalT, DefaultPrecision) + " tCO2e")
	d.line("Mean per record: " + greenops.FormatFloat(s.MeanT, DefaultPrecision) + " tCO2e")

	d.heading("By category")
	rows := make([][]string, 0, len(s.ByCategory))
	for _, c := range s.ByCategory {
		rows = append(rows, []string{
			c.Category,
			strconv.Itoa(c.Records),
			greenops.FormatFloat(c.TCO2e, DefaultPrecision),
			greenops.FormatPercent(c.SharePct),
		})
	}
	d.table([]float64{70, 30, 50, 30}, []string{"Category", "Records", "tCO2e", "Share"}, rows)

	if !s.Equivalency.IsEmpty {
		d.Ln(4)
		d.SetFont(pdfFont, "I", pdfSmallSize+1)
		d.MultiCell(0, pdfRowHeight, d.tr(s.Equivalency.DisplayText), "", "", false)
	}
	return d.write(w)
}
