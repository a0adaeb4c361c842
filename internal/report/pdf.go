package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/montecarlo"
)

const (
	pdfMargin       = 12.0 // mm
	pdfPageWidth    = 297.0
	pdfContentWidth = pdfPageWidth - 2*pdfMargin
	pdfLineHeight   = 6.0
)

// WritePDF renders the analysis report: run parameters, summary
// statistics, target achievement, sensitivity ranking, and the figure.
func WritePDF(path, runID string, when time.Time, summary montecarlo.Summary, figurePNG []byte) error {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pdfContentWidth, 10, "AeroForge Range Analysis", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(pdfContentWidth, pdfLineHeight,
		fmt.Sprintf("Run %s - %s - %d samples", runID, when.Format("2006-01-02 15:04:05"), summary.Runs),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeStatsTable(pdf, summary)
	pdf.Ln(4)
	writeAchievementTable(pdf, summary)
	pdf.Ln(4)
	writeSensitivityTable(pdf, summary)

	if len(figurePNG) > 0 {
		pdf.AddPage()
		pdf.RegisterImageOptionsReader("figure", gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(figurePNG))
		pdf.ImageOptions("figure", pdfMargin, pdfMargin, pdfContentWidth, 0, false,
			gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	return pdf.OutputFileAndClose(path)
}

func tableRow(pdf *gofpdf.Fpdf, widths []float64, cells []string, header bool) {
	if header {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(200, 200, 200)
	} else {
		pdf.SetFont("Arial", "", 9)
		pdf.SetFillColor(245, 245, 245)
	}
	for i, cell := range cells {
		pdf.CellFormat(widths[i], pdfLineHeight, cell, "1", 0, "L", header, 0, "")
	}
	pdf.Ln(pdfLineHeight)
}

func writeStatsTable(pdf *gofpdf.Fpdf, s montecarlo.Summary) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pdfContentWidth, 8, "Range Statistics", "", 1, "L", false, 0, "")

	widths := []float64{55, 55, 55, 55}
	tableRow(pdf, widths, []string{"Mean (km)", "Std Dev (km)", "Median (km)", "90% Confidence (km)"}, true)
	tableRow(pdf, widths, []string{
		fmt.Sprintf("%.1f", s.MeanKm),
		fmt.Sprintf("%.1f", s.StdKm),
		fmt.Sprintf("%.1f", s.MedianKm),
		fmt.Sprintf("%.1f - %.1f", s.P5Km, s.P95Km),
	}, false)
}

func writeAchievementTable(pdf *gofpdf.Fpdf, s montecarlo.Summary) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pdfContentWidth, 8, "Target Achievement", "", 1, "L", false, 0, "")

	widths := []float64{110, 110}
	tableRow(pdf, widths, []string{"Target", "Share of runs"}, true)
	tableRow(pdf, widths, []string{
		fmt.Sprintf(">= %.0f km", montecarlo.TargetRangeKm),
		fmt.Sprintf("%.1f%%", s.PctTarget),
	}, false)
	tableRow(pdf, widths, []string{
		fmt.Sprintf(">= %.0f km", montecarlo.StretchRangeKm),
		fmt.Sprintf("%.1f%%", s.PctStretch),
	}, false)
}

func writeSensitivityTable(pdf *gofpdf.Fpdf, s montecarlo.Summary) {
	if len(s.Correlations) == 0 {
		return
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pdfContentWidth, 8, "Parameter Sensitivity (correlation with range)", "", 1, "L", false, 0, "")

	widths := []float64{110, 110}
	tableRow(pdf, widths, []string{"Parameter", "Pearson r"}, true)
	for _, c := range s.Correlations {
		tableRow(pdf, widths, []string{FieldLabel(c.Field), fmt.Sprintf("%.3f", c.R)}, false)
	}
}
