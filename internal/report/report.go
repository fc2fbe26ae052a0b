// Package report renders a curved-beam analysis as a one-page PDF
// calculation sheet.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/alexiusacademia/gocurve/internal/curved"
	"github.com/alexiusacademia/gocurve/internal/section"
	"github.com/phpdave11/gofpdf"
)

// Meta is the optional header information printed on the sheet.
type Meta struct {
	Project string
	Author  string
	Notes   string
}

// WriteCurved renders the analysis to w as a PDF.
func WriteCurved(w io.Writer, meta Meta, in curved.Input, res *curved.Result) error {
	pdf := build(meta, in, res)
	return pdf.Output(w)
}

// SaveCurved renders the analysis to a PDF file.
func SaveCurved(filename string, meta Meta, in curved.Input, res *curved.Result) error {
	pdf := build(meta, in, res)
	return pdf.OutputFileAndClose(filename)
}

func build(meta Meta, in curved.Input, res *curved.Result) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Curved Beam Stress Analysis")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if meta.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
		pdf.Ln(6)
	}
	if meta.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	heading(pdf, "Input")
	row(pdf, "Section shape", string(in.Shape))
	for _, field := range section.Fields(in.Shape) {
		row(pdf, field, fmt.Sprintf("%g", in.Params[field]))
	}
	if !shapeHasRadii(in.Shape) {
		row(pdf, "Inner radius ri", fmt.Sprintf("%g", in.RInner))
	}
	row(pdf, "Applied moment M", fmt.Sprintf("%g", res.Moment))
	pdf.Ln(4)

	heading(pdf, "Section Properties")
	row(pdf, "Area A", fmt.Sprintf("%.6g", res.A))
	row(pdf, "Centroid offset", fmt.Sprintf("%.6g", res.Ybar))
	row(pdf, "Neutral-axis offset", fmt.Sprintf("%.6g", res.Yn))
	row(pdf, "Eccentricity e", fmt.Sprintf("%.6g", res.E))
	row(pdf, "Neutral-axis radius Rn", fmt.Sprintf("%.6g", res.Rn))
	row(pdf, "Centroid radius Rc", fmt.Sprintf("%.6g", res.Rc))
	row(pdf, "Inner / outer radius", fmt.Sprintf("%.6g / %.6g", res.RInner, res.ROuter))
	pdf.Ln(4)

	heading(pdf, "Bending Stresses")
	row(pdf, "Inner fiber", fmt.Sprintf("%.6g", res.SigmaInner))
	row(pdf, "Outer fiber", fmt.Sprintf("%.6g", res.SigmaOuter))
	row(pdf, "Max tension", fmt.Sprintf("%.6g at r = %.6g (%s)",
		res.MaxTension.Value, res.MaxTension.AtR, res.MaxTension.Side))
	row(pdf, "Max compression", fmt.Sprintf("%.6g at r = %.6g (%s)",
		res.MaxCompression.Value, res.MaxCompression.AtR, res.MaxCompression.Side))
	pdf.Ln(4)

	if meta.Notes != "" {
		heading(pdf, "Notes")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, meta.Notes, "", "L", false)
	}

	return pdf
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, text)
	pdf.Ln(8)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(70, 6, label)
	pdf.Cell(0, 6, value)
	pdf.Ln(6)
}

func shapeHasRadii(shape section.Shape) bool {
	return shape == section.TSection
}
