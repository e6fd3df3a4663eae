package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders a report as simple bordered tables on A4 portrait.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates the PDF document and returns its bytes.
func (e *PDFExporter) Render(rep Report) ([]byte, error) {
	if err := rep.validate(); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()
	// Core fonts are cp1252; umlauts and the euro sign need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(rep.Title), "", 1, "L", false, 0, "")
	if rep.Subtitle != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, tr(rep.Subtitle), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	for _, sec := range rep.Sections {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr(sec.Title), "", 1, "L", false, 0, "")

		colWidth := 190.0 / float64(len(sec.Headers))
		pdf.SetFont("Arial", "B", 10)
		for _, h := range sec.Headers {
			pdf.CellFormat(colWidth, 8, tr(h), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, row := range sec.Rows {
			for i := range sec.Headers {
				v := ""
				if i < len(row) {
					v = row[i]
				}
				pdf.CellFormat(colWidth, 7, tr(v), "1", 0, "", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
