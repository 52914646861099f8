package export

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/salarybook/salarybook-backend-go/internal/domain/report"
)

const pageWidthMM = 190.0

// BuildPDF renders the sections as titled tables, one after another, in the
// order given. Number formatting in the cells is whatever the formatter
// produced; this renderer only lays out the tables.
func BuildPDF(title string, sections []report.Section) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, title)
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, "Generated: "+time.Now().UTC().Format(time.RFC3339))
	pdf.Ln(10)

	for _, section := range sections {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, section.Title)
		pdf.Ln(8)

		colWidth := pageWidthMM / float64(len(section.Header))

		pdf.SetFont("Arial", "B", 9)
		for _, name := range section.Header {
			pdf.CellFormat(colWidth, 6, name, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, row := range section.Rows {
			for col, value := range row {
				align := "R"
				if col == 0 {
					align = "L"
				}
				pdf.CellFormat(colWidth, 6, value, "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
