package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/salarybook/salarybook-backend-go/internal/domain/report"
)

// BuildXLSX renders one worksheet per section, sections in the order given.
func BuildXLSX(sections []report.Section) ([]byte, error) {
	f := excelize.NewFile()

	for i, section := range sections {
		sheet := section.Title
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
			}
		}

		for col, name := range section.Header {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return nil, err
			}
			_ = f.SetCellValue(sheet, cell, name)
		}
		for rowIdx, row := range section.Rows {
			for col, value := range row {
				cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				if err != nil {
					return nil, err
				}
				_ = f.SetCellValue(sheet, cell, value)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
