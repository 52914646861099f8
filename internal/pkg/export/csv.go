package export

import (
	"bytes"
	"encoding/csv"

	"github.com/salarybook/salarybook-backend-go/internal/domain/report"
)

// BuildCSV writes the fixed header row followed by the given rows as UTF-8
// comma-separated output. An empty row set still produces a header-only file.
func BuildCSV(rows []report.Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(report.RowHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
