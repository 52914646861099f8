package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/salarybook/salarybook-backend-go/internal/domain/report"
)

func TestBuildCSV_RoundTrip(t *testing.T) {
	rows := []report.Row{
		{"2024-01-25", "Acme KK", "300000.50", "255000.25", "45000.25", "JPY"},
		{"2024-02-25", "Acme KK", "310000", "264000", "46000", "JPY"},
	}

	data, err := BuildCSV(rows)
	require.NoError(t, err)

	parsed, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 3)
	assert.Equal(t, report.RowHeader, parsed[0])

	// Amounts survive the trip exactly, no rounding drift.
	for i, row := range rows {
		for _, col := range []int{2, 3, 4} {
			want := decimal.RequireFromString(row[col])
			got := decimal.RequireFromString(parsed[i+1][col])
			assert.True(t, want.Equal(got), "row %d col %d: %s != %s", i, col, want, got)
		}
	}
}

func TestBuildCSV_EmptyIsHeaderOnly(t *testing.T) {
	data, err := BuildCSV(nil)
	require.NoError(t, err)

	parsed, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, report.RowHeader, parsed[0])
}

func testSections() []report.Section {
	return []report.Section{
		{
			Title:  "Summary",
			Header: []string{"Metric", "Value"},
			Rows:   [][]string{{"Total Slips", "1"}, {"Total Gross", "300000"}},
		},
		{
			Title:  "Payslips",
			Header: report.RowHeader,
			Rows:   [][]string{{"2024-01-25", "Acme KK", "300000", "255000", "45000", "JPY"}},
		},
	}
}

func TestBuildXLSX(t *testing.T) {
	data, err := BuildXLSX(testSections())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Payslips"}, f.GetSheetList())

	value, err := f.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Total Slips", value)

	value, err = f.GetCellValue("Payslips", "C2")
	require.NoError(t, err)
	assert.Equal(t, "300000", value)
}

func TestBuildPDF(t *testing.T) {
	data, err := BuildPDF("Payroll Report", testSections())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 500)
}
