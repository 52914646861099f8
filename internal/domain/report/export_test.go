package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salarybook/salarybook-backend-go/internal/domain/payslip"
)

func strPtr(s string) *string { return &s }

func TestToRows_OnePerSlipInInputOrder(t *testing.T) {
	slips := []payslip.PayrollSlip{
		testSlip("2024-02-25", "JPY", "300000.50", "45000.25"),
		testSlip("2024-01-25", "JPY", "300000", "45000"),
	}
	slips[0].CompanyName = strPtr("Acme KK")

	agg, err := Aggregate(slips)
	require.NoError(t, err)

	rows, err := ToRows(agg, slips, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Input order preserved, no re-sorting.
	assert.Equal(t, Row{"2024-02-25", "Acme KK", "300000.5", "255000.25", "45000.25", "JPY"}, rows[0])
	assert.Equal(t, "2024-01-25", rows[1][0])
	assert.Equal(t, "", rows[1][1])
}

func TestToRows_EmptyAggregation(t *testing.T) {
	agg, err := Aggregate(nil)
	require.NoError(t, err)

	rows, err := ToRows(agg, nil, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, rows)

	opts := DefaultOptions()
	opts.RequireData = true
	_, err = ToRows(agg, nil, opts)
	var emptyErr *EmptyAggregationError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestToSections_FixedOrder(t *testing.T) {
	slips := []payslip.PayrollSlip{
		testSlip("2024-01-25", "JPY", "300000", "45000"),
		testSlip("2024-02-25", "JPY", "310000", "46000"),
	}
	agg, err := Aggregate(slips)
	require.NoError(t, err)

	sections, err := ToSections(agg, slips, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, sections, 3)

	assert.Equal(t, "Summary", sections[0].Title)
	assert.Equal(t, "Payslips", sections[1].Title)
	assert.Equal(t, "Monthly Breakdown", sections[2].Title)

	// Summary carries the headline totals.
	assert.Contains(t, sections[0].Rows, []string{"Total Slips", "2"})
	assert.Contains(t, sections[0].Rows, []string{"Total Gross", "610000"})
	assert.Contains(t, sections[0].Rows, []string{"Total Net", "519000"})
	assert.Contains(t, sections[0].Rows, []string{"Total Deductions", "91000"})

	// Detail is sorted by slip date descending regardless of input order.
	assert.Equal(t, "2024-02-25", sections[1].Rows[0][0])
	assert.Equal(t, "2024-01-25", sections[1].Rows[1][0])

	// Monthly breakdown keeps the aggregator's first-seen bucket order.
	assert.Equal(t, "2024-01", sections[2].Rows[0][0])
	assert.Equal(t, "2024-02", sections[2].Rows[1][0])
}

func TestToSections_OptionsDisableTables(t *testing.T) {
	slips := []payslip.PayrollSlip{testSlip("2024-01-25", "JPY", "300000", "")}
	agg, err := Aggregate(slips)
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.IncludeTables = false
	sections, err := ToSections(agg, slips, opts)
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "Summary", sections[0].Title)
	assert.Equal(t, "Monthly Breakdown", sections[1].Title)

	opts = DefaultOptions()
	opts.IncludeCharts = false
	sections, err = ToSections(agg, slips, opts)
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "Payslips", sections[1].Title)
}

func TestToSections_EmptyIsWellFormed(t *testing.T) {
	agg, err := Aggregate(nil)
	require.NoError(t, err)

	sections, err := ToSections(agg, nil, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, sections, 3)
	assert.Contains(t, sections[0].Rows, []string{"Total Slips", "0"})
	assert.Empty(t, sections[1].Rows)
	assert.Empty(t, sections[2].Rows)

	opts := DefaultOptions()
	opts.RequireData = true
	_, err = ToSections(agg, nil, opts)
	var emptyErr *EmptyAggregationError
	assert.ErrorAs(t, err, &emptyErr)
}
