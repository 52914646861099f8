package report

import (
	"sort"
	"strconv"

	"github.com/salarybook/salarybook-backend-go/internal/domain/payslip"
)

// Options controls which parts of an export are emitted. IncludeTables emits
// the per-slip detail table, IncludeCharts emits the monthly breakdown table
// (the flattened substitute for a chart); both default to true.
type Options struct {
	IncludeCharts bool
	IncludeTables bool
	RequireData   bool
	Currency      string
}

func DefaultOptions() Options {
	return Options{IncludeCharts: true, IncludeTables: true}
}

// Row is one flat CSV-style record. Column order follows RowHeader.
type Row []string

// RowHeader is the fixed column order of the flat export form. The CSV sink
// writes it verbatim as the header row.
var RowHeader = []string{"Date", "Company", "Gross Amount", "Net Amount", "Deductions", "Currency"}

// Section is one titled table of a structured (PDF-style) export. Display
// formatting such as thousands separators or currency symbols is the
// renderer's job; cell values here are plain decimal strings.
type Section struct {
	Title  string
	Header []string
	Rows   [][]string
}

const dateLayout = "2006-01-02"

func slipRow(slip payslip.PayrollSlip) Row {
	company := ""
	if slip.CompanyName != nil {
		company = *slip.CompanyName
	}
	return Row{
		slip.SlipDate.Format(dateLayout),
		company,
		slip.GrossAmount().String(),
		slip.NetAmount().String(),
		slip.DeductionAmount().String(),
		slip.Currency,
	}
}

// ToRows flattens an aggregation into one row per slip, in the order the
// slips were received. Amounts are emitted with the source precision; no
// rounding is applied. An empty aggregation yields an empty (header-only)
// row set unless opts.RequireData is set.
func ToRows(agg Aggregation, slips []payslip.PayrollSlip, opts Options) ([]Row, error) {
	if opts.RequireData && agg.SlipCount == 0 {
		return nil, &EmptyAggregationError{}
	}

	rows := make([]Row, 0, len(slips))
	for _, slip := range slips {
		rows = append(rows, slipRow(slip))
	}
	return rows, nil
}

// ToSections shapes an aggregation into titled tables in fixed order:
// overall summary, per-slip detail sorted by slip date descending (when
// opts.IncludeTables), and the monthly breakdown in the aggregator's bucket
// order (when opts.IncludeCharts).
func ToSections(agg Aggregation, slips []payslip.PayrollSlip, opts Options) ([]Section, error) {
	if opts.RequireData && agg.SlipCount == 0 {
		return nil, &EmptyAggregationError{}
	}

	currency := opts.Currency
	if currency == "" {
		currency = agg.Currency
	}

	sections := []Section{{
		Title:  "Summary",
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Slips", strconv.Itoa(agg.SlipCount)},
			{"Total Gross", agg.Totals.Gross.String()},
			{"Total Net", agg.Totals.Net.String()},
			{"Total Deductions", agg.Totals.Deductions.String()},
			{"Currency", currency},
		},
	}}

	if opts.IncludeTables {
		ordered := make([]payslip.PayrollSlip, len(slips))
		copy(ordered, slips)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].SlipDate.After(ordered[j].SlipDate)
		})

		detail := Section{Title: "Payslips", Header: RowHeader}
		for _, slip := range ordered {
			detail.Rows = append(detail.Rows, slipRow(slip))
		}
		sections = append(sections, detail)
	}

	if opts.IncludeCharts {
		monthly := Section{
			Title:  "Monthly Breakdown",
			Header: []string{"Month", "Gross", "Net", "Deductions"},
		}
		for _, bucket := range agg.Monthly {
			monthly.Rows = append(monthly.Rows, []string{
				bucket.Key,
				bucket.GrossTotal.String(),
				bucket.NetTotal.String(),
				bucket.DeductionTotal.String(),
			})
		}
		sections = append(sections, monthly)
	}

	return sections, nil
}
