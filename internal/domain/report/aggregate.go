package report

import (
	"github.com/shopspring/decimal"

	"github.com/salarybook/salarybook-backend-go/internal/domain/payslip"
)

const (
	monthKeyLayout = "2006-01"
	yearKeyLayout  = "2006"
)

// MonthlyBucket accumulates slip totals for one "YYYY-MM" pay-date month.
type MonthlyBucket struct {
	Key            string          `json:"key"`
	GrossTotal     decimal.Decimal `json:"gross_total"`
	DeductionTotal decimal.Decimal `json:"deduction_total"`
	NetTotal       decimal.Decimal `json:"net_total"`
	Currency       string          `json:"currency"`
}

// YearlyBucket accumulates slip totals for one "YYYY" pay-date year.
type YearlyBucket struct {
	Key            string          `json:"key"`
	GrossTotal     decimal.Decimal `json:"gross_total"`
	DeductionTotal decimal.Decimal `json:"deduction_total"`
	NetTotal       decimal.Decimal `json:"net_total"`
	Currency       string          `json:"currency"`
}

type Totals struct {
	Gross      decimal.Decimal `json:"gross"`
	Net        decimal.Decimal `json:"net"`
	Deductions decimal.Decimal `json:"deductions"`
}

// Aggregation is the result of one Aggregate call. Bucket slices are in
// first-seen order of their keys, not chronological order; callers that need
// chronological buckets must sort the input slips by slip date first.
type Aggregation struct {
	Monthly   []MonthlyBucket `json:"monthly"`
	Yearly    []YearlyBucket  `json:"yearly"`
	Totals    Totals          `json:"totals"`
	Currency  string          `json:"currency,omitempty"`
	SlipCount int             `json:"slip_count"`
}

// Aggregate rolls a batch of slips up into monthly and yearly buckets keyed
// by pay date. Bucketing deliberately ignores the company payday policy: a
// report answers "how much was paid in month X", not "what period does this
// cover" (that question belongs to payperiod.Resolve).
//
// A bucket is created at the position of the first slip that introduces its
// key; later slips with the same key accumulate in place. Mixing currencies
// in one batch fails with MixedCurrencyError.
func Aggregate(slips []payslip.PayrollSlip) (Aggregation, error) {
	agg := Aggregation{
		Monthly: []MonthlyBucket{},
		Yearly:  []YearlyBucket{},
		Totals: Totals{
			Gross:      decimal.Zero,
			Net:        decimal.Zero,
			Deductions: decimal.Zero,
		},
		SlipCount: len(slips),
	}

	if err := checkSingleCurrency(slips); err != nil {
		return Aggregation{}, err
	}
	if len(slips) > 0 {
		agg.Currency = slips[0].Currency
	}

	monthIndex := make(map[string]int, len(slips))
	yearIndex := make(map[string]int, len(slips))

	for _, slip := range slips {
		gross := slip.GrossAmount()
		deductions := slip.DeductionAmount()
		net := gross.Sub(deductions)

		monthKey := slip.SlipDate.Format(monthKeyLayout)
		idx, ok := monthIndex[monthKey]
		if !ok {
			idx = len(agg.Monthly)
			monthIndex[monthKey] = idx
			agg.Monthly = append(agg.Monthly, MonthlyBucket{
				Key:            monthKey,
				GrossTotal:     decimal.Zero,
				DeductionTotal: decimal.Zero,
				NetTotal:       decimal.Zero,
				Currency:       slip.Currency,
			})
		}
		agg.Monthly[idx].GrossTotal = agg.Monthly[idx].GrossTotal.Add(gross)
		agg.Monthly[idx].DeductionTotal = agg.Monthly[idx].DeductionTotal.Add(deductions)
		agg.Monthly[idx].NetTotal = agg.Monthly[idx].NetTotal.Add(net)

		yearKey := slip.SlipDate.Format(yearKeyLayout)
		idx, ok = yearIndex[yearKey]
		if !ok {
			idx = len(agg.Yearly)
			yearIndex[yearKey] = idx
			agg.Yearly = append(agg.Yearly, YearlyBucket{
				Key:            yearKey,
				GrossTotal:     decimal.Zero,
				DeductionTotal: decimal.Zero,
				NetTotal:       decimal.Zero,
				Currency:       slip.Currency,
			})
		}
		agg.Yearly[idx].GrossTotal = agg.Yearly[idx].GrossTotal.Add(gross)
		agg.Yearly[idx].DeductionTotal = agg.Yearly[idx].DeductionTotal.Add(deductions)
		agg.Yearly[idx].NetTotal = agg.Yearly[idx].NetTotal.Add(net)

		agg.Totals.Gross = agg.Totals.Gross.Add(gross)
		agg.Totals.Deductions = agg.Totals.Deductions.Add(deductions)
		agg.Totals.Net = agg.Totals.Net.Add(net)
	}

	return agg, nil
}

func checkSingleCurrency(slips []payslip.PayrollSlip) error {
	seen := make(map[string]bool)
	var currencies []string
	for _, slip := range slips {
		if !seen[slip.Currency] {
			seen[slip.Currency] = true
			currencies = append(currencies, slip.Currency)
		}
	}
	if len(currencies) > 1 {
		return &MixedCurrencyError{Currencies: currencies}
	}
	return nil
}
