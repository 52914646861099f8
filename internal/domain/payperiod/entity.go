package payperiod

import "time"

// PolicyKind enum
type PolicyKind string

const (
	KindMonthEnd     PolicyKind = "month_end"
	KindCustomDay    PolicyKind = "custom_day"
	KindCustomPeriod PolicyKind = "custom_period"
)

// PaydayPolicy - how a company maps a pay date to the worked period it pays for.
// PayDay is required for custom_day and custom_period; PeriodStartDay and
// PeriodEndDay are required for custom_period only.
type PaydayPolicy struct {
	Kind           PolicyKind
	PayDay         int
	PeriodStartDay int
	PeriodEndDay   int
}

// PayPeriod is the [Start, End] range of calendar days a payslip covers.
// Start is never after End; both are midnight UTC civil dates.
type PayPeriod struct {
	Start time.Time
	End   time.Time
}
