package payperiod

import "time"

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay reduces a day-of-month parameter to the last valid day of the
// given month when the parameter exceeds the month's length. It never wraps
// into an adjacent month, and clamping an already-clamped value is a no-op.
func ClampDay(day int, year int, month time.Month) int {
	if n := DaysIn(year, month); day > n {
		return n
	}
	return day
}

func civilDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}

func checkDay(field string, day int) error {
	if day < 1 || day > 31 {
		return &InvalidPolicyError{Field: field, Value: day}
	}
	return nil
}

func validatePolicy(policy PaydayPolicy) error {
	switch policy.Kind {
	case KindMonthEnd:
		return nil
	case KindCustomDay:
		return checkDay("pay_day", policy.PayDay)
	case KindCustomPeriod:
		if err := checkDay("pay_day", policy.PayDay); err != nil {
			return err
		}
		if err := checkDay("period_start_day", policy.PeriodStartDay); err != nil {
			return err
		}
		return checkDay("period_end_day", policy.PeriodEndDay)
	default:
		return &UnknownPolicyKindError{Kind: policy.Kind}
	}
}

// Resolve maps a payday policy and the date a slip was paid to the work
// period that payment covers.
//
// month_end: day 1 through the last day of the slip date's own month.
//
// custom_day D: day D+1 of the previous month through day D of the slip
// month. Each side is clamped to its own month's length independently.
//
// custom_period S..E: days S through E of the month before the slip date's
// month, each clamped to that month's length. The policy's pay day is not
// part of the computation; a period with S > E would cross a month boundary
// and is rejected as UnsupportedPeriodShapeError.
func Resolve(policy PaydayPolicy, slipDate time.Time) (PayPeriod, error) {
	if slipDate.IsZero() {
		return PayPeriod{}, ErrInvalidDate
	}
	if err := validatePolicy(policy); err != nil {
		return PayPeriod{}, err
	}

	year, month := slipDate.Year(), slipDate.Month()

	switch policy.Kind {
	case KindMonthEnd:
		return PayPeriod{
			Start: civilDate(year, month, 1),
			End:   civilDate(year, month, DaysIn(year, month)),
		}, nil

	case KindCustomDay:
		prevYear, prevMon := prevMonth(year, month)
		return PayPeriod{
			Start: civilDate(prevYear, prevMon, ClampDay(policy.PayDay+1, prevYear, prevMon)),
			End:   civilDate(year, month, ClampDay(policy.PayDay, year, month)),
		}, nil

	case KindCustomPeriod:
		if policy.PeriodStartDay > policy.PeriodEndDay {
			return PayPeriod{}, &UnsupportedPeriodShapeError{
				PeriodStartDay: policy.PeriodStartDay,
				PeriodEndDay:   policy.PeriodEndDay,
			}
		}
		prevYear, prevMon := prevMonth(year, month)
		return PayPeriod{
			Start: civilDate(prevYear, prevMon, ClampDay(policy.PeriodStartDay, prevYear, prevMon)),
			End:   civilDate(prevYear, prevMon, ClampDay(policy.PeriodEndDay, prevYear, prevMon)),
		}, nil
	}

	return PayPeriod{}, &UnknownPolicyKindError{Kind: policy.Kind}
}

// ExpectedPayDate returns the date a slip covering the period starting at
// periodStart is expected to be paid. It is the exact inverse of Resolve for
// month_end and custom_day; for custom_period it returns the policy's pay
// day (clamped) in the month following periodStart's month.
func ExpectedPayDate(policy PaydayPolicy, periodStart time.Time) (time.Time, error) {
	if periodStart.IsZero() {
		return time.Time{}, ErrInvalidDate
	}
	if err := validatePolicy(policy); err != nil {
		return time.Time{}, err
	}

	year, month := periodStart.Year(), periodStart.Month()

	switch policy.Kind {
	case KindMonthEnd:
		return civilDate(year, month, DaysIn(year, month)), nil
	case KindCustomDay, KindCustomPeriod:
		payYear, payMon := nextMonth(year, month)
		return civilDate(payYear, payMon, ClampDay(policy.PayDay, payYear, payMon)), nil
	}

	return time.Time{}, &UnknownPolicyKindError{Kind: policy.Kind}
}
