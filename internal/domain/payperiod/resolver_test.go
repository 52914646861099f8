package payperiod

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClampDay(t *testing.T) {
	cases := []struct {
		name  string
		day   int
		year  int
		month time.Month
		want  int
	}{
		{"within month", 15, 2024, time.June, 15},
		{"exact month length", 30, 2024, time.June, 30},
		{"clamped to thirty", 31, 2024, time.April, 30},
		{"clamped to leap february", 31, 2024, time.February, 29},
		{"clamped to non-leap february", 30, 2023, time.February, 28},
		{"first day untouched", 1, 2024, time.February, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ClampDay(c.day, c.year, c.month)
			assert.Equal(t, c.want, got)
			// Clamping is idempotent.
			assert.Equal(t, got, ClampDay(got, c.year, c.month))
		})
	}
}

func TestResolve_MonthEnd(t *testing.T) {
	policy := PaydayPolicy{Kind: KindMonthEnd}

	period, err := Resolve(policy, date(2024, time.February, 29))
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.February, 1), period.Start)
	assert.Equal(t, date(2024, time.February, 29), period.End)

	period, err = Resolve(policy, date(2023, time.February, 15))
	require.NoError(t, err)
	assert.Equal(t, date(2023, time.February, 1), period.Start)
	assert.Equal(t, date(2023, time.February, 28), period.End)
}

func TestResolve_CustomDay(t *testing.T) {
	cases := []struct {
		name      string
		payDay    int
		slipDate  time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid-month pay day",
			payDay:    25,
			slipDate:  date(2024, time.June, 25),
			wantStart: date(2024, time.May, 26),
			wantEnd:   date(2024, time.June, 25),
		},
		{
			name:      "end clamped in thirty-day month",
			payDay:    31,
			slipDate:  date(2024, time.April, 30),
			wantStart: date(2024, time.March, 31),
			wantEnd:   date(2024, time.April, 30),
		},
		{
			name:      "start clamped in leap february",
			payDay:    31,
			slipDate:  date(2024, time.March, 31),
			wantStart: date(2024, time.February, 29),
			wantEnd:   date(2024, time.March, 31),
		},
		{
			name:      "january period starts in previous year",
			payDay:    15,
			slipDate:  date(2024, time.January, 15),
			wantStart: date(2023, time.December, 16),
			wantEnd:   date(2024, time.January, 15),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			period, err := Resolve(PaydayPolicy{Kind: KindCustomDay, PayDay: c.payDay}, c.slipDate)
			require.NoError(t, err)
			assert.Equal(t, c.wantStart, period.Start)
			assert.Equal(t, c.wantEnd, period.End)
			assert.False(t, period.Start.After(period.End))
		})
	}
}

func TestResolve_CustomPeriod(t *testing.T) {
	policy := PaydayPolicy{Kind: KindCustomPeriod, PayDay: 10, PeriodStartDay: 1, PeriodEndDay: 31}

	// Pay date in March covers February, end day clamped to 29.
	period, err := Resolve(policy, date(2024, time.March, 10))
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.February, 1), period.Start)
	assert.Equal(t, date(2024, time.February, 29), period.End)

	// The pay day itself does not shift the period.
	other, err := Resolve(PaydayPolicy{Kind: KindCustomPeriod, PayDay: 25, PeriodStartDay: 1, PeriodEndDay: 31}, date(2024, time.March, 25))
	require.NoError(t, err)
	assert.Equal(t, period, other)
}

func TestResolve_CustomPeriodWrapAroundRejected(t *testing.T) {
	policy := PaydayPolicy{Kind: KindCustomPeriod, PayDay: 10, PeriodStartDay: 26, PeriodEndDay: 25}

	_, err := Resolve(policy, date(2024, time.March, 10))
	var shapeErr *UnsupportedPeriodShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 26, shapeErr.PeriodStartDay)
	assert.Equal(t, 25, shapeErr.PeriodEndDay)
}

func TestResolve_InvalidPolicy(t *testing.T) {
	cases := []struct {
		name      string
		policy    PaydayPolicy
		wantField string
	}{
		{"custom day missing pay day", PaydayPolicy{Kind: KindCustomDay}, "pay_day"},
		{"custom day pay day zero", PaydayPolicy{Kind: KindCustomDay, PayDay: 0}, "pay_day"},
		{"custom day pay day negative", PaydayPolicy{Kind: KindCustomDay, PayDay: -3}, "pay_day"},
		{"custom day pay day too large", PaydayPolicy{Kind: KindCustomDay, PayDay: 32}, "pay_day"},
		{"custom period missing start", PaydayPolicy{Kind: KindCustomPeriod, PayDay: 10, PeriodEndDay: 20}, "period_start_day"},
		{"custom period missing end", PaydayPolicy{Kind: KindCustomPeriod, PayDay: 10, PeriodStartDay: 1}, "period_end_day"},
		{"custom period missing pay day", PaydayPolicy{Kind: KindCustomPeriod, PeriodStartDay: 1, PeriodEndDay: 20}, "pay_day"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Resolve(c.policy, date(2024, time.June, 25))
			var policyErr *InvalidPolicyError
			require.ErrorAs(t, err, &policyErr)
			assert.Equal(t, c.wantField, policyErr.Field)
		})
	}

	_, err := Resolve(PaydayPolicy{Kind: "weekly"}, date(2024, time.June, 25))
	var kindErr *UnknownPolicyKindError
	assert.ErrorAs(t, err, &kindErr)
}

func TestResolve_InvalidDate(t *testing.T) {
	_, err := Resolve(PaydayPolicy{Kind: KindMonthEnd}, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExpectedPayDate(t *testing.T) {
	t.Run("month end", func(t *testing.T) {
		policy := PaydayPolicy{Kind: KindMonthEnd}
		payDate, err := ExpectedPayDate(policy, date(2024, time.February, 1))
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.February, 29), payDate)
	})

	t.Run("custom day clamps into short month", func(t *testing.T) {
		policy := PaydayPolicy{Kind: KindCustomDay, PayDay: 31}
		payDate, err := ExpectedPayDate(policy, date(2024, time.March, 31))
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.April, 30), payDate)
	})

	t.Run("custom period", func(t *testing.T) {
		policy := PaydayPolicy{Kind: KindCustomPeriod, PayDay: 10, PeriodStartDay: 1, PeriodEndDay: 31}
		payDate, err := ExpectedPayDate(policy, date(2024, time.February, 1))
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.March, 10), payDate)
	})

	t.Run("invalid policy", func(t *testing.T) {
		_, err := ExpectedPayDate(PaydayPolicy{Kind: KindCustomDay, PayDay: 40}, date(2024, time.March, 1))
		var policyErr *InvalidPolicyError
		assert.ErrorAs(t, err, &policyErr)
	})
}

// Resolving a period and asking for its expected pay date must land back on
// the original slip date for month_end and custom_day policies.
func TestResolveExpectedPayDateRoundTrip(t *testing.T) {
	policies := []PaydayPolicy{
		{Kind: KindCustomDay, PayDay: 25},
		{Kind: KindCustomDay, PayDay: 31},
		{Kind: KindCustomDay, PayDay: 1},
		{Kind: KindMonthEnd},
	}
	slipDates := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2024, time.April, 30),
		date(2024, time.June, 25),
		date(2023, time.February, 28),
	}
	for _, policy := range policies {
		for _, slipDate := range slipDates {
			// Only pay dates the policy itself would produce round-trip.
			if policy.Kind == KindCustomDay && slipDate.Day() != ClampDay(policy.PayDay, slipDate.Year(), slipDate.Month()) {
				continue
			}
			if policy.Kind == KindMonthEnd && slipDate.Day() != DaysIn(slipDate.Year(), slipDate.Month()) {
				continue
			}

			period, err := Resolve(policy, slipDate)
			require.NoError(t, err)

			payDate, err := ExpectedPayDate(policy, period.Start)
			require.NoError(t, err)
			assert.Equal(t, slipDate, payDate, "policy %+v slip %s", policy, slipDate.Format("2006-01-02"))
		}
	}
}
