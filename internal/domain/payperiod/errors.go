package payperiod

import (
	"errors"
	"fmt"
)

var ErrInvalidDate = errors.New("slip date is not a valid calendar date")

// InvalidPolicyError reports a policy field that is missing or outside the
// 1-31 day range for the policy's kind. Clamping only applies to days that
// are valid in some month; day 0 or negative is rejected here.
type InvalidPolicyError struct {
	Field string
	Value int
}

func (e *InvalidPolicyError) Error() string {
	return fmt.Sprintf("invalid payday policy: %s must be between 1 and 31, got %d", e.Field, e.Value)
}

// UnknownPolicyKindError reports a policy kind the resolver does not know.
type UnknownPolicyKindError struct {
	Kind PolicyKind
}

func (e *UnknownPolicyKindError) Error() string {
	return fmt.Sprintf("invalid payday policy: unknown kind %q", string(e.Kind))
}

// UnsupportedPeriodShapeError reports a custom_period policy whose period
// would cross a month boundary (start day after end day). The behavior for
// such a period is undefined, so it is rejected rather than guessed.
type UnsupportedPeriodShapeError struct {
	PeriodStartDay int
	PeriodEndDay   int
}

func (e *UnsupportedPeriodShapeError) Error() string {
	return fmt.Sprintf("unsupported period shape: period_start_day %d is after period_end_day %d", e.PeriodStartDay, e.PeriodEndDay)
}
