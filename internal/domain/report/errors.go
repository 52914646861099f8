package report

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDateRange = errors.New("end date must be after start date")

// MixedCurrencyError reports an aggregation batch carrying more than one
// currency code. The engine performs no conversion; the caller decides
// whether to split the batch and retry per currency.
type MixedCurrencyError struct {
	Currencies []string
}

func (e *MixedCurrencyError) Error() string {
	return fmt.Sprintf("cannot aggregate slips with mixed currencies: %s", strings.Join(e.Currencies, ", "))
}

// EmptyAggregationError is returned by the formatters only when the caller
// demanded a non-empty result via Options.RequireData.
type EmptyAggregationError struct{}

func (e *EmptyAggregationError) Error() string {
	return "aggregation contains no slips but a non-empty result was required"
}
