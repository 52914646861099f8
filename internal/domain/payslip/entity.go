package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemKind enum
type ItemKind string

const (
	ItemKindIncome    ItemKind = "income"
	ItemKindDeduction ItemKind = "deduction"
)

// PayrollLineItem - one typed line on a payslip. Amount is non-negative;
// the sign is implied by Kind.
type PayrollLineItem struct {
	ID        string
	SlipID    string
	Kind      ItemKind
	Label     string
	TermKey   *string
	Amount    decimal.Decimal
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayrollSlip - a single payment record. SlipDate is the date the payment
// was issued, not the period of work it covers.
type PayrollSlip struct {
	ID        string
	UserID    string
	CompanyID string
	SlipDate  time.Time
	Currency  string
	Memo      *string
	Items     []PayrollLineItem
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	CompanyName *string
}

// GrossAmount sums the slip's income items.
func (s PayrollSlip) GrossAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		if item.Kind == ItemKindIncome {
			total = total.Add(item.Amount)
		}
	}
	return total
}

// DeductionAmount sums the slip's deduction items.
func (s PayrollSlip) DeductionAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		if item.Kind == ItemKindDeduction {
			total = total.Add(item.Amount)
		}
	}
	return total
}

// NetAmount is always derived from the items, never read from a stored
// column, so net = gross - deductions holds for every slip.
func (s PayrollSlip) NetAmount() decimal.Decimal {
	return s.GrossAmount().Sub(s.DeductionAmount())
}
