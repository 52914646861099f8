package payslip

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/salarybook/salarybook-backend-go/internal/pkg/validator"
)

type LineItemRequest struct {
	Kind    string          `json:"kind"`
	Label   string          `json:"label"`
	TermKey *string         `json:"term_key,omitempty"`
	Amount  decimal.Decimal `json:"amount"`
}

type CreatePayslipRequest struct {
	CompanyID string            `json:"company_id"`
	SlipDate  string            `json:"slip_date"`
	Currency  string            `json:"currency"`
	Memo      *string           `json:"memo,omitempty"`
	Items     []LineItemRequest `json:"items"`
}

func validateItems(items []LineItemRequest, errs validator.ValidationErrors) validator.ValidationErrors {
	if len(items) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "items",
			Message: "at least one line item is required",
		})
		return errs
	}
	for i, item := range items {
		prefix := "items[" + validator.Itoa(i) + "]."
		if item.Kind != string(ItemKindIncome) && item.Kind != string(ItemKindDeduction) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "kind",
				Message: "kind must be income or deduction",
			})
		}
		if validator.IsEmpty(item.Label) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "label",
				Message: "label is required",
			})
		}
		if item.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "amount",
				Message: "amount must not be negative",
			})
		}
	}
	return errs
}

func (r *CreatePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.SlipDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "slip_date",
			Message: "slip_date must be a valid date in YYYY-MM-DD format",
		})
	}
	if !validator.IsValidCurrencyCode(r.Currency) {
		errs = append(errs, validator.ValidationError{
			Field:   "currency",
			Message: "currency must be a 3-letter ISO 4217 code",
		})
	}
	errs = validateItems(r.Items, errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayslipRequest struct {
	ID       string            `json:"-"`
	SlipDate *string           `json:"slip_date,omitempty"`
	Currency *string           `json:"currency,omitempty"`
	Memo     *string           `json:"memo,omitempty"`
	Items    []LineItemRequest `json:"items,omitempty"`
}

func (r *UpdatePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.SlipDate != nil {
		if _, ok := validator.IsValidDate(*r.SlipDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "slip_date",
				Message: "slip_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if r.Currency != nil && !validator.IsValidCurrencyCode(*r.Currency) {
		errs = append(errs, validator.ValidationError{
			Field:   "currency",
			Message: "currency must be a 3-letter ISO 4217 code",
		})
	}
	if r.Items != nil {
		errs = validateItems(r.Items, errs)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	CompanyID *string
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

type LineItemResponse struct {
	ID      string          `json:"id"`
	Kind    ItemKind        `json:"kind"`
	Label   string          `json:"label"`
	TermKey *string         `json:"term_key,omitempty"`
	Amount  decimal.Decimal `json:"amount"`
}

type PayslipResponse struct {
	ID              string             `json:"id"`
	CompanyID       string             `json:"company_id"`
	CompanyName     *string            `json:"company_name,omitempty"`
	SlipDate        string             `json:"slip_date"`
	Currency        string             `json:"currency"`
	Memo            *string            `json:"memo,omitempty"`
	GrossAmount     decimal.Decimal    `json:"gross_amount"`
	DeductionAmount decimal.Decimal    `json:"deduction_amount"`
	NetAmount       decimal.Decimal    `json:"net_amount"`
	Items           []LineItemResponse `json:"items,omitempty"`

	// Work period resolved from the company's payday policy, present on the
	// detail view only.
	PeriodStart *string `json:"period_start,omitempty"`
	PeriodEnd   *string `json:"period_end,omitempty"`
}
