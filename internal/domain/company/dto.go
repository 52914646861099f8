package company

import (
	"github.com/salarybook/salarybook-backend-go/internal/domain/payperiod"
	"github.com/salarybook/salarybook-backend-go/internal/pkg/validator"
)

type PaydayPolicyRequest struct {
	Kind           string `json:"kind"`
	PayDay         *int   `json:"pay_day,omitempty"`
	PeriodStartDay *int   `json:"period_start_day,omitempty"`
	PeriodEndDay   *int   `json:"period_end_day,omitempty"`
}

func validateDayField(errs validator.ValidationErrors, field string, value *int, required bool) validator.ValidationErrors {
	if value == nil {
		if required {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required for this payday kind",
			})
		}
		return errs
	}
	if *value < 1 || *value > 31 {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " must be between 1 and 31",
		})
	}
	return errs
}

func (r *PaydayPolicyRequest) validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	switch payperiod.PolicyKind(r.Kind) {
	case payperiod.KindMonthEnd:
		// No day fields required.
	case payperiod.KindCustomDay:
		errs = validateDayField(errs, "pay_day", r.PayDay, true)
	case payperiod.KindCustomPeriod:
		errs = validateDayField(errs, "pay_day", r.PayDay, true)
		errs = validateDayField(errs, "period_start_day", r.PeriodStartDay, true)
		errs = validateDayField(errs, "period_end_day", r.PeriodEndDay, true)
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of month_end, custom_day, custom_period",
		})
	}
	return errs
}

// Policy builds the domain policy from the request. Call after Validate.
func (r *PaydayPolicyRequest) Policy() payperiod.PaydayPolicy {
	policy := payperiod.PaydayPolicy{Kind: payperiod.PolicyKind(r.Kind)}
	if r.PayDay != nil {
		policy.PayDay = *r.PayDay
	}
	if r.PeriodStartDay != nil {
		policy.PeriodStartDay = *r.PeriodStartDay
	}
	if r.PeriodEndDay != nil {
		policy.PeriodEndDay = *r.PeriodEndDay
	}
	return policy
}

type CreateCompanyRequest struct {
	Name            string              `json:"name"`
	Address         *string             `json:"address,omitempty"`
	Note            *string             `json:"note,omitempty"`
	DefaultCurrency string              `json:"default_currency"`
	Payday          PaydayPolicyRequest `json:"payday"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
	if !validator.IsValidCurrencyCode(r.DefaultCurrency) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_currency",
			Message: "default_currency must be a 3-letter ISO 4217 code",
		})
	}
	errs = append(errs, r.Payday.validate()...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCompanyRequest struct {
	ID              string               `json:"-"`
	Name            *string              `json:"name,omitempty"`
	Address         *string              `json:"address,omitempty"`
	Note            *string              `json:"note,omitempty"`
	DefaultCurrency *string              `json:"default_currency,omitempty"`
	Payday          *PaydayPolicyRequest `json:"payday,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.DefaultCurrency != nil && !validator.IsValidCurrencyCode(*r.DefaultCurrency) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_currency",
			Message: "default_currency must be a 3-letter ISO 4217 code",
		})
	}
	if r.Payday != nil {
		errs = append(errs, r.Payday.validate()...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaydayPolicyResponse struct {
	Kind           string `json:"kind"`
	PayDay         *int   `json:"pay_day,omitempty"`
	PeriodStartDay *int   `json:"period_start_day,omitempty"`
	PeriodEndDay   *int   `json:"period_end_day,omitempty"`
}

type CompanyResponse struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Address         *string              `json:"address,omitempty"`
	Note            *string              `json:"note,omitempty"`
	DefaultCurrency string               `json:"default_currency"`
	Payday          PaydayPolicyResponse `json:"payday"`
	CreatedAt       string               `json:"created_at"`
}

type PayPeriodResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
