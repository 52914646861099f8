package user

import "github.com/salarybook/salarybook-backend-go/internal/pkg/validator"

type UpdateProfileRequest struct {
	DisplayName     *string `json:"display_name,omitempty"`
	PreferredLocale *string `json:"preferred_locale,omitempty"`
	DefaultCurrency *string `json:"default_currency,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DisplayName != nil {
		if validator.IsEmpty(*r.DisplayName) {
			errs = append(errs, validator.ValidationError{
				Field:   "display_name",
				Message: "display_name must not be empty",
			})
		}
		if len(*r.DisplayName) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "display_name",
				Message: "display_name must not exceed 100 characters",
			})
		}
	}
	if r.PreferredLocale != nil && !validator.IsValidLocale(*r.PreferredLocale) {
		errs = append(errs, validator.ValidationError{
			Field:   "preferred_locale",
			Message: "preferred_locale must be a locale code such as en or ja",
		})
	}
	if r.DefaultCurrency != nil && !validator.IsValidCurrencyCode(*r.DefaultCurrency) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_currency",
			Message: "default_currency must be a 3-letter ISO 4217 code",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProfileResponse struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	DisplayName     string `json:"display_name"`
	PreferredLocale string `json:"preferred_locale"`
	DefaultCurrency string `json:"default_currency"`
	CreatedAt       string `json:"created_at"`
}
