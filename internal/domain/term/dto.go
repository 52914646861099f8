package term

import "github.com/salarybook/salarybook-backend-go/internal/pkg/validator"

type CreateTermRequest struct {
	Key      string            `json:"key"`
	Category string            `json:"category"`
	Labels   map[string]string `json:"labels"`
}

func validateLabels(errs validator.ValidationErrors, labels map[string]string) validator.ValidationErrors {
	if len(labels) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "labels",
			Message: "at least one locale label is required",
		})
		return errs
	}
	for locale, label := range labels {
		if !validator.IsValidLocale(locale) {
			errs = append(errs, validator.ValidationError{
				Field:   "labels",
				Message: "locale " + locale + " must be a locale code such as en or ja",
			})
		}
		if validator.IsEmpty(label) {
			errs = append(errs, validator.ValidationError{
				Field:   "labels." + locale,
				Message: "label must not be empty",
			})
		}
	}
	return errs
}

func (r *CreateTermRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Key) {
		errs = append(errs, validator.ValidationError{
			Field:   "key",
			Message: "key is required",
		})
	}
	if !validator.IsInSlice(r.Category, []string{string(CategoryIncome), string(CategoryDeduction), string(CategoryOther)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of income, deduction, other",
		})
	}
	errs = validateLabels(errs, r.Labels)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTermRequest struct {
	ID       string            `json:"-"`
	Category *string           `json:"category,omitempty"`
	Labels   map[string]string `json:"labels,omitempty"`
}

func (r *UpdateTermRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Category != nil && !validator.IsInSlice(*r.Category, []string{string(CategoryIncome), string(CategoryDeduction), string(CategoryOther)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of income, deduction, other",
		})
	}
	if r.Labels != nil {
		errs = validateLabels(errs, r.Labels)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TermResponse struct {
	ID        string            `json:"id"`
	Key       string            `json:"key"`
	Category  Category          `json:"category"`
	Labels    map[string]string `json:"labels"`
	IsDefault bool              `json:"is_default"`
}
