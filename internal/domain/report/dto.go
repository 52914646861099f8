package report

import (
	"time"

	"github.com/salarybook/salarybook-backend-go/internal/pkg/validator"
)

type SummaryRequest struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	CompanyID *string `json:"company_id,omitempty"`
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	var from, to time.Time
	if r.From != "" {
		parsed, ok := validator.IsValidDate(r.From)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be a valid date in YYYY-MM-DD format",
			})
		}
		from = parsed
	}
	if r.To != "" {
		parsed, ok := validator.IsValidDate(r.To)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be a valid date in YYYY-MM-DD format",
			})
		}
		to = parsed
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}
	if r.CompanyID != nil && !validator.IsValidUUID(*r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExportRequest struct {
	SummaryRequest
	IncludeCharts *bool `json:"include_charts,omitempty"`
	IncludeTables *bool `json:"include_tables,omitempty"`
	RequireData   bool  `json:"require_data,omitempty"`
}

// Options materializes the request flags over the defaults.
func (r *ExportRequest) Options() Options {
	opts := DefaultOptions()
	if r.IncludeCharts != nil {
		opts.IncludeCharts = *r.IncludeCharts
	}
	if r.IncludeTables != nil {
		opts.IncludeTables = *r.IncludeTables
	}
	opts.RequireData = r.RequireData
	return opts
}

type SummaryResponse struct {
	GeneratedAt string      `json:"generated_at"`
	From        string      `json:"from,omitempty"`
	To          string      `json:"to,omitempty"`
	Aggregation Aggregation `json:"aggregation"`
}
