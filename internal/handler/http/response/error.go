package response

import (
	"errors"
	"net/http"

	"github.com/salarybook/salarybook-backend-go/internal/domain/auth"
	"github.com/salarybook/salarybook-backend-go/internal/domain/company"
	"github.com/salarybook/salarybook-backend-go/internal/domain/payperiod"
	"github.com/salarybook/salarybook-backend-go/internal/domain/payslip"
	"github.com/salarybook/salarybook-backend-go/internal/domain/report"
	"github.com/salarybook/salarybook-backend-go/internal/domain/term"
	"github.com/salarybook/salarybook-backend-go/internal/domain/user"
	"github.com/salarybook/salarybook-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Typed pay-period and report errors
	var policyErr *payperiod.InvalidPolicyError
	if errors.As(err, &policyErr) {
		BadRequest(w, policyErr.Error(), nil)
		return
	}
	var kindErr *payperiod.UnknownPolicyKindError
	if errors.As(err, &kindErr) {
		BadRequest(w, kindErr.Error(), nil)
		return
	}
	var shapeErr *payperiod.UnsupportedPeriodShapeError
	if errors.As(err, &shapeErr) {
		BadRequest(w, shapeErr.Error(), nil)
		return
	}
	var mixedErr *report.MixedCurrencyError
	if errors.As(err, &mixedErr) {
		BadRequest(w, mixedErr.Error(), nil)
		return
	}
	var emptyErr *report.EmptyAggregationError
	if errors.As(err, &emptyErr) {
		NotFound(w, emptyErr.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNameExists):
		Conflict(w, "A company with this name already exists")
	case errors.Is(err, company.ErrCompanyInUse):
		Conflict(w, "Company still has payslips attached")

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrLineItemNotFound):
		NotFound(w, "Payslip line item not found")
	case errors.Is(err, payslip.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, payslip.ErrInvalidItemKind):
		BadRequest(w, "Invalid line item kind", nil)

	// Term domain errors
	case errors.Is(err, term.ErrTermNotFound):
		NotFound(w, "Term not found")
	case errors.Is(err, term.ErrTermKeyExists):
		Conflict(w, "A term with this key already exists")
	case errors.Is(err, term.ErrDefaultReadOnly):
		Forbidden(w, "Seeded default terms cannot be modified")

	// Report and pay-period errors
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)
	case errors.Is(err, payperiod.ErrInvalidDate):
		BadRequest(w, "Invalid date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
