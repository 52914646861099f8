package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/salarybook/salarybook-backend-go/internal/domain/company"
	"github.com/salarybook/salarybook-backend-go/internal/handler/http/response"
	"github.com/salarybook/salarybook-backend-go/internal/pkg/validator"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ResolvePayPeriod(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// List implements CompanyHandler.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companies, err := c.companyService.List(r.Context())
	if err != nil {
		slog.Error("ListCompanies service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, companies)
}

// Create implements CompanyHandler.
func (c *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateCompany decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := c.companyService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateCompany service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Company created successfully", created)
}

// GetByID implements CompanyHandler.
func (c *CompanyHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	companyData, err := c.companyService.Get(r.Context(), chi.URLParam(r, "companyID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, companyData)
}

// Update implements CompanyHandler.
func (c *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateCompany decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "companyID")

	updated, err := c.companyService.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdateCompany service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Company updated successfully", updated)
}

// Delete implements CompanyHandler.
func (c *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.companyService.Delete(r.Context(), chi.URLParam(r, "companyID")); err != nil {
		slog.Error("DeleteCompany service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Company deleted successfully", nil)
}

// ResolvePayPeriod implements CompanyHandler. date is required and names the
// date the payment was issued.
func (c *CompanyHandlerImpl) ResolvePayPeriod(w http.ResponseWriter, r *http.Request) {
	slipDate, ok := validator.IsValidDate(r.URL.Query().Get("date"))
	if !ok {
		response.BadRequest(w, "date must be a valid date in YYYY-MM-DD format", nil)
		return
	}

	period, err := c.companyService.ResolvePayPeriod(r.Context(), chi.URLParam(r, "companyID"), slipDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, period)
}
