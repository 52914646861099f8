package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/salarybook/salarybook-backend-go/internal/domain/payslip"
	"github.com/salarybook/salarybook-backend-go/internal/handler/http/response"
	"github.com/salarybook/salarybook-backend-go/internal/pkg/validator"
)

type PayslipHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PayslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &PayslipHandlerImpl{payslipService: payslipService}
}

func parseListFilter(r *http.Request) payslip.ListFilter {
	query := r.URL.Query()
	filter := payslip.ListFilter{}

	if companyID := query.Get("company_id"); companyID != "" {
		filter.CompanyID = &companyID
	}
	if from, ok := validator.IsValidDate(query.Get("from")); ok {
		filter.From = &from
	}
	if to, ok := validator.IsValidDate(query.Get("to")); ok {
		filter.To = &to
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))
	return filter
}

// List implements PayslipHandler.
func (p *PayslipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := parseListFilter(r)

	slips, total, err := p.payslipService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListPayslips service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	response.SuccessWithMeta(w, slips, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// Create implements PayslipHandler.
func (p *PayslipHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payslip.CreatePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePayslip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := p.payslipService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreatePayslip service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payslip created successfully", created)
}

// GetByID implements PayslipHandler.
func (p *PayslipHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	slip, err := p.payslipService.Get(r.Context(), chi.URLParam(r, "payslipID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, slip)
}

// Update implements PayslipHandler.
func (p *PayslipHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req payslip.UpdatePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdatePayslip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "payslipID")

	updated, err := p.payslipService.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdatePayslip service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payslip updated successfully", updated)
}

// Delete implements PayslipHandler.
func (p *PayslipHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := p.payslipService.Delete(r.Context(), chi.URLParam(r, "payslipID")); err != nil {
		slog.Error("DeletePayslip service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payslip deleted successfully", nil)
}
