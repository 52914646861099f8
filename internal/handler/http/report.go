package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/salarybook/salarybook-backend-go/internal/domain/report"
	"github.com/salarybook/salarybook-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportXLSX(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func parseSummaryRequest(r *http.Request) report.SummaryRequest {
	query := r.URL.Query()
	req := report.SummaryRequest{
		From: query.Get("from"),
		To:   query.Get("to"),
	}
	if companyID := query.Get("company_id"); companyID != "" {
		req.CompanyID = &companyID
	}
	return req
}

func parseExportRequest(r *http.Request) report.ExportRequest {
	query := r.URL.Query()
	req := report.ExportRequest{SummaryRequest: parseSummaryRequest(r)}

	if raw := query.Get("include_charts"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			req.IncludeCharts = &v
		}
	}
	if raw := query.Get("include_tables"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			req.IncludeTables = &v
		}
	}
	if raw := query.Get("require_data"); raw != "" {
		req.RequireData, _ = strconv.ParseBool(raw)
	}
	return req
}

func exportFilename(ext string) string {
	return fmt.Sprintf("payroll-report-%s.%s", time.Now().Format("2006-01-02"), ext)
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

// Summary implements ReportHandler.
func (h *ReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.Summary(r.Context(), parseSummaryRequest(r))
	if err != nil {
		slog.Error("ReportSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// ExportCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.reportService.ExportCSV(r.Context(), parseExportRequest(r))
	if err != nil {
		slog.Error("ExportCSV service error", "error", err)
		response.HandleError(w, err)
		return
	}
	writeAttachment(w, "text/csv", exportFilename("csv"), data)
}

// ExportXLSX implements ReportHandler.
func (h *ReportHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	data, err := h.reportService.ExportXLSX(r.Context(), parseExportRequest(r))
	if err != nil {
		slog.Error("ExportXLSX service error", "error", err)
		response.HandleError(w, err)
		return
	}
	writeAttachment(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", exportFilename("xlsx"), data)
}

// ExportPDF implements ReportHandler.
func (h *ReportHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	data, err := h.reportService.ExportPDF(r.Context(), parseExportRequest(r))
	if err != nil {
		slog.Error("ExportPDF service error", "error", err)
		response.HandleError(w, err)
		return
	}
	writeAttachment(w, "application/pdf", exportFilename("pdf"), data)
}
