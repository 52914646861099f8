package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salarybook/salarybook-backend-go/internal/domain/report"
)

type fakeReportService struct {
	summary report.SummaryResponse
	csv     []byte
	xlsx    []byte
	pdf     []byte
	err     error
}

func (f *fakeReportService) Summary(ctx context.Context, req report.SummaryRequest) (report.SummaryResponse, error) {
	return f.summary, f.err
}

func (f *fakeReportService) ExportCSV(ctx context.Context, req report.ExportRequest) ([]byte, error) {
	return f.csv, f.err
}

func (f *fakeReportService) ExportXLSX(ctx context.Context, req report.ExportRequest) ([]byte, error) {
	return f.xlsx, f.err
}

func (f *fakeReportService) ExportPDF(ctx context.Context, req report.ExportRequest) ([]byte, error) {
	return f.pdf, f.err
}

func TestSummaryHandler(t *testing.T) {
	handler := NewReportHandler(&fakeReportService{
		summary: report.SummaryResponse{
			GeneratedAt: "2024-06-01T00:00:00Z",
			Aggregation: report.Aggregation{SlipCount: 3, Currency: "JPY"},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/summary?from=2024-01-01&to=2024-06-30", nil)
	rec := httptest.NewRecorder()
	handler.Summary(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                   `json:"success"`
		Data    report.SummaryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 3, body.Data.Aggregation.SlipCount)
}

func TestExportCSVHandlerHeaders(t *testing.T) {
	handler := NewReportHandler(&fakeReportService{csv: []byte("Date,Company\n")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/export/csv", nil)
	rec := httptest.NewRecorder()
	handler.ExportCSV(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")
	assert.Equal(t, "Date,Company\n", rec.Body.String())
}

func TestExportPDFHandlerHeaders(t *testing.T) {
	handler := NewReportHandler(&fakeReportService{pdf: []byte("%PDF-1.3")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/export/pdf", nil)
	rec := httptest.NewRecorder()
	handler.ExportPDF(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
}

func TestExportMixedCurrencyMapsToBadRequest(t *testing.T) {
	handler := NewReportHandler(&fakeReportService{
		err: &report.MixedCurrencyError{Currencies: []string{"JPY", "USD"}},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/export/csv", nil)
	rec := httptest.NewRecorder()
	handler.ExportCSV(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportEmptyAggregationMapsToNotFound(t *testing.T) {
	handler := NewReportHandler(&fakeReportService{err: &report.EmptyAggregationError{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/export/xlsx?require_data=true", nil)
	rec := httptest.NewRecorder()
	handler.ExportXLSX(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
