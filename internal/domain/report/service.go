package report

import "context"

// ReportService builds summaries and export artifacts from the caller's
// payslips.
type ReportService interface {
	Summary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
	ExportCSV(ctx context.Context, req ExportRequest) ([]byte, error)
	ExportXLSX(ctx context.Context, req ExportRequest) ([]byte, error)
	ExportPDF(ctx context.Context, req ExportRequest) ([]byte, error)
}
