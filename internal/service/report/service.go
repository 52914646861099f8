package report

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/salarybook/salarybook-backend-go/internal/domain/payslip"
	"github.com/salarybook/salarybook-backend-go/internal/domain/report"
	"github.com/salarybook/salarybook-backend-go/internal/pkg/export"
	"github.com/salarybook/salarybook-backend-go/internal/pkg/validator"
)

const fetchPageSize = 500

type ReportServiceImpl struct {
	payslipRepo payslip.PayslipRepository
}

func NewReportService(payslipRepository payslip.PayslipRepository) report.ReportService {
	return &ReportServiceImpl{payslipRepo: payslipRepository}
}

func getUserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func toFilter(req report.SummaryRequest) payslip.ListFilter {
	filter := payslip.ListFilter{CompanyID: req.CompanyID}
	if req.From != "" {
		if from, ok := validator.IsValidDate(req.From); ok {
			filter.From = &from
		}
	}
	if req.To != "" {
		if to, ok := validator.IsValidDate(req.To); ok {
			filter.To = &to
		}
	}
	return filter
}

// fetchSlips pages through every slip matching the filter. Reports cover the
// whole range at once, so the list pagination only bounds query size here.
func (s *ReportServiceImpl) fetchSlips(ctx context.Context, userID string, filter payslip.ListFilter) ([]payslip.PayrollSlip, error) {
	filter.Limit = fetchPageSize

	var slips []payslip.PayrollSlip
	for page := 1; ; page++ {
		filter.Page = page
		batch, total, err := s.payslipRepo.List(ctx, userID, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to list payslips: %w", err)
		}
		slips = append(slips, batch...)
		if len(batch) < fetchPageSize || int64(len(slips)) >= total {
			return slips, nil
		}
	}
}

func (s *ReportServiceImpl) aggregate(ctx context.Context, req report.SummaryRequest) (report.Aggregation, []payslip.PayrollSlip, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return report.Aggregation{}, nil, err
	}
	if err := req.Validate(); err != nil {
		return report.Aggregation{}, nil, err
	}

	slips, err := s.fetchSlips(ctx, userID, toFilter(req))
	if err != nil {
		return report.Aggregation{}, nil, err
	}

	agg, err := report.Aggregate(slips)
	if err != nil {
		return report.Aggregation{}, nil, err
	}
	return agg, slips, nil
}

// Summary implements report.ReportService.
func (s *ReportServiceImpl) Summary(ctx context.Context, req report.SummaryRequest) (report.SummaryResponse, error) {
	agg, _, err := s.aggregate(ctx, req)
	if err != nil {
		return report.SummaryResponse{}, err
	}

	return report.SummaryResponse{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		From:        req.From,
		To:          req.To,
		Aggregation: agg,
	}, nil
}

// ExportCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, req report.ExportRequest) ([]byte, error) {
	agg, slips, err := s.aggregate(ctx, req.SummaryRequest)
	if err != nil {
		return nil, err
	}

	rows, err := report.ToRows(agg, slips, req.Options())
	if err != nil {
		return nil, err
	}
	return export.BuildCSV(rows)
}

// ExportXLSX implements report.ReportService.
func (s *ReportServiceImpl) ExportXLSX(ctx context.Context, req report.ExportRequest) ([]byte, error) {
	agg, slips, err := s.aggregate(ctx, req.SummaryRequest)
	if err != nil {
		return nil, err
	}

	sections, err := report.ToSections(agg, slips, req.Options())
	if err != nil {
		return nil, err
	}
	return export.BuildXLSX(sections)
}

// ExportPDF implements report.ReportService.
func (s *ReportServiceImpl) ExportPDF(ctx context.Context, req report.ExportRequest) ([]byte, error) {
	agg, slips, err := s.aggregate(ctx, req.SummaryRequest)
	if err != nil {
		return nil, err
	}

	sections, err := report.ToSections(agg, slips, req.Options())
	if err != nil {
		return nil, err
	}
	return export.BuildPDF("Payroll Report", sections)
}
