package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salarybook/salarybook-backend-go/internal/domain/payslip"
	"github.com/salarybook/salarybook-backend-go/internal/domain/report"
)

type fakePayslipRepo struct {
	slips []payslip.PayrollSlip
}

func (f *fakePayslipRepo) Create(ctx context.Context, slip payslip.PayrollSlip) (payslip.PayrollSlip, error) {
	f.slips = append(f.slips, slip)
	return slip, nil
}

func (f *fakePayslipRepo) GetByID(ctx context.Context, id string, userID string) (payslip.PayrollSlip, error) {
	for _, slip := range f.slips {
		if slip.ID == id && slip.UserID == userID {
			return slip, nil
		}
	}
	return payslip.PayrollSlip{}, payslip.ErrPayslipNotFound
}

func (f *fakePayslipRepo) List(ctx context.Context, userID string, filter payslip.ListFilter) ([]payslip.PayrollSlip, int64, error) {
	var matched []payslip.PayrollSlip
	for _, slip := range f.slips {
		if slip.UserID != userID {
			continue
		}
		if filter.CompanyID != nil && slip.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.From != nil && slip.SlipDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && slip.SlipDate.After(*filter.To) {
			continue
		}
		matched = append(matched, slip)
	}

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakePayslipRepo) Update(ctx context.Context, userID string, req payslip.UpdatePayslipRequest) error {
	return nil
}

func (f *fakePayslipRepo) ReplaceItems(ctx context.Context, slipID string, userID string, items []payslip.PayrollLineItem) error {
	return nil
}

func (f *fakePayslipRepo) Delete(ctx context.Context, id string, userID string) error {
	return nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func testSlip(userID, companyID, companyName, date, currency string, gross, deductions float64) payslip.PayrollSlip {
	slipDate, _ := time.Parse("2006-01-02", date)
	return payslip.PayrollSlip{
		ID:          companyID + "-" + date,
		UserID:      userID,
		CompanyID:   companyID,
		SlipDate:    slipDate,
		Currency:    currency,
		CompanyName: &companyName,
		Items: []payslip.PayrollLineItem{
			{Kind: payslip.ItemKindIncome, Label: "Base Salary", Amount: decimal.NewFromFloat(gross)},
			{Kind: payslip.ItemKindDeduction, Label: "Income Tax", Amount: decimal.NewFromFloat(deductions)},
		},
	}
}

func TestSummary(t *testing.T) {
	repo := &fakePayslipRepo{slips: []payslip.PayrollSlip{
		testSlip("user-1", "c1", "Acme", "2024-01-25", "JPY", 300000, 45000),
		testSlip("user-1", "c1", "Acme", "2024-02-25", "JPY", 310000, 46000),
		testSlip("user-2", "c9", "Other", "2024-01-25", "USD", 9999, 0),
	}}
	svc := NewReportService(repo)

	resp, err := svc.Summary(authedContext(t, "user-1"), report.SummaryRequest{})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Aggregation.SlipCount)
	assert.Equal(t, "JPY", resp.Aggregation.Currency)
	assert.True(t, resp.Aggregation.Totals.Gross.Equal(decimal.NewFromInt(610000)))
	assert.True(t, resp.Aggregation.Totals.Net.Equal(decimal.NewFromInt(519000)))
	assert.Len(t, resp.Aggregation.Monthly, 2)
	assert.Len(t, resp.Aggregation.Yearly, 1)
	assert.NotEmpty(t, resp.GeneratedAt)
}

func TestSummaryDateRangeFilter(t *testing.T) {
	repo := &fakePayslipRepo{slips: []payslip.PayrollSlip{
		testSlip("user-1", "c1", "Acme", "2024-01-25", "JPY", 300000, 45000),
		testSlip("user-1", "c1", "Acme", "2024-02-25", "JPY", 310000, 46000),
		testSlip("user-1", "c1", "Acme", "2024-03-25", "JPY", 320000, 47000),
	}}
	svc := NewReportService(repo)

	resp, err := svc.Summary(authedContext(t, "user-1"), report.SummaryRequest{
		From: "2024-02-01",
		To:   "2024-02-29",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Aggregation.SlipCount)
	assert.Equal(t, "2024-02", resp.Aggregation.Monthly[0].Key)
}

func TestSummaryInvalidRange(t *testing.T) {
	svc := NewReportService(&fakePayslipRepo{})

	_, err := svc.Summary(authedContext(t, "user-1"), report.SummaryRequest{
		From: "2024-03-01",
		To:   "2024-01-01",
	})
	assert.Error(t, err)
}

func TestSummaryMixedCurrencies(t *testing.T) {
	repo := &fakePayslipRepo{slips: []payslip.PayrollSlip{
		testSlip("user-1", "c1", "Acme", "2024-01-25", "JPY", 300000, 45000),
		testSlip("user-1", "c2", "Globex", "2024-01-31", "USD", 5000, 800),
	}}
	svc := NewReportService(repo)

	_, err := svc.Summary(authedContext(t, "user-1"), report.SummaryRequest{})
	var mixedErr *report.MixedCurrencyError
	require.ErrorAs(t, err, &mixedErr)
	assert.ElementsMatch(t, []string{"JPY", "USD"}, mixedErr.Currencies)
}

func TestExportCSV(t *testing.T) {
	repo := &fakePayslipRepo{slips: []payslip.PayrollSlip{
		testSlip("user-1", "c1", "Acme", "2024-01-25", "JPY", 300000, 45000),
	}}
	svc := NewReportService(repo)

	data, err := svc.ExportCSV(authedContext(t, "user-1"), report.ExportRequest{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, report.RowHeader, records[0])
	assert.Equal(t, []string{"2024-01-25", "Acme", "300000", "255000", "45000", "JPY"}, records[1])
}

func TestExportCSVEmptyIsHeaderOnly(t *testing.T) {
	svc := NewReportService(&fakePayslipRepo{})

	data, err := svc.ExportCSV(authedContext(t, "user-1"), report.ExportRequest{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, report.RowHeader, records[0])
}

func TestExportRequireDataEmpty(t *testing.T) {
	svc := NewReportService(&fakePayslipRepo{})
	req := report.ExportRequest{RequireData: true}
	ctx := authedContext(t, "user-1")

	_, err := svc.ExportCSV(ctx, req)
	var emptyErr *report.EmptyAggregationError
	assert.ErrorAs(t, err, &emptyErr)

	_, err = svc.ExportPDF(ctx, req)
	assert.ErrorAs(t, err, &emptyErr)
}

func TestExportPDF(t *testing.T) {
	repo := &fakePayslipRepo{slips: []payslip.PayrollSlip{
		testSlip("user-1", "c1", "Acme", "2024-01-25", "JPY", 300000, 45000),
	}}
	svc := NewReportService(repo)

	data, err := svc.ExportPDF(authedContext(t, "user-1"), report.ExportRequest{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExportXLSX(t *testing.T) {
	repo := &fakePayslipRepo{slips: []payslip.PayrollSlip{
		testSlip("user-1", "c1", "Acme", "2024-01-25", "JPY", 300000, 45000),
	}}
	svc := NewReportService(repo)

	data, err := svc.ExportXLSX(authedContext(t, "user-1"), report.ExportRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestFetchSlipsPagination(t *testing.T) {
	repo := &fakePayslipRepo{}
	base, _ := time.Parse("2006-01-02", "2023-01-01")
	for i := 0; i < fetchPageSize+3; i++ {
		slip := testSlip("user-1", "c1", "Acme", base.AddDate(0, 0, i).Format("2006-01-02"), "JPY", 1000, 100)
		repo.slips = append(repo.slips, slip)
	}
	svc := NewReportService(repo)

	resp, err := svc.Summary(authedContext(t, "user-1"), report.SummaryRequest{})
	require.NoError(t, err)
	assert.Equal(t, fetchPageSize+3, resp.Aggregation.SlipCount)
}

func TestMissingClaims(t *testing.T) {
	svc := NewReportService(&fakePayslipRepo{})

	_, err := svc.Summary(context.Background(), report.SummaryRequest{})
	assert.Error(t, err)
}
