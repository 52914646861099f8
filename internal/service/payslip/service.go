package payslip

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/salarybook/salarybook-backend-go/internal/domain/company"
	"github.com/salarybook/salarybook-backend-go/internal/domain/payperiod"
	"github.com/salarybook/salarybook-backend-go/internal/domain/payslip"
	"github.com/salarybook/salarybook-backend-go/internal/pkg/database"
	"github.com/salarybook/salarybook-backend-go/internal/pkg/validator"
	"github.com/salarybook/salarybook-backend-go/internal/repository/postgresql"
)

type PayslipServiceImpl struct {
	db *database.DB
	payslip.PayslipRepository
	companyRepo company.CompanyRepository
}

func NewPayslipService(db *database.DB, payslipRepository payslip.PayslipRepository, companyRepository company.CompanyRepository) payslip.PayslipService {
	return &PayslipServiceImpl{
		db:                db,
		PayslipRepository: payslipRepository,
		companyRepo:       companyRepository,
	}
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

func toItems(reqs []payslip.LineItemRequest) []payslip.PayrollLineItem {
	items := make([]payslip.PayrollLineItem, 0, len(reqs))
	for i, req := range reqs {
		items = append(items, payslip.PayrollLineItem{
			Kind:     payslip.ItemKind(req.Kind),
			Label:    req.Label,
			TermKey:  req.TermKey,
			Amount:   req.Amount,
			Position: i,
		})
	}
	return items
}

func toResponse(slip payslip.PayrollSlip, withItems bool) payslip.PayslipResponse {
	resp := payslip.PayslipResponse{
		ID:              slip.ID,
		CompanyID:       slip.CompanyID,
		CompanyName:     slip.CompanyName,
		SlipDate:        slip.SlipDate.Format("2006-01-02"),
		Currency:        slip.Currency,
		Memo:            slip.Memo,
		GrossAmount:     slip.GrossAmount(),
		DeductionAmount: slip.DeductionAmount(),
		NetAmount:       slip.NetAmount(),
	}
	if withItems {
		resp.Items = make([]payslip.LineItemResponse, 0, len(slip.Items))
		for _, item := range slip.Items {
			resp.Items = append(resp.Items, payslip.LineItemResponse{
				ID:      item.ID,
				Kind:    item.Kind,
				Label:   item.Label,
				TermKey: item.TermKey,
				Amount:  item.Amount,
			})
		}
	}
	return resp
}

// Create implements payslip.PayslipService.
// Subtle: this method shadows the method (PayslipRepository).Create of PayslipServiceImpl.PayslipRepository.
func (s *PayslipServiceImpl) Create(ctx context.Context, req payslip.CreatePayslipRequest) (payslip.PayslipResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	companyData, err := s.companyRepo.GetByID(ctx, req.CompanyID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.PayslipResponse{}, payslip.ErrCompanyNotFound
		}
		return payslip.PayslipResponse{}, fmt.Errorf("failed to get company by ID: %w", err)
	}

	slipDate, _ := validator.IsValidDate(req.SlipDate)

	var newSlip payslip.PayrollSlip
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		var err error
		newSlip, err = s.PayslipRepository.Create(txCtx, payslip.PayrollSlip{
			UserID:    userID,
			CompanyID: companyData.ID,
			SlipDate:  slipDate,
			Currency:  req.Currency,
			Memo:      req.Memo,
			Items:     toItems(req.Items),
		})
		return err
	})
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	newSlip.CompanyName = &companyData.Name
	resp := toResponse(newSlip, true)
	s.attachPeriod(&resp, companyData.Payday, newSlip)
	return resp, nil
}

// attachPeriod resolves the work period covered by the slip. A policy that
// fails to resolve leaves the period fields empty rather than failing the
// whole request.
func (s *PayslipServiceImpl) attachPeriod(resp *payslip.PayslipResponse, policy payperiod.PaydayPolicy, slip payslip.PayrollSlip) {
	period, err := payperiod.Resolve(policy, slip.SlipDate)
	if err != nil {
		return
	}
	start := period.Start.Format("2006-01-02")
	end := period.End.Format("2006-01-02")
	resp.PeriodStart = &start
	resp.PeriodEnd = &end
}

// Get implements payslip.PayslipService.
func (s *PayslipServiceImpl) Get(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	slip, err := s.PayslipRepository.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.PayslipResponse{}, payslip.ErrPayslipNotFound
		}
		return payslip.PayslipResponse{}, fmt.Errorf("failed to get payslip by ID: %w", err)
	}

	resp := toResponse(slip, true)
	if companyData, err := s.companyRepo.GetByID(ctx, slip.CompanyID, userID); err == nil {
		s.attachPeriod(&resp, companyData.Payday, slip)
	}
	return resp, nil
}

// List implements payslip.PayslipService.
func (s *PayslipServiceImpl) List(ctx context.Context, filter payslip.ListFilter) ([]payslip.PayslipResponse, int64, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	slips, total, err := s.PayslipRepository.List(ctx, userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payslips: %w", err)
	}

	responses := make([]payslip.PayslipResponse, 0, len(slips))
	for _, slip := range slips {
		responses = append(responses, toResponse(slip, false))
	}
	return responses, total, nil
}

// Update implements payslip.PayslipService.
func (s *PayslipServiceImpl) Update(ctx context.Context, req payslip.UpdatePayslipRequest) (payslip.PayslipResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.PayslipRepository.Update(txCtx, userID, req); err != nil {
			return err
		}
		if req.Items != nil {
			return s.PayslipRepository.ReplaceItems(txCtx, req.ID, userID, toItems(req.Items))
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.PayslipResponse{}, payslip.ErrPayslipNotFound
		}
		return payslip.PayslipResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Delete implements payslip.PayslipService.
func (s *PayslipServiceImpl) Delete(ctx context.Context, id string) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.PayslipRepository.Delete(ctx, id, userID)
}
