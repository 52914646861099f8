package company

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/salarybook/salarybook-backend-go/internal/domain/company"
	"github.com/salarybook/salarybook-backend-go/internal/domain/payperiod"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
}

func NewCompanyService(companyRepository company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{CompanyRepository: companyRepository}
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

func toPaydayResponse(policy payperiod.PaydayPolicy) company.PaydayPolicyResponse {
	resp := company.PaydayPolicyResponse{Kind: string(policy.Kind)}
	switch policy.Kind {
	case payperiod.KindCustomDay:
		payDay := policy.PayDay
		resp.PayDay = &payDay
	case payperiod.KindCustomPeriod:
		payDay := policy.PayDay
		startDay := policy.PeriodStartDay
		endDay := policy.PeriodEndDay
		resp.PayDay = &payDay
		resp.PeriodStartDay = &startDay
		resp.PeriodEndDay = &endDay
	}
	return resp
}

func toCompanyResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		Address:         c.Address,
		Note:            c.Note,
		DefaultCurrency: c.DefaultCurrency,
		Payday:          toPaydayResponse(c.Payday),
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
}

// Create implements company.CompanyService.
// Subtle: this method shadows the method (CompanyRepository).Create of CompanyServiceImpl.CompanyRepository.
func (s *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	exists, err := s.CompanyRepository.ExistsByName(ctx, userID, req.Name)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to check company name: %w", err)
	}
	if exists {
		return company.CompanyResponse{}, company.ErrCompanyNameExists
	}

	newCompany, err := s.CompanyRepository.Create(ctx, company.Company{
		UserID:          userID,
		Name:            req.Name,
		Address:         req.Address,
		Note:            req.Note,
		DefaultCurrency: req.DefaultCurrency,
		Payday:          req.Payday.Policy(),
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return toCompanyResponse(newCompany), nil
}

// Get implements company.CompanyService.
func (s *CompanyServiceImpl) Get(ctx context.Context, id string) (company.CompanyResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	companyData, err := s.CompanyRepository.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.CompanyResponse{}, company.ErrCompanyNotFound
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to get company by ID: %w", err)
	}

	return toCompanyResponse(companyData), nil
}

// List implements company.CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	companies, err := s.CompanyRepository.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, toCompanyResponse(c))
	}
	return responses, nil
}

// Update implements company.CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	if req.Name != nil {
		current, err := s.CompanyRepository.GetByID(ctx, req.ID, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return company.CompanyResponse{}, company.ErrCompanyNotFound
			}
			return company.CompanyResponse{}, fmt.Errorf("failed to get company by ID: %w", err)
		}
		if current.Name != *req.Name {
			exists, err := s.CompanyRepository.ExistsByName(ctx, userID, *req.Name)
			if err != nil {
				return company.CompanyResponse{}, fmt.Errorf("failed to check company name: %w", err)
			}
			if exists {
				return company.CompanyResponse{}, company.ErrCompanyNameExists
			}
		}
	}

	if err := s.CompanyRepository.Update(ctx, userID, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.CompanyResponse{}, company.ErrCompanyNotFound
		}
		return company.CompanyResponse{}, fmt.Errorf("failed to update company %s: %w", req.ID, err)
	}

	companyData, err := s.CompanyRepository.GetByID(ctx, req.ID, userID)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to reload company %s: %w", req.ID, err)
	}

	return toCompanyResponse(companyData), nil
}

// Delete implements company.CompanyService.
func (s *CompanyServiceImpl) Delete(ctx context.Context, id string) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.CompanyRepository.Delete(ctx, id, userID)
}

// ResolvePayPeriod implements company.CompanyService.
func (s *CompanyServiceImpl) ResolvePayPeriod(ctx context.Context, companyID string, slipDate time.Time) (company.PayPeriodResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return company.PayPeriodResponse{}, err
	}

	companyData, err := s.CompanyRepository.GetByID(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.PayPeriodResponse{}, company.ErrCompanyNotFound
		}
		return company.PayPeriodResponse{}, fmt.Errorf("failed to get company by ID: %w", err)
	}

	period, err := payperiod.Resolve(companyData.Payday, slipDate)
	if err != nil {
		return company.PayPeriodResponse{}, err
	}

	return company.PayPeriodResponse{
		Start: period.Start.Format("2006-01-02"),
		End:   period.End.Format("2006-01-02"),
	}, nil
}
