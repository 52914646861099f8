package company

import (
	"context"
	"time"
)

// CompanyRepository defines data access for companies. All methods take
// userID to prevent cross-user data access.
type CompanyRepository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id string, userID string) (Company, error)
	List(ctx context.Context, userID string) ([]Company, error)
	ExistsByName(ctx context.Context, userID string, name string) (bool, error)
	Update(ctx context.Context, userID string, req UpdateCompanyRequest) error
	Delete(ctx context.Context, id string, userID string) error
}

// CompanyService is the application surface consumed by HTTP handlers.
type CompanyService interface {
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	Get(ctx context.Context, id string) (CompanyResponse, error)
	List(ctx context.Context) ([]CompanyResponse, error)
	Update(ctx context.Context, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, id string) error

	// ResolvePayPeriod answers which work period a slip dated slipDate at
	// this company covers, using the company's payday policy.
	ResolvePayPeriod(ctx context.Context, companyID string, slipDate time.Time) (PayPeriodResponse, error)
}
