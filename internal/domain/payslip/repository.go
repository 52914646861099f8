package payslip

import "context"

// PayslipRepository defines data access for payslips and their line items.
// All methods take userID to prevent cross-user data access.
type PayslipRepository interface {
	Create(ctx context.Context, slip PayrollSlip) (PayrollSlip, error)
	GetByID(ctx context.Context, id string, userID string) (PayrollSlip, error)
	List(ctx context.Context, userID string, filter ListFilter) ([]PayrollSlip, int64, error)
	Update(ctx context.Context, userID string, req UpdatePayslipRequest) error
	ReplaceItems(ctx context.Context, slipID string, userID string, items []PayrollLineItem) error
	Delete(ctx context.Context, id string, userID string) error
}

// PayslipService is the application surface consumed by HTTP handlers.
type PayslipService interface {
	Create(ctx context.Context, req CreatePayslipRequest) (PayslipResponse, error)
	Get(ctx context.Context, id string) (PayslipResponse, error)
	List(ctx context.Context, filter ListFilter) ([]PayslipResponse, int64, error)
	Update(ctx context.Context, req UpdatePayslipRequest) (PayslipResponse, error)
	Delete(ctx context.Context, id string) error
}
