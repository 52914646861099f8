package company

import (
	"time"

	"github.com/salarybook/salarybook-backend-go/internal/domain/payperiod"
)

type Company struct {
	ID              string
	UserID          string
	Name            string
	Address         *string
	Note            *string
	DefaultCurrency string
	Payday          payperiod.PaydayPolicy
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
