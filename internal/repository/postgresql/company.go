package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/salarybook/salarybook-backend-go/internal/domain/company"
	"github.com/salarybook/salarybook-backend-go/internal/domain/payperiod"
	"github.com/salarybook/salarybook-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

func nullableDay(day int) *int {
	if day == 0 {
		return nil
	}
	return &day
}

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	var kind string
	var payDay, periodStartDay, periodEndDay *int

	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Address, &c.Note, &c.DefaultCurrency,
		&kind, &payDay, &periodStartDay, &periodEndDay,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return company.Company{}, err
	}

	c.Payday.Kind = payperiod.PolicyKind(kind)
	if payDay != nil {
		c.Payday.PayDay = *payDay
	}
	if periodStartDay != nil {
		c.Payday.PeriodStartDay = *periodStartDay
	}
	if periodEndDay != nil {
		c.Payday.PeriodEndDay = *periodEndDay
	}
	return c, nil
}

const companyColumns = `id, user_id, name, address, note, default_currency,
	payday_kind, pay_day, period_start_day, period_end_day, created_at, updated_at`

func (r *companyRepositoryImpl) Create(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `
		INSERT INTO companies (id, user_id, name, address, note, default_currency, payday_kind, pay_day, period_start_day, period_end_day)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		c.ID, c.UserID, c.Name, c.Address, c.Note, c.DefaultCurrency,
		string(c.Payday.Kind), nullableDay(c.Payday.PayDay), nullableDay(c.Payday.PeriodStartDay), nullableDay(c.Payday.PeriodEndDay),
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "companies_user_id_name_key") {
			return company.Company{}, company.ErrCompanyNameExists
		}
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}
	return c, nil
}

func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string, userID string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 AND user_id = $2`
	c, err := scanCompany(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

func (r *companyRepositoryImpl) List(ctx context.Context, userID string) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1 ORDER BY created_at`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *companyRepositoryImpl) ExistsByName(ctx context.Context, userID string, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE user_id = $1 AND name = $2)`, userID, name).Scan(&exists)
	return exists, err
}

func (r *companyRepositoryImpl) Update(ctx context.Context, userID string, req company.UpdateCompanyRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Note != nil {
		updates["note"] = *req.Note
	}
	if req.DefaultCurrency != nil {
		updates["default_currency"] = *req.DefaultCurrency
	}
	if req.Payday != nil {
		policy := req.Payday.Policy()
		updates["payday_kind"] = string(policy.Kind)
		updates["pay_day"] = nullableDay(policy.PayDay)
		updates["period_start_day"] = nullableDay(policy.PeriodStartDay)
		updates["period_end_day"] = nullableDay(policy.PeriodEndDay)
	}
	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for company update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE companies SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND user_id = $%d RETURNING id", i, i+1)
	args = append(args, req.ID, userID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to update company %s: %w", req.ID, err)
	}
	return nil
}

func (r *companyRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		if strings.Contains(err.Error(), "payslips_company_id_fkey") {
			return company.ErrCompanyInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}
