package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/salarybook/salarybook-backend-go/internal/domain/payslip"
	"github.com/salarybook/salarybook-backend-go/internal/pkg/database"
)

type payslipRepositoryImpl struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepositoryImpl{db: db}
}

func (r *payslipRepositoryImpl) Create(ctx context.Context, slip payslip.PayrollSlip) (payslip.PayrollSlip, error) {
	q := GetQuerier(ctx, r.db)

	if slip.ID == "" {
		slip.ID = uuid.New().String()
	}
	query := `
		INSERT INTO payslips (id, user_id, company_id, slip_date, currency, memo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		slip.ID, slip.UserID, slip.CompanyID, slip.SlipDate, slip.Currency, slip.Memo,
	).Scan(&slip.CreatedAt, &slip.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "payslips_company_id_fkey") {
			return payslip.PayrollSlip{}, payslip.ErrCompanyNotFound
		}
		return payslip.PayrollSlip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	if err := r.insertItems(ctx, q, slip.ID, slip.Items); err != nil {
		return payslip.PayrollSlip{}, err
	}
	return r.loadItems(ctx, slip)
}

func (r *payslipRepositoryImpl) insertItems(ctx context.Context, q database.Querier, slipID string, items []payslip.PayrollLineItem) error {
	for i, item := range items {
		id := item.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err := q.Exec(ctx, `
			INSERT INTO payslip_items (id, slip_id, kind, label, term_key, amount, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, id, slipID, string(item.Kind), item.Label, item.TermKey, item.Amount, i)
		if err != nil {
			return fmt.Errorf("failed to insert payslip item %d: %w", i, err)
		}
	}
	return nil
}

func (r *payslipRepositoryImpl) loadItems(ctx context.Context, slip payslip.PayrollSlip) (payslip.PayrollSlip, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, slip_id, kind, label, term_key, amount, position, created_at, updated_at
		FROM payslip_items WHERE slip_id = $1 ORDER BY position
	`, slip.ID)
	if err != nil {
		return payslip.PayrollSlip{}, err
	}
	defer rows.Close()

	slip.Items = nil
	for rows.Next() {
		var item payslip.PayrollLineItem
		var kind string
		err := rows.Scan(&item.ID, &item.SlipID, &kind, &item.Label, &item.TermKey, &item.Amount, &item.Position, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return payslip.PayrollSlip{}, err
		}
		item.Kind = payslip.ItemKind(kind)
		slip.Items = append(slip.Items, item)
	}
	return slip, rows.Err()
}

const slipColumns = `p.id, p.user_id, p.company_id, p.slip_date, p.currency, p.memo, p.created_at, p.updated_at, c.name`

func scanSlip(row pgx.Row) (payslip.PayrollSlip, error) {
	var slip payslip.PayrollSlip
	err := row.Scan(
		&slip.ID, &slip.UserID, &slip.CompanyID, &slip.SlipDate, &slip.Currency, &slip.Memo,
		&slip.CreatedAt, &slip.UpdatedAt, &slip.CompanyName,
	)
	return slip, err
}

func (r *payslipRepositoryImpl) GetByID(ctx context.Context, id string, userID string) (payslip.PayrollSlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + slipColumns + `
		FROM payslips p JOIN companies c ON c.id = p.company_id
		WHERE p.id = $1 AND p.user_id = $2
	`
	slip, err := scanSlip(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.PayrollSlip{}, payslip.ErrPayslipNotFound
		}
		return payslip.PayrollSlip{}, err
	}
	return r.loadItems(ctx, slip)
}

func (r *payslipRepositoryImpl) List(ctx context.Context, userID string, filter payslip.ListFilter) ([]payslip.PayrollSlip, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"p.user_id = $1"}
	args := []interface{}{userID}
	i := 2
	if filter.CompanyID != nil {
		conditions = append(conditions, fmt.Sprintf("p.company_id = $%d", i))
		args = append(args, *filter.CompanyID)
		i++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("p.slip_date >= $%d", i))
		args = append(args, *filter.From)
		i++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("p.slip_date <= $%d", i))
		args = append(args, *filter.To)
		i++
	}
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM payslips p WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + slipColumns + `
		FROM payslips p JOIN companies c ON c.id = p.company_id
		WHERE ` + where + `
		ORDER BY p.slip_date DESC, p.created_at DESC
	`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", i)
		args = append(args, filter.Limit)
		i++
		if filter.Page > 1 {
			query += fmt.Sprintf(" OFFSET $%d", i)
			args = append(args, (filter.Page-1)*filter.Limit)
		}
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var slips []payslip.PayrollSlip
	for rows.Next() {
		slip, err := scanSlip(rows)
		if err != nil {
			return nil, 0, err
		}
		slips = append(slips, slip)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for idx := range slips {
		slips[idx], err = r.loadItems(ctx, slips[idx])
		if err != nil {
			return nil, 0, err
		}
	}
	return slips, total, nil
}

func (r *payslipRepositoryImpl) Update(ctx context.Context, userID string, req payslip.UpdatePayslipRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.SlipDate != nil {
		updates["slip_date"] = *req.SlipDate
	}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}
	if req.Memo != nil {
		updates["memo"] = *req.Memo
	}
	if len(updates) == 0 {
		return nil
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

	sql := "UPDATE payslips SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND user_id = $%d RETURNING id", i, i+1)
	args = append(args, req.ID, userID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.ErrPayslipNotFound
		}
		return fmt.Errorf("failed to update payslip %s: %w", req.ID, err)
	}
	return nil
}

func (r *payslipRepositoryImpl) ReplaceItems(ctx context.Context, slipID string, userID string, items []payslip.PayrollLineItem) error {
	q := GetQuerier(ctx, r.db)

	var ownedID string
	err := q.QueryRow(ctx, `SELECT id FROM payslips WHERE id = $1 AND user_id = $2`, slipID, userID).Scan(&ownedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.ErrPayslipNotFound
		}
		return err
	}

	if _, err := q.Exec(ctx, `DELETE FROM payslip_items WHERE slip_id = $1`, slipID); err != nil {
		return fmt.Errorf("failed to clear payslip items: %w", err)
	}
	return r.insertItems(ctx, q, slipID, items)
}

func (r *payslipRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payslips WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payslip.ErrPayslipNotFound
	}
	return nil
}
