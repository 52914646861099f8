package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/salarybook/salarybook-backend-go/internal/domain/term"
	"github.com/salarybook/salarybook-backend-go/internal/pkg/database"
)

type termRepositoryImpl struct {
	db *database.DB
}

func NewTermRepository(db *database.DB) term.TermRepository {
	return &termRepositoryImpl{db: db}
}

func scanTerm(row pgx.Row) (term.Term, error) {
	var t term.Term
	var category string
	err := row.Scan(&t.ID, &t.UserID, &t.Key, &category, &t.Labels, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return term.Term{}, err
	}
	t.Category = term.Category(category)
	return t, nil
}

const termColumns = `id, user_id, key, category, labels, created_at, updated_at`

func (r *termRepositoryImpl) Create(ctx context.Context, t term.Term) (term.Term, error) {
	q := GetQuerier(ctx, r.db)

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
		INSERT INTO terms (id, user_id, key, category, labels)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, t.ID, t.UserID, t.Key, string(t.Category), t.Labels).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "idx_terms_user_key") {
			return term.Term{}, term.ErrTermKeyExists
		}
		return term.Term{}, fmt.Errorf("failed to create term: %w", err)
	}
	return t, nil
}

func (r *termRepositoryImpl) GetByID(ctx context.Context, id string, userID string) (term.Term, error) {
	q := GetQuerier(ctx, r.db)

	// Defaults (NULL user_id) are visible to every user.
	query := `SELECT ` + termColumns + ` FROM terms WHERE id = $1 AND (user_id = $2 OR user_id IS NULL)`
	t, err := scanTerm(q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return term.Term{}, term.ErrTermNotFound
		}
		return term.Term{}, err
	}
	return t, nil
}

func (r *termRepositoryImpl) List(ctx context.Context, userID string) ([]term.Term, error) {
	q := GetQuerier(ctx, r.db)

	// User rows shadow defaults with the same key.
	query := `
		SELECT DISTINCT ON (key) ` + termColumns + `
		FROM terms
		WHERE user_id = $1 OR user_id IS NULL
		ORDER BY key, user_id NULLS LAST
	`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []term.Term
	for rows.Next() {
		t, err := scanTerm(rows)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

func (r *termRepositoryImpl) ExistsByKey(ctx context.Context, userID string, key string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM terms WHERE user_id = $1 AND key = $2)`, userID, key).Scan(&exists)
	return exists, err
}

func (r *termRepositoryImpl) Update(ctx context.Context, userID string, req term.UpdateTermRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Labels != nil {
		updates["labels"] = req.Labels
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

	// Only user-owned rows are updatable; defaults are read-only.
	sql := "UPDATE terms SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND user_id = $%d RETURNING id", i, i+1)
	args = append(args, req.ID, userID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return term.ErrTermNotFound
		}
		return fmt.Errorf("failed to update term %s: %w", req.ID, err)
	}
	return nil
}

func (r *termRepositoryImpl) Delete(ctx context.Context, id string, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM terms WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return term.ErrTermNotFound
	}
	return nil
}
