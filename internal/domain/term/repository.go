package term

import "context"

// TermRepository defines data access for dictionary terms. Seeded defaults
// have a NULL user id; user rows shadow defaults with the same key.
type TermRepository interface {
	Create(ctx context.Context, t Term) (Term, error)
	GetByID(ctx context.Context, id string, userID string) (Term, error)
	List(ctx context.Context, userID string) ([]Term, error)
	ExistsByKey(ctx context.Context, userID string, key string) (bool, error)
	Update(ctx context.Context, userID string, req UpdateTermRequest) error
	Delete(ctx context.Context, id string, userID string) error
}

type TermService interface {
	Create(ctx context.Context, req CreateTermRequest) (TermResponse, error)
	Get(ctx context.Context, id string) (TermResponse, error)
	List(ctx context.Context) ([]TermResponse, error)
	Update(ctx context.Context, req UpdateTermRequest) (TermResponse, error)
	Delete(ctx context.Context, id string) error

	// ResolveLabels returns key -> label for the locale, user overrides
	// shadowing seeded defaults.
	ResolveLabels(ctx context.Context, locale string) (map[string]string, error)
}
