package term

import (
	"context"
	"strconv"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salarybook/salarybook-backend-go/internal/domain/term"
)

type fakeTermRepo struct {
	terms  []term.Term
	nextID int
}

func (f *fakeTermRepo) Create(ctx context.Context, t term.Term) (term.Term, error) {
	f.nextID++
	t.ID = "term-" + strconv.Itoa(f.nextID)
	f.terms = append(f.terms, t)
	return t, nil
}

func (f *fakeTermRepo) GetByID(ctx context.Context, id string, userID string) (term.Term, error) {
	for _, t := range f.terms {
		if t.ID == id && (t.UserID == nil || *t.UserID == userID) {
			return t, nil
		}
	}
	return term.Term{}, term.ErrTermNotFound
}

func (f *fakeTermRepo) List(ctx context.Context, userID string) ([]term.Term, error) {
	byKey := make(map[string]term.Term)
	for _, t := range f.terms {
		if t.UserID == nil {
			if _, ok := byKey[t.Key]; !ok {
				byKey[t.Key] = t
			}
		} else if *t.UserID == userID {
			byKey[t.Key] = t
		}
	}
	var out []term.Term
	for _, t := range byKey {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTermRepo) ExistsByKey(ctx context.Context, userID string, key string) (bool, error) {
	for _, t := range f.terms {
		if t.UserID != nil && *t.UserID == userID && t.Key == key {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTermRepo) Update(ctx context.Context, userID string, req term.UpdateTermRequest) error {
	for i, t := range f.terms {
		if t.ID == req.ID && t.UserID != nil && *t.UserID == userID {
			if req.Category != nil {
				f.terms[i].Category = term.Category(*req.Category)
			}
			if req.Labels != nil {
				f.terms[i].Labels = req.Labels
			}
			return nil
		}
	}
	return term.ErrTermNotFound
}

func (f *fakeTermRepo) Delete(ctx context.Context, id string, userID string) error {
	for i, t := range f.terms {
		if t.ID == id && t.UserID != nil && *t.UserID == userID {
			f.terms = append(f.terms[:i], f.terms[i+1:]...)
			return nil
		}
	}
	return term.ErrTermNotFound
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func seededDefault(id, key string, labels map[string]string) term.Term {
	return term.Term{ID: id, Key: key, Category: term.CategoryIncome, Labels: labels}
}

func TestCreateShadowsDefault(t *testing.T) {
	repo := &fakeTermRepo{terms: []term.Term{
		seededDefault("default-1", "base_salary", map[string]string{"en": "Base Salary", "ja": "基本給"}),
	}}
	svc := NewTermService(repo)
	ctx := authedContext(t, "user-1")

	created, err := svc.Create(ctx, term.CreateTermRequest{
		Key:      "base_salary",
		Category: "income",
		Labels:   map[string]string{"en": "Monthly Base"},
	})
	require.NoError(t, err)
	assert.False(t, created.IsDefault)

	labels, err := svc.ResolveLabels(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, "Monthly Base", labels["base_salary"])
}

func TestCreateDuplicateKey(t *testing.T) {
	repo := &fakeTermRepo{}
	svc := NewTermService(repo)
	ctx := authedContext(t, "user-1")

	req := term.CreateTermRequest{
		Key:      "bonus",
		Category: "income",
		Labels:   map[string]string{"en": "Bonus"},
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, term.ErrTermKeyExists)
}

func TestUpdateDefaultIsReadOnly(t *testing.T) {
	repo := &fakeTermRepo{terms: []term.Term{
		seededDefault("default-1", "base_salary", map[string]string{"en": "Base Salary"}),
	}}
	svc := NewTermService(repo)
	ctx := authedContext(t, "user-1")

	category := "other"
	_, err := svc.Update(ctx, term.UpdateTermRequest{ID: "default-1", Category: &category})
	assert.ErrorIs(t, err, term.ErrDefaultReadOnly)

	err = svc.Delete(ctx, "default-1")
	assert.ErrorIs(t, err, term.ErrDefaultReadOnly)
}

func TestResolveLabelsLocaleFallback(t *testing.T) {
	repo := &fakeTermRepo{terms: []term.Term{
		seededDefault("default-1", "income_tax", map[string]string{"en": "Income Tax", "ja": "所得税"}),
		seededDefault("default-2", "health_insurance", map[string]string{"en": "Health Insurance"}),
	}}
	svc := NewTermService(repo)
	ctx := authedContext(t, "user-1")

	labels, err := svc.ResolveLabels(ctx, "ja")
	require.NoError(t, err)
	assert.Equal(t, "所得税", labels["income_tax"])
	// No Japanese label, falls back to English.
	assert.Equal(t, "Health Insurance", labels["health_insurance"])
}

func TestCreateValidation(t *testing.T) {
	svc := NewTermService(&fakeTermRepo{})
	ctx := authedContext(t, "user-1")

	_, err := svc.Create(ctx, term.CreateTermRequest{Key: "", Category: "nope", Labels: nil})
	assert.Error(t, err)
}
