package term

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/salarybook/salarybook-backend-go/internal/domain/term"
)

type TermServiceImpl struct {
	term.TermRepository
}

func NewTermService(termRepository term.TermRepository) term.TermService {
	return &TermServiceImpl{TermRepository: termRepository}
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

func toTermResponse(t term.Term) term.TermResponse {
	return term.TermResponse{
		ID:        t.ID,
		Key:       t.Key,
		Category:  t.Category,
		Labels:    t.Labels,
		IsDefault: t.UserID == nil,
	}
}

// Create implements term.TermService. Creating a term whose key matches a
// seeded default is allowed; the user row shadows the default from then on.
// Subtle: this method shadows the method (TermRepository).Create of TermServiceImpl.TermRepository.
func (s *TermServiceImpl) Create(ctx context.Context, req term.CreateTermRequest) (term.TermResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return term.TermResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return term.TermResponse{}, err
	}

	exists, err := s.TermRepository.ExistsByKey(ctx, userID, req.Key)
	if err != nil {
		return term.TermResponse{}, fmt.Errorf("failed to check term key: %w", err)
	}
	if exists {
		return term.TermResponse{}, term.ErrTermKeyExists
	}

	newTerm, err := s.TermRepository.Create(ctx, term.Term{
		UserID:   &userID,
		Key:      req.Key,
		Category: term.Category(req.Category),
		Labels:   req.Labels,
	})
	if err != nil {
		return term.TermResponse{}, err
	}

	return toTermResponse(newTerm), nil
}

// Get implements term.TermService.
func (s *TermServiceImpl) Get(ctx context.Context, id string) (term.TermResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return term.TermResponse{}, err
	}

	t, err := s.TermRepository.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return term.TermResponse{}, term.ErrTermNotFound
		}
		return term.TermResponse{}, err
	}

	return toTermResponse(t), nil
}

// List implements term.TermService.
func (s *TermServiceImpl) List(ctx context.Context) ([]term.TermResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	terms, err := s.TermRepository.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list terms: %w", err)
	}

	responses := make([]term.TermResponse, 0, len(terms))
	for _, t := range terms {
		responses = append(responses, toTermResponse(t))
	}
	return responses, nil
}

// Update implements term.TermService.
func (s *TermServiceImpl) Update(ctx context.Context, req term.UpdateTermRequest) (term.TermResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return term.TermResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return term.TermResponse{}, err
	}

	current, err := s.TermRepository.GetByID(ctx, req.ID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return term.TermResponse{}, term.ErrTermNotFound
		}
		return term.TermResponse{}, err
	}
	if current.UserID == nil {
		return term.TermResponse{}, term.ErrDefaultReadOnly
	}

	if err := s.TermRepository.Update(ctx, userID, req); err != nil {
		return term.TermResponse{}, err
	}

	updated, err := s.TermRepository.GetByID(ctx, req.ID, userID)
	if err != nil {
		return term.TermResponse{}, fmt.Errorf("failed to reload term %s: %w", req.ID, err)
	}
	return toTermResponse(updated), nil
}

// Delete implements term.TermService.
func (s *TermServiceImpl) Delete(ctx context.Context, id string) error {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return err
	}

	current, err := s.TermRepository.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return term.ErrTermNotFound
		}
		return err
	}
	if current.UserID == nil {
		return term.ErrDefaultReadOnly
	}

	return s.TermRepository.Delete(ctx, id, userID)
}

// ResolveLabels implements term.TermService.
func (s *TermServiceImpl) ResolveLabels(ctx context.Context, locale string) (map[string]string, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	terms, err := s.TermRepository.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list terms: %w", err)
	}

	labels := make(map[string]string, len(terms))
	for _, t := range terms {
		labels[t.Key] = t.LabelFor(locale)
	}
	return labels, nil
}
