package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/salarybook/salarybook-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{UserRepository: userRepository}
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

func toProfileResponse(u user.User) user.ProfileResponse {
	return user.ProfileResponse{
		ID:              u.ID,
		Email:           u.Email,
		DisplayName:     u.DisplayName,
		PreferredLocale: u.PreferredLocale,
		DefaultCurrency: u.DefaultCurrency,
		CreatedAt:       u.CreatedAt.Format(time.RFC3339),
	}
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context) (user.ProfileResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ProfileResponse{}, user.ErrUserNotFound
		}
		return user.ProfileResponse{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return toProfileResponse(userData), nil
}

// UpdateProfile implements user.UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.ProfileResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	if err := s.UserRepository.Update(ctx, userID, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ProfileResponse{}, user.ErrUserNotFound
		}
		return user.ProfileResponse{}, fmt.Errorf("failed to update user %s: %w", userID, err)
	}

	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.ProfileResponse{}, fmt.Errorf("failed to reload user %s: %w", userID, err)
	}

	return toProfileResponse(userData), nil
}
