package services

import (
	"context"

	"github.com/zatekoja/servicemarket/internal/domain/entities"
	"github.com/zatekoja/servicemarket/internal/domain/repositories"
	"github.com/zatekoja/servicemarket/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/servicemarket/pkg/errors"
)

// UserService handles business logic for user records. A user record
// self-identifies: mutations are authorized against the record's own
// id, so only the user may update or delete themselves.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create validates the payload and persists a new user. Username and
// email uniqueness is not enforced.
func (s *UserService) Create(ctx context.Context, payload repositories.UserPayload) (*entities.User, error) {
	if payload.Username == "" {
		return nil, apperrors.NewValidationError("username is required")
	}
	if payload.Email == "" {
		return nil, apperrors.NewValidationError("email is required")
	}

	user, err := s.repo.Insert(ctx, payload)
	if err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info().
		Str("user_id", user.ID).
		Msg("user created")

	return user, nil
}

// Get retrieves a user by id
func (s *UserService) Get(ctx context.Context, id string) (*entities.User, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all users
func (s *UserService) List(ctx context.Context) ([]*entities.User, error) {
	return s.repo.List(ctx)
}

// Update merges payload over the stored user. The caller must be the
// user themselves.
func (s *UserService) Update(ctx context.Context, id, callerID string, payload repositories.UserUpdate) (*entities.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(user, callerID, "user", id); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info().
		Str("user_id", id).
		Msg("user updated")

	return updated, nil
}

// Delete removes a user and returns the deleted record. The caller
// must be the user themselves.
func (s *UserService) Delete(ctx context.Context, id, callerID string) (*entities.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(user, callerID, "user", id); err != nil {
		return nil, err
	}

	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info().
		Str("user_id", id).
		Msg("user deleted")

	return removed, nil
}
