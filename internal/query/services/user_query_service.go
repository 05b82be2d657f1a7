package services

import (
	"context"
	"strings"

	"github.com/zatekoja/servicemarket/internal/domain/entities"
	"github.com/zatekoja/servicemarket/internal/domain/repositories"
)

// UserQueryService handles read-only substring searches over the user
// collection.
type UserQueryService struct {
	repo repositories.UserRepository
}

// NewUserQueryService creates a new user query service
func NewUserQueryService(repo repositories.UserRepository) *UserQueryService {
	return &UserQueryService{repo: repo}
}

// ByUsername returns users whose username contains the query,
// case-insensitively.
func (s *UserQueryService) ByUsername(ctx context.Context, query string) ([]*entities.User, error) {
	return s.search(ctx, query, func(user *entities.User) string {
		return user.Username
	})
}

// ByEmail returns users whose email contains the query,
// case-insensitively.
func (s *UserQueryService) ByEmail(ctx context.Context, query string) ([]*entities.User, error) {
	return s.search(ctx, query, func(user *entities.User) string {
		return user.Email
	})
}

func (s *UserQueryService) search(ctx context.Context, query string, field func(*entities.User) string) ([]*entities.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := make([]*entities.User, 0)
	for _, user := range users {
		if strings.Contains(strings.ToLower(field(user)), needle) {
			matched = append(matched, user)
		}
	}
	return matched, nil
}
