package repositories

import (
	"context"

	"github.com/zatekoja/servicemarket/internal/domain/entities"
)

// UserPayload carries the caller-supplied fields for a new user.
type UserPayload struct {
	Username string
	Email    string
}

// UserUpdate carries a partial update for a user. Nil fields are left
// unchanged.
type UserUpdate struct {
	Username *string
	Email    *string
}

// UserRepository defines the interface for user record operations
type UserRepository interface {
	// Insert persists a new user under a generated id and returns it
	Insert(ctx context.Context, payload UserPayload) (*entities.User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// Update merges payload over the stored user and stamps UpdatedAt
	Update(ctx context.Context, id string, payload UserUpdate) (*entities.User, error)

	// Remove deletes a user and returns the prior record value
	Remove(ctx context.Context, id string) (*entities.User, error)

	// List retrieves all users in store key order
	List(ctx context.Context) ([]*entities.User, error)
}
