package records

import (
	"context"
	"encoding/json"

	"github.com/zatekoja/servicemarket/internal/domain/entities"
	"github.com/zatekoja/servicemarket/internal/domain/providers"
	"github.com/zatekoja/servicemarket/internal/domain/repositories"
	"github.com/zatekoja/servicemarket/internal/domain/storage"
	apperrors "github.com/zatekoja/servicemarket/pkg/errors"
)

// UserAdapter implements the UserRepository interface over one ordered
// key-value store.
type UserAdapter struct {
	store storage.Store
	ids   providers.IDGenerator
	clock providers.Clock
}

// NewUserAdapter creates a new user record adapter
func NewUserAdapter(store storage.Store, ids providers.IDGenerator, clock providers.Clock) repositories.UserRepository {
	return &UserAdapter{
		store: store,
		ids:   ids,
		clock: clock,
	}
}

// Insert persists a new user under a generated id and returns it
func (a *UserAdapter) Insert(ctx context.Context, payload repositories.UserPayload) (*entities.User, error) {
	user := &entities.User{
		ID:        a.ids.NewID(),
		Username:  payload.Username,
		Email:     payload.Email,
		CreatedAt: a.clock.Now(),
	}

	if err := a.put(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user by id
func (a *UserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	value, err := a.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return decodeUser(value)
}

// Update merges payload over the stored user and stamps UpdatedAt
func (a *UserAdapter) Update(ctx context.Context, id string, payload repositories.UserUpdate) (*entities.User, error) {
	user, err := a.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Username != nil {
		user.Username = *payload.Username
	}
	if payload.Email != nil {
		user.Email = *payload.Email
	}

	now := a.clock.Now()
	user.UpdatedAt = &now

	if err := a.put(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Remove deletes a user and returns the prior record value
func (a *UserAdapter) Remove(ctx context.Context, id string) (*entities.User, error) {
	user, err := a.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := a.store.Delete(ctx, id); err != nil {
		return nil, err
	}
	return user, nil
}

// List retrieves all users in store key order
func (a *UserAdapter) List(ctx context.Context) ([]*entities.User, error) {
	values, err := a.store.List(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(values))
	for _, value := range values {
		user, err := decodeUser(value)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (a *UserAdapter) put(ctx context.Context, user *entities.User) error {
	value, err := json.Marshal(user)
	if err != nil {
		return apperrors.NewInternalError("failed to encode user record", err)
	}
	return a.store.Put(ctx, user.ID, value)
}

func decodeUser(value []byte) (*entities.User, error) {
	user := &entities.User{}
	if err := json.Unmarshal(value, user); err != nil {
		return nil, apperrors.NewInternalError("failed to decode user record", err)
	}
	return user, nil
}
