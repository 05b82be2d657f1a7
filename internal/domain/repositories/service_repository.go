package repositories

import (
	"context"

	"github.com/zatekoja/servicemarket/internal/domain/entities"
)

// ServicePayload carries the caller-supplied fields for a new service.
// Identity and timestamps are assigned by the repository.
type ServicePayload struct {
	Name        string
	Category    string
	Provider    string
	Date        string
	StartTime   string
	EndTime     string
	Location    string
	Description string
}

// ServiceUpdate carries a partial update for a service. Nil fields are
// left unchanged. Provider is the owner field and is not updatable.
type ServiceUpdate struct {
	Name        *string
	Category    *string
	Date        *string
	StartTime   *string
	EndTime     *string
	Location    *string
	Description *string
}

// ServiceRepository defines the interface for service record operations
type ServiceRepository interface {
	// Insert persists a new service under a generated id and returns it
	Insert(ctx context.Context, payload ServicePayload) (*entities.Service, error)

	// GetByID retrieves a service by id
	GetByID(ctx context.Context, id string) (*entities.Service, error)

	// Update merges payload over the stored service and stamps UpdatedAt
	Update(ctx context.Context, id string, payload ServiceUpdate) (*entities.Service, error)

	// Remove deletes a service and returns the prior record value
	Remove(ctx context.Context, id string) (*entities.Service, error)

	// List retrieves all services in store key order
	List(ctx context.Context) ([]*entities.Service, error)
}
