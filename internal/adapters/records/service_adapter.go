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

// ServiceAdapter implements the ServiceRepository interface over one
// ordered key-value store, keyed by the generated record id.
type ServiceAdapter struct {
	store storage.Store
	ids   providers.IDGenerator
	clock providers.Clock
}

// NewServiceAdapter creates a new service record adapter
func NewServiceAdapter(store storage.Store, ids providers.IDGenerator, clock providers.Clock) repositories.ServiceRepository {
	return &ServiceAdapter{
		store: store,
		ids:   ids,
		clock: clock,
	}
}

// Insert persists a new service under a generated id and returns it
func (a *ServiceAdapter) Insert(ctx context.Context, payload repositories.ServicePayload) (*entities.Service, error) {
	service := &entities.Service{
		ID:          a.ids.NewID(),
		Name:        payload.Name,
		Category:    payload.Category,
		Provider:    payload.Provider,
		Date:        payload.Date,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		Location:    payload.Location,
		Description: payload.Description,
		CreatedAt:   a.clock.Now(),
	}

	if err := a.put(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// GetByID retrieves a service by id
func (a *ServiceAdapter) GetByID(ctx context.Context, id string) (*entities.Service, error) {
	value, err := a.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return decodeService(value)
}

// Update merges payload over the stored service and stamps UpdatedAt.
// Absent payload fields leave the stored fields unchanged.
func (a *ServiceAdapter) Update(ctx context.Context, id string, payload repositories.ServiceUpdate) (*entities.Service, error) {
	service, err := a.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		service.Name = *payload.Name
	}
	if payload.Category != nil {
		service.Category = *payload.Category
	}
	if payload.Date != nil {
		service.Date = *payload.Date
	}
	if payload.StartTime != nil {
		service.StartTime = *payload.StartTime
	}
	if payload.EndTime != nil {
		service.EndTime = *payload.EndTime
	}
	if payload.Location != nil {
		service.Location = *payload.Location
	}
	if payload.Description != nil {
		service.Description = *payload.Description
	}

	now := a.clock.Now()
	service.UpdatedAt = &now

	if err := a.put(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// Remove deletes a service and returns the prior record value
func (a *ServiceAdapter) Remove(ctx context.Context, id string) (*entities.Service, error) {
	service, err := a.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := a.store.Delete(ctx, id); err != nil {
		return nil, err
	}
	return service, nil
}

// List retrieves all services in store key order
func (a *ServiceAdapter) List(ctx context.Context) ([]*entities.Service, error) {
	values, err := a.store.List(ctx)
	if err != nil {
		return nil, err
	}

	services := make([]*entities.Service, 0, len(values))
	for _, value := range values {
		service, err := decodeService(value)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}
	return services, nil
}

func (a *ServiceAdapter) put(ctx context.Context, service *entities.Service) error {
	value, err := json.Marshal(service)
	if err != nil {
		return apperrors.NewInternalError("failed to encode service record", err)
	}
	return a.store.Put(ctx, service.ID, value)
}

func decodeService(value []byte) (*entities.Service, error) {
	service := &entities.Service{}
	if err := json.Unmarshal(value, service); err != nil {
		return nil, apperrors.NewInternalError("failed to decode service record", err)
	}
	return service, nil
}
