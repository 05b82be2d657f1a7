package services

import (
	"context"

	"github.com/zatekoja/servicemarket/internal/domain/entities"
	"github.com/zatekoja/servicemarket/internal/domain/repositories"
	"github.com/zatekoja/servicemarket/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/servicemarket/pkg/errors"
)

// ServiceService handles business logic for service records
type ServiceService struct {
	repo repositories.ServiceRepository
}

// NewServiceService creates a new service service
func NewServiceService(repo repositories.ServiceRepository) *ServiceService {
	return &ServiceService{repo: repo}
}

// Add validates the payload and persists a new service
func (s *ServiceService) Add(ctx context.Context, payload repositories.ServicePayload) (*entities.Service, error) {
	if err := validateServicePayload(payload); err != nil {
		return nil, err
	}

	service, err := s.repo.Insert(ctx, payload)
	if err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info().
		Str("service_id", service.ID).
		Str("provider", service.Provider).
		Msg("service created")

	return service, nil
}

// Get retrieves a service by id
func (s *ServiceService) Get(ctx context.Context, id string) (*entities.Service, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all services
func (s *ServiceService) List(ctx context.Context) ([]*entities.Service, error) {
	return s.repo.List(ctx)
}

// Update merges payload over the stored service. The caller must be
// the service's provider.
func (s *ServiceService) Update(ctx context.Context, id, callerID string, payload repositories.ServiceUpdate) (*entities.Service, error) {
	service, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(service, callerID, "service", id); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info().
		Str("service_id", id).
		Msg("service updated")

	return updated, nil
}

// UpdateLocation updates only the service's location
func (s *ServiceService) UpdateLocation(ctx context.Context, id, callerID, location string) (*entities.Service, error) {
	return s.Update(ctx, id, callerID, repositories.ServiceUpdate{Location: &location})
}

// UpdateDescription updates only the service's description
func (s *ServiceService) UpdateDescription(ctx context.Context, id, callerID, description string) (*entities.Service, error) {
	return s.Update(ctx, id, callerID, repositories.ServiceUpdate{Description: &description})
}

// Delete removes a service and returns the deleted record. The caller
// must be the service's provider. Reviews referencing the service are
// left in place; their serviceID becomes an accepted orphan reference.
func (s *ServiceService) Delete(ctx context.Context, id, callerID string) (*entities.Service, error) {
	service, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(service, callerID, "service", id); err != nil {
		return nil, err
	}

	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info().
		Str("service_id", id).
		Msg("service deleted")

	return removed, nil
}

func validateServicePayload(payload repositories.ServicePayload) error {
	required := map[string]string{
		"name":        payload.Name,
		"category":    payload.Category,
		"provider":    payload.Provider,
		"date":        payload.Date,
		"start_time":  payload.StartTime,
		"end_time":    payload.EndTime,
		"location":    payload.Location,
		"description": payload.Description,
	}
	for field, value := range required {
		if value == "" {
			return apperrors.NewValidationError(field + " is required")
		}
	}
	return nil
}
