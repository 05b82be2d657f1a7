package services

import (
	"context"
	"strings"

	"github.com/zatekoja/servicemarket/internal/domain/entities"
	"github.com/zatekoja/servicemarket/internal/domain/repositories"
)

// ServiceQueryService handles read-only filtered views over the
// service collection. Every query is a linear scan over the full
// repository enumeration; there are no secondary indexes.
type ServiceQueryService struct {
	repo repositories.ServiceRepository
}

// NewServiceQueryService creates a new service query service
func NewServiceQueryService(repo repositories.ServiceRepository) *ServiceQueryService {
	return &ServiceQueryService{repo: repo}
}

// ByCategory returns services whose category matches exactly,
// case-insensitively.
func (s *ServiceQueryService) ByCategory(ctx context.Context, category string) ([]*entities.Service, error) {
	return s.filter(ctx, func(service *entities.Service) bool {
		return strings.EqualFold(service.Category, category)
	})
}

// ByProvider returns services whose provider matches exactly,
// case-insensitively.
func (s *ServiceQueryService) ByProvider(ctx context.Context, provider string) ([]*entities.Service, error) {
	return s.filter(ctx, func(service *entities.Service) bool {
		return strings.EqualFold(service.Provider, provider)
	})
}

// ByDateRange returns services with start <= date <= end under
// lexicographic string comparison. Callers must supply dates in a
// lexicographically-sortable format such as ISO 8601 for the range to
// behave chronologically; no parsing is performed here.
func (s *ServiceQueryService) ByDateRange(ctx context.Context, start, end string) ([]*entities.Service, error) {
	return s.filter(ctx, func(service *entities.Service) bool {
		return service.Date >= start && service.Date <= end
	})
}

func (s *ServiceQueryService) filter(ctx context.Context, keep func(*entities.Service) bool) ([]*entities.Service, error) {
	services, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entities.Service, 0)
	for _, service := range services {
		if keep(service) {
			matched = append(matched, service)
		}
	}
	return matched, nil
}
