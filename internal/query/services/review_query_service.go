package services

import (
	"context"
	"fmt"

	"github.com/zatekoja/servicemarket/internal/domain/entities"
	"github.com/zatekoja/servicemarket/internal/domain/repositories"
	apperrors "github.com/zatekoja/servicemarket/pkg/errors"
)

// ReviewQueryService handles read-only filtered and aggregated views
// over the review collection.
type ReviewQueryService struct {
	repo repositories.ReviewRepository
}

// NewReviewQueryService creates a new review query service
func NewReviewQueryService(repo repositories.ReviewRepository) *ReviewQueryService {
	return &ReviewQueryService{repo: repo}
}

// ForService returns reviews whose serviceID matches exactly.
func (s *ReviewQueryService) ForService(ctx context.Context, serviceID string) ([]*entities.Review, error) {
	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entities.Review, 0)
	for _, review := range reviews {
		if review.ServiceID == serviceID {
			matched = append(matched, review)
		}
	}
	return matched, nil
}

// AverageRating returns the arithmetic mean of the ratings of the
// service's reviews, or a NO_REVIEWS error when the service has none.
func (s *ReviewQueryService) AverageRating(ctx context.Context, serviceID string) (float64, error) {
	reviews, err := s.ForService(ctx, serviceID)
	if err != nil {
		return 0, err
	}
	if len(reviews) == 0 {
		return 0, apperrors.NewNoReviewsError(fmt.Sprintf("no reviews for service %s", serviceID))
	}

	var sum float64
	for _, review := range reviews {
		sum += review.Rating
	}
	return sum / float64(len(reviews)), nil
}
