package services

import (
	"context"
	"fmt"

	"github.com/zatekoja/servicemarket/internal/domain/entities"
	"github.com/zatekoja/servicemarket/internal/domain/repositories"
	"github.com/zatekoja/servicemarket/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/servicemarket/pkg/errors"
)

// ReviewService handles business logic for review records. Reviews
// are immutable after creation except for deletion by their author.
type ReviewService struct {
	repo        repositories.ReviewRepository
	serviceRepo repositories.ServiceRepository
}

// NewReviewService creates a new review service
func NewReviewService(repo repositories.ReviewRepository, serviceRepo repositories.ServiceRepository) *ReviewService {
	return &ReviewService{
		repo:        repo,
		serviceRepo: serviceRepo,
	}
}

// Add validates the payload, checks that the referenced service exists
// at this moment, and persists a new review. User existence is not
// checked; the userID reference is a convention only. The service
// reference is likewise not re-checked after creation, so deleting a
// service leaves its reviews orphaned.
func (s *ReviewService) Add(ctx context.Context, payload repositories.ReviewPayload) (*entities.Review, error) {
	if err := validateReviewPayload(payload); err != nil {
		return nil, err
	}

	if _, err := s.serviceRepo.GetByID(ctx, payload.ServiceID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("service with id %s not found", payload.ServiceID))
		}
		return nil, err
	}

	review, err := s.repo.Insert(ctx, payload)
	if err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info().
		Str("review_id", review.ID).
		Str("service_id", review.ServiceID).
		Msg("review created")

	return review, nil
}

// Get retrieves a review by id
func (s *ReviewService) Get(ctx context.Context, id string) (*entities.Review, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all reviews
func (s *ReviewService) List(ctx context.Context) ([]*entities.Review, error) {
	return s.repo.List(ctx)
}

// Delete removes a review and returns the deleted record. The caller
// must be the review's author.
func (s *ReviewService) Delete(ctx context.Context, id, callerID string) (*entities.Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(review, callerID, "review", id); err != nil {
		return nil, err
	}

	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info().
		Str("review_id", id).
		Msg("review deleted")

	return removed, nil
}

func validateReviewPayload(payload repositories.ReviewPayload) error {
	if payload.ServiceID == "" {
		return apperrors.NewValidationError("service_id is required")
	}
	if payload.UserID == "" {
		return apperrors.NewValidationError("user_id is required")
	}
	if payload.Comment == "" {
		return apperrors.NewValidationError("comment is required")
	}
	// Bounds are inclusive: 0 and 5 are both valid ratings
	if payload.Rating < 0 || payload.Rating > 5 {
		return apperrors.NewValidationError("rating must be between 0 and 5")
	}
	return nil
}
