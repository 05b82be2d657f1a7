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

// ReviewAdapter implements the ReviewRepository interface over one
// ordered key-value store. Reviews are never updated in place.
type ReviewAdapter struct {
	store storage.Store
	ids   providers.IDGenerator
	clock providers.Clock
}

// NewReviewAdapter creates a new review record adapter
func NewReviewAdapter(store storage.Store, ids providers.IDGenerator, clock providers.Clock) repositories.ReviewRepository {
	return &ReviewAdapter{
		store: store,
		ids:   ids,
		clock: clock,
	}
}

// Insert persists a new review under a generated id and returns it
func (a *ReviewAdapter) Insert(ctx context.Context, payload repositories.ReviewPayload) (*entities.Review, error) {
	review := &entities.Review{
		ID:        a.ids.NewID(),
		ServiceID: payload.ServiceID,
		UserID:    payload.UserID,
		Rating:    payload.Rating,
		Comment:   payload.Comment,
		CreatedAt: a.clock.Now(),
	}

	value, err := json.Marshal(review)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode review record", err)
	}
	if err := a.store.Put(ctx, review.ID, value); err != nil {
		return nil, err
	}
	return review, nil
}

// GetByID retrieves a review by id
func (a *ReviewAdapter) GetByID(ctx context.Context, id string) (*entities.Review, error) {
	value, err := a.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return decodeReview(value)
}

// Remove deletes a review and returns the prior record value
func (a *ReviewAdapter) Remove(ctx context.Context, id string) (*entities.Review, error) {
	review, err := a.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := a.store.Delete(ctx, id); err != nil {
		return nil, err
	}
	return review, nil
}

// List retrieves all reviews in store key order
func (a *ReviewAdapter) List(ctx context.Context) ([]*entities.Review, error) {
	values, err := a.store.List(ctx)
	if err != nil {
		return nil, err
	}

	reviews := make([]*entities.Review, 0, len(values))
	for _, value := range values {
		review, err := decodeReview(value)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func decodeReview(value []byte) (*entities.Review, error) {
	review := &entities.Review{}
	if err := json.Unmarshal(value, review); err != nil {
		return nil, apperrors.NewInternalError("failed to decode review record", err)
	}
	return review, nil
}
