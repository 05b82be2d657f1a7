package repositories

import (
	"context"

	"github.com/zatekoja/servicemarket/internal/domain/entities"
)

// ReviewPayload carries the caller-supplied fields for a new review.
type ReviewPayload struct {
	ServiceID string
	UserID    string
	Rating    float64
	Comment   string
}

// ReviewRepository defines the interface for review record operations.
// Reviews have no update operation.
type ReviewRepository interface {
	// Insert persists a new review under a generated id and returns it
	Insert(ctx context.Context, payload ReviewPayload) (*entities.Review, error)

	// GetByID retrieves a review by id
	GetByID(ctx context.Context, id string) (*entities.Review, error)

	// Remove deletes a review and returns the prior record value
	Remove(ctx context.Context, id string) (*entities.Review, error)

	// List retrieves all reviews in store key order
	List(ctx context.Context) ([]*entities.Review, error)
}
