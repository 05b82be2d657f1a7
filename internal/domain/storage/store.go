package storage

import "context"

// Store is the ordered key-value collaborator backing one record
// collection. Keys are opaque record ids; values are encoded records.
// Implementations must return a NOT_FOUND application error from Get
// and Delete when the key is absent, and List must return values in
// ascending key order.
type Store interface {
	// Put persists value under key, replacing any existing value
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the value stored under key
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes the value stored under key
	Delete(ctx context.Context, key string) error

	// List returns all values in ascending key order
	List(ctx context.Context) ([][]byte, error)
}

// Collection names used to namespace stores that share one backend.
const (
	CollectionServices = "services"
	CollectionReviews  = "reviews"
	CollectionUsers    = "users"
)
