// Package servicemarket assembles the record repositories, query
// layer and application services over a configurable ordered
// key-value store backend.
package servicemarket

import (
	"fmt"

	"github.com/zatekoja/servicemarket/internal/adapters/database"
	"github.com/zatekoja/servicemarket/internal/adapters/memorystore"
	adapterproviders "github.com/zatekoja/servicemarket/internal/adapters/providers"
	"github.com/zatekoja/servicemarket/internal/adapters/records"
	"github.com/zatekoja/servicemarket/internal/adapters/redisstore"
	appservices "github.com/zatekoja/servicemarket/internal/application/services"
	"github.com/zatekoja/servicemarket/internal/domain/storage"
	"github.com/zatekoja/servicemarket/internal/infrastructure/clients/postgres"
	redisclient "github.com/zatekoja/servicemarket/internal/infrastructure/clients/redis"
	"github.com/zatekoja/servicemarket/internal/infrastructure/observability"
	queryservices "github.com/zatekoja/servicemarket/internal/query/services"
	"github.com/zatekoja/servicemarket/pkg/config"
)

// Backend exposes the assembled operation surface: one application
// service per collection for mutations and direct reads, and one
// query service per collection for the filtered and aggregated views.
type Backend struct {
	Services *appservices.ServiceService
	Reviews  *appservices.ReviewService
	Users    *appservices.UserService

	ServiceQueries *queryservices.ServiceQueryService
	ReviewQueries  *queryservices.ReviewQueryService
	UserQueries    *queryservices.UserQueryService

	closers []func() error
}

// Open builds a Backend against the store backend selected by cfg.
func Open(cfg *config.Config) (*Backend, error) {
	observability.InitLogger(cfg.Logging.ServiceName, cfg.Logging.Environment)

	backend := &Backend{}

	var serviceStore, reviewStore, userStore storage.Store
	switch cfg.Storage.Backend {
	case "memory":
		serviceStore = memorystore.NewStore()
		reviewStore = memorystore.NewStore()
		userStore = memorystore.NewStore()

	case "postgres":
		client, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			return nil, err
		}
		backend.closers = append(backend.closers, client.Close)
		serviceStore = database.NewStoreAdapter(client, storage.CollectionServices)
		reviewStore = database.NewStoreAdapter(client, storage.CollectionReviews)
		userStore = database.NewStoreAdapter(client, storage.CollectionUsers)

	case "redis":
		client, err := redisclient.NewClient(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		backend.closers = append(backend.closers, client.Close)
		serviceStore = redisstore.NewStoreAdapter(client, storage.CollectionServices)
		reviewStore = redisstore.NewStoreAdapter(client, storage.CollectionReviews)
		userStore = redisstore.NewStoreAdapter(client, storage.CollectionUsers)

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	ids := adapterproviders.NewUUIDGenerator()
	clock := adapterproviders.NewMonotonicClock()

	serviceRepo := records.NewServiceAdapter(serviceStore, ids, clock)
	reviewRepo := records.NewReviewAdapter(reviewStore, ids, clock)
	userRepo := records.NewUserAdapter(userStore, ids, clock)

	backend.Services = appservices.NewServiceService(serviceRepo)
	backend.Reviews = appservices.NewReviewService(reviewRepo, serviceRepo)
	backend.Users = appservices.NewUserService(userRepo)

	backend.ServiceQueries = queryservices.NewServiceQueryService(serviceRepo)
	backend.ReviewQueries = queryservices.NewReviewQueryService(reviewRepo)
	backend.UserQueries = queryservices.NewUserQueryService(userRepo)

	return backend, nil
}

// Close releases any store client connections held by the backend.
func (b *Backend) Close() error {
	var firstErr error
	for _, closeFn := range b.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
