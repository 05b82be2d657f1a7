package services_test

import (
	"github.com/zatekoja/servicemarket/internal/adapters/memorystore"
	adapterproviders "github.com/zatekoja/servicemarket/internal/adapters/providers"
	"github.com/zatekoja/servicemarket/internal/adapters/records"
	"github.com/zatekoja/servicemarket/internal/domain/repositories"
)

func strPtr(s string) *string { return &s }

func newRepos() (repositories.ServiceRepository, repositories.ReviewRepository, repositories.UserRepository) {
	ids := adapterproviders.NewUUIDGenerator()
	clock := adapterproviders.NewMonotonicClock()

	return records.NewServiceAdapter(memorystore.NewStore(), ids, clock),
		records.NewReviewAdapter(memorystore.NewStore(), ids, clock),
		records.NewUserAdapter(memorystore.NewStore(), ids, clock)
}

func validService(provider string) repositories.ServicePayload {
	return repositories.ServicePayload{
		Name:        "Deep Clean",
		Category:    "Cleaning",
		Provider:    provider,
		Date:        "2024-01-15",
		StartTime:   "09:00",
		EndTime:     "11:00",
		Location:    "Lagos",
		Description: "Full apartment deep clean",
	}
}
