package records_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/servicemarket/internal/adapters/memorystore"
	adapterproviders "github.com/zatekoja/servicemarket/internal/adapters/providers"
	"github.com/zatekoja/servicemarket/internal/adapters/records"
	"github.com/zatekoja/servicemarket/internal/domain/repositories"
	apperrors "github.com/zatekoja/servicemarket/pkg/errors"
)

func strPtr(s string) *string { return &s }

func newServiceRepo() repositories.ServiceRepository {
	return records.NewServiceAdapter(
		memorystore.NewStore(),
		adapterproviders.NewUUIDGenerator(),
		adapterproviders.NewMonotonicClock(),
	)
}

func servicePayload() repositories.ServicePayload {
	return repositories.ServicePayload{
		Name:        "Deep Clean",
		Category:    "Cleaning",
		Provider:    "provider-1",
		Date:        "2024-01-15",
		StartTime:   "09:00",
		EndTime:     "11:00",
		Location:    "Lagos",
		Description: "Full apartment deep clean",
	}
}

func TestServiceAdapter_InsertGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newServiceRepo()

	created, err := repo.Insert(ctx, servicePayload())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.UpdatedAt)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestServiceAdapter_GetNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newServiceRepo()

	_, err := repo.GetByID(ctx, "missing-id")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "missing-id")
}

func TestServiceAdapter_UpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	repo := newServiceRepo()

	created, err := repo.Insert(ctx, servicePayload())
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, repositories.ServiceUpdate{
		Location: strPtr("Abuja"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Abuja", updated.Location)
	require.NotNil(t, updated.UpdatedAt)

	// Every other field is preserved unchanged
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.Provider, updated.Provider)
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, created.StartTime, updated.StartTime)
	assert.Equal(t, created.EndTime, updated.EndTime)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, fetched)
}

func TestServiceAdapter_UpdateNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newServiceRepo()

	_, err := repo.Update(ctx, "missing-id", repositories.ServiceUpdate{Location: strPtr("X")})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestServiceAdapter_RemoveReturnsPriorRecord(t *testing.T) {
	ctx := context.Background()
	repo := newServiceRepo()

	created, err := repo.Insert(ctx, servicePayload())
	require.NoError(t, err)

	removed, err := repo.Remove(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, removed)

	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = repo.Remove(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestServiceAdapter_ListReturnsAll(t *testing.T) {
	ctx := context.Background()
	repo := newServiceRepo()

	for i := 0; i < 3; i++ {
		_, err := repo.Insert(ctx, servicePayload())
		require.NoError(t, err)
	}

	services, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 3)
}

func TestReviewAdapter_InsertAndRemove(t *testing.T) {
	ctx := context.Background()
	repo := records.NewReviewAdapter(
		memorystore.NewStore(),
		adapterproviders.NewUUIDGenerator(),
		adapterproviders.NewMonotonicClock(),
	)

	created, err := repo.Insert(ctx, repositories.ReviewPayload{
		ServiceID: "svc-1",
		UserID:    "user-1",
		Rating:    4.5,
		Comment:   "great",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	removed, err := repo.Remove(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, removed)

	reviews, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestUserAdapter_UpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	repo := records.NewUserAdapter(
		memorystore.NewStore(),
		adapterproviders.NewUUIDGenerator(),
		adapterproviders.NewMonotonicClock(),
	)

	created, err := repo.Insert(ctx, repositories.UserPayload{
		Username: "ada",
		Email:    "ada@example.com",
	})
	require.NoError(t, err)
	assert.Nil(t, created.UpdatedAt)

	updated, err := repo.Update(ctx, created.ID, repositories.UserUpdate{
		Email: strPtr("ada@new.example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ada", updated.Username)
	assert.Equal(t, "ada@new.example.com", updated.Email)
	assert.NotNil(t, updated.UpdatedAt)
}
