package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/servicemarket/internal/application/services"
	"github.com/zatekoja/servicemarket/internal/domain/repositories"
	apperrors "github.com/zatekoja/servicemarket/pkg/errors"
)

func TestServiceService_AddThenGet(t *testing.T) {
	ctx := context.Background()
	serviceRepo, _, _ := newRepos()
	svc := services.NewServiceService(serviceRepo)

	created, err := svc.Add(ctx, validService("provider-1"))
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestServiceService_AddRejectsMissingFields(t *testing.T) {
	ctx := context.Background()
	serviceRepo, _, _ := newRepos()
	svc := services.NewServiceService(serviceRepo)

	payload := validService("provider-1")
	payload.Name = ""

	_, err := svc.Add(ctx, payload)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestServiceService_UpdateUnauthorizedLeavesRecordUnchanged(t *testing.T) {
	ctx := context.Background()
	serviceRepo, _, _ := newRepos()
	svc := services.NewServiceService(serviceRepo)

	created, err := svc.Add(ctx, validService("provider-1"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, "someone-else", repositories.ServiceUpdate{
		Location: strPtr("Abuja"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestServiceService_AuthorizationIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	serviceRepo, _, _ := newRepos()
	svc := services.NewServiceService(serviceRepo)

	created, err := svc.Add(ctx, validService("Provider-1"))
	require.NoError(t, err)

	_, err = svc.Delete(ctx, created.ID, "provider-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestServiceService_UpdateMissingIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	serviceRepo, _, _ := newRepos()
	svc := services.NewServiceService(serviceRepo)

	_, err := svc.Update(ctx, "missing-id", "provider-1", repositories.ServiceUpdate{
		Location: strPtr("Abuja"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestServiceService_UpdateLocationChangesOnlyLocation(t *testing.T) {
	ctx := context.Background()
	serviceRepo, _, _ := newRepos()
	svc := services.NewServiceService(serviceRepo)

	created, err := svc.Add(ctx, validService("provider-1"))
	require.NoError(t, err)

	updated, err := svc.UpdateLocation(ctx, created.ID, "provider-1", "Abuja")
	require.NoError(t, err)

	assert.Equal(t, "Abuja", updated.Location)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Description, updated.Description)
}

func TestServiceService_UpdateDescription(t *testing.T) {
	ctx := context.Background()
	serviceRepo, _, _ := newRepos()
	svc := services.NewServiceService(serviceRepo)

	created, err := svc.Add(ctx, validService("provider-1"))
	require.NoError(t, err)

	updated, err := svc.UpdateDescription(ctx, created.ID, "provider-1", "Now with balcony cleaning")
	require.NoError(t, err)
	assert.Equal(t, "Now with balcony cleaning", updated.Description)
	assert.Equal(t, created.Location, updated.Location)
}

func TestServiceService_DeleteReturnsPriorRecord(t *testing.T) {
	ctx := context.Background()
	serviceRepo, _, _ := newRepos()
	svc := services.NewServiceService(serviceRepo)

	created, err := svc.Add(ctx, validService("provider-1"))
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, created.ID, "provider-1")
	require.NoError(t, err)
	assert.Equal(t, created, removed)

	_, err = svc.Get(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestServiceService_DeleteMissingIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	serviceRepo, _, _ := newRepos()
	svc := services.NewServiceService(serviceRepo)

	_, err := svc.Delete(ctx, "missing-id", "provider-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
