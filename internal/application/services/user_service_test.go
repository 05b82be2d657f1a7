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

func TestUserService_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	_, _, userRepo := newRepos()
	svc := services.NewUserService(userRepo)

	created, err := svc.Create(ctx, repositories.UserPayload{
		Username: "ada",
		Email:    "ada@example.com",
	})
	require.NoError(t, err)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestUserService_CreateRejectsMissingFields(t *testing.T) {
	ctx := context.Background()
	_, _, userRepo := newRepos()
	svc := services.NewUserService(userRepo)

	_, err := svc.Create(ctx, repositories.UserPayload{Email: "ada@example.com"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(ctx, repositories.UserPayload{Username: "ada"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUserService_DuplicateUsernamesAllowed(t *testing.T) {
	ctx := context.Background()
	_, _, userRepo := newRepos()
	svc := services.NewUserService(userRepo)

	payload := repositories.UserPayload{Username: "ada", Email: "ada@example.com"}

	first, err := svc.Create(ctx, payload)
	require.NoError(t, err)
	second, err := svc.Create(ctx, payload)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestUserService_OnlySelfMayMutate(t *testing.T) {
	ctx := context.Background()
	_, _, userRepo := newRepos()
	svc := services.NewUserService(userRepo)

	created, err := svc.Create(ctx, repositories.UserPayload{
		Username: "ada",
		Email:    "ada@example.com",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, "someone-else", repositories.UserUpdate{
		Username: strPtr("eve"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))

	_, err = svc.Delete(ctx, created.ID, "someone-else")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))

	updated, err := svc.Update(ctx, created.ID, created.ID, repositories.UserUpdate{
		Username: strPtr("ada2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ada2", updated.Username)
	assert.Equal(t, "ada@example.com", updated.Email)

	removed, err := svc.Delete(ctx, created.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, removed)
}
