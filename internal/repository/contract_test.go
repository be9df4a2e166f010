package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "stockroom/internal/errors"
	"stockroom/internal/model"
)

func ptr[T any](v T) *T { return &v }

func testUserRepository(t *testing.T, repo UserRepository) {
	ctx := context.Background()

	alice := &model.User{Name: "Alice", Username: "alice", Password: "hash-1"}
	require.NoError(t, repo.Create(ctx, alice))
	assert.NotZero(t, alice.ID)

	dup := &model.User{Name: "Other", Username: "alice", Password: "hash-2"}
	assert.ErrorIs(t, repo.Create(ctx, dup), apperrors.ErrUsernameTaken)

	got, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "hash-1", got.Password)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	_, err = repo.FindByID(ctx, alice.ID+1000)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	require.NoError(t, repo.Update(ctx, alice.ID, model.UserPatch{Name: ptr("Alice B")}))
	got, err = repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", got.Name)
	assert.Equal(t, "hash-1", got.Password)

	require.NoError(t, repo.Update(ctx, alice.ID, model.UserPatch{Password: ptr("hash-3")}))
	got, err = repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", got.Name)
	assert.Equal(t, "hash-3", got.Password)

	assert.ErrorIs(t, repo.Update(ctx, alice.ID+1000, model.UserPatch{Name: ptr("x")}), apperrors.ErrUserNotFound)
}

func testConcurrentSignup(t *testing.T, repo UserRepository) {
	ctx := context.Background()
	const n = 8

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(ctx, &model.User{Name: "Racer", Username: "racer", Password: "h"})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	}
	assert.Equal(t, 1, succeeded)
}

func testProductRepository(t *testing.T, repo ProductRepository) {
	ctx := context.Background()

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	a := &model.Product{PName: "A", Price: 10, Stock: 5}
	require.NoError(t, repo.Create(ctx, a))
	b := &model.Product{PName: "B", Description: ptr("second"), Price: 0, Stock: 0}
	require.NoError(t, repo.Create(ctx, b))
	assert.Greater(t, b.PID, a.PID)
	assert.False(t, a.CreatedAt.IsZero())

	products, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, a.PID, products[0].PID)
	assert.Equal(t, b.PID, products[1].PID)

	got, err := repo.FindByID(ctx, b.PID)
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, "second", *got.Description)

	require.NoError(t, repo.Update(ctx, a.PID, model.ProductPatch{Stock: ptr(3)}))
	got, err = repo.FindByID(ctx, a.PID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.PName)
	assert.Equal(t, 10.0, got.Price)
	assert.Equal(t, 3, got.Stock)
	assert.Nil(t, got.Description)

	require.NoError(t, repo.Update(ctx, b.PID, model.ProductPatch{Description: model.NewNullable("renamed")}))
	got, err = repo.FindByID(ctx, b.PID)
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, "renamed", *got.Description)

	require.NoError(t, repo.Update(ctx, b.PID, model.ProductPatch{Description: model.Null[string]()}))
	got, err = repo.FindByID(ctx, b.PID)
	require.NoError(t, err)
	assert.Nil(t, got.Description)
	assert.Equal(t, "B", got.PName)

	// unchanged values must not be mistaken for a missing row
	require.NoError(t, repo.Update(ctx, a.PID, model.ProductPatch{Stock: ptr(3)}))
	require.NoError(t, repo.Update(ctx, a.PID, model.ProductPatch{}))

	assert.ErrorIs(t, repo.Update(ctx, b.PID+1000, model.ProductPatch{Stock: ptr(1)}), apperrors.ErrProductNotFound)
	_, err = repo.FindByID(ctx, b.PID+1000)
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)

	deleted, err := repo.Delete(ctx, a.PID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.Delete(ctx, a.PID)
	require.NoError(t, err)
	assert.False(t, deleted)

	products, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, b.PID, products[0].PID)
}
