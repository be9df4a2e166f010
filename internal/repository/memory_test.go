package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/model"
)

func TestMemoryUserRepository(t *testing.T) {
	testUserRepository(t, NewMemoryUserRepository())
}

func TestMemoryUserRepository_ConcurrentSignup(t *testing.T) {
	testConcurrentSignup(t, NewMemoryUserRepository())
}

func TestMemoryProductRepository(t *testing.T) {
	testProductRepository(t, NewMemoryProductRepository())
}

func TestMemoryProductRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	p := &model.Product{PName: "A", Description: ptr("orig"), Price: 1, Stock: 1}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.FindByID(ctx, p.PID)
	require.NoError(t, err)
	*got.Description = "mutated"
	got.Stock = 99

	again, err := repo.FindByID(ctx, p.PID)
	require.NoError(t, err)
	assert.Equal(t, "orig", *again.Description)
	assert.Equal(t, 1, again.Stock)
}
