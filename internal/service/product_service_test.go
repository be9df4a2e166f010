package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "stockroom/internal/errors"
	"stockroom/internal/model"
)

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.PName == "Widget" && p.Price == 0 && p.Stock == 0 && p.Description == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Product).PID = 9
	}).Return(nil)

	svc := NewProductService(mockRepo)
	product, err := svc.CreateProduct(context.Background(), "Widget", nil, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, uint(9), product.PID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProducts_Empty(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("List", mock.Anything).Return([]model.Product(nil), nil)

	products, err := NewProductService(mockRepo).ListProducts(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductService_DeleteProduct(t *testing.T) {
	tests := []struct {
		name          string
		deleted       bool
		repoErr       error
		expectedError error
	}{
		{name: "deleted", deleted: true},
		{name: "not found", deleted: false, expectedError: apperrors.ErrProductNotFound},
		{name: "storage failure", repoErr: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			mockRepo.On("Delete", mock.Anything, uint(4)).Return(tt.deleted, tt.repoErr)

			err := NewProductService(mockRepo).DeleteProduct(context.Background(), 4)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.repoErr != nil:
				assert.ErrorIs(t, err, tt.repoErr)
			default:
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_UpdateProduct_PassesPatchThrough(t *testing.T) {
	stock := 3
	patch := model.ProductPatch{Stock: &stock}

	mockRepo := new(MockProductRepository)
	mockRepo.On("Update", mock.Anything, uint(2), patch).Return(nil)

	require.NoError(t, NewProductService(mockRepo).UpdateProduct(context.Background(), 2, patch))
	mockRepo.AssertExpectations(t)
}
