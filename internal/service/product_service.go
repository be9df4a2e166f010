package service

import (
	"context"
	"fmt"

	apperrors "stockroom/internal/errors"
	"stockroom/internal/model"
	"stockroom/internal/repository"
)

// ProductService exposes inventory operations.
type ProductService interface {
	CreateProduct(ctx context.Context, pname string, description *string, price float64, stock int) (*model.Product, error)
	GetProduct(ctx context.Context, pid uint) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, pid uint, patch model.ProductPatch) error
	DeleteProduct(ctx context.Context, pid uint) error
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService builds a ProductService.
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) CreateProduct(ctx context.Context, pname string, description *string, price float64, stock int) (*model.Product, error) {
	product := &model.Product{
		PName:       pname,
		Description: description,
		Price:       price,
		Stock:       stock,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, pid uint) (*model.Product, error) {
	return s.repo.FindByID(ctx, pid)
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, pid uint, patch model.ProductPatch) error {
	return s.repo.Update(ctx, pid, patch)
}

func (s *productService) DeleteProduct(ctx context.Context, pid uint) error {
	deleted, err := s.repo.Delete(ctx, pid)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !deleted {
		return apperrors.ErrProductNotFound
	}
	return nil
}
