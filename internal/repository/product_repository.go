package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "stockroom/internal/errors"
	"stockroom/internal/model"
)

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, pid uint) (*model.Product, error)
	// List returns every product ordered by pid ascending.
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, pid uint, patch model.ProductPatch) error
	// Delete reports false when no product has the given pid.
	Delete(ctx context.Context, pid uint) (bool, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository builds a GORM-backed repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, pid uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Where("pid = ?", pid).First(&product).Error; err != nil {
		return nil, notFound(err, apperrors.ErrProductNotFound)
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	if err := r.db.WithContext(ctx).Order("pid ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, pid uint, patch model.ProductPatch) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.Select("pid").Where("pid = ?", pid).First(&product).Error; err != nil {
			return notFound(err, apperrors.ErrProductNotFound)
		}
		cols := patch.Columns()
		if len(cols) == 0 {
			return nil
		}
		return tx.Model(&model.Product{}).Where("pid = ?", pid).Updates(cols).Error
	})
}

func (r *productRepository) Delete(ctx context.Context, pid uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("pid = ?", pid).Delete(&model.Product{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
