package mysql

import (
	"context"
	"errors"

	"grocery-store/internal/domain"
	"grocery-store/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) FindAllSortedByName(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) FindByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	var out []domain.Product
	if err := r.db.WithContext(ctx).Where("category = ?", category).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) SearchByName(ctx context.Context, name string) ([]domain.Product, error) {
	var out []domain.Product
	// LIKE is case-insensitive under the default utf8mb4 collation.
	if err := r.db.WithContext(ctx).Where("name LIKE ?", "%"+name+"%").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Save(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Product{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
