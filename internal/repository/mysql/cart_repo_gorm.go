package mysql

import (
	"context"
	"errors"

	"grocery-store/internal/domain"
	"grocery-store/internal/repository"

	"gorm.io/gorm"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) FindByUserID(ctx context.Context, userID string) ([]domain.CartItem, error) {
	var out []domain.CartItem
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cartRepo) FindByUserAndProduct(ctx context.Context, userID string, productID uint64) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.WithContext(ctx).Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepo) FindByID(ctx context.Context, id uint64) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Save inserts a new line or rewrites an existing one by primary key.
func (r *cartRepo) Save(ctx context.Context, item *domain.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartRepo) DeleteByID(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&domain.CartItem{}, id).Error
}

func (r *cartRepo) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.CartItem{}).Error
}

func (r *cartRepo) CountItems(ctx context.Context, userID string) (int, error) {
	var total int
	err := r.db.WithContext(ctx).
		Model(&domain.CartItem{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
