package repository

import (
	"context"

	"grocery-store/internal/domain"
)

type CartRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]domain.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID string, productID uint64) (*domain.CartItem, error)
	FindByID(ctx context.Context, id uint64) (*domain.CartItem, error)
	Save(ctx context.Context, item *domain.CartItem) error
	DeleteByID(ctx context.Context, id uint64) error
	DeleteByUserID(ctx context.Context, userID string) error
	CountItems(ctx context.Context, userID string) (int, error)
}
