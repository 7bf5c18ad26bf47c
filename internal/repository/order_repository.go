package repository

import (
	"context"

	"grocery-store/internal/domain"
)

type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	SaveItems(ctx context.Context, items []domain.OrderItem) error
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindByIDWithItems(ctx context.Context, id uint64) (*domain.Order, error)
	FindByUserIDWithItems(ctx context.Context, userID string) ([]domain.Order, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
}
