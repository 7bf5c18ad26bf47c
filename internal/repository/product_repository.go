package repository

import (
	"context"

	"grocery-store/internal/domain"
)

// ProductRepository lookups return (nil, nil) when no row matches.
type ProductRepository interface {
	FindAllSortedByName(ctx context.Context) ([]domain.Product, error)
	FindByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error)
	SearchByName(ctx context.Context, name string) ([]domain.Product, error)
	FindByID(ctx context.Context, id uint64) (*domain.Product, error)
	Save(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint64) (bool, error)
}
