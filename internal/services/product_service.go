package services

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"grocery-store/internal/domain"
	"grocery-store/internal/repository"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const (
	catalogCacheKey = "products:all"
	categoryKey     = "products:category:"
	catalogCacheTTL = time.Minute
)

type ProductService struct {
	repo        repository.ProductRepository
	redisClient *redis.Client
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// GetAllProducts lists the catalog sorted by name, through the listing cache
// when Redis is wired.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if cached, ok := s.cachedList(ctx, catalogCacheKey); ok {
		return cached, nil
	}

	products, err := s.repo.FindAllSortedByName(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheList(ctx, catalogCacheKey, products)
	return products, nil
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	key := categoryKey + string(category)
	if cached, ok := s.cachedList(ctx, key); ok {
		return cached, nil
	}

	products, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	s.cacheList(ctx, key, products)
	return products, nil
}

// SearchProductsByName always hits the store; search terms make poor cache keys.
func (s *ProductService) SearchProductsByName(ctx context.Context, name string) ([]domain.Product, error) {
	return s.repo.SearchByName(ctx, name)
}

func (s *ProductService) GetProductByID(ctx context.Context, id uint64) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, product *domain.Product) error {
	if err := s.repo.Save(ctx, product); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

// UpdateProduct replaces name/category/price/image/description. Returns
// (nil, nil) when the id does not exist.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint64, details *domain.Product) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	product.Name = details.Name
	product.Category = details.Category
	product.Price = details.Price
	product.ImageURL = details.ImageURL
	product.Description = details.Description

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateListings(ctx)
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.invalidateListings(ctx)
	}
	return deleted, nil
}

// WarmupCatalogCache primes the listing keys concurrently at startup.
func (s *ProductService) WarmupCatalogCache(ctx context.Context) error {
	if s.redisClient == nil {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := s.GetAllProducts(ctx)
		return err
	})
	for _, category := range domain.Categories() {
		category := category
		g.Go(func() error {
			_, err := s.GetProductsByCategory(ctx, category)
			return err
		})
	}
	return g.Wait()
}

func (s *ProductService) cachedList(ctx context.Context, key string) ([]domain.Product, bool) {
	if s.redisClient == nil {
		return nil, false
	}
	cached, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var products []domain.Product
	if err := json.Unmarshal([]byte(cached), &products); err != nil {
		return nil, false
	}
	return products, true
}

func (s *ProductService) cacheList(ctx context.Context, key string, products []domain.Product) {
	if s.redisClient == nil {
		return
	}
	if data, err := json.Marshal(products); err == nil {
		s.redisClient.Set(ctx, key, data, catalogCacheTTL)
	}
}

// invalidateListings drops every listing key after a catalog write so the
// next read sees current prices.
func (s *ProductService) invalidateListings(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	keys := []string{catalogCacheKey}
	for _, category := range domain.Categories() {
		keys = append(keys, categoryKey+string(category))
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		logger.Warn().Err(err).Msg("failed to invalidate catalog cache")
	}
}
