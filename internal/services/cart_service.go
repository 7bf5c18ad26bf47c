package services

import (
	"context"
	"fmt"

	"grocery-store/internal/domain"
	"grocery-store/internal/repository"

	"github.com/shopspring/decimal"
)

// CartView is the priced, read-only projection of a user's cart. It is
// always computed fresh against current product rows, never cached, so a
// catalog price change shows up in an unconverted cart immediately.
type CartView struct {
	UserID      string
	Items       []CartLineView
	TotalItems  int
	TotalAmount decimal.Decimal
}

// CartLineView joins one cart line with its live product. Product-derived
// fields stay empty when the product no longer resolves; such a line still
// counts toward TotalItems but contributes nothing to TotalAmount.
type CartLineView struct {
	ID                 uint64
	ProductID          uint64
	Quantity           int
	ProductName        string
	ProductPrice       decimal.Decimal
	ProductImageURL    string
	ProductCategory    domain.Category
	ProductDescription string
	Subtotal           decimal.Decimal
}

type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart prices the user's cart by looking up each line's product.
func (s *CartService) GetCart(ctx context.Context, userID string) (*CartView, error) {
	items, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{
		UserID:      userID,
		Items:       make([]CartLineView, 0, len(items)),
		TotalAmount: decimal.Zero,
	}

	for _, item := range items {
		line := CartLineView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		view.TotalItems += item.Quantity

		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			line.ProductName = product.Name
			line.ProductPrice = product.Price
			line.ProductImageURL = product.ImageURL
			line.ProductCategory = product.Category
			line.ProductDescription = product.Description
			line.Subtotal = product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			view.TotalAmount = view.TotalAmount.Add(line.Subtotal)
		}

		view.Items = append(view.Items, line)
	}

	return view, nil
}

// AddToCart creates a line for (user, product) or increments an existing one.
func (s *CartService) AddToCart(ctx context.Context, userID string, productID uint64, quantity int) (*domain.CartItem, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: %d", ErrProductNotFound, productID)
	}

	existing, err := s.cartRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Quantity += quantity
		if err := s.cartRepo.Save(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	item := &domain.CartItem{
		ProductID: productID,
		UserID:    userID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) UpdateCartItemQuantity(ctx context.Context, itemID uint64, quantity int) (*domain.CartItem, error) {
	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %d", ErrCartItemNotFound, itemID)
	}

	item.Quantity = quantity
	if err := s.cartRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveFromCart deletes the line only when it belongs to userID. A false
// return does not say whether the line was missing or owned by someone else.
func (s *CartService) RemoveFromCart(ctx context.Context, itemID uint64, userID string) (bool, error) {
	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return false, err
	}
	if item == nil || item.UserID != userID {
		return false, nil
	}

	if err := s.cartRepo.DeleteByID(ctx, itemID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	return s.cartRepo.DeleteByUserID(ctx, userID)
}

func (s *CartService) GetCartItemCount(ctx context.Context, userID string) (int, error) {
	return s.cartRepo.CountItems(ctx, userID)
}

func (s *CartService) IsProductInCart(ctx context.Context, userID string, productID uint64) (bool, error) {
	item, err := s.cartRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return false, err
	}
	return item != nil, nil
}

// GetCartItem returns the line only when it is owned by userID, nil otherwise.
func (s *CartService) GetCartItem(ctx context.Context, itemID uint64, userID string) (*domain.CartItem, error) {
	item, err := s.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.UserID != userID {
		return nil, nil
	}
	return item, nil
}
