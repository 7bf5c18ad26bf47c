package services

import (
	"grocery-store/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	TestUserID    = "user123"
	TestOtherUser = "user456"
)

func CreateTestProduct(id uint64, name, price string, category domain.Category) *domain.Product {
	return &domain.Product{
		ID:          id,
		Name:        name,
		Category:    category,
		Price:       decimal.RequireFromString(price),
		ImageURL:    "https://example.com/" + name + ".jpg",
		Description: name + " description",
	}
}

func CreateTestCartItem(id, productID uint64, userID string, quantity int) *domain.CartItem {
	return &domain.CartItem{
		ID:        id,
		ProductID: productID,
		UserID:    userID,
		Quantity:  quantity,
	}
}

func CreateTestCheckoutInput(userID string, method domain.PaymentMethod) CheckoutInput {
	return CheckoutInput{
		UserID:        userID,
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "555-0100",
		AddressLine1:  "1 Main St",
		City:          "Springfield",
		State:         "IL",
		ZipCode:       "62701",
		Country:       "USA",
		PaymentMethod: method,
	}
}
