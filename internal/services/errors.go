package services

import "errors"

var (
	// ErrEmptyCart rejects a checkout against a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty, cannot process checkout")

	// ErrProductNotFound covers both cart-add against an unknown product and
	// a checkout snapshot racing a catalog delete.
	ErrProductNotFound = errors.New("product not found")

	ErrCartItemNotFound = errors.New("cart item not found")
	ErrOrderNotFound    = errors.New("order not found")

	// ErrPaymentDeclined is returned after the order has already been
	// persisted and moved to CANCELLED.
	ErrPaymentDeclined = errors.New("payment processing failed, order has been cancelled")
)
