package http

import (
	"time"

	"grocery-store/internal/domain"
	"grocery-store/internal/services"

	"github.com/shopspring/decimal"
)

// Monetary fields are serialized as two-decimal strings throughout.

type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Description string          `json:"description"`
}

type ProductResponse struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Category    domain.Category `json:"category"`
	Price       string          `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Description string          `json:"description"`
}

func NewProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price.StringFixed(2),
		ImageURL:    p.ImageURL,
		Description: p.Description,
	}
}

func NewProductListResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}

type AddToCartRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateCartRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type CartItemResponse struct {
	ID                 uint64 `json:"id"`
	ProductID          uint64 `json:"productId"`
	ProductName        string `json:"productName,omitempty"`
	ProductPrice       string `json:"productPrice,omitempty"`
	ProductImageURL    string `json:"productImageUrl,omitempty"`
	ProductCategory    string `json:"productCategory,omitempty"`
	ProductDescription string `json:"productDescription,omitempty"`
	Quantity           int    `json:"quantity"`
	Subtotal           string `json:"subtotal,omitempty"`
}

type CartResponse struct {
	UserID      string             `json:"userId"`
	Items       []CartItemResponse `json:"items"`
	TotalItems  int                `json:"totalItems"`
	TotalAmount string             `json:"totalAmount"`
}

func NewCartResponse(view *services.CartView) CartResponse {
	items := make([]CartItemResponse, 0, len(view.Items))
	for _, line := range view.Items {
		item := CartItemResponse{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
		// Product fields stay empty when the referenced product is gone.
		if line.ProductName != "" {
			item.ProductName = line.ProductName
			item.ProductPrice = line.ProductPrice.StringFixed(2)
			item.ProductImageURL = line.ProductImageURL
			item.ProductCategory = string(line.ProductCategory)
			item.ProductDescription = line.ProductDescription
			item.Subtotal = line.Subtotal.StringFixed(2)
		}
		items = append(items, item)
	}
	return CartResponse{
		UserID:      view.UserID,
		Items:       items,
		TotalItems:  view.TotalItems,
		TotalAmount: view.TotalAmount.StringFixed(2),
	}
}

type CheckoutRequest struct {
	UserID               string `json:"userId" binding:"required"`
	FullName             string `json:"fullName" binding:"required"`
	Email                string `json:"email" binding:"required,email"`
	Phone                string `json:"phone" binding:"required"`
	AddressLine1         string `json:"addressLine1" binding:"required"`
	AddressLine2         string `json:"addressLine2"`
	City                 string `json:"city" binding:"required"`
	State                string `json:"state" binding:"required"`
	ZipCode              string `json:"zipCode" binding:"required"`
	Country              string `json:"country" binding:"required"`
	PaymentMethod        string `json:"paymentMethod" binding:"required"`
	PaymentTransactionID string `json:"paymentTransactionId"`
	DeliveryInstructions string `json:"deliveryInstructions"`
}

type AddressInfo struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
}

type OrderItemResponse struct {
	ID                 uint64          `json:"id"`
	ProductID          uint64          `json:"productId"`
	ProductName        string          `json:"productName"`
	ProductDescription string          `json:"productDescription"`
	ProductImageURL    string          `json:"productImageUrl"`
	ProductCategory    domain.Category `json:"productCategory"`
	UnitPrice          string          `json:"unitPrice"`
	Quantity           int             `json:"quantity"`
	Subtotal           string          `json:"subtotal"`
}

type OrderResponse struct {
	OrderID               uint64               `json:"orderId"`
	UserID                string               `json:"userId"`
	OrderDate             time.Time            `json:"orderDate"`
	Status                domain.OrderStatus   `json:"status"`
	FullName              string               `json:"fullName"`
	Email                 string               `json:"email"`
	Phone                 string               `json:"phone"`
	ShippingAddress       AddressInfo          `json:"shippingAddress"`
	Subtotal              string               `json:"subtotal"`
	TaxAmount             string               `json:"taxAmount"`
	TotalAmount           string               `json:"totalAmount"`
	Items                 []OrderItemResponse  `json:"items"`
	PaymentMethod         domain.PaymentMethod `json:"paymentMethod"`
	PaymentTransactionID  string               `json:"paymentTransactionId"`
	EstimatedDeliveryDate time.Time            `json:"estimatedDeliveryDate"`
	DeliveryInstructions  string               `json:"deliveryInstructions"`
}

func NewOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:                 item.ID,
			ProductID:          item.ProductID,
			ProductName:        item.ProductName,
			ProductDescription: item.ProductDescription,
			ProductImageURL:    item.ProductImageURL,
			ProductCategory:    item.ProductCategory,
			UnitPrice:          item.UnitPrice.StringFixed(2),
			Quantity:           item.Quantity,
			Subtotal:           item.Subtotal.StringFixed(2),
		})
	}
	return OrderResponse{
		OrderID:   order.ID,
		UserID:    order.UserID,
		OrderDate: order.OrderDate,
		Status:    order.Status,
		FullName:  order.FullName,
		Email:     order.Email,
		Phone:     order.Phone,
		ShippingAddress: AddressInfo{
			AddressLine1: order.AddressLine1,
			AddressLine2: order.AddressLine2,
			City:         order.City,
			State:        order.State,
			ZipCode:      order.ZipCode,
			Country:      order.Country,
		},
		Subtotal:              order.Subtotal.StringFixed(2),
		TaxAmount:             order.TaxAmount.StringFixed(2),
		TotalAmount:           order.TotalAmount.StringFixed(2),
		Items:                 items,
		PaymentMethod:         order.PaymentMethod,
		PaymentTransactionID:  order.PaymentTransactionID,
		EstimatedDeliveryDate: order.EstimatedDeliveryDate,
		DeliveryInstructions:  order.DeliveryInstructions,
	}
}
