package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusConfirmed  OrderStatus = "CONFIRMED"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(strings.ToUpper(s))
	switch st {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("unknown order status: %s", s)
}

// Cancellable reports whether the owner may still cancel the order. Only
// PENDING and CONFIRMED orders qualify.
func (s OrderStatus) Cancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard      PaymentMethod = "DEBIT_CARD"
	PaymentPayPal         PaymentMethod = "PAYPAL"
	PaymentCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToUpper(s))
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentPayPal, PaymentCashOnDelivery:
		return m, nil
	}
	return "", fmt.Errorf("unknown payment method: %s", s)
}

// Order is created from a cart at checkout. Only its status changes
// afterwards; rows are never deleted, so a declined payment leaves a
// CANCELLED order behind as an audit artifact.
type Order struct {
	ID        uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string      `json:"userId" gorm:"not null;index"`
	OrderDate time.Time   `json:"orderDate" gorm:"not null"`
	Status    OrderStatus `json:"status" gorm:"type:enum('PENDING','CONFIRMED','PROCESSING','SHIPPED','DELIVERED','CANCELLED');not null;default:'PENDING'"`

	FullName string `json:"fullName" gorm:"not null"`
	Email    string `json:"email" gorm:"not null"`
	Phone    string `json:"phone" gorm:"not null"`

	AddressLine1 string `json:"addressLine1" gorm:"not null"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" gorm:"not null"`
	State        string `json:"state" gorm:"not null"`
	ZipCode      string `json:"zipCode" gorm:"not null"`
	Country      string `json:"country" gorm:"not null"`

	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	TaxAmount   decimal.Decimal `json:"taxAmount" gorm:"type:decimal(10,2);not null"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:decimal(10,2);not null"`

	PaymentMethod        PaymentMethod `json:"paymentMethod" gorm:"type:enum('CREDIT_CARD','DEBIT_CARD','PAYPAL','CASH_ON_DELIVERY')"`
	PaymentTransactionID string        `json:"paymentTransactionId"`

	EstimatedDeliveryDate time.Time `json:"estimatedDeliveryDate"`
	DeliveryInstructions  string    `json:"deliveryInstructions"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

func NewOrder(userID string) *Order {
	return &Order{
		UserID:    userID,
		OrderDate: time.Now(),
		Status:    StatusPending,
	}
}

// OrderItem snapshots product attributes at order time so historical orders
// stay accurate when the catalog changes later.
type OrderItem struct {
	ID        uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64 `json:"-" gorm:"not null;index"`
	ProductID uint64 `json:"productId" gorm:"not null"`

	ProductName        string          `json:"productName" gorm:"not null"`
	UnitPrice          decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2);not null"`
	Quantity           int             `json:"quantity" gorm:"not null"`
	Subtotal           decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	ProductDescription string          `json:"productDescription"`
	ProductImageURL    string          `json:"productImageUrl"`
	ProductCategory    Category        `json:"productCategory" gorm:"type:enum('FRUITS','VEGETABLES','DAIRY','BEVERAGES')"`
}

func NewOrderItem(orderID, productID uint64, name string, unitPrice decimal.Decimal, quantity int,
	description, imageURL string, category Category) OrderItem {
	return OrderItem{
		OrderID:            orderID,
		ProductID:          productID,
		ProductName:        name,
		UnitPrice:          unitPrice,
		Quantity:           quantity,
		Subtotal:           unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		ProductDescription: description,
		ProductImageURL:    imageURL,
		ProductCategory:    category,
	}
}

// SetQuantity keeps the line subtotal in step with the quantity.
func (i *OrderItem) SetQuantity(quantity int) {
	i.Quantity = quantity
	i.Subtotal = i.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
