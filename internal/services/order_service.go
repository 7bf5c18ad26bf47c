package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"grocery-store/internal/domain"
	rabbit "grocery-store/internal/infra/rabbitmq"
	"grocery-store/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// taxRate is the fixed 8% applied to the cart subtotal at checkout.
var taxRate = decimal.NewFromFloat(0.08)

const deliveryLeadTime = 4 * 24 * time.Hour

// CheckoutInput carries the customer, address and payment details for one
// checkout attempt. PaymentTransactionID and DeliveryInstructions are
// optional; a transaction id is synthesized when absent.
type CheckoutInput struct {
	UserID   string
	FullName string
	Email    string
	Phone    string

	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	ZipCode      string
	Country      string

	PaymentMethod        domain.PaymentMethod
	PaymentTransactionID string
	DeliveryInstructions string
}

type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	carts       *CartService
	payments    PaymentProcessor
	publisher   rabbit.PublisherInterface
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository,
	carts *CartService, payments PaymentProcessor, publisher rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		carts:       carts,
		payments:    payments,
		publisher:   publisher,
	}
}

// ProcessCheckout converts the user's priced cart into a persisted order.
//
// The order header is written before payment runs and is never rolled back:
// a declined payment flips the order to CANCELLED and leaves it in place as
// an audit record. The header write and the payment-result write are
// deliberately separate persisted steps.
func (s *OrderService) ProcessCheckout(ctx context.Context, input CheckoutInput) (*domain.Order, error) {
	cart, err := s.carts.GetCart(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order := domain.NewOrder(input.UserID)
	order.FullName = input.FullName
	order.Email = input.Email
	order.Phone = input.Phone
	order.AddressLine1 = input.AddressLine1
	order.AddressLine2 = input.AddressLine2
	order.City = input.City
	order.State = input.State
	order.ZipCode = input.ZipCode
	order.Country = input.Country
	order.PaymentMethod = input.PaymentMethod
	order.DeliveryInstructions = input.DeliveryInstructions

	order.PaymentTransactionID = input.PaymentTransactionID
	if order.PaymentTransactionID == "" {
		order.PaymentTransactionID = generateTransactionID()
	}

	order.Subtotal = cart.TotalAmount
	order.TaxAmount = cart.TotalAmount.Mul(taxRate).Round(2)
	order.TotalAmount = order.Subtotal.Add(order.TaxAmount)
	order.EstimatedDeliveryDate = order.OrderDate.Add(deliveryLeadTime)

	// Persist the header first to obtain an id for the item rows.
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		// Re-resolve the live product: the catalog row may have been
		// deleted since the cart was priced.
		product, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: %d", ErrProductNotFound, line.ProductID)
		}

		items = append(items, domain.NewOrderItem(
			order.ID,
			line.ProductID,
			line.ProductName,
			line.ProductPrice,
			line.Quantity,
			product.Description,
			product.ImageURL,
			product.Category,
		))
	}

	if err := s.orderRepo.SaveItems(ctx, items); err != nil {
		return nil, err
	}
	order.Items = items

	if !s.payments.Process(ctx, order) {
		order.Status = domain.StatusCancelled
		if err := s.orderRepo.Save(ctx, order); err != nil {
			return nil, err
		}
		logger.Warn().Uint64("orderId", order.ID).Str("method", string(order.PaymentMethod)).
			Msg("payment declined, order cancelled")
		return nil, ErrPaymentDeclined
	}

	order.Status = domain.StatusConfirmed
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	if err := s.carts.ClearCart(ctx, input.UserID); err != nil {
		return nil, err
	}

	logger.Info().Uint64("orderId", order.ID).Str("userId", order.UserID).
		Str("total", order.TotalAmount.StringFixed(2)).Msg("order confirmed")

	go s.publishOrderCreated(context.Background(), order)

	return order, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, orderID uint64) (*domain.Order, error) {
	order, err := s.orderRepo.FindByIDWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) GetUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orderRepo.FindByUserIDWithItems(ctx, userID)
}

// UpdateOrderStatus is the administrative path: any status may be set from
// any status, no transition check. Returns (nil, nil) for an unknown order.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uint64, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	order.Status = status
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// CancelOrder cancels on behalf of the owner. It returns false when the
// order does not exist, belongs to someone else, or is past cancellation;
// the three cases are indistinguishable to the caller.
func (s *OrderService) CancelOrder(ctx context.Context, orderID uint64, userID string) (bool, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return false, err
	}
	if order == nil || order.UserID != userID || !order.Status.Cancellable() {
		return false, nil
	}

	order.Status = domain.StatusCancelled
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return false, err
	}

	go s.publishOrderCancelled(context.Background(), order)

	return true, nil
}

func (s *OrderService) GetUserOrderCount(ctx context.Context, userID string) (int64, error) {
	return s.orderRepo.CountByUserID(ctx, userID)
}

// generateTransactionID makes a demo-grade reference, unique enough to trace.
func generateTransactionID() string {
	return "TXN-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount.StringFixed(2),
		ItemCount:   len(order.Items),
		CreatedAt:   order.OrderDate,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		logger.Error().Err(err).Uint64("orderId", order.ID).Msg("failed to publish order.created")
	}
}

func (s *OrderService) publishOrderCancelled(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCancelledEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		CancelledAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, "order.cancelled", evt); err != nil {
		logger.Error().Err(err).Uint64("orderId", order.ID).Msg("failed to publish order.cancelled")
	}
}
