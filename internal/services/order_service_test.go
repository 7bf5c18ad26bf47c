package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"grocery-store/internal/domain"
	"grocery-store/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type checkoutFixture struct {
	orderRepo   *mocks.MockOrderRepository
	productRepo *mocks.MockProductRepository
	cartRepo    *mocks.MockCartRepository
	publisher   *mocks.MockPublisher
}

func newCheckoutFixture() *checkoutFixture {
	return &checkoutFixture{
		orderRepo:   new(mocks.MockOrderRepository),
		productRepo: new(mocks.MockProductRepository),
		cartRepo:    new(mocks.MockCartRepository),
		publisher:   new(mocks.MockPublisher),
	}
}

func (f *checkoutFixture) service(payments PaymentProcessor) *OrderService {
	carts := NewCartService(f.cartRepo, f.productRepo)
	return NewOrderService(f.orderRepo, f.productRepo, carts, payments, f.publisher)
}

// twoLineCart sets up the demo cart: 2x Fresh Apples at 3.99 and
// 1x Organic Bananas at 2.49.
func (f *checkoutFixture) twoLineCart() {
	f.cartRepo.On("FindByUserID", mock.Anything, TestUserID).Return([]domain.CartItem{
		*CreateTestCartItem(10, 1, TestUserID, 2),
		*CreateTestCartItem(11, 2, TestUserID, 1),
	}, nil)
	f.productRepo.On("FindByID", mock.Anything, uint64(1)).
		Return(CreateTestProduct(1, "Fresh Apples", "3.99", domain.CategoryFruits), nil)
	f.productRepo.On("FindByID", mock.Anything, uint64(2)).
		Return(CreateTestProduct(2, "Organic Bananas", "2.49", domain.CategoryFruits), nil)
}

func TestProcessCheckout_Success(t *testing.T) {
	f := newCheckoutFixture()
	f.twoLineCart()

	var savedStatuses []domain.OrderStatus
	f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*domain.Order)
			if order.ID == 0 {
				order.ID = 100
			}
			savedStatuses = append(savedStatuses, order.Status)
		})
	f.orderRepo.On("SaveItems", mock.Anything, mock.AnythingOfType("[]domain.OrderItem")).Return(nil)
	f.cartRepo.On("DeleteByUserID", mock.Anything, TestUserID).Return(nil)
	f.publisher.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()

	// Cash on delivery never fails at the payment step.
	service := f.service(NewPaymentSimulator(nil))
	order, err := service.ProcessCheckout(context.Background(),
		CreateTestCheckoutInput(TestUserID, domain.PaymentCashOnDelivery))

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, domain.StatusConfirmed, order.Status)
	assert.Equal(t, "10.47", order.Subtotal.StringFixed(2))
	assert.Equal(t, "0.84", order.TaxAmount.StringFixed(2))
	assert.Equal(t, "11.31", order.TotalAmount.StringFixed(2))
	assert.Equal(t, order.Subtotal.Add(order.TaxAmount), order.TotalAmount)

	assert.Len(t, order.Items, 2)
	assert.Equal(t, "7.98", order.Items[0].Subtotal.StringFixed(2))
	assert.Equal(t, "2.49", order.Items[1].Subtotal.StringFixed(2))
	assert.Equal(t, "Fresh Apples", order.Items[0].ProductName)
	assert.Equal(t, domain.CategoryFruits, order.Items[0].ProductCategory)

	assert.True(t, strings.HasPrefix(order.PaymentTransactionID, "TXN-"))
	assert.Len(t, order.PaymentTransactionID, 12)
	assert.Equal(t, order.PaymentTransactionID, strings.ToUpper(order.PaymentTransactionID))

	assert.Equal(t, order.OrderDate.Add(4*24*time.Hour), order.EstimatedDeliveryDate)

	assert.Equal(t, []domain.OrderStatus{domain.StatusPending, domain.StatusConfirmed}, savedStatuses)

	time.Sleep(100 * time.Millisecond)
	f.orderRepo.AssertExpectations(t)
	f.cartRepo.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestProcessCheckout_SuppliedTransactionID(t *testing.T) {
	f := newCheckoutFixture()
	f.twoLineCart()

	f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*domain.Order)
			if order.ID == 0 {
				order.ID = 101
			}
		})
	f.orderRepo.On("SaveItems", mock.Anything, mock.AnythingOfType("[]domain.OrderItem")).Return(nil)
	f.cartRepo.On("DeleteByUserID", mock.Anything, TestUserID).Return(nil)
	f.publisher.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()

	input := CreateTestCheckoutInput(TestUserID, domain.PaymentCashOnDelivery)
	input.PaymentTransactionID = "TXN-EXTERNAL"

	service := f.service(NewPaymentSimulator(nil))
	order, err := service.ProcessCheckout(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "TXN-EXTERNAL", order.PaymentTransactionID)

	time.Sleep(100 * time.Millisecond)
}

func TestProcessCheckout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture()
	f.cartRepo.On("FindByUserID", mock.Anything, TestUserID).Return([]domain.CartItem{}, nil)

	service := f.service(NewPaymentSimulator(nil))
	order, err := service.ProcessCheckout(context.Background(),
		CreateTestCheckoutInput(TestUserID, domain.PaymentCashOnDelivery))

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, order)
	f.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProcessCheckout_PaymentDeclined(t *testing.T) {
	f := newCheckoutFixture()
	f.twoLineCart()

	var savedStatuses []domain.OrderStatus
	f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*domain.Order)
			if order.ID == 0 {
				order.ID = 102
			}
			savedStatuses = append(savedStatuses, order.Status)
		})
	f.orderRepo.On("SaveItems", mock.Anything, mock.AnythingOfType("[]domain.OrderItem")).Return(nil)

	// Force the card roll below the decline threshold.
	service := f.service(NewPaymentSimulator(func() float64 { return 0.01 }))
	order, err := service.ProcessCheckout(context.Background(),
		CreateTestCheckoutInput(TestUserID, domain.PaymentCreditCard))

	assert.ErrorIs(t, err, ErrPaymentDeclined)
	assert.Nil(t, order)

	// The order row survives as a CANCELLED audit artifact and the cart
	// is left untouched.
	assert.Equal(t, []domain.OrderStatus{domain.StatusPending, domain.StatusCancelled}, savedStatuses)
	f.cartRepo.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessCheckout_ProductDeletedBeforeSnapshot(t *testing.T) {
	f := newCheckoutFixture()

	f.cartRepo.On("FindByUserID", mock.Anything, TestUserID).Return([]domain.CartItem{
		*CreateTestCartItem(10, 1, TestUserID, 2),
	}, nil)
	// Resolves while pricing the cart, gone by the time the snapshot is taken.
	f.productRepo.On("FindByID", mock.Anything, uint64(1)).
		Return(CreateTestProduct(1, "Fresh Apples", "3.99", domain.CategoryFruits), nil).Once()
	f.productRepo.On("FindByID", mock.Anything, uint64(1)).Return(nil, nil).Once()

	f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Order).ID = 103
		})

	service := f.service(NewPaymentSimulator(nil))
	order, err := service.ProcessCheckout(context.Background(),
		CreateTestCheckoutInput(TestUserID, domain.PaymentCashOnDelivery))

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Contains(t, err.Error(), "1")
	assert.Nil(t, order)

	// Header was persisted before the failure; no items were written and the
	// order never reached CONFIRMED.
	f.orderRepo.AssertNumberOfCalls(t, "Save", 1)
	f.orderRepo.AssertNotCalled(t, "SaveItems", mock.Anything, mock.Anything)
	f.cartRepo.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
}

// Two concurrent checkouts of the same cart both go through: there is no
// application-level lock, idempotency key, or in-progress flag guarding the
// cart. This test documents that exposure.
func TestProcessCheckout_ConcurrentSameCart(t *testing.T) {
	f := newCheckoutFixture()
	f.twoLineCart()

	var nextID atomic.Uint64
	nextID.Store(200)
	f.orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*domain.Order)
			if order.ID == 0 {
				order.ID = nextID.Add(1)
			}
		})
	f.orderRepo.On("SaveItems", mock.Anything, mock.AnythingOfType("[]domain.OrderItem")).Return(nil)
	f.cartRepo.On("DeleteByUserID", mock.Anything, TestUserID).Return(nil)
	f.publisher.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()

	service := f.service(NewPaymentSimulator(nil))

	var wg sync.WaitGroup
	results := make([]*domain.Order, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			order, err := service.ProcessCheckout(context.Background(),
				CreateTestCheckoutInput(TestUserID, domain.PaymentCashOnDelivery))
			assert.NoError(t, err)
			results[n] = order
		}(i)
	}
	wg.Wait()

	assert.NotNil(t, results[0])
	assert.NotNil(t, results[1])
	assert.NotEqual(t, results[0].ID, results[1].ID)

	time.Sleep(100 * time.Millisecond)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	tests := []struct {
		name          string
		orderID       uint64
		setupMocks    func(*mocks.MockOrderRepository)
		expectedError error
	}{
		{
			name:    "successful retrieval",
			orderID: 1,
			setupMocks: func(orderRepo *mocks.MockOrderRepository) {
				orderRepo.On("FindByIDWithItems", mock.Anything, uint64(1)).
					Return(&domain.Order{ID: 1, UserID: TestUserID, Status: domain.StatusConfirmed}, nil)
			},
		},
		{
			name:    "order not found",
			orderID: 999,
			setupMocks: func(orderRepo *mocks.MockOrderRepository) {
				orderRepo.On("FindByIDWithItems", mock.Anything, uint64(999)).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:    "repository error",
			orderID: 1,
			setupMocks: func(orderRepo *mocks.MockOrderRepository) {
				orderRepo.On("FindByIDWithItems", mock.Anything, uint64(1)).
					Return(nil, errors.New("database connection error"))
			},
			expectedError: errors.New("database connection error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture()
			tt.setupMocks(f.orderRepo)

			service := f.service(NewPaymentSimulator(nil))
			order, err := service.GetOrderByID(context.Background(), tt.orderID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				assert.Equal(t, tt.orderID, order.ID)
			}
			f.orderRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_CancelOrder(t *testing.T) {
	tests := []struct {
		name       string
		orderID    uint64
		userID     string
		setupMocks func(*mocks.MockOrderRepository)
		expected   bool
	}{
		{
			name:    "cancels a pending order",
			orderID: 1,
			userID:  TestUserID,
			setupMocks: func(orderRepo *mocks.MockOrderRepository) {
				orderRepo.On("FindByID", mock.Anything, uint64(1)).
					Return(&domain.Order{ID: 1, UserID: TestUserID, Status: domain.StatusPending}, nil)
				orderRepo.On("Save", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
					return o.Status == domain.StatusCancelled
				})).Return(nil)
			},
			expected: true,
		},
		{
			name:    "cancels a confirmed order",
			orderID: 2,
			userID:  TestUserID,
			setupMocks: func(orderRepo *mocks.MockOrderRepository) {
				orderRepo.On("FindByID", mock.Anything, uint64(2)).
					Return(&domain.Order{ID: 2, UserID: TestUserID, Status: domain.StatusConfirmed}, nil)
				orderRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil)
			},
			expected: true,
		},
		{
			name:    "refuses a shipped order",
			orderID: 3,
			userID:  TestUserID,
			setupMocks: func(orderRepo *mocks.MockOrderRepository) {
				orderRepo.On("FindByID", mock.Anything, uint64(3)).
					Return(&domain.Order{ID: 3, UserID: TestUserID, Status: domain.StatusShipped}, nil)
			},
			expected: false,
		},
		{
			name:    "refuses another user's order",
			orderID: 4,
			userID:  TestOtherUser,
			setupMocks: func(orderRepo *mocks.MockOrderRepository) {
				orderRepo.On("FindByID", mock.Anything, uint64(4)).
					Return(&domain.Order{ID: 4, UserID: TestUserID, Status: domain.StatusPending}, nil)
			},
			expected: false,
		},
		{
			name:    "missing order",
			orderID: 404,
			userID:  TestUserID,
			setupMocks: func(orderRepo *mocks.MockOrderRepository) {
				orderRepo.On("FindByID", mock.Anything, uint64(404)).Return(nil, nil)
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture()
			tt.setupMocks(f.orderRepo)
			f.publisher.On("Publish", mock.Anything, "order.cancelled", mock.Anything).Return(nil).Maybe()

			service := f.service(NewPaymentSimulator(nil))
			cancelled, err := service.CancelOrder(context.Background(), tt.orderID, tt.userID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, cancelled)

			if !tt.expected {
				f.orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			}

			time.Sleep(100 * time.Millisecond)
			f.orderRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	f := newCheckoutFixture()

	// The administrative path has no transition check: DELIVERED straight
	// from PENDING is accepted.
	f.orderRepo.On("FindByID", mock.Anything, uint64(1)).
		Return(&domain.Order{ID: 1, UserID: TestUserID, Status: domain.StatusPending}, nil)
	f.orderRepo.On("Save", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Status == domain.StatusDelivered
	})).Return(nil)
	f.orderRepo.On("FindByID", mock.Anything, uint64(404)).Return(nil, nil)

	service := f.service(NewPaymentSimulator(nil))

	order, err := service.UpdateOrderStatus(context.Background(), 1, domain.StatusDelivered)
	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, domain.StatusDelivered, order.Status)

	order, err = service.UpdateOrderStatus(context.Background(), 404, domain.StatusShipped)
	assert.NoError(t, err)
	assert.Nil(t, order)

	f.orderRepo.AssertExpectations(t)
}

func TestOrderService_GetUserOrderCount(t *testing.T) {
	f := newCheckoutFixture()
	f.orderRepo.On("CountByUserID", mock.Anything, TestUserID).Return(int64(3), nil)

	service := f.service(NewPaymentSimulator(nil))
	count, err := service.GetUserOrderCount(context.Background(), TestUserID)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
