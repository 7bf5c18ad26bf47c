package services

import (
	"context"
	"math/rand"

	"grocery-store/internal/domain"
)

type PaymentProcessor interface {
	Process(ctx context.Context, order *domain.Order) bool
}

// PaymentSimulator stands in for a real gateway. Card payments clear 95% of
// the time, PayPal 98%, cash on delivery always; anything else is declined.
type PaymentSimulator struct {
	roll func() float64
}

// NewPaymentSimulator takes the randomness source so tests can force either
// outcome; pass nil for the default.
func NewPaymentSimulator(roll func() float64) *PaymentSimulator {
	if roll == nil {
		roll = rand.Float64
	}
	return &PaymentSimulator{roll: roll}
}

func (s *PaymentSimulator) Process(ctx context.Context, order *domain.Order) bool {
	switch order.PaymentMethod {
	case domain.PaymentCreditCard, domain.PaymentDebitCard:
		return s.roll() > 0.05
	case domain.PaymentPayPal:
		return s.roll() > 0.02
	case domain.PaymentCashOnDelivery:
		return true
	default:
		return false
	}
}

var _ PaymentProcessor = (*PaymentSimulator)(nil)
