package repository

import (
	"context"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/entity"
)

// PaymentGateway wraps the external payment provider
type PaymentGateway interface {
	// CreateOrder creates a gateway order; amount is in rupees
	CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*entity.PaymentOrder, error)
	// VerifySignature checks the gateway callback signature for an order
	VerifySignature(orderID, paymentID, signature string) bool
}
