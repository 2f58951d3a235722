package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/entity"
	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/repository"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/logger"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayGateway implements the PaymentGateway interface against Razorpay
type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
	logger    logger.Logger
}

// NewRazorpayGateway creates a new Razorpay gateway
func NewRazorpayGateway(keyID, keySecret string, logger logger.Logger) repository.PaymentGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
		logger:    logger,
	}
}

// CreateOrder creates a gateway order. Razorpay takes the amount in the
// smallest currency unit (paise).
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*entity.PaymentOrder, error) {
	if currency == "" {
		currency = "INR"
	}

	data := map[string]interface{}{
		"amount":   int64(amount * 100),
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	order := &entity.PaymentOrder{
		OrderID:  asString(body["id"]),
		Currency: asString(body["currency"]),
		Receipt:  asString(body["receipt"]),
		Status:   asString(body["status"]),
	}
	if v, ok := body["amount"].(float64); ok {
		order.Amount = int64(v)
	}

	g.logger.Info("Payment order created",
		"orderId", order.OrderID,
		"amount", order.Amount,
		"currency", order.Currency)

	return order, nil
}

// VerifySignature recomputes the HMAC-SHA256 of "orderID|paymentID" with the
// key secret and compares it to the supplied signature in constant time.
// Returns only a verdict, never which part differed.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, g.keySecret)
}

// VerifySignature checks a Razorpay payment signature against secret
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
