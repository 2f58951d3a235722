package httpapi

import (
	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/repository"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles payment gateway HTTP requests
type PaymentHandler struct {
	gateway  repository.PaymentGateway
	validate *validator.Validate
	logger   logger.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(gateway repository.PaymentGateway, validate *validator.Validate, logger logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		gateway:  gateway,
		validate: validate,
		logger:   logger,
	}
}

// CreateOrder handles POST /api/payment/order
func (h *PaymentHandler) CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Error("Failed to parse order request", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A positive amount is required",
		})
	}

	order, err := h.gateway.CreateOrder(c.Context(), req.Amount, req.Currency, req.Receipt)
	if err != nil {
		h.logger.Error("Failed to create payment order", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create order",
		})
	}

	return c.JSON(order)
}

// VerifyPayment handles POST /api/payment/verify
func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	var req VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Error("Failed to parse verification request", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "order_id, payment_id and signature are required",
		})
	}

	if !h.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Payment verification failed",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment has been verified",
	})
}
