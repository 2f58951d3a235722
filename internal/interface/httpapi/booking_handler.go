package httpapi

import (
	"errors"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/entity"
	"github.com/AbdurRahman-05/wetreck-backend/internal/usecase"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingService *usecase.BookingService
	validate       *validator.Validate
	logger         logger.Logger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *usecase.BookingService, validate *validator.Validate, logger logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		validate:       validate,
		logger:         logger,
	}
}

// CreateBooking handles POST /api/v2/booking
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var req BookingRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Error("Failed to parse booking request", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking type",
		})
	}

	outcome, err := h.bookingService.CreateBooking(c.Context(), req.toEntity())
	if err != nil {
		if errors.Is(err, entity.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid booking type",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to save booking info.",
			"details": err.Error(),
		})
	}

	if outcome.Err != nil {
		return c.JSON(fiber.Map{
			"message": "Booking info saved, but failed to send emails.",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Booking info received, saved, and emails sent.",
	})
}

// SendAdminEmail handles POST /api/v2/send-admin-email
func (h *BookingHandler) SendAdminEmail(c *fiber.Ctx) error {
	var req AdminEmailRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Error("Failed to parse admin email request", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Subject and a valid recipient are required",
		})
	}

	err := h.bookingService.SendAdminEmail(c.Context(),
		req.Recipient, req.Subject, req.PackageTitle, req.PersonCount,
		req.Date, req.ArrivalPlace, req.PickupNeeded, req.PersonDetails)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to send admin email",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Admin email sent successfully",
	})
}
