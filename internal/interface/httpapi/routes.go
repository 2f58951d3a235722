package httpapi

import (
	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/repository"
	"github.com/AbdurRahman-05/wetreck-backend/internal/usecase"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers all API routes on the fiber app
func SetupRoutes(
	app *fiber.App,
	bookingService *usecase.BookingService,
	membershipService *usecase.MembershipService,
	gateway repository.PaymentGateway,
	log logger.Logger,
) {
	validate := validator.New()

	bookingHandler := NewBookingHandler(bookingService, validate, log)
	membershipHandler := NewMembershipHandler(membershipService, validate, log)
	paymentHandler := NewPaymentHandler(gateway, validate, log)

	api := app.Group("/api")
	api.Post("/membership", membershipHandler.Register)
	api.Get("/users", membershipHandler.ListUsers)
	api.Post("/validate-membership", membershipHandler.ValidateMembership)

	paymentGroup := api.Group("/payment")
	paymentGroup.Post("/order", paymentHandler.CreateOrder)
	paymentGroup.Post("/verify", paymentHandler.VerifyPayment)

	v2 := app.Group("/api/v2")
	v2.Post("/booking", bookingHandler.CreateBooking)
	v2.Post("/send-admin-email", bookingHandler.SendAdminEmail)
}
