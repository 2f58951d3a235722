package httpapi

import (
	"github.com/AbdurRahman-05/wetreck-backend/internal/usecase"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MembershipHandler handles membership-related HTTP requests
type MembershipHandler struct {
	membershipService *usecase.MembershipService
	validate          *validator.Validate
	logger            logger.Logger
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipService *usecase.MembershipService, validate *validator.Validate, logger logger.Logger) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
		validate:          validate,
		logger:            logger,
	}
}

// Register handles POST /api/membership
func (h *MembershipHandler) Register(c *fiber.Ctx) error {
	var req MembershipRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Error("Failed to parse membership request", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A valid email is required",
		})
	}

	outcome, err := h.membershipService.Register(c.Context(), req.toEntity())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save membership info.",
		})
	}

	if outcome.Err != nil {
		return c.JSON(fiber.Map{
			"message": "Membership info saved, but failed to send emails.",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Membership info received, saved, and emails sent.",
	})
}

// ListUsers handles GET /api/users
func (h *MembershipHandler) ListUsers(c *fiber.Ctx) error {
	members, err := h.membershipService.ListMembers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users.",
		})
	}
	return c.JSON(members)
}

// ValidateMembership handles POST /api/validate-membership
func (h *MembershipHandler) ValidateMembership(c *fiber.Ctx) error {
	var req ValidateMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Error("Failed to parse validation request", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and membershipId are required",
		})
	}

	member, err := h.membershipService.Validate(c.Context(), req.Email, req.MembershipID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to validate membership.",
		})
	}

	if member == nil {
		return c.JSON(fiber.Map{
			"isValid": false,
			"message": "Invalid membership ID or email",
		})
	}
	return c.JSON(fiber.Map{
		"isValid": true,
		"member":  member,
	})
}
