package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/entity"
	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/repository"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/logger"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/metrics"
	"github.com/AbdurRahman-05/wetreck-backend/templates"
)

// NotifyOutcome reports what happened after a record was persisted. The
// persisted result stands regardless of Err; callers decide whether to
// surface the email caveat.
type NotifyOutcome struct {
	UserNotified  bool
	AdminNotified bool
	Err           error
}

// BookingService handles booking submissions and confirmation emails
type BookingService struct {
	bookingRepo repository.BookingRepository
	mailer      repository.Mailer
	adminEmail  string
	logger      logger.Logger
	metrics     *metrics.Metrics
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repository.BookingRepository,
	mailer repository.Mailer,
	adminEmail string,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		mailer:      mailer,
		adminEmail:  adminEmail,
		logger:      logger,
		metrics:     metrics,
	}
}

// CreateBooking validates and persists a booking, then sends confirmation
// emails best-effort. A notification failure never undoes the persisted
// result; it is reported through the outcome only.
func (s *BookingService) CreateBooking(ctx context.Context, booking *entity.Booking) (*NotifyOutcome, error) {
	if !entity.ValidBookingType(booking.BookingType) {
		return nil, fmt.Errorf("%w: invalid booking type %q", entity.ErrValidation, booking.BookingType)
	}

	// The variant tag decides which optional payload survives
	switch booking.BookingType {
	case entity.BookingTypeTour:
		booking.HealthDetails = nil
		booking.BikeDetails = nil
	case entity.BookingTypeTrek:
		booking.BikeDetails = nil
	case entity.BookingTypeBike:
		booking.HealthDetails = nil
	}

	booking.CreatedAt = time.Now()

	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		s.logger.Error("Failed to save booking",
			"bookingType", booking.BookingType,
			"packageId", booking.PackageID,
			"error", err)
		s.countError("booking_save")
		return nil, fmt.Errorf("%w: failed to save booking: %v", entity.ErrPersistence, err)
	}

	if s.metrics != nil {
		s.metrics.BookingsCreated.WithLabelValues(booking.BookingType).Inc()
	}

	s.logger.Info("Booking saved",
		"bookingType", booking.BookingType,
		"packageTitle", booking.PackageTitle,
		"personCount", booking.PersonCount)

	return s.notify(ctx, booking), nil
}

// notify sends the confirmation to the first traveler's email (skipped when
// the traveler list is empty) and to the administrator when configured
func (s *BookingService) notify(ctx context.Context, booking *entity.Booking) *NotifyOutcome {
	outcome := &NotifyOutcome{}

	subject := fmt.Sprintf("Booking Confirmation: %s", booking.PackageTitle)
	html := templates.BookingConfirmation(booking)

	if len(booking.PersonDetails) > 0 && booking.PersonDetails[0].Email != "" {
		userEmail := booking.PersonDetails[0].Email
		if err := s.mailer.Send(ctx, userEmail, subject, html); err != nil {
			s.logger.Error("Failed to send booking email to user", "to", userEmail, "error", err)
			s.countError("booking_user_email")
			outcome.Err = fmt.Errorf("%w: %v", entity.ErrNotification, err)
		} else {
			outcome.UserNotified = true
			s.countEmail()
		}
	}

	if s.adminEmail != "" {
		if err := s.mailer.Send(ctx, s.adminEmail, subject, html); err != nil {
			s.logger.Error("Failed to send booking email to admin", "to", s.adminEmail, "error", err)
			s.countError("booking_admin_email")
			outcome.Err = fmt.Errorf("%w: %v", entity.ErrNotification, err)
		} else {
			outcome.AdminNotified = true
			s.countEmail()
		}
	}

	return outcome
}

// SendAdminEmail composes the pickup-request notice and sends it to the
// supplied recipient. Unlike booking confirmations, a send failure here is
// the caller's error: the endpoint exists only to deliver this email.
func (s *BookingService) SendAdminEmail(ctx context.Context, recipient, subject, packageTitle string, personCount int, date, arrivalPlace string, pickupNeeded bool, persons []entity.PersonDetail) error {
	html := templates.AdminBookingNotice(subject, packageTitle, personCount, date, arrivalPlace, pickupNeeded, persons)

	if err := s.mailer.Send(ctx, recipient, subject, html); err != nil {
		s.logger.Error("Failed to send admin email", "to", recipient, "error", err)
		s.countError("admin_email")
		return fmt.Errorf("%w: %v", entity.ErrNotification, err)
	}

	s.countEmail()
	return nil
}

func (s *BookingService) countEmail() {
	if s.metrics != nil {
		s.metrics.EmailsSent.Inc()
	}
}

func (s *BookingService) countError(operation string) {
	if s.metrics != nil {
		s.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}
