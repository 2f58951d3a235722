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

// ExpirationScanner finds memberships past their end date and sends one-time
// expiration notices to the member and the administrator
type ExpirationScanner struct {
	membershipRepo repository.MembershipRepository
	mailer         repository.Mailer
	adminEmail     string
	logger         logger.Logger
	metrics        *metrics.Metrics
}

// NewExpirationScanner creates a new expiration scanner
func NewExpirationScanner(
	membershipRepo repository.MembershipRepository,
	mailer repository.Mailer,
	adminEmail string,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *ExpirationScanner {
	return &ExpirationScanner{
		membershipRepo: membershipRepo,
		mailer:         mailer,
		adminEmail:     adminEmail,
		logger:         logger,
		metrics:        metrics,
	}
}

// Start runs the scan once per day at local midnight until ctx is cancelled
func (s *ExpirationScanner) Start(ctx context.Context) {
	for {
		next := nextMidnight(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Expiration scanner stopped")
			return
		case <-timer.C:
			s.logger.Info("Running daily check for expired memberships")
			if err := s.RunOnce(ctx); err != nil {
				s.logger.Error("Error checking for expired memberships", "error", err)
			}
		}
	}
}

// RunOnce scans for expired, not-yet-notified memberships. Each record is
// processed independently: a failed send or save is logged and the scan
// moves on. The notified flag is only set after both emails went out, so a
// record that failed mid-sequence is retried on the next run.
func (s *ExpirationScanner) RunOnce(ctx context.Context) error {
	cutoff := startOfDay(time.Now())

	expired, err := s.membershipRepo.FindExpired(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("%w: failed to find expired memberships: %v", entity.ErrPersistence, err)
	}

	if len(expired) == 0 {
		return nil
	}

	s.logger.Info("Found expired memberships", "count", len(expired))

	for _, member := range expired {
		if err := s.mailer.Send(ctx, member.Email, "Your Membership Has Expired", templates.MembershipExpiredUser(member)); err != nil {
			s.logger.Error("Failed to send expiration email to member",
				"email", member.Email, "error", err)
			s.countError("expiry_user_email")
			continue
		}

		if s.adminEmail != "" {
			adminSubject := fmt.Sprintf("Membership Expired for %s", member.Name)
			if err := s.mailer.Send(ctx, s.adminEmail, adminSubject, templates.MembershipExpiredAdmin(member)); err != nil {
				s.logger.Error("Failed to send expiration email to admin",
					"member", member.Name, "error", err)
				s.countError("expiry_admin_email")
				continue
			}
		}

		if err := s.membershipRepo.MarkExpirationNotified(ctx, member.ID.Hex()); err != nil {
			s.logger.Error("Failed to mark membership as notified",
				"email", member.Email, "error", err)
			s.countError("expiry_mark_notified")
			continue
		}

		if s.metrics != nil {
			s.metrics.ExpirationNotices.Inc()
		}
		s.logger.Info("Expiration notice sent", "email", member.Email, "endDate", member.EndDate)
	}

	return nil
}

func (s *ExpirationScanner) countError(operation string) {
	if s.metrics != nil {
		s.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}

// startOfDay truncates t to local midnight
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// nextMidnight returns the first local midnight after t
func nextMidnight(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1)
}
