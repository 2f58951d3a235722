package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/entity"
	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/repository"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/logger"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/metrics"
	"github.com/AbdurRahman-05/wetreck-backend/pkg/utils"
	"github.com/AbdurRahman-05/wetreck-backend/templates"
)

// MembershipService handles member registration, lookup and validation
type MembershipService struct {
	membershipRepo repository.MembershipRepository
	mailer         repository.Mailer
	adminEmail     string
	logger         logger.Logger
	metrics        *metrics.Metrics
}

// NewMembershipService creates a new membership service
func NewMembershipService(
	membershipRepo repository.MembershipRepository,
	mailer repository.Mailer,
	adminEmail string,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		mailer:         mailer,
		adminEmail:     adminEmail,
		logger:         logger,
		metrics:        metrics,
	}
}

// Register issues a unique code, persists the membership and sends the admin
// notification plus the member welcome email best-effort. The submitted plan
// string is classified once; that single classification drives the plan
// description and the amount line in both emails.
func (s *MembershipService) Register(ctx context.Context, member *entity.Membership) (*NotifyOutcome, error) {
	bucket := entity.ClassifyPlan(member.MembershipPlan)

	if strings.TrimSpace(member.MembershipPlan) == "" {
		member.MembershipPlan = "Not specified"
	}

	member.UniqueCode = utils.GenerateUniqueCode()
	member.ExpirationNotified = false
	member.CreatedAt = time.Now()

	if err := s.membershipRepo.Save(ctx, member); err != nil {
		s.logger.Error("Failed to save membership", "email", member.Email, "error", err)
		if s.metrics != nil {
			s.metrics.ErrorsCount.WithLabelValues("membership_save").Inc()
		}
		return nil, fmt.Errorf("%w: failed to save membership: %v", entity.ErrPersistence, err)
	}

	if s.metrics != nil {
		s.metrics.MembershipsCreated.Inc()
	}

	s.logger.Info("Membership saved",
		"email", member.Email,
		"plan", member.MembershipPlan,
		"uniqueCode", member.UniqueCode)

	return s.notify(ctx, member, bucket), nil
}

func (s *MembershipService) notify(ctx context.Context, member *entity.Membership, bucket entity.PlanBucket) *NotifyOutcome {
	outcome := &NotifyOutcome{}
	planDetails := templates.PlanDetails(bucket, member.MembershipPlan, member.StartDate, member.EndDate)

	if s.adminEmail != "" {
		html := templates.AdminMembershipNotice(member, planDetails)
		if err := s.mailer.Send(ctx, s.adminEmail, "New Membership Registration", html); err != nil {
			s.logger.Error("Failed to send membership email to admin", "to", s.adminEmail, "error", err)
			if s.metrics != nil {
				s.metrics.ErrorsCount.WithLabelValues("membership_admin_email").Inc()
			}
			outcome.Err = fmt.Errorf("%w: %v", entity.ErrNotification, err)
		} else {
			outcome.AdminNotified = true
			if s.metrics != nil {
				s.metrics.EmailsSent.Inc()
			}
		}
	}

	if member.Email != "" {
		html := templates.MemberWelcome(member, planDetails, bucket.AmountLabel())
		if err := s.mailer.Send(ctx, member.Email, "Welcome to our Membership!", html); err != nil {
			s.logger.Error("Failed to send welcome email", "to", member.Email, "error", err)
			if s.metrics != nil {
				s.metrics.ErrorsCount.WithLabelValues("membership_welcome_email").Inc()
			}
			outcome.Err = fmt.Errorf("%w: %v", entity.ErrNotification, err)
		} else {
			outcome.UserNotified = true
			if s.metrics != nil {
				s.metrics.EmailsSent.Inc()
			}
		}
	}

	return outcome
}

// Validate looks up a membership by exact email and unique code match.
// A miss returns (nil, nil): not found is a plain answer, not an error.
func (s *MembershipService) Validate(ctx context.Context, email, uniqueCode string) (*entity.Membership, error) {
	member, err := s.membershipRepo.FindByEmailAndCode(ctx, email, uniqueCode)
	if err != nil {
		s.logger.Error("Failed to validate membership", "email", email, "error", err)
		return nil, fmt.Errorf("%w: %v", entity.ErrPersistence, err)
	}
	return member, nil
}

// ListMembers returns all membership records
func (s *MembershipService) ListMembers(ctx context.Context) ([]*entity.Membership, error) {
	members, err := s.membershipRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list members", "error", err)
		return nil, fmt.Errorf("%w: %v", entity.ErrPersistence, err)
	}
	return members, nil
}
