package repository

import (
	"context"
	"time"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/entity"
)

// MembershipRepository defines the interface for membership storage operations
type MembershipRepository interface {
	Save(ctx context.Context, member *entity.Membership) error
	FindAll(ctx context.Context) ([]*entity.Membership, error)
	// FindByEmailAndCode returns nil without error when no record matches
	FindByEmailAndCode(ctx context.Context, email, uniqueCode string) (*entity.Membership, error)
	// FindExpired returns memberships whose end date is strictly before
	// cutoff and that have not been notified yet
	FindExpired(ctx context.Context, cutoff time.Time) ([]*entity.Membership, error)
	MarkExpirationNotified(ctx context.Context, id string) error
}
