package repository

import (
	"context"

	"github.com/AbdurRahman-05/wetreck-backend/internal/domain/entity"
)

// BookingRepository defines the interface for booking storage operations
type BookingRepository interface {
	Save(ctx context.Context, booking *entity.Booking) error
}
