package booking

import (
	"context"

	"dogstudio/internal/domain"
)

// BookingRepository is the slice of the booking store this module consumes.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetBookedSlots(ctx context.Context, date string) ([]string, error)
}

// NotificationSender fires booking emails without blocking the caller.
type NotificationSender interface {
	NotifyBookingCreated(b *domain.Booking)
}
