package admin

import (
	"context"

	"dogstudio/internal/domain"
)

// BookingRepository is the slice of the booking store the dashboard consumes.
type BookingRepository interface {
	GetAll(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// NotificationSender fires status-change emails without blocking the caller.
type NotificationSender interface {
	NotifyStatusChanged(b *domain.Booking, newStatus domain.BookingStatus)
}
