package admin

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dogstudio/internal/domain"
)

type Service struct {
	bookings BookingRepository
	notifs   NotificationSender
}

func NewService(bookings BookingRepository, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		notifs:   notifs,
	}
}

// ListBookings returns bookings ordered by date then time slot, optionally
// narrowed to one status. filter "" or "all" means everything.
func (s *Service) ListBookings(ctx context.Context, filter string) ([]domain.Booking, error) {
	if filter != "" && filter != "all" && !domain.ValidStatus(domain.BookingStatus(filter)) {
		return nil, ErrInvalidStatusFilter
	}

	all, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if filter == "" || filter == "all" {
		return all, nil
	}

	out := make([]domain.Booking, 0, len(all))
	for _, b := range all {
		if b.Status == domain.BookingStatus(filter) {
			out = append(out, b)
		}
	}
	return out, nil
}

// GetStats counts bookings per status for the dashboard cards.
func (s *Service) GetStats(ctx context.Context) (Stats, error) {
	all, err := s.bookings.GetAll(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Total: len(all)}
	for _, b := range all {
		switch b.Status {
		case domain.BookingPending:
			stats.Pending++
		case domain.BookingConfirmed:
			stats.Confirmed++
		case domain.BookingCompleted:
			stats.Completed++
		case domain.BookingCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

// UpdateStatus applies an admin status transition and fires the matching
// customer email. The stored status never depends on the email outcome.
func (s *Service) UpdateStatus(ctx context.Context, id string, newStatus domain.BookingStatus) (*domain.Booking, error) {
	if !domain.ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !domain.CanTransition(current.Status, newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyStatusChanged(updated, newStatus)
	}

	return updated, nil
}

// DeleteBooking is the administrative escape hatch; normal flow never
// removes records.
func (s *Service) DeleteBooking(ctx context.Context, id string) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
