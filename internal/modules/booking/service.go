package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"dogstudio/internal/catalog"
	"dogstudio/internal/domain"
	"dogstudio/internal/pkg/validator"
	"dogstudio/internal/pricing"
)

const (
	dateLayout     = "2006-01-02"
	maxAdvanceDays = 30
)

type Service struct {
	bookings BookingRepository
	notifs   NotificationSender
	now      func() time.Time
}

func NewService(bookings BookingRepository, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		notifs:   notifs,
		now:      time.Now,
	}
}

// GetBookedSlots returns the taken slots for a date. Slots held only by
// cancelled bookings do not count as taken.
func (s *Service) GetBookedSlots(ctx context.Context, date string) ([]string, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	return s.bookings.GetBookedSlots(ctx, date)
}

// IsSlotAvailable reports whether slot is absent from the booked set.
func IsSlotAvailable(slot string, booked []string) bool {
	for _, b := range booked {
		if b == slot {
			return false
		}
	}
	return true
}

// CreateBooking runs the full guard chain and writes the booking. The slot
// availability check is advisory: it is not re-validated atomically at write
// time, so two near-simultaneous submissions can both land.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.ServiceID == "" {
		return nil, ErrServiceRequired
	}
	svc := catalog.ServiceByID(req.ServiceID)
	if svc == nil {
		return nil, ErrUnknownService
	}

	details := Details{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		PetName:      req.PetName,
		PetType:      req.PetType,
		PetSize:      req.PetSize,
	}
	if err := validateDetails(details); err != nil {
		return nil, err
	}

	if req.BookingDate == "" || req.TimeSlot == "" {
		return nil, ErrDateTimeRequired
	}
	if err := s.validateDate(req.BookingDate); err != nil {
		return nil, err
	}
	if !catalog.ValidTimeSlot(req.TimeSlot) {
		return nil, ErrInvalidSlot
	}

	booked, err := s.bookings.GetBookedSlots(ctx, req.BookingDate)
	if err != nil {
		return nil, err
	}
	if !IsSlotAvailable(req.TimeSlot, booked) {
		return nil, ErrSlotTaken
	}

	b := &domain.Booking{
		CustomerName: strings.TrimSpace(req.CustomerName),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		PetName:      strings.TrimSpace(req.PetName),
		PetType:      req.PetType,
		PetSize:      req.PetSize,
		ServiceID:    svc.ID,
		ServiceName:  svc.Name,
		BookingDate:  req.BookingDate,
		TimeSlot:     req.TimeSlot,
		Notes:        strings.TrimSpace(req.Notes),
		TotalPrice:   pricing.ComputePrice(svc.ID, req.PetSize),
		Status:       domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_no_double_booking" {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyBookingCreated(b)
	}

	return b, nil
}

func (s *Service) validateDate(date string) error {
	d, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return ErrInvalidDate
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if d.Before(today) {
		return ErrPastDate
	}
	if d.After(today.AddDate(0, 0, maxAdvanceDays)) {
		return ErrDateTooFar
	}
	return nil
}

// Details holds the step-2 form fields.
type Details struct {
	CustomerName string
	Phone        string
	Email        string
	PetName      string
	PetType      string
	PetSize      string
}

func validateDetails(d Details) error {
	if strings.TrimSpace(d.CustomerName) == "" ||
		strings.TrimSpace(d.Phone) == "" ||
		strings.TrimSpace(d.Email) == "" {
		return ErrContactRequired
	}
	if strings.TrimSpace(d.PetName) == "" || d.PetType == "" || d.PetSize == "" {
		return ErrPetRequired
	}
	if !validator.ValidEmail(strings.TrimSpace(d.Email)) {
		return ErrInvalidEmail
	}
	if !validator.ValidPhone(d.Phone) {
		return ErrInvalidPhone
	}
	if catalog.PetTypeByID(d.PetType) == nil {
		return ErrUnknownPetType
	}
	if catalog.PetSizeByID(d.PetSize) == nil {
		return ErrUnknownPetSize
	}
	return nil
}
