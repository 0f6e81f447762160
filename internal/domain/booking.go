package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// ValidStatus reports whether s is one of the four booking lifecycle states.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an admin may move a booking from one status
// to another. Completed and cancelled are terminal.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCompleted
	default:
		return false
	}
}

// Booking field names are part of the durable store contract and must not
// change: existing rows and the public API both use the snake_case set below.
type Booking struct {
	ID           string        `json:"id"`
	CustomerName string        `json:"customer_name" validate:"required"`
	Phone        string        `json:"phone" validate:"required"`
	Email        string        `json:"email" validate:"required,email"`
	PetName      string        `json:"pet_name" validate:"required"`
	PetType      string        `json:"pet_type" validate:"required"`
	PetSize      string        `json:"pet_size" validate:"required"`
	ServiceID    string        `json:"service_id" validate:"required"`
	ServiceName  string        `json:"service_name"`
	BookingDate  string        `json:"booking_date" validate:"required"` // YYYY-MM-DD
	TimeSlot     string        `json:"time_slot" validate:"required"`
	Notes        string        `json:"notes,omitempty"`
	TotalPrice   int           `json:"total_price"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
