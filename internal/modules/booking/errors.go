package booking

import "errors"

var (
	ErrServiceRequired  = errors.New("please select a service")
	ErrContactRequired  = errors.New("please fill in all contact details")
	ErrPetRequired      = errors.New("please fill in all pet details")
	ErrInvalidEmail     = errors.New("please enter a valid email address")
	ErrInvalidPhone     = errors.New("please enter a valid 10-digit phone number")
	ErrUnknownService   = errors.New("unknown service")
	ErrUnknownPetType   = errors.New("unknown pet type")
	ErrUnknownPetSize   = errors.New("unknown pet size")
	ErrDateTimeRequired = errors.New("please select a date and time")
	ErrInvalidDate      = errors.New("invalid booking date")
	ErrPastDate         = errors.New("booking date cannot be in the past")
	ErrDateTooFar       = errors.New("bookings open only 30 days in advance")
	ErrInvalidSlot      = errors.New("invalid time slot")
	ErrSlotTaken        = errors.New("time slot is no longer available")
)

// IsValidationError reports whether err is a client-recoverable validation
// failure (blocks the step, surfaced inline, never advances the workflow).
func IsValidationError(err error) bool {
	for _, e := range []error{
		ErrServiceRequired,
		ErrContactRequired,
		ErrPetRequired,
		ErrInvalidEmail,
		ErrInvalidPhone,
		ErrUnknownService,
		ErrUnknownPetType,
		ErrUnknownPetSize,
		ErrDateTimeRequired,
		ErrInvalidDate,
		ErrPastDate,
		ErrDateTooFar,
		ErrInvalidSlot,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
