package booking

import (
	"context"

	"dogstudio/internal/catalog"
	"dogstudio/internal/domain"
	"dogstudio/internal/pricing"
)

// Step is a position in the booking form.
type Step int

const (
	StepSelectService Step = iota + 1
	StepEnterDetails
	StepSelectDateTime
	StepConfirmed
)

// Wizard drives the multi-step booking form: a linear state machine whose
// forward transitions are guarded by per-step validation. Back moves one
// step at a time and never below the first step. The final transition
// submits the booking; a failed store write leaves the wizard on the
// date/time step with the error surfaced to the caller.
type Wizard struct {
	svc *Service

	step      Step
	serviceID string
	details   Details
	date      string
	slot      string
	notes     string

	booked []string
	result *domain.Booking
}

func NewWizard(svc *Service) *Wizard {
	return &Wizard{svc: svc, step: StepSelectService}
}

func (w *Wizard) Step() Step { return w.step }

// Booking returns the created record once the wizard is confirmed.
func (w *Wizard) Booking() *domain.Booking { return w.result }

// SelectService records the chosen service. Unknown ids are rejected.
func (w *Wizard) SelectService(id string) error {
	if catalog.ServiceByID(id) == nil {
		return ErrUnknownService
	}
	w.serviceID = id
	return nil
}

// SetDetails records the customer and pet fields. Validation happens on the
// forward transition, not here, so partial typing is fine.
func (w *Wizard) SetDetails(d Details) {
	w.details = d
}

// SelectDate records the booking date and re-fetches the taken slots for it.
// A previously chosen slot that is no longer available is invalidated.
func (w *Wizard) SelectDate(ctx context.Context, date string) error {
	if err := w.svc.validateDate(date); err != nil {
		return err
	}

	booked, err := w.svc.GetBookedSlots(ctx, date)
	if err != nil {
		return err
	}

	w.date = date
	w.booked = booked
	if w.slot != "" && !IsSlotAvailable(w.slot, w.booked) {
		w.slot = ""
	}
	return nil
}

// SelectSlot records the time slot; it must be one of the fixed labels and
// free as of the last availability fetch.
func (w *Wizard) SelectSlot(slot string) error {
	if !catalog.ValidTimeSlot(slot) {
		return ErrInvalidSlot
	}
	if !IsSlotAvailable(slot, w.booked) {
		return ErrSlotTaken
	}
	w.slot = slot
	return nil
}

func (w *Wizard) SetNotes(notes string) { w.notes = notes }

// BookedSlots returns the taken slots from the last availability fetch.
func (w *Wizard) BookedSlots() []string { return w.booked }

// TotalPrice derives the running total from the current selection; 0 until
// both service and pet size are chosen.
func (w *Wizard) TotalPrice() int {
	return pricing.ComputePrice(w.serviceID, w.details.PetSize)
}

// Next attempts the forward transition from the current step. The guard for
// the step must pass; advancing from the date/time step submits the booking.
func (w *Wizard) Next(ctx context.Context) error {
	switch w.step {
	case StepSelectService:
		if w.serviceID == "" {
			return ErrServiceRequired
		}
		w.step = StepEnterDetails
		return nil

	case StepEnterDetails:
		if err := validateDetails(w.details); err != nil {
			return err
		}
		w.step = StepSelectDateTime
		return nil

	case StepSelectDateTime:
		if w.date == "" || w.slot == "" {
			return ErrDateTimeRequired
		}
		b, err := w.svc.CreateBooking(ctx, CreateBookingRequest{
			CustomerName: w.details.CustomerName,
			Phone:        w.details.Phone,
			Email:        w.details.Email,
			PetName:      w.details.PetName,
			PetType:      w.details.PetType,
			PetSize:      w.details.PetSize,
			ServiceID:    w.serviceID,
			BookingDate:  w.date,
			TimeSlot:     w.slot,
			Notes:        w.notes,
		})
		if err != nil {
			// State stays on this step; the caller may retry explicitly.
			return err
		}
		w.result = b
		w.step = StepConfirmed
		return nil

	default:
		// Confirmed is terminal.
		return nil
	}
}

// Back moves one step backwards, never below the first step and never out
// of the confirmed state.
func (w *Wizard) Back() {
	if w.step > StepSelectService && w.step < StepConfirmed {
		w.step--
	}
}
