package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validDetails() Details {
	return Details{
		CustomerName: "Pratish Chandran",
		Phone:        "9876543210",
		Email:        "pratish@example.com",
		PetName:      "Bruno",
		PetType:      "dog",
		PetSize:      "medium",
	}
}

func TestWizard_GuardsFirstStep(t *testing.T) {
	w := NewWizard(newTestService(new(MockBookingRepository), new(MockNotificationSender)))

	err := w.Next(context.Background())

	assert.ErrorIs(t, err, ErrServiceRequired)
	assert.Equal(t, StepSelectService, w.Step())
}

func TestWizard_RejectsUnknownService(t *testing.T) {
	w := NewWizard(newTestService(new(MockBookingRepository), new(MockNotificationSender)))

	assert.ErrorIs(t, w.SelectService("pedicure"), ErrUnknownService)
	assert.NoError(t, w.SelectService("bath"))
}

func TestWizard_BackFloorsAtFirstStep(t *testing.T) {
	w := NewWizard(newTestService(new(MockBookingRepository), new(MockNotificationSender)))

	w.Back()
	assert.Equal(t, StepSelectService, w.Step())

	assert.NoError(t, w.SelectService("bath"))
	assert.NoError(t, w.Next(context.Background()))
	assert.Equal(t, StepEnterDetails, w.Step())

	w.Back()
	assert.Equal(t, StepSelectService, w.Step())
	w.Back()
	assert.Equal(t, StepSelectService, w.Step())
}

func TestWizard_DetailsGuard(t *testing.T) {
	w := NewWizard(newTestService(new(MockBookingRepository), new(MockNotificationSender)))
	ctx := context.Background()

	assert.NoError(t, w.SelectService("bath"))
	assert.NoError(t, w.Next(ctx))

	d := validDetails()
	d.Phone = "12345"
	w.SetDetails(d)

	assert.ErrorIs(t, w.Next(ctx), ErrInvalidPhone)
	assert.Equal(t, StepEnterDetails, w.Step())
}

func TestWizard_HappyPath(t *testing.T) {
	repo := new(MockBookingRepository)
	notifs := new(MockNotificationSender)
	w := NewWizard(newTestService(repo, notifs))
	ctx := context.Background()

	repo.On("GetBookedSlots", mock.Anything, "2026-03-15").Return([]string{"09:00 AM"}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifs.On("NotifyBookingCreated", mock.Anything).Return()

	assert.NoError(t, w.SelectService("spa-bath-adult"))
	assert.NoError(t, w.Next(ctx))

	w.SetDetails(validDetails())
	assert.NoError(t, w.Next(ctx))

	assert.NoError(t, w.SelectDate(ctx, "2026-03-15"))
	assert.Equal(t, []string{"09:00 AM"}, w.BookedSlots())
	assert.NoError(t, w.SelectSlot("10:00 AM"))
	w.SetNotes("sensitive skin")

	assert.Equal(t, 1819, w.TotalPrice()) // 1399 * 1.3 rounded

	assert.NoError(t, w.Next(ctx))
	assert.Equal(t, StepConfirmed, w.Step())
	assert.NotNil(t, w.Booking())
	assert.Equal(t, 1819, w.Booking().TotalPrice)
	notifs.AssertNumberOfCalls(t, "NotifyBookingCreated", 1)

	// Confirmed is terminal in both directions.
	assert.NoError(t, w.Next(ctx))
	w.Back()
	assert.Equal(t, StepConfirmed, w.Step())
}

func TestWizard_SlotTakenOnSelect(t *testing.T) {
	repo := new(MockBookingRepository)
	w := NewWizard(newTestService(repo, new(MockNotificationSender)))
	ctx := context.Background()

	repo.On("GetBookedSlots", mock.Anything, "2026-03-15").Return([]string{"10:00 AM"}, nil)

	assert.NoError(t, w.SelectDate(ctx, "2026-03-15"))
	assert.ErrorIs(t, w.SelectSlot("10:00 AM"), ErrSlotTaken)
	assert.ErrorIs(t, w.SelectSlot("07:00 AM"), ErrInvalidSlot)
}

func TestWizard_DateChangeInvalidatesSlot(t *testing.T) {
	repo := new(MockBookingRepository)
	w := NewWizard(newTestService(repo, new(MockNotificationSender)))
	ctx := context.Background()

	repo.On("GetBookedSlots", mock.Anything, "2026-03-15").Return([]string{}, nil)
	repo.On("GetBookedSlots", mock.Anything, "2026-03-16").Return([]string{"10:00 AM"}, nil)

	assert.NoError(t, w.SelectService("bath"))
	assert.NoError(t, w.Next(ctx))
	w.SetDetails(validDetails())
	assert.NoError(t, w.Next(ctx))

	assert.NoError(t, w.SelectDate(ctx, "2026-03-15"))
	assert.NoError(t, w.SelectSlot("10:00 AM"))

	// Moving to a day where that slot is taken clears the stale choice.
	assert.NoError(t, w.SelectDate(ctx, "2026-03-16"))
	assert.ErrorIs(t, w.Next(ctx), ErrDateTimeRequired)
	assert.Equal(t, StepSelectDateTime, w.Step())
}

func TestWizard_SubmitFailureKeepsStep(t *testing.T) {
	repo := new(MockBookingRepository)
	notifs := new(MockNotificationSender)
	w := NewWizard(newTestService(repo, notifs))
	ctx := context.Background()

	storeErr := errors.New("connection refused")
	repo.On("GetBookedSlots", mock.Anything, "2026-03-15").Return([]string{}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(storeErr)

	assert.NoError(t, w.SelectService("bath"))
	assert.NoError(t, w.Next(ctx))
	w.SetDetails(validDetails())
	assert.NoError(t, w.Next(ctx))
	assert.NoError(t, w.SelectDate(ctx, "2026-03-15"))
	assert.NoError(t, w.SelectSlot("10:00 AM"))

	assert.ErrorIs(t, w.Next(ctx), storeErr)
	assert.Equal(t, StepSelectDateTime, w.Step())
	assert.Nil(t, w.Booking())
	notifs.AssertNotCalled(t, "NotifyBookingCreated", mock.Anything)
}
