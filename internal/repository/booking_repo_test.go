package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dogstudio/internal/database"
	"dogstudio/internal/domain"
)

func setupTestRepo(t *testing.T) *BookingRepository {
	db, err := database.Connect("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)

	repo := NewBookingRepository(db)
	require.NoError(t, repo.Migrate())
	return repo
}

func newBooking(date, slot string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		CustomerName: "Pratish Chandran",
		Phone:        "9876543210",
		Email:        "pratish@example.com",
		PetName:      "Bruno",
		PetType:      "dog",
		PetSize:      "small",
		ServiceID:    "bath",
		ServiceName:  "Bath & Brush",
		BookingDate:  date,
		TimeSlot:     slot,
		TotalPrice:   699,
		Status:       status,
	}
}

func TestBookingRepository_CreateAssignsID(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	b := newBooking("2026-03-15", "10:00 AM", domain.BookingPending)
	require.NoError(t, repo.Create(ctx, b))
	assert.NotEmpty(t, b.ID)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bath & Brush", got.ServiceName)
	assert.Equal(t, domain.BookingPending, got.Status)
}

func TestBookingRepository_GetAllOrdering(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBooking("2026-03-16", "09:00 AM", domain.BookingPending)))
	require.NoError(t, repo.Create(ctx, newBooking("2026-03-15", "10:00 AM", domain.BookingPending)))
	require.NoError(t, repo.Create(ctx, newBooking("2026-03-15", "02:00 PM", domain.BookingPending)))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Date ascending, then the slot label ascending within a date.
	assert.Equal(t, "2026-03-15", all[0].BookingDate)
	assert.Equal(t, "02:00 PM", all[0].TimeSlot)
	assert.Equal(t, "10:00 AM", all[1].TimeSlot)
	assert.Equal(t, "2026-03-16", all[2].BookingDate)
}

func TestBookingRepository_GetBookedSlotsExcludesCancelled(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBooking("2026-03-15", "09:00 AM", domain.BookingPending)))
	require.NoError(t, repo.Create(ctx, newBooking("2026-03-15", "10:00 AM", domain.BookingCancelled)))
	require.NoError(t, repo.Create(ctx, newBooking("2026-03-16", "11:00 AM", domain.BookingConfirmed)))

	slots, err := repo.GetBookedSlots(ctx, "2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM"}, slots)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	b := newBooking("2026-03-15", "10:00 AM", domain.BookingPending)
	require.NoError(t, repo.Create(ctx, b))

	updated, err := repo.UpdateStatus(ctx, b.ID, domain.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, updated.Status)

	_, err = repo.UpdateStatus(ctx, "missing", domain.BookingConfirmed)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookingRepository_Delete(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	b := newBooking("2026-03-15", "10:00 AM", domain.BookingPending)
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.Delete(ctx, b.ID))

	_, err := repo.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, b.ID), gorm.ErrRecordNotFound)
}
