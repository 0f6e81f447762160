package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"dogstudio/internal/domain"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyStatusChanged(b *domain.Booking, newStatus domain.BookingStatus) {
	m.Called(b, newStatus)
}

func sampleBookings() []domain.Booking {
	return []domain.Booking{
		{ID: "b1", Status: domain.BookingPending},
		{ID: "b2", Status: domain.BookingPending},
		{ID: "b3", Status: domain.BookingConfirmed},
		{ID: "b4", Status: domain.BookingCompleted},
		{ID: "b5", Status: domain.BookingCancelled},
	}
}

func TestListBookings_All(t *testing.T) {
	repo := new(MockBookingRepository)
	s := NewService(repo, new(MockNotificationSender))

	repo.On("GetAll", mock.Anything).Return(sampleBookings(), nil)

	all, err := s.ListBookings(context.Background(), "all")
	assert.NoError(t, err)
	assert.Len(t, all, 5)

	all, err = s.ListBookings(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestListBookings_Filtered(t *testing.T) {
	repo := new(MockBookingRepository)
	s := NewService(repo, new(MockNotificationSender))

	repo.On("GetAll", mock.Anything).Return(sampleBookings(), nil)

	pending, err := s.ListBookings(context.Background(), "pending")
	assert.NoError(t, err)
	assert.Len(t, pending, 2)
	assert.Equal(t, "b1", pending[0].ID)

	_, err = s.ListBookings(context.Background(), "archived")
	assert.ErrorIs(t, err, ErrInvalidStatusFilter)
}

func TestGetStats(t *testing.T) {
	repo := new(MockBookingRepository)
	s := NewService(repo, new(MockNotificationSender))

	repo.On("GetAll", mock.Anything).Return(sampleBookings(), nil)

	stats, err := s.GetStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, Stats{Total: 5, Pending: 2, Confirmed: 1, Completed: 1, Cancelled: 1}, stats)
}

func TestUpdateStatus_PendingToConfirmed(t *testing.T) {
	repo := new(MockBookingRepository)
	notifs := new(MockNotificationSender)
	s := NewService(repo, notifs)

	current := &domain.Booking{ID: "b1", Status: domain.BookingPending}
	updated := &domain.Booking{ID: "b1", Status: domain.BookingConfirmed}
	repo.On("GetByID", mock.Anything, "b1").Return(current, nil)
	repo.On("UpdateStatus", mock.Anything, "b1", domain.BookingConfirmed).Return(updated, nil)
	notifs.On("NotifyStatusChanged", updated, domain.BookingConfirmed).Return()

	got, err := s.UpdateStatus(context.Background(), "b1", domain.BookingConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, got.Status)
	notifs.AssertNumberOfCalls(t, "NotifyStatusChanged", 1)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_IllegalTransitions(t *testing.T) {
	cases := []struct {
		name string
		from domain.BookingStatus
		to   domain.BookingStatus
	}{
		{"pending to completed skips confirmation", domain.BookingPending, domain.BookingCompleted},
		{"confirmed cannot be cancelled", domain.BookingConfirmed, domain.BookingCancelled},
		{"completed is terminal", domain.BookingCompleted, domain.BookingConfirmed},
		{"cancelled is terminal", domain.BookingCancelled, domain.BookingConfirmed},
		{"no self transition", domain.BookingPending, domain.BookingPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockBookingRepository)
			notifs := new(MockNotificationSender)
			s := NewService(repo, notifs)

			repo.On("GetByID", mock.Anything, "b1").Return(&domain.Booking{ID: "b1", Status: tc.from}, nil)

			_, err := s.UpdateStatus(context.Background(), "b1", tc.to)

			assert.ErrorIs(t, err, ErrInvalidStatusTransition)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			notifs.AssertNotCalled(t, "NotifyStatusChanged", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	s := NewService(new(MockBookingRepository), new(MockNotificationSender))

	_, err := s.UpdateStatus(context.Background(), "b1", "archived")

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	s := NewService(repo, new(MockNotificationSender))

	repo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.UpdateStatus(context.Background(), "missing", domain.BookingConfirmed)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteBooking(t *testing.T) {
	repo := new(MockBookingRepository)
	s := NewService(repo, new(MockNotificationSender))

	repo.On("Delete", mock.Anything, "b1").Return(nil)
	assert.NoError(t, s.DeleteBooking(context.Background(), "b1"))

	repo.On("Delete", mock.Anything, "missing").Return(gorm.ErrRecordNotFound)
	assert.ErrorIs(t, s.DeleteBooking(context.Background(), "missing"), ErrNotFound)
}
