package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dogstudio/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	CustomerName string    `gorm:"column:customer_name"`
	Phone        string    `gorm:"column:phone"`
	Email        string    `gorm:"column:email"`
	PetName      string    `gorm:"column:pet_name"`
	PetType      string    `gorm:"column:pet_type"`
	PetSize      string    `gorm:"column:pet_size"`
	ServiceID    string    `gorm:"column:service_id"`
	ServiceName  string    `gorm:"column:service_name"`
	BookingDate  string    `gorm:"column:booking_date;index"`
	TimeSlot     string    `gorm:"column:time_slot"`
	Notes        *string   `gorm:"column:notes;type:text"`
	TotalPrice   int       `gorm:"column:total_price"`
	Status       string    `gorm:"column:status;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Booking{
		ID:           m.ID,
		CustomerName: m.CustomerName,
		Phone:        m.Phone,
		Email:        m.Email,
		PetName:      m.PetName,
		PetType:      m.PetType,
		PetSize:      m.PetSize,
		ServiceID:    m.ServiceID,
		ServiceName:  m.ServiceName,
		BookingDate:  m.BookingDate,
		TimeSlot:     m.TimeSlot,
		Notes:        notes,
		TotalPrice:   m.TotalPrice,
		Status:       domain.BookingStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	return bookingModel{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		Email:        b.Email,
		PetName:      b.PetName,
		PetType:      b.PetType,
		PetSize:      b.PetSize,
		ServiceID:    b.ServiceID,
		ServiceName:  b.ServiceName,
		BookingDate:  b.BookingDate,
		TimeSlot:     b.TimeSlot,
		Notes:        notes,
		TotalPrice:   b.TotalPrice,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// Create inserts the booking and assigns the store-generated id.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// GetAll returns every booking ordered by date then time slot ascending.
func (r *BookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Order("booking_date asc").
		Order("time_slot asc").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// GetBookedSlots returns the time slots of all non-cancelled bookings on date.
func (r *BookingRepository) GetBookedSlots(ctx context.Context, date string) ([]string, error) {
	var slots []string
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("booking_date = ? AND status <> ?", date, string(domain.BookingCancelled)).
		Pluck("time_slot", &slots)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return slots, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Migrate creates the bookings table. No unique index is created on
// (booking_date, time_slot): slot collision stays an advisory check at
// submission time.
func (r *BookingRepository) Migrate() error {
	return r.db.AutoMigrate(&bookingModel{})
}
