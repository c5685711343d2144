package store

import (
	"fmt"
	"time"

	"serenefit-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStore manages public booking submissions and their admin lifecycle.
type BookingStore struct {
	DB *gorm.DB
}

func NewBookingStore(db *gorm.DB) *BookingStore {
	return &BookingStore{DB: db}
}

// Create persists a new submission. Status is always pending on creation and
// SubmittedAt is stamped here, regardless of what the caller set.
func (s *BookingStore) Create(b *models.Booking) error {
	b.Status = models.BookingStatusPending
	b.SubmittedAt = time.Now()
	return s.DB.Create(b).Error
}

// List returns bookings newest-first, optionally filtered by status.
func (s *BookingStore) List(status models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	query := s.DB.Order("submitted_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Get returns one booking by id.
func (s *BookingStore) Get(id uuid.UUID) (models.Booking, error) {
	var b models.Booking
	err := s.DB.Where("id = ?", id).First(&b).Error
	return b, err
}

// UpdateStatus moves a booking to the given status. All fields other than
// status are left untouched.
func (s *BookingStore) UpdateStatus(id uuid.UUID, status models.BookingStatus) (models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return models.Booking{}, fmt.Errorf("invalid booking status %q", status)
	}
	var b models.Booking
	if err := s.DB.Where("id = ?", id).First(&b).Error; err != nil {
		return models.Booking{}, err
	}
	b.Status = status
	if err := s.DB.Save(&b).Error; err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

// Delete removes a booking. Deleting an id that does not exist is a no-op.
func (s *BookingStore) Delete(id uuid.UUID) error {
	return s.DB.Delete(&models.Booking{}, "id = ?", id).Error
}
