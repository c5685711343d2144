package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is one of the three booking states.
// Any state is reachable from any other; transitions are admin-triggered only.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Whatsapp string    `gorm:"not null" json:"whatsapp"`
	Email    string    `json:"email,omitempty"`
	TimeSlot string    `gorm:"not null" json:"time_slot"`

	// Loose reference to a service: snapshotted at submit time and never
	// validated against the services table, so deleting a service leaves
	// booking history intact.
	ServiceID   string `gorm:"index" json:"service_id,omitempty"`
	ServiceName string `json:"service_name,omitempty"`

	SubmittedAt time.Time      `json:"submitted_at"`
	Status      BookingStatus  `gorm:"type:varchar(32);default:'pending';index" json:"status"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
