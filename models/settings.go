package models

import "time"

// ConsultationSettings is a single-row table holding the public consultation
// offer shown on the booking page. Readers always get a value: the store seeds
// the default row on first read.
type ConsultationSettings struct {
	ID           uint       `gorm:"primaryKey" json:"-"`
	Fee          float64    `json:"fee"`
	Duration     int        `json:"duration"` // minutes
	TimeSlots    StringList `gorm:"type:text" json:"time_slots"`
	WeekdayHours string     `json:"weekday_hours"`
	WeekendHours string     `json:"weekend_hours"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
