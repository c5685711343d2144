package models

import "time"

// ClassCounts are the three numeric badges shown on the image calendar.
type ClassCounts struct {
	Count1 int `json:"count1"`
	Count2 int `json:"count2"`
	Count3 int `json:"count3"`
}

// ImageCalendar is the single-row "calendar as an uploaded image" variant of
// the schedule page. The image is replaced wholesale on upload; Reset restores
// the defaults and drops the image.
type ImageCalendar struct {
	ID             uint        `gorm:"primaryKey" json:"-"`
	WeekdayTimings string      `json:"weekday_timings"`
	WeekendTimings string      `json:"weekend_timings"`
	CalendarImage  string      `json:"calendar_image"`
	Month          string      `json:"month"`
	ClassCounts    ClassCounts `gorm:"embedded;embeddedPrefix:class_" json:"class_counts"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
