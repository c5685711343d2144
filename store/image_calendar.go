package store

import (
	"errors"
	"time"

	"serenefit-backend/models"

	"gorm.io/gorm"
)

// ImageCalendarStore manages the single-row image-calendar page.
type ImageCalendarStore struct {
	DB *gorm.DB
}

func NewImageCalendarStore(db *gorm.DB) *ImageCalendarStore {
	return &ImageCalendarStore{DB: db}
}

// DefaultImageCalendar is the state before any admin upload: no image, the
// current month label and the standard timings.
func DefaultImageCalendar() models.ImageCalendar {
	return models.ImageCalendar{
		WeekdayTimings: "6:00 AM - 9:00 PM",
		WeekendTimings: "7:00 AM - 1:00 PM",
		CalendarImage:  "",
		Month:          time.Now().Format("January 2006"),
		ClassCounts:    models.ClassCounts{Count1: 12, Count2: 8, Count3: 4},
	}
}

// Get returns the current image calendar, seeding the default row on miss.
func (s *ImageCalendarStore) Get() (models.ImageCalendar, error) {
	var cal models.ImageCalendar
	err := s.DB.First(&cal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cal = DefaultImageCalendar()
		if err := s.DB.Create(&cal).Error; err != nil {
			return DefaultImageCalendar(), err
		}
		return cal, nil
	}
	if err != nil {
		return DefaultImageCalendar(), err
	}
	return cal, nil
}

// Save overwrites the row wholesale, preserving the singleton id.
func (s *ImageCalendarStore) Save(cal models.ImageCalendar) (models.ImageCalendar, error) {
	current, err := s.Get()
	if err != nil {
		return cal, err
	}
	cal.ID = current.ID
	if err := s.DB.Save(&cal).Error; err != nil {
		return cal, err
	}
	return cal, nil
}

// Reset restores the defaults and returns the previously stored image URL so
// the caller can delete the uploaded object.
func (s *ImageCalendarStore) Reset() (models.ImageCalendar, string, error) {
	current, err := s.Get()
	if err != nil {
		return models.ImageCalendar{}, "", err
	}
	oldImage := current.CalendarImage
	fresh := DefaultImageCalendar()
	fresh.ID = current.ID
	if err := s.DB.Save(&fresh).Error; err != nil {
		return models.ImageCalendar{}, "", err
	}
	// Save skips zero values on updates for some column types; clear the image
	// column explicitly so the reset actually drops it.
	if err := s.DB.Model(&models.ImageCalendar{}).Where("id = ?", current.ID).Update("calendar_image", "").Error; err != nil {
		return models.ImageCalendar{}, "", err
	}
	fresh.CalendarImage = ""
	return fresh, oldImage, nil
}
