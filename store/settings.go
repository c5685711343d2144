package store

import (
	"errors"

	"serenefit-backend/models"

	"gorm.io/gorm"
)

// SettingsStore manages the single-row consultation settings.
type SettingsStore struct {
	DB *gorm.DB
}

func NewSettingsStore(db *gorm.DB) *SettingsStore {
	return &SettingsStore{DB: db}
}

// DefaultConsultationSettings is the value every reader sees before an admin
// ever saves.
func DefaultConsultationSettings() models.ConsultationSettings {
	return models.ConsultationSettings{
		Fee:      99,
		Duration: 45,
		TimeSlots: models.StringList{
			"10:00 AM - 10:45 AM",
			"11:00 AM - 11:45 AM",
			"4:00 PM - 4:45 PM",
			"5:00 PM - 5:45 PM",
			"6:00 PM - 6:45 PM",
		},
		WeekdayHours: "6:00 AM - 9:00 PM",
		WeekendHours: "7:00 AM - 1:00 PM",
	}
}

// Get returns the current settings, seeding the default row when none exists.
// Callers never see a missing-row error.
func (s *SettingsStore) Get() (models.ConsultationSettings, error) {
	var settings models.ConsultationSettings
	err := s.DB.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = DefaultConsultationSettings()
		if err := s.DB.Create(&settings).Error; err != nil {
			return DefaultConsultationSettings(), err
		}
		return settings, nil
	}
	if err != nil {
		return DefaultConsultationSettings(), err
	}
	return settings, nil
}

// Save overwrites the settings wholesale, preserving the singleton row id.
func (s *SettingsStore) Save(settings models.ConsultationSettings) (models.ConsultationSettings, error) {
	current, err := s.Get()
	if err != nil {
		return settings, err
	}
	settings.ID = current.ID
	if err := s.DB.Save(&settings).Error; err != nil {
		return settings, err
	}
	return settings, nil
}
