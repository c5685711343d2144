package store

import (
	"serenefit-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MediaStore manages the home page video carousel and the video testimonial
// list.
type MediaStore struct {
	DB *gorm.DB
}

func NewMediaStore(db *gorm.DB) *MediaStore {
	return &MediaStore{DB: db}
}

// DefaultHomeVideos are the sample clips shown until an admin replaces them.
func DefaultHomeVideos() []models.HomeVideo {
	return []models.HomeVideo{
		{
			VideoURL:  "https://www.youtube.com/embed/v7AYKMP6rOE",
			Title:     "Morning Yoga Flow",
			Thumbnail: "https://img.youtube.com/vi/v7AYKMP6rOE/hqdefault.jpg",
		},
		{
			VideoURL:  "https://www.youtube.com/embed/UItWltVZZmE",
			Title:     "Full Body HIIT",
			Thumbnail: "https://img.youtube.com/vi/UItWltVZZmE/hqdefault.jpg",
		},
	}
}

// DefaultVideoTestimonials are the sample testimonials shown until an admin
// replaces them.
func DefaultVideoTestimonials() []models.VideoTestimonial {
	return []models.VideoTestimonial{
		{
			VideoURL:    "https://www.youtube.com/embed/g_tea8ZNk5A",
			ServiceName: "Personal Training",
			Thumbnail:   "https://img.youtube.com/vi/g_tea8ZNk5A/hqdefault.jpg",
		},
	}
}

func (s *MediaStore) HomeVideos() ([]models.HomeVideo, error) {
	var videos []models.HomeVideo
	if err := s.DB.Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (s *MediaStore) AddHomeVideo(v *models.HomeVideo) error {
	return s.DB.Create(v).Error
}

func (s *MediaStore) GetHomeVideo(id uuid.UUID) (models.HomeVideo, error) {
	var v models.HomeVideo
	err := s.DB.Where("id = ?", id).First(&v).Error
	return v, err
}

func (s *MediaStore) SaveHomeVideo(v *models.HomeVideo) error {
	return s.DB.Save(v).Error
}

// DeleteHomeVideo removes a clip; absent ids are a no-op.
func (s *MediaStore) DeleteHomeVideo(id uuid.UUID) error {
	return s.DB.Delete(&models.HomeVideo{}, "id = ?", id).Error
}

func (s *MediaStore) VideoTestimonials() ([]models.VideoTestimonial, error) {
	var videos []models.VideoTestimonial
	if err := s.DB.Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (s *MediaStore) AddVideoTestimonial(v *models.VideoTestimonial) error {
	return s.DB.Create(v).Error
}

func (s *MediaStore) GetVideoTestimonial(id uuid.UUID) (models.VideoTestimonial, error) {
	var v models.VideoTestimonial
	err := s.DB.Where("id = ?", id).First(&v).Error
	return v, err
}

func (s *MediaStore) SaveVideoTestimonial(v *models.VideoTestimonial) error {
	return s.DB.Save(v).Error
}

// DeleteVideoTestimonial removes a testimonial; absent ids are a no-op.
func (s *MediaStore) DeleteVideoTestimonial(id uuid.UUID) error {
	return s.DB.Delete(&models.VideoTestimonial{}, "id = ?", id).Error
}
