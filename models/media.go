package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HomeVideo is a promotional clip on the home page carousel.
type HomeVideo struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VideoURL  string         `gorm:"not null" json:"video_url"`
	Title     string         `json:"title"`
	Thumbnail string         `json:"thumbnail"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (v *HomeVideo) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// VideoTestimonial is a client testimonial clip, labelled with the service it
// speaks about.
type VideoTestimonial struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VideoURL    string         `gorm:"not null" json:"video_url"`
	ServiceName string         `json:"service_name"`
	Thumbnail   string         `json:"thumbnail"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (v *VideoTestimonial) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TestimonialImage is one image in a service's ordered testimonial gallery.
// Position is 0-based and kept contiguous per service by the store.
type TestimonialImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID string    `gorm:"index;not null" json:"service_id"`
	Position  int       `gorm:"not null" json:"position"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (i *TestimonialImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// ServiceVideo holds an uploaded per-service video. The raw bytes live in the
// row rather than the filesystem so the record and its payload share one
// lifecycle; service_id carries a non-unique index for the by-service query.
type ServiceVideo struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID   string    `gorm:"index;not null" json:"service_id"`
	Title       string    `json:"title"`
	VideoData   []byte    `gorm:"type:bytes" json:"-"`
	ContentType string    `json:"content_type"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    string    `json:"duration"` // "m:ss", empty when the probe failed
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func (v *ServiceVideo) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
