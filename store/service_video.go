package store

import (
	"log"
	"time"

	"serenefit-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceVideoStore manages uploaded per-service videos, payload included.
// List queries deliberately skip the blob column and, on internal error, log
// and return an empty list so the public page still renders.
type ServiceVideoStore struct {
	DB *gorm.DB
}

func NewServiceVideoStore(db *gorm.DB) *ServiceVideoStore {
	return &ServiceVideoStore{DB: db}
}

// listColumns omits video_data so listings stay cheap.
var listColumns = []string{
	"id", "service_id", "title", "content_type", "thumbnail",
	"duration", "size_bytes", "uploaded_at",
}

// All returns every uploaded video without payloads.
func (s *ServiceVideoStore) All() []models.ServiceVideo {
	var videos []models.ServiceVideo
	if err := s.DB.Select(listColumns).Order("uploaded_at DESC").Find(&videos).Error; err != nil {
		log.Printf("service video listing failed: %v", err)
		return []models.ServiceVideo{}
	}
	return videos
}

// ByService returns one service's videos without payloads, via the service_id
// index.
func (s *ServiceVideoStore) ByService(serviceID string) []models.ServiceVideo {
	var videos []models.ServiceVideo
	err := s.DB.Select(listColumns).Where("service_id = ?", serviceID).
		Order("uploaded_at DESC").Find(&videos).Error
	if err != nil {
		log.Printf("service video listing for %q failed: %v", serviceID, err)
		return []models.ServiceVideo{}
	}
	return videos
}

// Get loads one video including its payload, for streaming.
func (s *ServiceVideoStore) Get(id uuid.UUID) (models.ServiceVideo, error) {
	var v models.ServiceVideo
	err := s.DB.Where("id = ?", id).First(&v).Error
	return v, err
}

// Add assigns the id and upload timestamp and persists the record.
func (s *ServiceVideoStore) Add(v *models.ServiceVideo) error {
	v.ID = uuid.New()
	v.UploadedAt = time.Now()
	v.SizeBytes = int64(len(v.VideoData))
	return s.DB.Create(v).Error
}

// Delete removes a video by primary key; absent ids are a no-op.
func (s *ServiceVideoStore) Delete(id uuid.UUID) error {
	return s.DB.Delete(&models.ServiceVideo{}, "id = ?", id).Error
}
