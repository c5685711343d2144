package store

import (
	"fmt"

	"serenefit-backend/models"

	"gorm.io/gorm"
)

// TestimonialImageStore manages per-service testimonial image galleries.
// Images are ordered by a contiguous 0-based position within each service.
type TestimonialImageStore struct {
	DB *gorm.DB
}

func NewTestimonialImageStore(db *gorm.DB) *TestimonialImageStore {
	return &TestimonialImageStore{DB: db}
}

// ServiceImages is one service's gallery in position order.
type ServiceImages struct {
	ServiceID string   `json:"service_id"`
	Images    []string `json:"images"`
}

// ByService returns the gallery for one service, empty when none exists.
func (s *TestimonialImageStore) ByService(serviceID string) ([]string, error) {
	var rows []models.TestimonialImage
	if err := s.DB.Where("service_id = ?", serviceID).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	images := make([]string, 0, len(rows))
	for _, r := range rows {
		images = append(images, r.ImageURL)
	}
	return images, nil
}

// Grouped returns every gallery keyed by service.
func (s *TestimonialImageStore) Grouped() ([]ServiceImages, error) {
	var rows []models.TestimonialImage
	if err := s.DB.Order("service_id ASC, position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	var out []ServiceImages
	for _, r := range rows {
		if len(out) == 0 || out[len(out)-1].ServiceID != r.ServiceID {
			out = append(out, ServiceImages{ServiceID: r.ServiceID})
		}
		out[len(out)-1].Images = append(out[len(out)-1].Images, r.ImageURL)
	}
	return out, nil
}

// Add appends an image to a service's gallery, creating the gallery on first
// add. There is no cap on gallery size.
func (s *TestimonialImageStore) Add(serviceID, imageURL string) (models.TestimonialImage, error) {
	var count int64
	if err := s.DB.Model(&models.TestimonialImage{}).Where("service_id = ?", serviceID).Count(&count).Error; err != nil {
		return models.TestimonialImage{}, err
	}
	img := models.TestimonialImage{
		ServiceID: serviceID,
		Position:  int(count),
		ImageURL:  imageURL,
	}
	if err := s.DB.Create(&img).Error; err != nil {
		return models.TestimonialImage{}, err
	}
	return img, nil
}

// ReplaceAt swaps the image at the given position. Out-of-range positions are
// an error surfaced to the caller, never a panic.
func (s *TestimonialImageStore) ReplaceAt(serviceID string, position int, imageURL string) (string, error) {
	var row models.TestimonialImage
	err := s.DB.Where("service_id = ? AND position = ?", serviceID, position).First(&row).Error
	if err != nil {
		return "", fmt.Errorf("no image at position %d for service %q", position, serviceID)
	}
	old := row.ImageURL
	row.ImageURL = imageURL
	if err := s.DB.Save(&row).Error; err != nil {
		return "", err
	}
	return old, nil
}

// RemoveAt deletes the image at the given position and renumbers the rest so
// positions stay contiguous. Returns the removed URL.
func (s *TestimonialImageStore) RemoveAt(serviceID string, position int) (string, error) {
	var row models.TestimonialImage
	err := s.DB.Where("service_id = ? AND position = ?", serviceID, position).First(&row).Error
	if err != nil {
		return "", fmt.Errorf("no image at position %d for service %q", position, serviceID)
	}
	removed := row.ImageURL
	if err := s.DB.Delete(&models.TestimonialImage{}, "id = ?", row.ID).Error; err != nil {
		return "", err
	}
	err = s.DB.Model(&models.TestimonialImage{}).
		Where("service_id = ? AND position > ?", serviceID, position).
		Update("position", gorm.Expr("position - 1")).Error
	if err != nil {
		return "", err
	}
	return removed, nil
}
