package models

import (
	"time"

	"gorm.io/gorm"
)

// Service is one wellness program offered by the studio. The primary key is a
// URL slug derived from the title so public pages can link by readable id.
type Service struct {
	ID               string       `gorm:"primaryKey" json:"id"`
	Title            string       `gorm:"not null" json:"title"`
	ShortDescription string       `json:"short_description"`
	LongDescription  string       `json:"long_description"`
	Includes         StringList   `gorm:"type:text" json:"includes"`
	Benefits         StringList   `gorm:"type:text" json:"benefits"`
	Fee              float64      `json:"fee"`
	Duration         int          `json:"duration"` // minutes per session
	Availability     Availability `gorm:"type:text" json:"availability"`
	Timezone         string       `gorm:"default:'Asia/Kolkata'" json:"timezone"`
	SupportPhone     string       `json:"support_phone"`
	SupportEmail     string       `json:"support_email"`
	IsActive         bool         `gorm:"default:true" json:"is_active"`
	IsBookable       bool         `gorm:"default:true" json:"is_bookable"`
	Icon             string       `json:"icon"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
