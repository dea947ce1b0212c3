package models

import (
	"time"
)

// Gallery represents a gallery image. Images are stored as external URLs,
// the binary itself is never uploaded here.
type Gallery struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"not null"`
	ImageURL   string    `json:"image_url" gorm:"not null"`
	Category   string    `json:"category" gorm:"default:'campus'"`
	UploadedBy string    `json:"uploaded_by" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}
