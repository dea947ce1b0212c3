package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gurukul-api/dto"
	"github.com/gurukul-api/models"
	"gorm.io/gorm"
)

// GalleryStore is the slice of the gallery repository the service needs
type GalleryStore interface {
	FindAll() ([]models.Gallery, error)
	Create(image models.Gallery) (models.Gallery, error)
	Delete(id string) error
}

// GalleryService handles business logic for gallery images
type GalleryService struct {
	gallery GalleryStore
}

// NewGalleryService creates a new gallery service instance
func NewGalleryService(gallery GalleryStore) *GalleryService {
	return &GalleryService{gallery: gallery}
}

// ListImages retrieves all gallery images
func (s *GalleryService) ListImages() ([]models.Gallery, error) {
	return s.gallery.FindAll()
}

// AddImage stores a new gallery image attributed to the uploading admin
func (s *GalleryService) AddImage(req dto.GalleryCreateRequest, uploadedBy string) (models.Gallery, error) {
	category := req.Category
	if category == "" {
		category = "campus"
	}
	image := models.Gallery{
		ID:         uuid.New().String(),
		Title:      req.Title,
		ImageURL:   req.ImageURL,
		Category:   category,
		UploadedBy: uploadedBy,
		CreatedAt:  time.Now().UTC(),
	}
	return s.gallery.Create(image)
}

// DeleteImage removes a gallery image
func (s *GalleryService) DeleteImage(id string) error {
	err := s.gallery.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
