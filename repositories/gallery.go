package repositories

import (
	"github.com/gurukul-api/models"
	"gorm.io/gorm"
)

// GalleryRepository handles database operations for gallery images
type GalleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a new gallery repository instance
func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// FindAll retrieves all gallery images
func (r *GalleryRepository) FindAll() ([]models.Gallery, error) {
	var images []models.Gallery
	result := r.db.Limit(listLimit).Find(&images)
	return images, result.Error
}

// Create inserts a new gallery image
func (r *GalleryRepository) Create(image models.Gallery) (models.Gallery, error) {
	result := r.db.Create(&image)
	return image, result.Error
}

// Delete removes a gallery image from the database
func (r *GalleryRepository) Delete(id string) error {
	result := r.db.Delete(&models.Gallery{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count counts all gallery images
func (r *GalleryRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.Gallery{}).Count(&count)
	return count, result.Error
}
