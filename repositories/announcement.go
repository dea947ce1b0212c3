package repositories

import (
	"github.com/gurukul-api/models"
	"gorm.io/gorm"
)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository instance
func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// FindActive retrieves all active announcements
func (r *AnnouncementRepository) FindActive() ([]models.Announcement, error) {
	var announcements []models.Announcement
	result := r.db.Where("is_active = ?", true).Limit(listLimit).Find(&announcements)
	return announcements, result.Error
}

// FindByID retrieves an announcement by its ID
func (r *AnnouncementRepository) FindByID(id string) (models.Announcement, error) {
	var announcement models.Announcement
	result := r.db.First(&announcement, "id = ?", id)
	return announcement, result.Error
}

// Create inserts a new announcement
func (r *AnnouncementRepository) Create(announcement models.Announcement) (models.Announcement, error) {
	result := r.db.Create(&announcement)
	return announcement, result.Error
}

// UpdateFields applies a partial update to an announcement
func (r *AnnouncementRepository) UpdateFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.Announcement{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an announcement from the database
func (r *AnnouncementRepository) Delete(id string) error {
	result := r.db.Delete(&models.Announcement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
