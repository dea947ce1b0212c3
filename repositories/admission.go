package repositories

import (
	"github.com/gurukul-api/models"
	"gorm.io/gorm"
)

// AdmissionRepository handles database operations for admission applications
type AdmissionRepository struct {
	db *gorm.DB
}

// NewAdmissionRepository creates a new admission repository instance
func NewAdmissionRepository(db *gorm.DB) *AdmissionRepository {
	return &AdmissionRepository{db: db}
}

// FindAll retrieves all admission applications
func (r *AdmissionRepository) FindAll() ([]models.Admission, error) {
	var admissions []models.Admission
	result := r.db.Limit(listLimit).Find(&admissions)
	return admissions, result.Error
}

// FindByID retrieves an admission application by its ID
func (r *AdmissionRepository) FindByID(id string) (models.Admission, error) {
	var admission models.Admission
	result := r.db.First(&admission, "id = ?", id)
	return admission, result.Error
}

// Create inserts a new admission application
func (r *AdmissionRepository) Create(admission models.Admission) (models.Admission, error) {
	result := r.db.Create(&admission)
	return admission, result.Error
}

// UpdateStatus transitions the status of an admission application
func (r *AdmissionRepository) UpdateStatus(id string, status models.AdmissionStatus) error {
	result := r.db.Model(&models.Admission{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count counts all admission applications
func (r *AdmissionRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.Admission{}).Count(&count)
	return count, result.Error
}

// CountByStatus counts admission applications in the given status
func (r *AdmissionRepository) CountByStatus(status models.AdmissionStatus) (int64, error) {
	var count int64
	result := r.db.Model(&models.Admission{}).Where("status = ?", status).Count(&count)
	return count, result.Error
}
