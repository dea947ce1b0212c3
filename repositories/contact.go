package repositories

import (
	"github.com/gurukul-api/models"
	"gorm.io/gorm"
)

// ContactRepository handles database operations for contact messages
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository instance
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// FindAll retrieves all contact messages
func (r *ContactRepository) FindAll() ([]models.Contact, error) {
	var contacts []models.Contact
	result := r.db.Limit(listLimit).Find(&contacts)
	return contacts, result.Error
}

// Create inserts a new contact message
func (r *ContactRepository) Create(contact models.Contact) (models.Contact, error) {
	result := r.db.Create(&contact)
	return contact, result.Error
}

// Count counts all contact messages
func (r *ContactRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&models.Contact{}).Count(&count)
	return count, result.Error
}
