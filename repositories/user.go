package repositories

import (
	"github.com/gurukul-api/models"
	"gorm.io/gorm"
)

// listLimit caps every collection listing. The API has no pagination
// cursor, listings are a bounded snapshot.
const listLimit = 1000

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := r.db.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := r.db.First(&user, "email = ?", email)
	return user, result.Error
}

// FindByRole retrieves all users holding the given role
func (r *UserRepository) FindByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	result := r.db.Where("role = ?", role).Limit(listLimit).Find(&users)
	return users, result.Error
}

// Create inserts a new user. The unique index on email makes the insert
// fail with gorm.ErrDuplicatedKey when the address is already registered.
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := r.db.Create(&user)
	return user, result.Error
}

// UpdateFields applies a partial update to a user record
func (r *UserRepository) UpdateFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a user from the database
func (r *UserRepository) Delete(id string) error {
	result := r.db.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByRole counts users holding the given role
func (r *UserRepository) CountByRole(role models.Role) (int64, error) {
	var count int64
	result := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count)
	return count, result.Error
}
