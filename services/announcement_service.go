package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gurukul-api/dto"
	"github.com/gurukul-api/models"
	"gorm.io/gorm"
)

// AnnouncementStore is the slice of the announcement repository the service needs
type AnnouncementStore interface {
	FindActive() ([]models.Announcement, error)
	FindByID(id string) (models.Announcement, error)
	Create(announcement models.Announcement) (models.Announcement, error)
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
}

// AnnouncementService handles business logic for announcements
type AnnouncementService struct {
	announcements AnnouncementStore
}

// NewAnnouncementService creates a new announcement service instance
func NewAnnouncementService(announcements AnnouncementStore) *AnnouncementService {
	return &AnnouncementService{announcements: announcements}
}

// ListActive retrieves the public feed: active announcements only
func (s *AnnouncementService) ListActive() ([]models.Announcement, error) {
	return s.announcements.FindActive()
}

// Create stores a new announcement attributed to the creating admin.
// New announcements are active immediately.
func (s *AnnouncementService) Create(req dto.AnnouncementCreateRequest, createdBy string) (models.Announcement, error) {
	category := req.Category
	if category == "" {
		category = "general"
	}
	announcement := models.Announcement{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		Category:  category,
		IsActive:  true,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}
	return s.announcements.Create(announcement)
}

// Update applies a partial update. Absent fields keep their stored value,
// an empty request is a no-op that still returns the current record.
func (s *AnnouncementService) Update(id string, req dto.AnnouncementUpdateRequest) (models.Announcement, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if len(fields) > 0 {
		if err := s.announcements.UpdateFields(id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Announcement{}, ErrNotFound
			}
			return models.Announcement{}, err
		}
	}

	announcement, err := s.announcements.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Announcement{}, ErrNotFound
	}
	return announcement, err
}

// Delete removes an announcement
func (s *AnnouncementService) Delete(id string) error {
	err := s.announcements.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
