package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gurukul-api/dto"
	"github.com/gurukul-api/models"
	"gorm.io/gorm"
)

// AdmissionStore is the slice of the admission repository the service needs
type AdmissionStore interface {
	FindAll() ([]models.Admission, error)
	FindByID(id string) (models.Admission, error)
	Create(admission models.Admission) (models.Admission, error)
	UpdateStatus(id string, status models.AdmissionStatus) error
}

// AdmissionService handles business logic for admission applications
type AdmissionService struct {
	admissions AdmissionStore
}

// NewAdmissionService creates a new admission service instance
func NewAdmissionService(admissions AdmissionStore) *AdmissionService {
	return &AdmissionService{admissions: admissions}
}

// Submit stores a new admission application. Every application starts in
// the pending state regardless of the input.
func (s *AdmissionService) Submit(req dto.AdmissionCreateRequest) (models.Admission, error) {
	admission := models.Admission{
		ID:             uuid.New().String(),
		StudentName:    req.StudentName,
		ParentName:     req.ParentName,
		Email:          req.Email,
		Phone:          req.Phone,
		Grade:          req.Grade,
		DOB:            req.DOB,
		Address:        req.Address,
		PreviousSchool: req.PreviousSchool,
		Status:         models.AdmissionPending,
		SubmittedAt:    time.Now().UTC(),
	}
	return s.admissions.Create(admission)
}

// ListAdmissions retrieves all admission applications
func (s *AdmissionService) ListAdmissions() ([]models.Admission, error) {
	return s.admissions.FindAll()
}

// GetAdmission retrieves an admission application by ID
func (s *AdmissionService) GetAdmission(id string) (models.Admission, error) {
	admission, err := s.admissions.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Admission{}, ErrNotFound
	}
	return admission, err
}

// UpdateStatus transitions an application to a new review state. The
// status set is closed, anything outside it is rejected before the store
// is touched.
func (s *AdmissionService) UpdateStatus(id string, status string) error {
	next := models.AdmissionStatus(status)
	switch next {
	case models.AdmissionPending, models.AdmissionApproved, models.AdmissionRejected:
	default:
		return ErrInvalidStatus
	}

	err := s.admissions.UpdateStatus(id, next)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
