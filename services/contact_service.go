package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/gurukul-api/dto"
	"github.com/gurukul-api/models"
)

// ContactStore is the slice of the contact repository the service needs
type ContactStore interface {
	FindAll() ([]models.Contact, error)
	Create(contact models.Contact) (models.Contact, error)
}

// ContactService handles business logic for contact messages
type ContactService struct {
	contacts ContactStore
}

// NewContactService creates a new contact service instance
func NewContactService(contacts ContactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

// Submit stores a new contact message
func (s *ContactService) Submit(req dto.ContactCreateRequest) (models.Contact, error) {
	contact := models.Contact{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	return s.contacts.Create(contact)
}

// ListContacts retrieves all contact messages
func (s *ContactService) ListContacts() ([]models.Contact, error) {
	return s.contacts.FindAll()
}
