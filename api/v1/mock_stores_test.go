package v1

import (
	"github.com/gurukul-api/models"
	"gorm.io/gorm"
)

// In-memory stores backing the wiring tests. Same contract as the
// repositories, including gorm's sentinel errors.

type memUserStore struct {
	users map[string]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]models.User)}
}

func (m *memUserStore) FindByID(id string) (models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (m *memUserStore) FindByEmail(email string) (models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (m *memUserStore) FindByRole(role models.Role) ([]models.User, error) {
	var result []models.User
	for _, u := range m.users {
		if u.Role == role {
			result = append(result, u)
		}
	}
	return result, nil
}

func (m *memUserStore) Create(user models.User) (models.User, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return models.User{}, gorm.ErrDuplicatedKey
		}
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *memUserStore) UpdateFields(id string, fields map[string]interface{}) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if name, ok := fields["name"]; ok {
		u.Name = name.(string)
	}
	if phone, ok := fields["phone"]; ok {
		u.Phone = phone.(string)
	}
	m.users[id] = u
	return nil
}

func (m *memUserStore) Delete(id string) error {
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memUserStore) CountByRole(role models.Role) (int64, error) {
	var count int64
	for _, u := range m.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

type memAdmissionStore struct {
	admissions map[string]models.Admission
}

func newMemAdmissionStore() *memAdmissionStore {
	return &memAdmissionStore{admissions: make(map[string]models.Admission)}
}

func (m *memAdmissionStore) FindAll() ([]models.Admission, error) {
	result := make([]models.Admission, 0, len(m.admissions))
	for _, a := range m.admissions {
		result = append(result, a)
	}
	return result, nil
}

func (m *memAdmissionStore) FindByID(id string) (models.Admission, error) {
	if a, ok := m.admissions[id]; ok {
		return a, nil
	}
	return models.Admission{}, gorm.ErrRecordNotFound
}

func (m *memAdmissionStore) Create(admission models.Admission) (models.Admission, error) {
	m.admissions[admission.ID] = admission
	return admission, nil
}

func (m *memAdmissionStore) UpdateStatus(id string, status models.AdmissionStatus) error {
	a, ok := m.admissions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	m.admissions[id] = a
	return nil
}

func (m *memAdmissionStore) Count() (int64, error) {
	return int64(len(m.admissions)), nil
}

func (m *memAdmissionStore) CountByStatus(status models.AdmissionStatus) (int64, error) {
	var count int64
	for _, a := range m.admissions {
		if a.Status == status {
			count++
		}
	}
	return count, nil
}

type memContactStore struct {
	contacts map[string]models.Contact
}

func newMemContactStore() *memContactStore {
	return &memContactStore{contacts: make(map[string]models.Contact)}
}

func (m *memContactStore) FindAll() ([]models.Contact, error) {
	result := make([]models.Contact, 0, len(m.contacts))
	for _, c := range m.contacts {
		result = append(result, c)
	}
	return result, nil
}

func (m *memContactStore) Create(contact models.Contact) (models.Contact, error) {
	m.contacts[contact.ID] = contact
	return contact, nil
}

func (m *memContactStore) Count() (int64, error) {
	return int64(len(m.contacts)), nil
}

type memGalleryStore struct {
	images map[string]models.Gallery
}

func newMemGalleryStore() *memGalleryStore {
	return &memGalleryStore{images: make(map[string]models.Gallery)}
}

func (m *memGalleryStore) FindAll() ([]models.Gallery, error) {
	result := make([]models.Gallery, 0, len(m.images))
	for _, img := range m.images {
		result = append(result, img)
	}
	return result, nil
}

func (m *memGalleryStore) Create(image models.Gallery) (models.Gallery, error) {
	m.images[image.ID] = image
	return image, nil
}

func (m *memGalleryStore) Delete(id string) error {
	if _, ok := m.images[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.images, id)
	return nil
}

func (m *memGalleryStore) Count() (int64, error) {
	return int64(len(m.images)), nil
}

type memAnnouncementStore struct {
	announcements map[string]models.Announcement
}

func newMemAnnouncementStore() *memAnnouncementStore {
	return &memAnnouncementStore{announcements: make(map[string]models.Announcement)}
}

func (m *memAnnouncementStore) FindActive() ([]models.Announcement, error) {
	result := make([]models.Announcement, 0)
	for _, a := range m.announcements {
		if a.IsActive {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *memAnnouncementStore) FindByID(id string) (models.Announcement, error) {
	if a, ok := m.announcements[id]; ok {
		return a, nil
	}
	return models.Announcement{}, gorm.ErrRecordNotFound
}

func (m *memAnnouncementStore) Create(announcement models.Announcement) (models.Announcement, error) {
	m.announcements[announcement.ID] = announcement
	return announcement, nil
}

func (m *memAnnouncementStore) UpdateFields(id string, fields map[string]interface{}) error {
	a, ok := m.announcements[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if title, ok := fields["title"]; ok {
		a.Title = title.(string)
	}
	if content, ok := fields["content"]; ok {
		a.Content = content.(string)
	}
	if category, ok := fields["category"]; ok {
		a.Category = category.(string)
	}
	if isActive, ok := fields["is_active"]; ok {
		a.IsActive = isActive.(bool)
	}
	m.announcements[id] = a
	return nil
}

func (m *memAnnouncementStore) Delete(id string) error {
	if _, ok := m.announcements[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.announcements, id)
	return nil
}
