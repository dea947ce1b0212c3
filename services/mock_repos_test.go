package services

import (
	"github.com/gurukul-api/models"
	"gorm.io/gorm"
)

// Map-backed stand-ins for the repositories. They mirror the store
// contract the services depend on, including gorm's not-found and
// duplicate-key sentinels.

type mockUserRepo struct {
	users map[string]models.User // key: id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]models.User)}
}

func (m *mockUserRepo) FindByID(id string) (models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByEmail(email string) (models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByRole(role models.Role) ([]models.User, error) {
	var result []models.User
	for _, u := range m.users {
		if u.Role == role {
			result = append(result, u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) Create(user models.User) (models.User, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return models.User{}, gorm.ErrDuplicatedKey
		}
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *mockUserRepo) UpdateFields(id string, fields map[string]interface{}) error {
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

func (m *mockUserRepo) Delete(id string) error {
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) CountByRole(role models.Role) (int64, error) {
	var count int64
	for _, u := range m.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

type mockAdmissionRepo struct {
	admissions map[string]models.Admission
}

func newMockAdmissionRepo() *mockAdmissionRepo {
	return &mockAdmissionRepo{admissions: make(map[string]models.Admission)}
}

func (m *mockAdmissionRepo) FindAll() ([]models.Admission, error) {
	var result []models.Admission
	for _, a := range m.admissions {
		result = append(result, a)
	}
	return result, nil
}

func (m *mockAdmissionRepo) FindByID(id string) (models.Admission, error) {
	if a, ok := m.admissions[id]; ok {
		return a, nil
	}
	return models.Admission{}, gorm.ErrRecordNotFound
}

func (m *mockAdmissionRepo) Create(admission models.Admission) (models.Admission, error) {
	m.admissions[admission.ID] = admission
	return admission, nil
}

func (m *mockAdmissionRepo) UpdateStatus(id string, status models.AdmissionStatus) error {
	a, ok := m.admissions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	m.admissions[id] = a
	return nil
}

func (m *mockAdmissionRepo) Count() (int64, error) {
	return int64(len(m.admissions)), nil
}

func (m *mockAdmissionRepo) CountByStatus(status models.AdmissionStatus) (int64, error) {
	var count int64
	for _, a := range m.admissions {
		if a.Status == status {
			count++
		}
	}
	return count, nil
}

type mockContactRepo struct {
	contacts map[string]models.Contact
}

func newMockContactRepo() *mockContactRepo {
	return &mockContactRepo{contacts: make(map[string]models.Contact)}
}

func (m *mockContactRepo) FindAll() ([]models.Contact, error) {
	var result []models.Contact
	for _, c := range m.contacts {
		result = append(result, c)
	}
	return result, nil
}

func (m *mockContactRepo) Create(contact models.Contact) (models.Contact, error) {
	m.contacts[contact.ID] = contact
	return contact, nil
}

func (m *mockContactRepo) Count() (int64, error) {
	return int64(len(m.contacts)), nil
}

type mockGalleryRepo struct {
	images map[string]models.Gallery
}

func newMockGalleryRepo() *mockGalleryRepo {
	return &mockGalleryRepo{images: make(map[string]models.Gallery)}
}

func (m *mockGalleryRepo) FindAll() ([]models.Gallery, error) {
	var result []models.Gallery
	for _, img := range m.images {
		result = append(result, img)
	}
	return result, nil
}

func (m *mockGalleryRepo) Create(image models.Gallery) (models.Gallery, error) {
	m.images[image.ID] = image
	return image, nil
}

func (m *mockGalleryRepo) Delete(id string) error {
	if _, ok := m.images[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.images, id)
	return nil
}

func (m *mockGalleryRepo) Count() (int64, error) {
	return int64(len(m.images)), nil
}

type mockAnnouncementRepo struct {
	announcements map[string]models.Announcement
}

func newMockAnnouncementRepo() *mockAnnouncementRepo {
	return &mockAnnouncementRepo{announcements: make(map[string]models.Announcement)}
}

func (m *mockAnnouncementRepo) FindActive() ([]models.Announcement, error) {
	var result []models.Announcement
	for _, a := range m.announcements {
		if a.IsActive {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAnnouncementRepo) FindByID(id string) (models.Announcement, error) {
	if a, ok := m.announcements[id]; ok {
		return a, nil
	}
	return models.Announcement{}, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) Create(announcement models.Announcement) (models.Announcement, error) {
	m.announcements[announcement.ID] = announcement
	return announcement, nil
}

func (m *mockAnnouncementRepo) UpdateFields(id string, fields map[string]interface{}) error {
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

func (m *mockAnnouncementRepo) Delete(id string) error {
	if _, ok := m.announcements[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.announcements, id)
	return nil
}
