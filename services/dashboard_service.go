package services

import (
	"github.com/gurukul-api/dto"
	"github.com/gurukul-api/models"
)

type userCounter interface {
	CountByRole(role models.Role) (int64, error)
}

type admissionCounter interface {
	Count() (int64, error)
	CountByStatus(status models.AdmissionStatus) (int64, error)
}

type contactCounter interface {
	Count() (int64, error)
}

type galleryCounter interface {
	Count() (int64, error)
}

// DashboardService aggregates collection counts for the admin dashboard
type DashboardService struct {
	users      userCounter
	admissions admissionCounter
	contacts   contactCounter
	gallery    galleryCounter
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(users userCounter, admissions admissionCounter, contacts contactCounter, gallery galleryCounter) *DashboardService {
	return &DashboardService{
		users:      users,
		admissions: admissions,
		contacts:   contacts,
		gallery:    gallery,
	}
}

// GetStats collects the live counts plus the fixed display figures shown
// on the school site
func (s *DashboardService) GetStats() (dto.DashboardResponse, error) {
	var stats dto.DashboardResponse
	var err error

	if stats.TotalUsers, err = s.users.CountByRole(models.RoleUser); err != nil {
		return stats, err
	}
	if stats.TotalAdmissions, err = s.admissions.Count(); err != nil {
		return stats, err
	}
	if stats.PendingAdmissions, err = s.admissions.CountByStatus(models.AdmissionPending); err != nil {
		return stats, err
	}
	if stats.TotalContacts, err = s.contacts.Count(); err != nil {
		return stats, err
	}
	if stats.TotalGallery, err = s.gallery.Count(); err != nil {
		return stats, err
	}

	stats.Stats = dto.DisplayStats{
		Students:     6000,
		Faculty:      400,
		Years:        7,
		Ratio:        "35:1",
		Satisfaction: "100%",
	}
	return stats, nil
}
