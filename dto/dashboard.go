package dto

// DisplayStats is the fixed block of school figures shown on the
// admin dashboard alongside the live counts.
type DisplayStats struct {
	Students     int    `json:"students"`
	Faculty      int    `json:"faculty"`
	Years        int    `json:"years"`
	Ratio        string `json:"ratio"`
	Satisfaction string `json:"satisfaction"`
}

// DashboardResponse aggregates the collection counts for the admin dashboard
type DashboardResponse struct {
	TotalUsers        int64        `json:"total_users"`
	TotalAdmissions   int64        `json:"total_admissions"`
	PendingAdmissions int64        `json:"pending_admissions"`
	TotalContacts     int64        `json:"total_contacts"`
	TotalGallery      int64        `json:"total_gallery"`
	Stats             DisplayStats `json:"stats"`
}
