package dto

// AnnouncementCreateRequest represents a new announcement
type AnnouncementCreateRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

// AnnouncementUpdateRequest represents a partial announcement update.
// Absent fields keep their stored value, they are never blanked.
type AnnouncementUpdateRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	IsActive *bool   `json:"is_active"`
}
