package dto

// GalleryCreateRequest represents a new gallery image
type GalleryCreateRequest struct {
	Title    string `json:"title" binding:"required"`
	ImageURL string `json:"image_url" binding:"required,url"`
	Category string `json:"category"`
}
