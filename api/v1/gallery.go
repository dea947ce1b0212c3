package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gurukul-api/dto"
	"github.com/gurukul-api/services"
)

// GalleryController handles gallery endpoints
type GalleryController struct {
	galleryService *services.GalleryService
}

// NewGalleryController creates a new gallery controller
func NewGalleryController(galleryService *services.GalleryService) *GalleryController {
	return &GalleryController{galleryService: galleryService}
}

// RegisterRoutes registers gallery routes. Listing is public, mutations
// are admin only.
func (c *GalleryController) RegisterRoutes(router *gin.RouterGroup, authRequired, adminRequired gin.HandlerFunc) {
	gallery := router.Group("/gallery")
	{
		gallery.GET("", c.ListImages)
		gallery.POST("", authRequired, adminRequired, c.AddImage)
		gallery.DELETE("/:id", authRequired, adminRequired, c.DeleteImage)
	}
}

// ListImages returns all gallery images
func (c *GalleryController) ListImages(ctx *gin.Context) {
	images, err := c.galleryService.ListImages()
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, "Failed to list gallery")
		return
	}

	ctx.JSON(http.StatusOK, images)
}

// AddImage stores a new gallery image
func (c *GalleryController) AddImage(ctx *gin.Context) {
	var req dto.GalleryCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	image, err := c.galleryService.AddImage(req, ctx.GetString("email"))
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, "Failed to add image")
		return
	}

	ctx.JSON(http.StatusCreated, image)
}

// DeleteImage removes a gallery image
func (c *GalleryController) DeleteImage(ctx *gin.Context) {
	if err := c.galleryService.DeleteImage(ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Image not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Image deleted successfully",
	})
}
