package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gurukul-api/dto"
	"github.com/gurukul-api/services"
)

// AnnouncementController handles announcement endpoints
type AnnouncementController struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementController creates a new announcement controller
func NewAnnouncementController(announcementService *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService}
}

// RegisterRoutes registers announcement routes. The public feed lists
// active announcements only, mutations are admin only.
func (c *AnnouncementController) RegisterRoutes(router *gin.RouterGroup, authRequired, adminRequired gin.HandlerFunc) {
	announcements := router.Group("/announcements")
	{
		announcements.GET("", c.ListActive)
		announcements.POST("", authRequired, adminRequired, c.Create)
		announcements.PUT("/:id", authRequired, adminRequired, c.Update)
		announcements.DELETE("/:id", authRequired, adminRequired, c.Delete)
	}
}

// ListActive returns the public announcement feed
func (c *AnnouncementController) ListActive(ctx *gin.Context) {
	announcements, err := c.announcementService.ListActive()
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, "Failed to list announcements")
		return
	}

	ctx.JSON(http.StatusOK, announcements)
}

// Create stores a new announcement
func (c *AnnouncementController) Create(ctx *gin.Context) {
	var req dto.AnnouncementCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	announcement, err := c.announcementService.Create(req, ctx.GetString("email"))
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, "Failed to create announcement")
		return
	}

	ctx.JSON(http.StatusCreated, announcement)
}

// Update applies a partial update to an announcement
func (c *AnnouncementController) Update(ctx *gin.Context) {
	var req dto.AnnouncementUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	announcement, err := c.announcementService.Update(ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err, "Announcement not found")
		return
	}

	ctx.JSON(http.StatusOK, announcement)
}

// Delete removes an announcement
func (c *AnnouncementController) Delete(ctx *gin.Context) {
	if err := c.announcementService.Delete(ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Announcement not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Announcement deleted successfully",
	})
}
