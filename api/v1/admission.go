package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gurukul-api/dto"
	"github.com/gurukul-api/services"
)

// AdmissionController handles admission application endpoints
type AdmissionController struct {
	admissionService *services.AdmissionService
}

// NewAdmissionController creates a new admission controller
func NewAdmissionController(admissionService *services.AdmissionService) *AdmissionController {
	return &AdmissionController{admissionService: admissionService}
}

// RegisterRoutes registers admission routes. Submission is public, the
// list is admin only, single fetch needs any authenticated account.
func (c *AdmissionController) RegisterRoutes(router *gin.RouterGroup, authRequired, adminRequired gin.HandlerFunc) {
	admissions := router.Group("/admissions")
	{
		admissions.POST("", c.Submit)
		admissions.GET("", authRequired, adminRequired, c.ListAdmissions)
		admissions.GET("/:id", authRequired, c.GetAdmission)
		admissions.PUT("/:id/status", authRequired, adminRequired, c.UpdateStatus)
	}
}

// Submit handles a public admission application
func (c *AdmissionController) Submit(ctx *gin.Context) {
	var req dto.AdmissionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	admission, err := c.admissionService.Submit(req)
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, "Failed to submit admission")
		return
	}

	ctx.JSON(http.StatusCreated, admission)
}

// ListAdmissions returns all admission applications
func (c *AdmissionController) ListAdmissions(ctx *gin.Context) {
	admissions, err := c.admissionService.ListAdmissions()
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, "Failed to list admissions")
		return
	}

	ctx.JSON(http.StatusOK, admissions)
}

// GetAdmission returns a single admission application
func (c *AdmissionController) GetAdmission(ctx *gin.Context) {
	admission, err := c.admissionService.GetAdmission(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Admission not found")
		return
	}

	ctx.JSON(http.StatusOK, admission)
}

// UpdateStatus transitions an application's review status
func (c *AdmissionController) UpdateStatus(ctx *gin.Context) {
	var req dto.AdmissionStatusUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := c.admissionService.UpdateStatus(ctx.Param("id"), req.Status); err != nil {
		respondServiceError(ctx, err, "Admission not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Status updated successfully",
	})
}
