package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gurukul-api/dto"
	"github.com/gurukul-api/services"
)

// ContactController handles contact-form endpoints
type ContactController struct {
	contactService *services.ContactService
}

// NewContactController creates a new contact controller
func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// RegisterRoutes registers contact routes
func (c *ContactController) RegisterRoutes(router *gin.RouterGroup, authRequired, adminRequired gin.HandlerFunc) {
	contact := router.Group("/contact")
	{
		contact.POST("", c.Submit)
		contact.GET("", authRequired, adminRequired, c.ListContacts)
	}
}

// Submit handles a public contact-form submission
func (c *ContactController) Submit(ctx *gin.Context) {
	var req dto.ContactCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact, err := c.contactService.Submit(req)
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, "Failed to submit message")
		return
	}

	ctx.JSON(http.StatusCreated, contact)
}

// ListContacts returns all contact messages
func (c *ContactController) ListContacts(ctx *gin.Context) {
	contacts, err := c.contactService.ListContacts()
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, "Failed to list messages")
		return
	}

	ctx.JSON(http.StatusOK, contacts)
}
