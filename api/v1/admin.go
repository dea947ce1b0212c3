package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gurukul-api/dto"
	"github.com/gurukul-api/services"
)

// AdminController handles the admin login, dashboard and user management
type AdminController struct {
	authService      *services.AuthService
	dashboardService *services.DashboardService
}

// NewAdminController creates a new admin controller
func NewAdminController(authService *services.AuthService, dashboardService *services.DashboardService) *AdminController {
	return &AdminController{
		authService:      authService,
		dashboardService: dashboardService,
	}
}

// RegisterRoutes registers admin routes. Everything except login sits
// behind both the auth and the admin middleware.
func (c *AdminController) RegisterRoutes(router *gin.RouterGroup, authRequired, adminRequired gin.HandlerFunc) {
	admin := router.Group("/admin")
	{
		admin.POST("/login", c.Login)

		protected := admin.Group("", authRequired, adminRequired)
		{
			protected.GET("/dashboard", c.GetDashboard)
			protected.GET("/users", c.ListUsers)
			protected.DELETE("/users/:id", c.DeleteUser)
		}
	}
}

// Login authenticates an admin account
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	tokenResponse, err := c.authService.AdminLogin(req)
	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "Invalid admin credentials")
		return
	}

	setTokenCookie(ctx, tokenResponse.AccessToken)
	ctx.JSON(http.StatusOK, tokenResponse)
}

// GetDashboard returns aggregate counts plus the fixed display stats
func (c *AdminController) GetDashboard(ctx *gin.Context) {
	stats, err := c.dashboardService.GetStats()
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, "Failed to collect dashboard stats")
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// ListUsers returns all non-admin accounts
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.authService.ListUsers()
	if err != nil {
		respondError(ctx, http.StatusInternalServerError, "Failed to list users")
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// DeleteUser removes a user account
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	if err := c.authService.DeleteUser(ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "User not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted successfully",
	})
}
