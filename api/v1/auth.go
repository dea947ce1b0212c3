package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gurukul-api/dto"
	"github.com/gurukul-api/services"
)

// AuthController handles registration, login and profile endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterRoutes registers auth routes. The /me and /profile endpoints
// require the auth middleware passed in by the router.
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", c.Register)
		auth.POST("/login", c.Login)
		auth.POST("/logout", c.Logout)
		auth.GET("/me", authRequired, c.GetCurrentUser)
		auth.PUT("/profile", authRequired, c.UpdateProfile)
	}
}

// Register handles user registration
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	tokenResponse, err := c.authService.Register(req)
	if err != nil {
		respondServiceError(ctx, err, "Registration failed")
		return
	}

	ctx.JSON(http.StatusCreated, tokenResponse)
}

// Login handles user authentication
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	tokenResponse, err := c.authService.Login(req)
	if err != nil {
		respondServiceError(ctx, err, "Authentication failed")
		return
	}

	setTokenCookie(ctx, tokenResponse.AccessToken)
	ctx.JSON(http.StatusOK, tokenResponse)
}

// Logout clears the access token cookie. Tokens stay valid until natural
// expiry, there is no revocation list.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(
		"access_token", // name
		"",             // value (empty)
		-1,             // max age (expired)
		"/",            // path
		"",             // domain
		true,           // secure (HTTPS only)
		true,           // httpOnly (not accessible via JS)
	)

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the currently authenticated user's profile
func (c *AuthController) GetCurrentUser(ctx *gin.Context) {
	userID := ctx.GetString("userId")

	user, err := c.authService.GetUser(userID)
	if err != nil {
		respondServiceError(ctx, err, "User not found")
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial update to the caller's profile
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	var req dto.ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := ctx.GetString("userId")

	user, err := c.authService.UpdateProfile(userID, req)
	if err != nil {
		respondServiceError(ctx, err, "User not found")
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// setTokenCookie sets the access token as an HttpOnly cookie for browser
// clients; API clients use the Authorization header instead
func setTokenCookie(ctx *gin.Context, token string) {
	ctx.SetCookie(
		"access_token", // name
		token,          // value
		86400,          // max age (24 hours in seconds)
		"/",            // path
		"",             // domain
		true,           // secure (HTTPS only)
		true,           // httpOnly (not accessible via JS)
	)
}
