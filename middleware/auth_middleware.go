package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gurukul-api/services"
)

// AuthMiddleware creates a middleware that authenticates the request from
// a bearer token. After the signature and expiry check it re-reads the
// account from the store and takes the role from there, so a deleted
// account or a changed role invalidates outstanding tokens immediately.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, services.ErrTokenExpired) {
				message = "Token expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": message,
			})
			c.Abort()
			return
		}

		user, err := auth.GetUser(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Account no longer exists",
			})
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("email", user.Email)
		c.Set("role", string(user.Role))

		c.Next()
	}
}

// extractToken pulls the bearer token from the Authorization header, or
// from the access_token cookie set at login for browser clients
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}
