package v1

import (
	"github.com/gin-gonic/gin"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "gurukul-api",
		"version": "1.0.0",
	})
}

// Root handles the API root endpoint
func Root(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "Gurukul School API is running",
	})
}
