package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health GET /api/health
func Health(env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "OK",
			"message":     "Association portal API is running",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": env,
		})
	}
}
