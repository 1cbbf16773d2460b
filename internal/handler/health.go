package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const serviceName = "prospector"

// Health handles GET /health requests
//
//	@Summary	Health check
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
	})
}

// Root handles GET / requests
//
//	@Summary	Welcome message
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/ [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to Seekan Prospector API"})
}
