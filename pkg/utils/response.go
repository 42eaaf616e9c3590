package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse sends an error body of the form {"detail": message}
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"detail": message,
	})
}

// AbortWithError sends an error body and stops the handler chain
func AbortWithError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"detail": message,
	})
}

// MessageResponse sends a simple message response
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
