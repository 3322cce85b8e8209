package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the loosely-shaped data payload used by handlers.
type Response map[string]interface{}

// Success writes the uniform success envelope.
func Success(c *gin.Context, data interface{}, msg string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"message": msg,
	})
}

// Error writes the uniform failure envelope.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{
		"success": false,
		"message": msg,
	})
}
