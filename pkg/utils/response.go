package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope status values
const (
	StatusOK    = "OK"
	StatusError = "Error"
)

// SuccessResponse sends a standard success JSON response
func SuccessResponse(c *gin.Context, data interface{}) {
	StatusResponse(c, StatusOK, data)
}

// StatusResponse sends a 200 envelope with a custom status label, used for
// sentinel outcomes such as an empty lookup
func StatusResponse(c *gin.Context, status string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"data":   data,
	})
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"status": StatusError,
		"error":  message,
	})
}

// MessageResponse sends a simple message response
func MessageResponse(c *gin.Context, statusCode int, status, message string) {
	c.JSON(statusCode, gin.H{
		"status":  status,
		"message": message,
	})
}
