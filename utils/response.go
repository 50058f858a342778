package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response and stops the handler chain
func JSONError(c *gin.Context, status int, err error, message string) {
	c.AbortWithStatusJSON(status, errorBody(c, status, err, message))
}

// JSONErrorWithData sends an error response that still carries the part of
// the operation that did complete
func JSONErrorWithData(c *gin.Context, status int, err error, message string, data any) {
	body := errorBody(c, status, err, message)
	body["data"] = data
	c.AbortWithStatusJSON(status, body)
}

func errorBody(c *gin.Context, status int, err error, message string) gin.H {
	return gin.H{
		"status":     status,
		"message":    message,
		"error":      err.Error(),
		"request_id": c.GetString(RequestIDKey),
	}
}
