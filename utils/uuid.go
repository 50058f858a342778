package utils

import (
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the current request id
const RequestIDKey = "request_id"

// GenerateRequestID returns a new unique identifier for an incoming request
func GenerateRequestID() string {
	return uuid.New().String()
}
