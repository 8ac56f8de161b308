package helpers

import (
	"strings"

	"github.com/google/uuid"
)

type ApiError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type ApiSuccess struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func ErrorResponse(err string) ApiError {
	return ApiError{Success: false, Error: err}
}

func SuccessResponse(message string) ApiSuccess {
	return ApiSuccess{Success: true, Message: message}
}

// GenerateTicketCode returns 8 uppercase hex characters cut from a fresh
// UUID. Uniqueness per booking is treated as astronomically likely and not
// verified against the store.
func GenerateTicketCode() string {
	return strings.ToUpper(uuid.New().String()[:8])
}

// Truncate bounds a string to at most n bytes; used when projecting venue
// descriptions into the recommendation prompt.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
