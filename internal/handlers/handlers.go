package handlers

import (
	"errors"
	"net/http"

	"github.com/famigo-app/api/internal/models"
	"github.com/go-playground/validator/v10"
)

// statusFromError maps service errors onto the response taxonomy: schema
// violations and malformed ids are the caller's fault, everything else is a
// store-level 500.
func statusFromError(err error) int {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	if errors.Is(err, models.ErrInvalidID) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
