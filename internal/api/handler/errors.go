package handler

import (
	"net/http"

	"github.com/nucleobets/backend/internal/api/apierr"
)

// Thin aliases so handlers don't import apierr everywhere

// WriteError writes err as a JSON error response
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates a 400 error with the given message
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}
