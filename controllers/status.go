package controllers

import (
	"errors"
	"net/http"

	"rentals-api/domain"
)

// statusForError mapea la taxonomía de errores del core a códigos HTTP.
// Cualquier cosa fuera de la taxonomía es un 500.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrSubmission):
		return http.StatusInternalServerError, "submission_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
