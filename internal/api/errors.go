package api

import (
	"errors"
	"net/http"

	"github.com/openblog/api/internal/domain"
	"github.com/openblog/api/internal/service"
	"github.com/openblog/api/internal/service/auth"
	"github.com/openblog/api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrMalformedToken),
		errors.Is(err, auth.ErrUnsupportedToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidSignature),
		errors.Is(err, auth.ErrEmptyClaims),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors: missing entity lookups and empty result sets
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrNoElements):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrInvalidSortField),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPostWithoutAuthors),
		errors.Is(err, domain.ErrPostWithoutCategory),
		errors.Is(err, service.ErrUnresolvedReference),
		errors.Is(err, service.ErrNothingToUpdate),
		errors.Is(err, service.ErrUnknownRole):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message to put in the error body. For the
// known taxonomy the error's own message is already client-facing; anything
// else gets a generic message so internals never leak.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrMalformedToken),
		errors.Is(err, auth.ErrUnsupportedToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidSignature),
		errors.Is(err, auth.ErrEmptyClaims),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrNoElements),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrInvalidSortField),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPostWithoutAuthors),
		errors.Is(err, domain.ErrPostWithoutCategory),
		errors.Is(err, service.ErrUnresolvedReference),
		errors.Is(err, service.ErrNothingToUpdate),
		errors.Is(err, service.ErrUnknownRole):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError is the single exit point for handler errors: it maps the
// error to a status code and writes the standard error body. An empty
// fallback message means the error's own safe message is used.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if message == "An unexpected error occurred" && fallback != "" {
		message = fallback
	}
	RespondWithErrorAndLog(w, r, status, message, err)
}
