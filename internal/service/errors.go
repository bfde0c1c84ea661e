// Package service provides application-level services for authors, posts,
// categories, comments and user accounts.
package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Service methods return sentinel errors for expected conditions; unexpected
// errors are wrapped in ServiceError. Callers classify with errors.Is/As and
// the API layer maps the result to HTTP status codes.
var (
	// ErrUnresolvedReference indicates a create or update referenced an
	// author or category that does not exist. The wrapping ServiceError
	// names the missing reference.
	ErrUnresolvedReference = errors.New("referenced entity does not exist")

	// ErrNothingToUpdate indicates a partial update supplied no fields.
	ErrNothingToUpdate = errors.New("no fields to update")

	// ErrUnknownRole indicates a signup named a role that is not in the
	// role catalog.
	ErrUnknownRole = errors.New("unknown role")
)

// ServiceError is a custom error type carrying the failing operation and a
// caller-facing message alongside the wrapped cause.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
