package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants wrap it so callers can match either.
	ErrNotFound = errors.New("entity not found")

	// ErrNoElements is returned when a list or count operation matched zero
	// rows. An empty result set is an error condition, distinct from a page
	// index past the end of a non-empty result set.
	ErrNoElements = errors.New("no elements found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (same email, title, name or username).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when a write violates a domain rule or a
	// store-level constraint (missing association, null violation, ...).
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidSortField is returned when a page request names a sort field
	// that the queried entity does not have.
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	ErrAuthorNotFound   = fmt.Errorf("%w: author", ErrNotFound)
	ErrPostNotFound     = fmt.Errorf("%w: post", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)
	ErrCommentNotFound  = fmt.Errorf("%w: comment", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("%w: user", ErrNotFound)
	ErrRoleNotFound     = fmt.Errorf("%w: role", ErrNotFound)

	// Entity-specific "duplicate" errors

	ErrEmailExists        = fmt.Errorf("%w: email", ErrDuplicate)
	ErrUsernameExists     = fmt.Errorf("%w: username", ErrDuplicate)
	ErrTitleExists        = fmt.Errorf("%w: title", ErrDuplicate)
	ErrCategoryNameExists = fmt.Errorf("%w: category name", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// NotFoundError reports a failed lookup together with the resource kind and
// the natural or surrogate keys that were used, so the eventual response can
// name exactly what was asked for.
type NotFoundError struct {
	Resource string
	Keys     map[string]string
	Err      error
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if len(e.Keys) == 0 {
		return fmt.Sprintf("%s not found", e.Resource)
	}

	pairs := make([]string, 0, len(e.Keys))
	for k, v := range e.Keys {
		pairs = append(pairs, fmt.Sprintf("%s: %s", k, v))
	}
	sort.Strings(pairs)

	return fmt.Sprintf("%s not found with %s", e.Resource, strings.Join(pairs, ", "))
}

// Unwrap returns the wrapped sentinel so errors.Is(err, ErrNotFound) and the
// entity-specific variants keep working.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a NotFoundError for the given resource kind. The
// sentinel should be one of the entity-specific not found errors.
func NewNotFoundError(sentinel error, resource string, keys map[string]string) *NotFoundError {
	return &NotFoundError{Resource: resource, Keys: keys, Err: sentinel}
}

// NoElementsError reports an empty result set together with a description of
// what was searched, e.g. "posts by author email: a@b.com".
type NoElementsError struct {
	What string
}

// Error implements the error interface.
func (e *NoElementsError) Error() string {
	return fmt.Sprintf("no %s found", e.What)
}

// Unwrap supports errors.Is(err, ErrNoElements).
func (e *NoElementsError) Unwrap() error {
	return ErrNoElements
}

// NewNoElementsError creates a NoElementsError for the given description.
func NewNoElementsError(what string) *NoElementsError {
	return &NoElementsError{What: what}
}
