package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/openblog/api/internal/domain"
	"github.com/openblog/api/internal/store"
)

// Per-resource pagination defaults.
const (
	defaultAuthorPageSize   = 10
	defaultPostPageSize     = 10
	defaultCategoryPageSize = 5
	defaultCommentPageSize  = 5

	defaultSortBy  = "id"
	defaultSortDir = "asc"
)

// getPathUUID extracts a UUID from the URL path parameters.
// It parses and validates the UUID, handling common error cases.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// getPagination reads the shared paging query parameters, falling back to
// the resource's default page size. Absent or non-numeric values use the
// defaults; a negative page number or zero page size is a validation error.
func getPagination(r *http.Request, defaultPageSize int) (store.PageRequest, error) {
	query := r.URL.Query()

	pageNo := 0
	if raw := query.Get("pageNo"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return store.PageRequest{}, domain.NewValidationError("pageNo", "must be a number", domain.ErrValidation)
		}
		pageNo = parsed
	}

	pageSize := defaultPageSize
	if raw := query.Get("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return store.PageRequest{}, domain.NewValidationError("pageSize", "must be a number", domain.ErrValidation)
		}
		pageSize = parsed
	}

	sortBy := query.Get("sortBy")
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	sortDir := query.Get("sortDir")
	if sortDir == "" {
		sortDir = defaultSortDir
	}

	return store.NewPageRequest(pageNo, pageSize, sortBy, sortDir)
}

// requireQuery reads a mandatory query parameter.
func requireQuery(r *http.Request, name string) (string, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return "", domain.NewValidationError(name, "is required", domain.ErrValidation)
	}
	return value, nil
}
