package api

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/openblog/api/internal/service"
)

// CategoryHandler handles category-related API requests.
type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler with the given dependencies.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		validator:       validator.New(),
	}
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create category")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, toCategoryResponse(category))
}

// GetByID handles GET /api/categories/{id}.
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	category, err := h.categoryService.GetCategory(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve category")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toCategoryResponse(category))
}

// GetByName handles GET /api/categories/name?name=.
func (h *CategoryHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	name, err := requireQuery(r, "name")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	category, err := h.categoryService.GetCategoryByName(r.Context(), name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve category")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toCategoryResponse(category))
}

// ExistsByName handles GET /api/categories/exists?name=.
func (h *CategoryHandler) ExistsByName(w http.ResponseWriter, r *http.Request) {
	name, err := requireQuery(r, "name")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	exists, err := h.categoryService.CategoryExistsByName(r.Context(), name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to check category")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, map[string]bool{"exists": exists})
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	req, err := getPagination(r, defaultCategoryPageSize)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.categoryService.ListCategories(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list categories")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toCategoryPageResponse(page))
}

// Count handles GET /api/categories/count.
func (h *CategoryHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.categoryService.CountCategories(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to count categories")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, CountResponse{Count: count})
}

// Update handles PUT /api/categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CategoryUpdateRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	category, err := h.categoryService.UpdateCategory(r.Context(), id, service.CategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update category")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toCategoryResponse(category))
}

// Delete handles DELETE /api/categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.categoryService.DeleteCategory(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete category")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "category deleted successfully"})
}

// DeleteAll handles DELETE /api/categories/all.
func (h *CategoryHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.categoryService.DeleteAllCategories(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete categories")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("deleted %d categories", count),
	})
}
