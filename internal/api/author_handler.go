package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/openblog/api/internal/domain"
	"github.com/openblog/api/internal/service"
)

// AuthorHandler handles author-related API requests.
type AuthorHandler struct {
	authorService service.AuthorService
	validator     *validator.Validate
}

// NewAuthorHandler creates a new AuthorHandler with the given dependencies.
func NewAuthorHandler(authorService service.AuthorService) *AuthorHandler {
	return &AuthorHandler{
		authorService: authorService,
		validator:     validator.New(),
	}
}

// Create handles POST /api/authors.
func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AuthorRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	author, err := h.authorService.CreateAuthor(r.Context(), req.FirstName, req.LastName, req.Email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create author")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, toAuthorResponse(author))
}

// GetByID handles GET /api/authors/{id}.
func (h *AuthorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	author, err := h.authorService.GetAuthor(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve author")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toAuthorResponse(author))
}

// GetByEmail handles GET /api/authors/email?email=.
func (h *AuthorHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email, err := requireQuery(r, "email")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	author, err := h.authorService.GetAuthorByEmail(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve author")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toAuthorResponse(author))
}

// GetByFirstName handles GET /api/authors/firstname/{firstName}.
func (h *AuthorHandler) GetByFirstName(w http.ResponseWriter, r *http.Request) {
	firstName := chi.URLParam(r, "firstName")
	if firstName == "" {
		HandleAPIError(w, r, domain.NewValidationError("firstName", "is required", domain.ErrValidation), "")
		return
	}

	author, err := h.authorService.GetAuthorByFirstName(r.Context(), firstName)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve author")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toAuthorResponse(author))
}

// GetByLastName handles GET /api/authors/lastname/{lastName}.
func (h *AuthorHandler) GetByLastName(w http.ResponseWriter, r *http.Request) {
	lastName := chi.URLParam(r, "lastName")
	if lastName == "" {
		HandleAPIError(w, r, domain.NewValidationError("lastName", "is required", domain.ErrValidation), "")
		return
	}

	author, err := h.authorService.GetAuthorByLastName(r.Context(), lastName)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve author")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toAuthorResponse(author))
}

// ExistsByEmail handles GET /api/authors/exists/{email}.
func (h *AuthorHandler) ExistsByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		HandleAPIError(w, r, domain.NewValidationError("email", "is required", domain.ErrValidation), "")
		return
	}

	exists, err := h.authorService.AuthorExistsByEmail(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to check author")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, map[string]bool{"exists": exists})
}

// List handles GET /api/authors.
func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	req, err := getPagination(r, defaultAuthorPageSize)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.authorService.ListAuthors(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list authors")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toAuthorPageResponse(page))
}

// Count handles GET /api/authors/count.
func (h *AuthorHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.authorService.CountAuthors(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to count authors")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, CountResponse{Count: count})
}

// Update handles PUT /api/authors/{id}.
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req AuthorUpdateRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	author, err := h.authorService.UpdateAuthor(r.Context(), id, service.AuthorUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update author")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toAuthorResponse(author))
}

// Delete handles DELETE /api/authors/{id}.
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.authorService.DeleteAuthor(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete author")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "author deleted successfully"})
}
