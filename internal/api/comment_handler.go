package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/openblog/api/internal/domain"
	"github.com/openblog/api/internal/service"
)

// CommentHandler handles comment-related API requests.
type CommentHandler struct {
	commentService service.CommentService
	validator      *validator.Validate
}

// NewCommentHandler creates a new CommentHandler with the given dependencies.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		validator:      validator.New(),
	}
}

// Create handles POST /api/comments/posts/{postId}.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := getPathUUID(r, "postId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CommentRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	comment, err := h.commentService.CreateComment(r.Context(), postID, service.CommentInput{
		Name:  req.Name,
		Email: req.Email,
		Body:  req.Body,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create comment")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, toCommentResponse(comment))
}

// Get handles GET /api/comments/{commentId}/posts/{postId}.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	commentID, err := getPathUUID(r, "commentId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	postID, err := getPathUUID(r, "postId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	comment, err := h.commentService.GetComment(r.Context(), commentID, postID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve comment")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toCommentResponse(comment))
}

// ListByPost handles GET /api/comments/posts/{postId}.
func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := getPathUUID(r, "postId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	req, err := getPagination(r, defaultCommentPageSize)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.commentService.ListCommentsByPost(r.Context(), postID, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list comments")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toCommentPageResponse(page))
}

// ListByEmail handles GET /api/comments/email/{email}.
func (h *CommentHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		HandleAPIError(w, r, domain.NewValidationError("email", "is required", domain.ErrValidation), "")
		return
	}
	req, err := getPagination(r, defaultCommentPageSize)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.commentService.ListCommentsByEmail(r.Context(), email, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list comments")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toCommentPageResponse(page))
}

// ListByName handles GET /api/comments/name/{name}.
func (h *CommentHandler) ListByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		HandleAPIError(w, r, domain.NewValidationError("name", "is required", domain.ErrValidation), "")
		return
	}
	req, err := getPagination(r, defaultCommentPageSize)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.commentService.ListCommentsByName(r.Context(), name, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list comments")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toCommentPageResponse(page))
}

// CountByPost handles GET /api/comments/count/posts/{postId}.
func (h *CommentHandler) CountByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := getPathUUID(r, "postId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	count, err := h.commentService.CountCommentsByPost(r.Context(), postID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to count comments")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, CountResponse{Count: count})
}

// CountByEmail handles GET /api/comments/count/email/{email}.
func (h *CommentHandler) CountByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		HandleAPIError(w, r, domain.NewValidationError("email", "is required", domain.ErrValidation), "")
		return
	}

	count, err := h.commentService.CountCommentsByEmail(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to count comments")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, CountResponse{Count: count})
}

// CountByName handles GET /api/comments/count/name/{name}.
func (h *CommentHandler) CountByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		HandleAPIError(w, r, domain.NewValidationError("name", "is required", domain.ErrValidation), "")
		return
	}

	count, err := h.commentService.CountCommentsByName(r.Context(), name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to count comments")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, CountResponse{Count: count})
}

// Update handles PUT /api/comments/{commentId}/posts/{postId}.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	commentID, err := getPathUUID(r, "commentId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	postID, err := getPathUUID(r, "postId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CommentUpdateRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	comment, err := h.commentService.UpdateComment(r.Context(), commentID, postID, service.CommentUpdate{
		Name:  req.Name,
		Email: req.Email,
		Body:  req.Body,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update comment")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toCommentResponse(comment))
}

// Delete handles DELETE /api/comments/{commentId}/posts/{postId}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, err := getPathUUID(r, "commentId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	postID, err := getPathUUID(r, "postId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), commentID, postID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete comment")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "comment deleted successfully"})
}

// DeleteByPost handles DELETE /api/comments/posts/{postId}.
func (h *CommentHandler) DeleteByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := getPathUUID(r, "postId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	count, err := h.commentService.DeleteCommentsByPost(r.Context(), postID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete comments")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("deleted %d comments", count),
	})
}

// DeleteByEmail handles DELETE /api/comments/email/{email}.
func (h *CommentHandler) DeleteByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		HandleAPIError(w, r, domain.NewValidationError("email", "is required", domain.ErrValidation), "")
		return
	}

	count, err := h.commentService.DeleteCommentsByEmail(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete comments")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("deleted %d comments", count),
	})
}

// DeleteByName handles DELETE /api/comments/name/{name}.
func (h *CommentHandler) DeleteByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		HandleAPIError(w, r, domain.NewValidationError("name", "is required", domain.ErrValidation), "")
		return
	}

	count, err := h.commentService.DeleteCommentsByName(r.Context(), name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete comments")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("deleted %d comments", count),
	})
}
