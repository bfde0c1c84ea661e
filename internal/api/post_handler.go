package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/openblog/api/internal/service"
	"github.com/openblog/api/internal/store"
)

// PostHandler handles post-related API requests.
type PostHandler struct {
	postService service.PostService
	validator   *validator.Validate
}

// NewPostHandler creates a new PostHandler with the given dependencies.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
		validator:   validator.New(),
	}
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req PostRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	post, err := h.postService.CreatePost(r.Context(), service.PostInput{
		Title:         req.Title,
		Description:   req.Description,
		Content:       req.Content,
		AuthorEmails:  req.AuthorEmails,
		CategoryNames: req.CategoryNames,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create post")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, toPostResponse(post))
}

// GetByID handles GET /api/posts/{id}.
func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	post, err := h.postService.GetPost(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve post")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toPostResponse(post))
}

// GetByTitle handles GET /api/posts/title?title=.
func (h *PostHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	title, err := requireQuery(r, "title")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	post, err := h.postService.GetPostByTitle(r.Context(), title)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve post")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toPostResponse(post))
}

// list runs the shared paged-list flow for a pre-built filter.
func (h *PostHandler) list(w http.ResponseWriter, r *http.Request, filter store.PostFilter) {
	req, err := getPagination(r, defaultPostPageSize)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.postService.ListPosts(r.Context(), filter, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list posts")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toPostPageResponse(page))
}

// count runs the shared count flow for a pre-built filter.
func (h *PostHandler) count(w http.ResponseWriter, r *http.Request, filter store.PostFilter) {
	count, err := h.postService.CountPosts(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to count posts")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, CountResponse{Count: count})
}

// deleteMatching runs the shared bulk-delete flow for a pre-built filter.
func (h *PostHandler) deleteMatching(w http.ResponseWriter, r *http.Request, filter store.PostFilter) {
	count, err := h.postService.DeletePostsMatching(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete posts")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("deleted %d posts", count),
	})
}

// List handles GET /api/posts.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, store.PostFilter{})
}

// ListByAuthorEmail handles GET /api/posts/author/email/{email}.
func (h *PostHandler) ListByAuthorEmail(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, store.PostFilter{AuthorEmail: chi.URLParam(r, "email")})
}

// ListByAuthorID handles GET /api/posts/author/id/{id}.
func (h *PostHandler) ListByAuthorID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.list(w, r, store.PostFilter{AuthorID: id})
}

// ListByAuthorLastName handles GET /api/posts/author/name/{lastName}.
func (h *PostHandler) ListByAuthorLastName(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, store.PostFilter{AuthorLastName: chi.URLParam(r, "lastName")})
}

// ListByAuthorFullName handles GET /api/posts/author/name/{firstName}/{lastName}.
func (h *PostHandler) ListByAuthorFullName(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, store.PostFilter{
		AuthorFirstName: chi.URLParam(r, "firstName"),
		AuthorLastName:  chi.URLParam(r, "lastName"),
	})
}

// ListByCategoryName handles GET /api/posts/category/name/{name}.
func (h *PostHandler) ListByCategoryName(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, store.PostFilter{CategoryName: chi.URLParam(r, "name")})
}

// ListByCategoryID handles GET /api/posts/category/id/{id}.
func (h *PostHandler) ListByCategoryID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.list(w, r, store.PostFilter{CategoryID: id})
}

// ListByAuthorAndCategory handles
// GET /api/posts/author/{lastName}/category/{categoryName}.
func (h *PostHandler) ListByAuthorAndCategory(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, store.PostFilter{
		AuthorLastName: chi.URLParam(r, "lastName"),
		CategoryName:   chi.URLParam(r, "categoryName"),
	})
}

// Count handles GET /api/posts/count.
func (h *PostHandler) Count(w http.ResponseWriter, r *http.Request) {
	h.count(w, r, store.PostFilter{})
}

// CountByAuthorEmail handles GET /api/posts/count/author/email/{email}.
func (h *PostHandler) CountByAuthorEmail(w http.ResponseWriter, r *http.Request) {
	h.count(w, r, store.PostFilter{AuthorEmail: chi.URLParam(r, "email")})
}

// CountByAuthorID handles GET /api/posts/count/author/id/{id}.
func (h *PostHandler) CountByAuthorID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.count(w, r, store.PostFilter{AuthorID: id})
}

// CountByCategoryName handles GET /api/posts/count/category/name/{name}.
func (h *PostHandler) CountByCategoryName(w http.ResponseWriter, r *http.Request) {
	h.count(w, r, store.PostFilter{CategoryName: chi.URLParam(r, "name")})
}

// CountByCategoryID handles GET /api/posts/count/category/id/{id}.
func (h *PostHandler) CountByCategoryID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.count(w, r, store.PostFilter{CategoryID: id})
}

// Update handles PUT /api/posts/{id}.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req PostUpdateRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), id, service.PostUpdate{
		Title:         req.Title,
		Description:   req.Description,
		Content:       req.Content,
		AuthorEmails:  req.AuthorEmails,
		CategoryNames: req.CategoryNames,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update post")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /api/posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.postService.DeletePost(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete post")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "post deleted successfully"})
}

// DeleteAll handles DELETE /api/posts.
func (h *PostHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	h.deleteMatching(w, r, store.PostFilter{})
}

// DeleteByAuthorID handles DELETE /api/posts/author/id/{authorId}.
func (h *PostHandler) DeleteByAuthorID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "authorId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.deleteMatching(w, r, store.PostFilter{AuthorID: id})
}

// DeleteByAuthorEmail handles DELETE /api/posts/author/email/{email}.
func (h *PostHandler) DeleteByAuthorEmail(w http.ResponseWriter, r *http.Request) {
	h.deleteMatching(w, r, store.PostFilter{AuthorEmail: chi.URLParam(r, "email")})
}

// DeleteByAuthorLastName handles DELETE /api/posts/author/name/{lastName}.
func (h *PostHandler) DeleteByAuthorLastName(w http.ResponseWriter, r *http.Request) {
	h.deleteMatching(w, r, store.PostFilter{AuthorLastName: chi.URLParam(r, "lastName")})
}

// DeleteByAuthorFullName handles
// DELETE /api/posts/author/name/{firstName}/{lastName}.
func (h *PostHandler) DeleteByAuthorFullName(w http.ResponseWriter, r *http.Request) {
	h.deleteMatching(w, r, store.PostFilter{
		AuthorFirstName: chi.URLParam(r, "firstName"),
		AuthorLastName:  chi.URLParam(r, "lastName"),
	})
}

// DeleteByCategoryID handles DELETE /api/posts/category/id/{categoryId}.
func (h *PostHandler) DeleteByCategoryID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "categoryId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.deleteMatching(w, r, store.PostFilter{CategoryID: id})
}

// DeleteByCategoryName handles DELETE /api/posts/category/name/{name}.
func (h *PostHandler) DeleteByCategoryName(w http.ResponseWriter, r *http.Request) {
	h.deleteMatching(w, r, store.PostFilter{CategoryName: chi.URLParam(r, "name")})
}

// DeleteAuthorPost handles DELETE /api/posts/{postId}/author/{authorId}:
// the post is removed only when it belongs to the named author.
func (h *PostHandler) DeleteAuthorPost(w http.ResponseWriter, r *http.Request) {
	postID, err := getPathUUID(r, "postId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	authorID, err := getPathUUID(r, "authorId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.postService.DeleteAuthorPost(r.Context(), authorID, postID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete post")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "post deleted successfully"})
}
