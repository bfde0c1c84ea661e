package api

import (
	"github.com/google/uuid"
	"github.com/openblog/api/internal/domain"
	"github.com/openblog/api/internal/store"
)

// Common request/response structures

// LoginRequest defines the payload for the login endpoint. The identifier
// matches either username or email.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password"        validate:"required,min=1"`
}

// SignupRequest defines the payload for the signup endpoint. Role names
// are accepted with or without the ROLE_ prefix.
type SignupRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Username string   `json:"username" validate:"required,min=3,max=50"`
	Email    string   `json:"email"    validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8,max=72"`
	Roles    []string `json:"roles"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// MessageResponse defines a simple message body used by signup and the
// bulk delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthorRequest defines the payload for creating an author.
type AuthorRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
}

// AuthorUpdateRequest defines the payload for a partial author update.
type AuthorUpdateRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

// AuthorResponse defines the author representation returned to clients.
type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

// AuthorPageResponse is the page envelope for author lists.
type AuthorPageResponse struct {
	PageContent        []AuthorResponse `json:"pageContent"`
	PageNo             int              `json:"pageNo"`
	PageSize           int              `json:"pageSize"`
	TotalAuthorsOnPage int64            `json:"totalAuthorsOnPage"`
	TotalPages         int              `json:"totalPages"`
	IsLast             bool             `json:"isLast"`
}

// CategoryRequest defines the payload for creating a category.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CategoryUpdateRequest defines the payload for a partial category update.
type CategoryUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryResponse defines the category representation returned to clients.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// CategoryPageResponse is the page envelope for category lists.
type CategoryPageResponse struct {
	PageContent           []CategoryResponse `json:"pageContent"`
	PageNo                int                `json:"pageNo"`
	PageSize              int                `json:"pageSize"`
	TotalCategoriesOnPage int64              `json:"totalCategoriesOnPage"`
	TotalPages            int                `json:"totalPages"`
	IsLast                bool               `json:"isLast"`
}

// PostRequest defines the payload for creating a post. Authors are
// referenced by email and categories by name.
type PostRequest struct {
	Title         string   `json:"title"       validate:"required,min=2"`
	Description   string   `json:"description" validate:"required,min=10"`
	Content       string   `json:"content"     validate:"required"`
	AuthorEmails  []string `json:"authorEmails"  validate:"required,min=1,dive,email"`
	CategoryNames []string `json:"categoryNames" validate:"required,min=1"`
}

// PostUpdateRequest defines the payload for a partial post update. A
// supplied association list replaces the stored set.
type PostUpdateRequest struct {
	Title         *string  `json:"title"       validate:"omitempty,min=2"`
	Description   *string  `json:"description" validate:"omitempty,min=10"`
	Content       *string  `json:"content"`
	AuthorEmails  []string `json:"authorEmails"  validate:"omitempty,min=1,dive,email"`
	CategoryNames []string `json:"categoryNames" validate:"omitempty,min=1"`
}

// PostResponse defines the post representation returned to clients,
// including its resolved associations.
type PostResponse struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Content     string             `json:"content"`
	Authors     []AuthorResponse   `json:"authors"`
	Categories  []CategoryResponse `json:"categories"`
	Comments    []CommentResponse  `json:"comments,omitempty"`
}

// PostPageResponse is the page envelope for post lists.
type PostPageResponse struct {
	PageContent      []PostResponse `json:"pageContent"`
	PageNo           int            `json:"pageNo"`
	PageSize         int            `json:"pageSize"`
	TotalPostsOnPage int64          `json:"totalPostsOnPage"`
	TotalPages       int            `json:"totalPages"`
	IsLast           bool           `json:"isLast"`
}

// CommentRequest defines the payload for creating a comment.
type CommentRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Body  string `json:"body"  validate:"required,min=10"`
}

// CommentUpdateRequest defines the payload for a partial comment update.
type CommentUpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
	Body  *string `json:"body"  validate:"omitempty,min=10"`
}

// CommentResponse defines the comment representation returned to clients.
type CommentResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Body   string    `json:"body"`
	PostID uuid.UUID `json:"postId"`
}

// CommentPageResponse is the page envelope for comment lists.
type CommentPageResponse struct {
	PageContent         []CommentResponse `json:"pageContent"`
	PageNo              int               `json:"pageNo"`
	PageSize            int               `json:"pageSize"`
	TotalCommentsOnPage int64             `json:"totalCommentsOnPage"`
	TotalPages          int               `json:"totalPages"`
	IsLast              bool              `json:"isLast"`
}

// CountResponse wraps the count endpoints' result.
type CountResponse struct {
	Count int64 `json:"count"`
}

// Mapping helpers from domain entities to response DTOs.

func toAuthorResponse(author *domain.Author) AuthorResponse {
	return AuthorResponse{
		ID:        author.ID,
		FirstName: author.FirstName,
		LastName:  author.LastName,
		Email:     author.Email,
	}
}

func toAuthorResponses(authors []*domain.Author) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(authors))
	for _, author := range authors {
		out = append(out, toAuthorResponse(author))
	}
	return out
}

func toCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}

func toCategoryResponses(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, toCategoryResponse(category))
	}
	return out
}

func toCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:     comment.ID,
		Name:   comment.Name,
		Email:  comment.Email,
		Body:   comment.Body,
		PostID: comment.PostID,
	}
}

func toCommentResponses(comments []*domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, toCommentResponse(comment))
	}
	return out
}

func toPostResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		Content:     post.Content,
		Authors:     toAuthorResponses(post.Authors),
		Categories:  toCategoryResponses(post.Categories),
		Comments:    toCommentResponses(post.Comments),
	}
}

func toAuthorPageResponse(page *store.Page[*domain.Author]) AuthorPageResponse {
	return AuthorPageResponse{
		PageContent:        toAuthorResponses(page.Items),
		PageNo:             page.PageNo,
		PageSize:           page.PageSize,
		TotalAuthorsOnPage: int64(len(page.Items)),
		TotalPages:         page.TotalPages,
		IsLast:             page.IsLast(),
	}
}

func toCategoryPageResponse(page *store.Page[*domain.Category]) CategoryPageResponse {
	return CategoryPageResponse{
		PageContent:           toCategoryResponses(page.Items),
		PageNo:                page.PageNo,
		PageSize:              page.PageSize,
		TotalCategoriesOnPage: int64(len(page.Items)),
		TotalPages:            page.TotalPages,
		IsLast:                page.IsLast(),
	}
}

func toPostPageResponse(page *store.Page[*domain.Post]) PostPageResponse {
	posts := make([]PostResponse, 0, len(page.Items))
	for _, post := range page.Items {
		posts = append(posts, toPostResponse(post))
	}
	return PostPageResponse{
		PageContent:      posts,
		PageNo:           page.PageNo,
		PageSize:         page.PageSize,
		TotalPostsOnPage: int64(len(page.Items)),
		TotalPages:       page.TotalPages,
		IsLast:           page.IsLast(),
	}
}

func toCommentPageResponse(page *store.Page[*domain.Comment]) CommentPageResponse {
	return CommentPageResponse{
		PageContent:         toCommentResponses(page.Items),
		PageNo:              page.PageNo,
		PageSize:            page.PageSize,
		TotalCommentsOnPage: int64(len(page.Items)),
		TotalPages:          page.TotalPages,
		IsLast:              page.IsLast(),
	}
}
