package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Comment validation errors.
var (
	ErrEmptyCommentID     = errors.New("comment ID cannot be empty")
	ErrEmptyCommentName   = errors.New("comment name cannot be empty")
	ErrEmptyCommentEmail  = errors.New("comment email cannot be empty")
	ErrEmptyCommentBody   = errors.New("comment body cannot be empty")
	ErrCommentWithoutPost = errors.New("comment must belong to a post")
)

// Comment is a reader reaction owned by exactly one post. Deleting the post
// deletes its comments.
type Comment struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Body   string    `json:"body"`
	PostID uuid.UUID `json:"postId"`
}

// NewComment creates a new Comment with a generated ID, owned by the given
// post. Returns an error if validation fails.
func NewComment(postID uuid.UUID, name, email, body string) (*Comment, error) {
	comment := &Comment{
		ID:     uuid.New(),
		Name:   strings.TrimSpace(name),
		Email:  strings.TrimSpace(email),
		Body:   body,
		PostID: postID,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
func (c *Comment) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCommentID
	}
	if c.PostID == uuid.Nil {
		return ErrCommentWithoutPost
	}
	if c.Name == "" {
		return ErrEmptyCommentName
	}
	if c.Email == "" {
		return ErrEmptyCommentEmail
	}
	if !validEmail(c.Email) {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(c.Body) == "" {
		return ErrEmptyCommentBody
	}
	return nil
}

// Equal reports whether two comments denote the same reaction, compared by
// the natural key (body, email, owning post) rather than by ID.
func (c *Comment) Equal(other *Comment) bool {
	if other == nil {
		return false
	}
	return c.Body == other.Body && c.Email == other.Email && c.PostID == other.PostID
}
