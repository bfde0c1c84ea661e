package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/openblog/api/internal/domain"
)

// CommentStore defines the interface for comment persistence.
type CommentStore interface {
	// Create saves a new comment under its owning post.
	// Returns ErrInvalidEntity if the post does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByIDAndPostID retrieves a comment by ID, scoped to its owning post.
	GetByIDAndPostID(ctx context.Context, commentID, postID uuid.UUID) (*domain.Comment, error)

	// ListByPostID returns one page of the post's comments.
	ListByPostID(ctx context.Context, postID uuid.UUID, req PageRequest) (*Page[*domain.Comment], error)

	// ListByEmail returns one page of comments left under the given email.
	ListByEmail(ctx context.Context, email string, req PageRequest) (*Page[*domain.Comment], error)

	// ListByName returns one page of comments left under the given name.
	ListByName(ctx context.Context, name string, req PageRequest) (*Page[*domain.Comment], error)

	// CountByPostID returns the number of comments owned by the given post.
	CountByPostID(ctx context.Context, postID uuid.UUID) (int64, error)

	// CountByEmail returns the number of comments left under the given email.
	CountByEmail(ctx context.Context, email string) (int64, error)

	// CountByName returns the number of comments left under the given name.
	CountByName(ctx context.Context, name string) (int64, error)

	// Update modifies an existing comment.
	Update(ctx context.Context, comment *domain.Comment) error

	// Delete removes a comment by ID, scoped to its owning post.
	Delete(ctx context.Context, id, postID uuid.UUID) error

	// DeleteByPostID removes every comment owned by the given post and
	// returns the number removed.
	DeleteByPostID(ctx context.Context, postID uuid.UUID) (int64, error)

	// DeleteByEmail removes every comment left under the given email and
	// returns the number removed.
	DeleteByEmail(ctx context.Context, email string) (int64, error)

	// DeleteByName removes every comment left under the given name and
	// returns the number removed.
	DeleteByName(ctx context.Context, name string) (int64, error)

	// WithTx returns a CommentStore bound to the given transaction.
	WithTx(tx *sql.Tx) CommentStore
}
