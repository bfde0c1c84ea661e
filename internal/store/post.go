package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/openblog/api/internal/domain"
)

// PostFilter narrows a post list, count or bulk delete to one dimension of
// the association graph. Zero-valued fields are ignored; the store applies
// every field that is set.
type PostFilter struct {
	AuthorID        uuid.UUID
	AuthorEmail     string
	AuthorFirstName string
	AuthorLastName  string
	CategoryID      uuid.UUID
	CategoryName    string
}

// IsZero reports whether the filter constrains nothing.
func (f PostFilter) IsZero() bool {
	return f == PostFilter{}
}

// PostStore defines the interface for post persistence, including the
// post/author and post/category association rows.
type PostStore interface {
	// Create saves a new post together with its association rows. The whole
	// graph commits or none of it does; run inside a transaction.
	// Returns ErrTitleExists if the title is already taken.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by ID with its authors, categories and
	// comments loaded.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// GetByTitle retrieves a post by the title natural key, associations
	// loaded.
	GetByTitle(ctx context.Context, title string) (*domain.Post, error)

	// List returns one page of posts matching the filter, ordered per the
	// page request. A zero filter lists everything.
	List(ctx context.Context, filter PostFilter, req PageRequest) (*Page[*domain.Post], error)

	// Count returns the number of posts matching the filter.
	Count(ctx context.Context, filter PostFilter) (int64, error)

	// Update modifies a post's fields and replaces its association rows with
	// the sets held on the aggregate. Run inside a transaction.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post by ID; its comments go with it.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteMatching removes every post matching the filter (comments
	// cascade). A zero filter deletes all posts. Returns the number of posts
	// removed.
	DeleteMatching(ctx context.Context, filter PostFilter) (int64, error)

	// DeleteByAuthorAndPost removes one post only if it is associated with
	// the given author.
	DeleteByAuthorAndPost(ctx context.Context, authorID, postID uuid.UUID) error

	// WithTx returns a PostStore bound to the given transaction.
	WithTx(tx *sql.Tx) PostStore
}
