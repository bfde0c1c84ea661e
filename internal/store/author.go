package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/openblog/api/internal/domain"
)

// AuthorStore defines the interface for author persistence.
type AuthorStore interface {
	// Create saves a new author.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, author *domain.Author) error

	// GetByID retrieves an author by ID.
	// Returns an ErrAuthorNotFound-wrapping error if the author does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error)

	// GetByEmail retrieves an author by the email natural key.
	GetByEmail(ctx context.Context, email string) (*domain.Author, error)

	// GetByFirstName retrieves the first author matching the given first name.
	GetByFirstName(ctx context.Context, firstName string) (*domain.Author, error)

	// GetByLastName retrieves the first author matching the given last name.
	GetByLastName(ctx context.Context, lastName string) (*domain.Author, error)

	// ExistsByEmail reports whether an author with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List returns one page of authors ordered per the page request.
	List(ctx context.Context, req PageRequest) (*Page[*domain.Author], error)

	// Count returns the total number of authors.
	Count(ctx context.Context) (int64, error)

	// Update modifies an existing author's details.
	// Returns an ErrAuthorNotFound-wrapping error if the author does not exist,
	// ErrEmailExists if updating to an email that is already taken.
	Update(ctx context.Context, author *domain.Author) error

	// Delete removes an author by ID. Posts are not cascaded; the
	// association rows are detached by the store's foreign keys.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns an AuthorStore bound to the given transaction.
	WithTx(tx *sql.Tx) AuthorStore
}
