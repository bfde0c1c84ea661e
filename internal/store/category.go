package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/openblog/api/internal/domain"
)

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// Create saves a new category.
	// Returns ErrCategoryNameExists if the name is already taken.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// GetByName retrieves a category by the name natural key.
	GetByName(ctx context.Context, name string) (*domain.Category, error)

	// ExistsByName reports whether a category with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// List returns one page of categories ordered per the page request.
	List(ctx context.Context, req PageRequest) (*Page[*domain.Category], error)

	// Count returns the total number of categories.
	Count(ctx context.Context) (int64, error)

	// Update modifies an existing category's details.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category by ID. Posts survive; the association rows
	// are detached.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every category and returns the number removed.
	DeleteAll(ctx context.Context) (int64, error)

	// WithTx returns a CategoryStore bound to the given transaction.
	WithTx(tx *sql.Tx) CategoryStore
}
