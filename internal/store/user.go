package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/openblog/api/internal/domain"
)

// UserStore defines the interface for authentication principal persistence.
type UserStore interface {
	// Create saves a new user together with its role grants. The caller
	// must have hashed the password already; run inside a transaction so the
	// user row and role links commit together.
	// Returns ErrUsernameExists or ErrEmailExists on uniqueness violations.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user with roles loaded.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsernameOrEmail retrieves a user whose username or email matches
	// the given login, roles loaded. This is the principal lookup used by
	// both login and the per-request authentication gate.
	GetByUsernameOrEmail(ctx context.Context, login string) (*domain.User, error)

	// ExistsByUsername reports whether a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// WithTx returns a UserStore bound to the given transaction.
	WithTx(tx *sql.Tx) UserStore
}

// RoleStore defines the interface for role lookups. Roles are seeded by
// migration; the application only reads them.
type RoleStore interface {
	// GetByName retrieves a role by its unique name (e.g. "ROLE_ADMIN").
	// Returns an ErrRoleNotFound-wrapping error if the role does not exist.
	GetByName(ctx context.Context, name string) (*domain.Role, error)

	// WithTx returns a RoleStore bound to the given transaction.
	WithTx(tx *sql.Tx) RoleStore
}
