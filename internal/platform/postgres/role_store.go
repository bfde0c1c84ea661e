package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/openblog/api/internal/domain"
	"github.com/openblog/api/internal/store"
)

// RoleStore implements the store.RoleStore interface using a PostgreSQL
// database as the storage backend. The role catalog is seeded by the
// migrations and read-only at runtime.
type RoleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewRoleStore creates a new PostgreSQL implementation of the RoleStore
// interface. If logger is nil, the default logger is used.
func NewRoleStore(db store.DBTX, logger *slog.Logger) *RoleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RoleStore{
		db:     db,
		logger: logger.With(slog.String("component", "role_store")),
	}
}

var _ store.RoleStore = (*RoleStore)(nil)

// WithTx implements store.RoleStore.WithTx
func (s *RoleStore) WithTx(tx *sql.Tx) store.RoleStore {
	return &RoleStore{db: tx, logger: s.logger}
}

// GetByName implements store.RoleStore.GetByName
// Name matching is exact, so callers qualify the name first.
func (s *RoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM roles WHERE name = $1`, name).Scan(&role.ID, &role.Name)
	if err != nil {
		if IsNotFound(err) {
			return nil, store.NewNotFoundError(store.ErrRoleNotFound, "role",
				map[string]string{"name": name})
		}
		return nil, MapError(err)
	}
	return &role, nil
}
