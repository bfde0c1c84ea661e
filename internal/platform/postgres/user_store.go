package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openblog/api/internal/domain"
	"github.com/openblog/api/internal/platform/logger"
	"github.com/openblog/api/internal/store"
)

// UserStore implements the store.UserStore interface using a PostgreSQL
// database as the storage backend. It owns the user rows and the
// user_roles grant rows.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore
// interface. If logger is nil, the default logger is used.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*UserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &UserStore{db: tx, logger: s.logger}
}

// Create implements store.UserStore.Create
// The caller must have hashed the password already; the plaintext field is
// never written. Role grants are inserted alongside the user row, so run
// this inside a transaction.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	if user.HashedPassword == "" {
		return fmt.Errorf("%w: hashed password is required", store.ErrInvalidEntity)
	}

	query := `
		INSERT INTO users (id, name, username, email, password)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Username, user.Email, user.HashedPassword); err != nil {
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return MapError(err)
	}

	for _, role := range user.Roles {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			user.ID, role.ID); err != nil {
			return MapError(err)
		}
	}

	log.Info("user created",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
		slog.Int("roles", len(user.Roles)))
	return nil
}

const selectUser = `SELECT id, name, username, email, password FROM users`

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.getOne(ctx, "id = $1", map[string]string{"id": id.String()}, id)
}

// GetByUsernameOrEmail implements store.UserStore.GetByUsernameOrEmail
// The same value is matched against both columns, which is how login
// identifiers are accepted.
func (s *UserStore) GetByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	return s.getOne(ctx, "username = $1 OR email = $1",
		map[string]string{"usernameOrEmail": identifier}, identifier)
}

func (s *UserStore) getOne(ctx context.Context, where string, key map[string]string, args ...any) (*domain.User, error) {
	var user domain.User
	err := s.db.QueryRowContext(ctx, selectUser+" WHERE "+where, args...).Scan(
		&user.ID, &user.Name, &user.Username, &user.Email, &user.HashedPassword)
	if err != nil {
		if IsNotFound(err) {
			return nil, store.NewNotFoundError(store.ErrUserNotFound, "user", key)
		}
		return nil, MapError(err)
	}

	if err := s.loadRoles(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) loadRoles(ctx context.Context, user *domain.User) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.name
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = $1
		ORDER BY r.name
	`, user.ID)
	if err != nil {
		return MapError(err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return MapError(err)
		}
		user.Roles = append(user.Roles, &role)
	}
	return MapError(rows.Err())
}

// ExistsByUsername implements store.UserStore.ExistsByUsername
func (s *UserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// ExistsByEmail implements store.UserStore.ExistsByEmail
func (s *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}
