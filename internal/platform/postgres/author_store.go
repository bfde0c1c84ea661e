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

// AuthorStore implements the store.AuthorStore interface using a PostgreSQL
// database as the storage backend.
type AuthorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAuthorStore creates a new PostgreSQL implementation of the AuthorStore
// interface. If logger is nil, the default logger is used.
func NewAuthorStore(db store.DBTX, logger *slog.Logger) *AuthorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthorStore{
		db:     db,
		logger: logger.With(slog.String("component", "author_store")),
	}
}

var _ store.AuthorStore = (*AuthorStore)(nil)

// WithTx implements store.AuthorStore.WithTx
func (s *AuthorStore) WithTx(tx *sql.Tx) store.AuthorStore {
	return &AuthorStore{db: tx, logger: s.logger}
}

// Create implements store.AuthorStore.Create
func (s *AuthorStore) Create(ctx context.Context, author *domain.Author) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := author.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO authors (id, first_name, last_name, email)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.db.ExecContext(ctx, query,
		author.ID, author.FirstName, author.LastName, author.Email); err != nil {
		log.Error("failed to create author",
			slog.String("error", err.Error()),
			slog.String("author_id", author.ID.String()))
		return MapError(err)
	}

	log.Info("author created",
		slog.String("author_id", author.ID.String()),
		slog.String("email", author.Email))
	return nil
}

const selectAuthor = `SELECT id, first_name, last_name, email FROM authors`

func (s *AuthorStore) getOne(ctx context.Context, where string, key map[string]string, args ...any) (*domain.Author, error) {
	var author domain.Author
	err := s.db.QueryRowContext(ctx, selectAuthor+" WHERE "+where, args...).Scan(
		&author.ID, &author.FirstName, &author.LastName, &author.Email)
	if err != nil {
		if IsNotFound(err) {
			return nil, store.NewNotFoundError(store.ErrAuthorNotFound, "author", key)
		}
		return nil, MapError(err)
	}
	return &author, nil
}

// GetByID implements store.AuthorStore.GetByID
func (s *AuthorStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	return s.getOne(ctx, "id = $1", map[string]string{"id": id.String()}, id)
}

// GetByEmail implements store.AuthorStore.GetByEmail
func (s *AuthorStore) GetByEmail(ctx context.Context, email string) (*domain.Author, error) {
	return s.getOne(ctx, "email = $1", map[string]string{"email": email}, email)
}

// GetByFirstName implements store.AuthorStore.GetByFirstName
func (s *AuthorStore) GetByFirstName(ctx context.Context, firstName string) (*domain.Author, error) {
	return s.getOne(ctx, "first_name = $1 ORDER BY id LIMIT 1",
		map[string]string{"firstName": firstName}, firstName)
}

// GetByLastName implements store.AuthorStore.GetByLastName
func (s *AuthorStore) GetByLastName(ctx context.Context, lastName string) (*domain.Author, error) {
	return s.getOne(ctx, "last_name = $1 ORDER BY id LIMIT 1",
		map[string]string{"lastName": lastName}, lastName)
}

// ExistsByEmail implements store.AuthorStore.ExistsByEmail
func (s *AuthorStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM authors WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// List implements store.AuthorStore.List
func (s *AuthorStore) List(ctx context.Context, req store.PageRequest) (*store.Page[*domain.Author], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	orderBy, err := orderByClause(req, authorSortColumns)
	if err != nil {
		return nil, err
	}

	total, err := s.Count(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("%s %s LIMIT $1 OFFSET $2", selectAuthor, orderBy)
	rows, err := s.db.QueryContext(ctx, query, req.PageSize, req.Offset())
	if err != nil {
		log.Error("failed to list authors", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var authors []*domain.Author
	for rows.Next() {
		var author domain.Author
		if err := rows.Scan(&author.ID, &author.FirstName, &author.LastName, &author.Email); err != nil {
			return nil, MapError(err)
		}
		authors = append(authors, &author)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return store.NewPage(authors, total, req), nil
}

// Count implements store.AuthorStore.Count
func (s *AuthorStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM authors`).Scan(&count); err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// Update implements store.AuthorStore.Update
func (s *AuthorStore) Update(ctx context.Context, author *domain.Author) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := author.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE authors
		SET first_name = $2, last_name = $3, email = $4
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		author.ID, author.FirstName, author.LastName, author.Email)
	if err != nil {
		log.Error("failed to update author",
			slog.String("error", err.Error()),
			slog.String("author_id", author.ID.String()))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.NewNotFoundError(store.ErrAuthorNotFound, "author",
			map[string]string{"id": author.ID.String()})
	}

	return nil
}

// Delete implements store.AuthorStore.Delete
func (s *AuthorStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete author",
			slog.String("error", err.Error()),
			slog.String("author_id", id.String()))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.NewNotFoundError(store.ErrAuthorNotFound, "author",
			map[string]string{"id": id.String()})
	}

	log.Info("author deleted", slog.String("author_id", id.String()))
	return nil
}
