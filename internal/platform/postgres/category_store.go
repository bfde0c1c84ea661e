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

// CategoryStore implements the store.CategoryStore interface using a
// PostgreSQL database as the storage backend.
type CategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCategoryStore creates a new PostgreSQL implementation of the
// CategoryStore interface. If logger is nil, the default logger is used.
func NewCategoryStore(db store.DBTX, logger *slog.Logger) *CategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

var _ store.CategoryStore = (*CategoryStore)(nil)

// WithTx implements store.CategoryStore.WithTx
func (s *CategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return &CategoryStore{db: tx, logger: s.logger}
}

// Create implements store.CategoryStore.Create
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO categories (id, name, description)
		VALUES ($1, $2, $3)
	`
	if _, err := s.db.ExecContext(ctx, query,
		category.ID, category.Name, category.Description); err != nil {
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return MapError(err)
	}

	log.Info("category created",
		slog.String("category_id", category.ID.String()),
		slog.String("name", category.Name))
	return nil
}

const selectCategory = `SELECT id, name, description FROM categories`

func (s *CategoryStore) getOne(ctx context.Context, where string, key map[string]string, args ...any) (*domain.Category, error) {
	var category domain.Category
	err := s.db.QueryRowContext(ctx, selectCategory+" WHERE "+where, args...).Scan(
		&category.ID, &category.Name, &category.Description)
	if err != nil {
		if IsNotFound(err) {
			return nil, store.NewNotFoundError(store.ErrCategoryNotFound, "category", key)
		}
		return nil, MapError(err)
	}
	return &category, nil
}

// GetByID implements store.CategoryStore.GetByID
func (s *CategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return s.getOne(ctx, "id = $1", map[string]string{"id": id.String()}, id)
}

// GetByName implements store.CategoryStore.GetByName
func (s *CategoryStore) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	return s.getOne(ctx, "name = $1", map[string]string{"name": name}, name)
}

// ExistsByName implements store.CategoryStore.ExistsByName
func (s *CategoryStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// List implements store.CategoryStore.List
func (s *CategoryStore) List(ctx context.Context, req store.PageRequest) (*store.Page[*domain.Category], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	orderBy, err := orderByClause(req, categorySortColumns)
	if err != nil {
		return nil, err
	}

	total, err := s.Count(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("%s %s LIMIT $1 OFFSET $2", selectCategory, orderBy)
	rows, err := s.db.QueryContext(ctx, query, req.PageSize, req.Offset())
	if err != nil {
		log.Error("failed to list categories", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var categories []*domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description); err != nil {
			return nil, MapError(err)
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return store.NewPage(categories, total, req), nil
}

// Count implements store.CategoryStore.Count
func (s *CategoryStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// Update implements store.CategoryStore.Update
func (s *CategoryStore) Update(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE categories
		SET name = $2, description = $3
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, category.ID, category.Name, category.Description)
	if err != nil {
		log.Error("failed to update category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.NewNotFoundError(store.ErrCategoryNotFound, "category",
			map[string]string{"id": category.ID.String()})
	}

	return nil
}

// Delete implements store.CategoryStore.Delete
func (s *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete category",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.NewNotFoundError(store.ErrCategoryNotFound, "category",
			map[string]string{"id": id.String()})
	}

	log.Info("category deleted", slog.String("category_id", id.String()))
	return nil
}

// DeleteAll implements store.CategoryStore.DeleteAll
func (s *CategoryStore) DeleteAll(ctx context.Context) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM categories`)
	if err != nil {
		log.Error("failed to delete all categories", slog.String("error", err.Error()))
		return 0, MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, MapError(err)
	}

	log.Info("all categories deleted", slog.Int64("count", affected))
	return affected, nil
}
