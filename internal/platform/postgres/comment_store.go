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

// CommentStore implements the store.CommentStore interface using a
// PostgreSQL database as the storage backend.
type CommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface. If logger is nil, the default logger is used.
func NewCommentStore(db store.DBTX, logger *slog.Logger) *CommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

var _ store.CommentStore = (*CommentStore)(nil)

// WithTx implements store.CommentStore.WithTx
func (s *CommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return &CommentStore{db: tx, logger: s.logger}
}

// Create implements store.CommentStore.Create
func (s *CommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO comments (id, name, email, body, post_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.db.ExecContext(ctx, query,
		comment.ID, comment.Name, comment.Email, comment.Body, comment.PostID); err != nil {
		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.String("comment_id", comment.ID.String()),
			slog.String("post_id", comment.PostID.String()))
		return MapError(err)
	}

	log.Info("comment created",
		slog.String("comment_id", comment.ID.String()),
		slog.String("post_id", comment.PostID.String()))
	return nil
}

const selectComment = `SELECT id, name, email, body, post_id FROM comments`

// GetByIDAndPostID implements store.CommentStore.GetByIDAndPostID
func (s *CommentStore) GetByIDAndPostID(ctx context.Context, id, postID uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	err := s.db.QueryRowContext(ctx, selectComment+` WHERE id = $1 AND post_id = $2`, id, postID).Scan(
		&comment.ID, &comment.Name, &comment.Email, &comment.Body, &comment.PostID)
	if err != nil {
		if IsNotFound(err) {
			return nil, store.NewNotFoundError(store.ErrCommentNotFound, "comment",
				map[string]string{"id": id.String(), "postId": postID.String()})
		}
		return nil, MapError(err)
	}
	return &comment, nil
}

// ListByPostID implements store.CommentStore.ListByPostID
func (s *CommentStore) ListByPostID(ctx context.Context, postID uuid.UUID, req store.PageRequest) (*store.Page[*domain.Comment], error) {
	return s.list(ctx, "post_id = $1", req, postID)
}

// ListByEmail implements store.CommentStore.ListByEmail
func (s *CommentStore) ListByEmail(ctx context.Context, email string, req store.PageRequest) (*store.Page[*domain.Comment], error) {
	return s.list(ctx, "email = $1", req, email)
}

// ListByName implements store.CommentStore.ListByName
func (s *CommentStore) ListByName(ctx context.Context, name string, req store.PageRequest) (*store.Page[*domain.Comment], error) {
	return s.list(ctx, "name = $1", req, name)
}

func (s *CommentStore) list(ctx context.Context, where string, req store.PageRequest, arg any) (*store.Page[*domain.Comment], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	orderBy, err := orderByClause(req, commentSortColumns)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE `+where, arg).Scan(&total); err != nil {
		return nil, MapError(err)
	}

	query := fmt.Sprintf("%s WHERE %s %s LIMIT $2 OFFSET $3", selectComment, where, orderBy)
	rows, err := s.db.QueryContext(ctx, query, arg, req.PageSize, req.Offset())
	if err != nil {
		log.Error("failed to list comments", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var comments []*domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(&comment.ID, &comment.Name, &comment.Email, &comment.Body, &comment.PostID); err != nil {
			return nil, MapError(err)
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return store.NewPage(comments, total, req), nil
}

// CountByPostID implements store.CommentStore.CountByPostID
func (s *CommentStore) CountByPostID(ctx context.Context, postID uuid.UUID) (int64, error) {
	return s.countWhere(ctx, "post_id = $1", postID)
}

// CountByEmail implements store.CommentStore.CountByEmail
func (s *CommentStore) CountByEmail(ctx context.Context, email string) (int64, error) {
	return s.countWhere(ctx, "email = $1", email)
}

// CountByName implements store.CommentStore.CountByName
func (s *CommentStore) CountByName(ctx context.Context, name string) (int64, error) {
	return s.countWhere(ctx, "name = $1", name)
}

func (s *CommentStore) countWhere(ctx context.Context, where string, arg any) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE `+where, arg).Scan(&count); err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// Update implements store.CommentStore.Update
func (s *CommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE comments
		SET name = $2, email = $3, body = $4
		WHERE id = $1 AND post_id = $5
	`
	result, err := s.db.ExecContext(ctx, query,
		comment.ID, comment.Name, comment.Email, comment.Body, comment.PostID)
	if err != nil {
		log.Error("failed to update comment",
			slog.String("error", err.Error()),
			slog.String("comment_id", comment.ID.String()))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.NewNotFoundError(store.ErrCommentNotFound, "comment",
			map[string]string{"id": comment.ID.String(), "postId": comment.PostID.String()})
	}
	return nil
}

// Delete implements store.CommentStore.Delete
func (s *CommentStore) Delete(ctx context.Context, id, postID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM comments WHERE id = $1 AND post_id = $2`, id, postID)
	if err != nil {
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.NewNotFoundError(store.ErrCommentNotFound, "comment",
			map[string]string{"id": id.String(), "postId": postID.String()})
	}
	return nil
}

// DeleteByPostID implements store.CommentStore.DeleteByPostID
func (s *CommentStore) DeleteByPostID(ctx context.Context, postID uuid.UUID) (int64, error) {
	return s.deleteWhere(ctx, "post_id = $1", postID)
}

// DeleteByEmail implements store.CommentStore.DeleteByEmail
func (s *CommentStore) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	return s.deleteWhere(ctx, "email = $1", email)
}

// DeleteByName implements store.CommentStore.DeleteByName
func (s *CommentStore) DeleteByName(ctx context.Context, name string) (int64, error) {
	return s.deleteWhere(ctx, "name = $1", name)
}

func (s *CommentStore) deleteWhere(ctx context.Context, where string, arg any) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE `+where, arg)
	if err != nil {
		log.Error("failed to delete comments", slog.String("error", err.Error()))
		return 0, MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, MapError(err)
	}

	log.Info("comments deleted", slog.Int64("count", affected))
	return affected, nil
}
