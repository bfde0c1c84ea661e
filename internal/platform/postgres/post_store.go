package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/openblog/api/internal/domain"
	"github.com/openblog/api/internal/platform/logger"
	"github.com/openblog/api/internal/store"
)

// PostStore implements the store.PostStore interface using a PostgreSQL
// database as the storage backend. It owns the post rows and the
// post_authors / post_categories association rows.
type PostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostStore creates a new PostgreSQL implementation of the PostStore
// interface. If logger is nil, the default logger is used.
func NewPostStore(db store.DBTX, logger *slog.Logger) *PostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

var _ store.PostStore = (*PostStore)(nil)

// WithTx implements store.PostStore.WithTx
func (s *PostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostStore{db: tx, logger: s.logger}
}

// filterClause renders the WHERE conditions for a PostFilter against the
// aliased posts table "p". Association dimensions are expressed as EXISTS
// subqueries on the join tables so no row multiplication occurs.
func filterClause(filter store.PostFilter) (string, []any) {
	var conditions []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.AuthorID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM post_authors pa WHERE pa.post_id = p.id AND pa.author_id = %s)`,
			arg(filter.AuthorID)))
	}
	if filter.AuthorEmail != "" {
		conditions = append(conditions, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM post_authors pa
				JOIN authors a ON a.id = pa.author_id
				WHERE pa.post_id = p.id AND a.email = %s)`,
			arg(filter.AuthorEmail)))
	}
	if filter.AuthorFirstName != "" || filter.AuthorLastName != "" {
		var nameConds []string
		if filter.AuthorFirstName != "" {
			nameConds = append(nameConds, "a.first_name = "+arg(filter.AuthorFirstName))
		}
		if filter.AuthorLastName != "" {
			nameConds = append(nameConds, "a.last_name = "+arg(filter.AuthorLastName))
		}
		conditions = append(conditions, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM post_authors pa
				JOIN authors a ON a.id = pa.author_id
				WHERE pa.post_id = p.id AND %s)`,
			strings.Join(nameConds, " AND ")))
	}
	if filter.CategoryID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM post_categories pc WHERE pc.post_id = p.id AND pc.category_id = %s)`,
			arg(filter.CategoryID)))
	}
	if filter.CategoryName != "" {
		conditions = append(conditions, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM post_categories pc
				JOIN categories c ON c.id = pc.category_id
				WHERE pc.post_id = p.id AND c.name = %s)`,
			arg(filter.CategoryName)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// Create implements store.PostStore.Create
func (s *PostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	if err := post.AssertPublishable(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO posts (id, title, description, content)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Description, post.Content); err != nil {
		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return MapError(err)
	}

	if err := s.insertAssociations(ctx, post); err != nil {
		return err
	}

	log.Info("post created",
		slog.String("post_id", post.ID.String()),
		slog.String("title", post.Title),
		slog.Int("authors", len(post.Authors)),
		slog.Int("categories", len(post.Categories)))
	return nil
}

func (s *PostStore) insertAssociations(ctx context.Context, post *domain.Post) error {
	for _, author := range post.Authors {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO post_authors (post_id, author_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			post.ID, author.ID); err != nil {
			return MapError(err)
		}
	}
	for _, category := range post.Categories {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO post_categories (post_id, category_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			post.ID, category.ID); err != nil {
			return MapError(err)
		}
	}
	return nil
}

const selectPost = `SELECT p.id, p.title, p.description, p.content FROM posts p`

// GetByID implements store.PostStore.GetByID
func (s *PostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return s.getOne(ctx, "p.id = $1", map[string]string{"id": id.String()}, id)
}

// GetByTitle implements store.PostStore.GetByTitle
func (s *PostStore) GetByTitle(ctx context.Context, title string) (*domain.Post, error) {
	return s.getOne(ctx, "p.title = $1", map[string]string{"title": title}, title)
}

func (s *PostStore) getOne(ctx context.Context, where string, key map[string]string, args ...any) (*domain.Post, error) {
	var post domain.Post
	err := s.db.QueryRowContext(ctx, selectPost+" WHERE "+where, args...).Scan(
		&post.ID, &post.Title, &post.Description, &post.Content)
	if err != nil {
		if IsNotFound(err) {
			return nil, store.NewNotFoundError(store.ErrPostNotFound, "post", key)
		}
		return nil, MapError(err)
	}

	if err := s.loadAssociations(ctx, []*domain.Post{&post}); err != nil {
		return nil, err
	}
	if err := s.loadComments(ctx, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

// loadAssociations fills the author and category sets of the given posts in
// two batched queries keyed by post ID.
func (s *PostStore) loadAssociations(ctx context.Context, posts []*domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Post, len(posts))
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
		ids = append(ids, p.ID.String())
	}

	authorRows, err := s.db.QueryContext(ctx, `
		SELECT pa.post_id, a.id, a.first_name, a.last_name, a.email
		FROM post_authors pa
		JOIN authors a ON a.id = pa.author_id
		WHERE pa.post_id = ANY($1::uuid[])
		ORDER BY a.last_name, a.first_name
	`, ids)
	if err != nil {
		return MapError(err)
	}
	defer func() { _ = authorRows.Close() }()

	for authorRows.Next() {
		var postID uuid.UUID
		var author domain.Author
		if err := authorRows.Scan(&postID, &author.ID, &author.FirstName, &author.LastName, &author.Email); err != nil {
			return MapError(err)
		}
		if post, ok := byID[postID]; ok {
			post.Authors = append(post.Authors, &author)
		}
	}
	if err := authorRows.Err(); err != nil {
		return MapError(err)
	}

	categoryRows, err := s.db.QueryContext(ctx, `
		SELECT pc.post_id, c.id, c.name, c.description
		FROM post_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.post_id = ANY($1::uuid[])
		ORDER BY c.name
	`, ids)
	if err != nil {
		return MapError(err)
	}
	defer func() { _ = categoryRows.Close() }()

	for categoryRows.Next() {
		var postID uuid.UUID
		var category domain.Category
		if err := categoryRows.Scan(&postID, &category.ID, &category.Name, &category.Description); err != nil {
			return MapError(err)
		}
		if post, ok := byID[postID]; ok {
			post.Categories = append(post.Categories, &category)
		}
	}
	return MapError(categoryRows.Err())
}

func (s *PostStore) loadComments(ctx context.Context, post *domain.Post) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, body, post_id
		FROM comments
		WHERE post_id = $1
		ORDER BY id
	`, post.ID)
	if err != nil {
		return MapError(err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(&comment.ID, &comment.Name, &comment.Email, &comment.Body, &comment.PostID); err != nil {
			return MapError(err)
		}
		post.Comments = append(post.Comments, &comment)
	}
	return MapError(rows.Err())
}

// List implements store.PostStore.List
func (s *PostStore) List(ctx context.Context, filter store.PostFilter, req store.PageRequest) (*store.Page[*domain.Post], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	orderBy, err := orderByClause(req, postSortColumns)
	if err != nil {
		return nil, err
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	where, args := filterClause(filter)
	query := fmt.Sprintf("%s %s %s LIMIT $%d OFFSET $%d",
		selectPost, where, strings.Replace(orderBy, "ORDER BY ", "ORDER BY p.", 1),
		len(args)+1, len(args)+2)
	args = append(args, req.PageSize, req.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var posts []*domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Description, &post.Content); err != nil {
			return nil, MapError(err)
		}
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	if err := s.loadAssociations(ctx, posts); err != nil {
		return nil, err
	}

	return store.NewPage(posts, total, req), nil
}

// Count implements store.PostStore.Count
func (s *PostStore) Count(ctx context.Context, filter store.PostFilter) (int64, error) {
	where, args := filterClause(filter)

	var count int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM posts p %s`, where)
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// Update implements store.PostStore.Update
// The association rows are replaced wholesale with the sets held on the
// aggregate; run inside a transaction.
func (s *PostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	if err := post.AssertPublishable(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE posts
		SET title = $2, description = $3, content = $4
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Description, post.Content)
	if err != nil {
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.String("post_id", post.ID.String()))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.NewNotFoundError(store.ErrPostNotFound, "post",
			map[string]string{"id": post.ID.String()})
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM post_authors WHERE post_id = $1`, post.ID); err != nil {
		return MapError(err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM post_categories WHERE post_id = $1`, post.ID); err != nil {
		return MapError(err)
	}

	return s.insertAssociations(ctx, post)
}

// Delete implements store.PostStore.Delete
// Comments and association rows go with the post via ON DELETE CASCADE.
func (s *PostStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.NewNotFoundError(store.ErrPostNotFound, "post",
			map[string]string{"id": id.String()})
	}

	log.Info("post deleted", slog.String("post_id", id.String()))
	return nil
}

// DeleteMatching implements store.PostStore.DeleteMatching
func (s *PostStore) DeleteMatching(ctx context.Context, filter store.PostFilter) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where, args := filterClause(filter)
	query := fmt.Sprintf(`DELETE FROM posts WHERE id IN (SELECT p.id FROM posts p %s)`, where)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to delete posts by filter", slog.String("error", err.Error()))
		return 0, MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, MapError(err)
	}

	log.Info("posts deleted by filter", slog.Int64("count", affected))
	return affected, nil
}

// DeleteByAuthorAndPost implements store.PostStore.DeleteByAuthorAndPost
func (s *PostStore) DeleteByAuthorAndPost(ctx context.Context, authorID, postID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM posts
		WHERE id = $1
		AND EXISTS (SELECT 1 FROM post_authors pa WHERE pa.post_id = $1 AND pa.author_id = $2)
	`, postID, authorID)
	if err != nil {
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.NewNotFoundError(store.ErrPostNotFound, "post",
			map[string]string{"id": postID.String(), "authorId": authorID.String()})
	}
	return nil
}
