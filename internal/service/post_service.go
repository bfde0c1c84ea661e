package service

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

// PostInput carries the data for a post create. Authors are referenced by
// email and categories by name; every reference must resolve.
type PostInput struct {
	Title         string
	Description   string
	Content       string
	AuthorEmails  []string
	CategoryNames []string
}

// PostUpdate carries the fields of a partial post update. Nil fields are
// left untouched; a non-nil slice replaces the whole association set.
type PostUpdate struct {
	Title         *string
	Description   *string
	Content       *string
	AuthorEmails  []string
	CategoryNames []string
}

// IsZero reports whether the update carries no fields.
func (u PostUpdate) IsZero() bool {
	return u.Title == nil && u.Description == nil && u.Content == nil &&
		u.AuthorEmails == nil && u.CategoryNames == nil
}

// PostService provides post-related operations.
type PostService interface {
	// CreatePost resolves the referenced authors and categories, then
	// persists the post and its association rows in one transaction. An
	// unresolved reference fails the create with ErrUnresolvedReference
	// naming it.
	CreatePost(ctx context.Context, input PostInput) (*domain.Post, error)

	// GetPost retrieves a post with its authors, categories and comments.
	GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// GetPostByTitle retrieves a post by the title natural key.
	GetPostByTitle(ctx context.Context, title string) (*domain.Post, error)

	// ListPosts returns a page of posts matching the filter. An empty
	// total yields store.NoElementsError.
	ListPosts(ctx context.Context, filter store.PostFilter, req store.PageRequest) (*store.Page[*domain.Post], error)

	// CountPosts returns the number of posts matching the filter. A zero
	// count yields store.NoElementsError, same as an empty list.
	CountPosts(ctx context.Context, filter store.PostFilter) (int64, error)

	// UpdatePost applies a partial update. Supplied association sets are
	// re-resolved and replace the stored sets.
	UpdatePost(ctx context.Context, id uuid.UUID, update PostUpdate) (*domain.Post, error)

	// DeletePost removes a post by ID. Its comments and association rows
	// go with it.
	DeletePost(ctx context.Context, id uuid.UUID) error

	// DeletePostsMatching removes every post matching the filter and
	// returns the count. A zero filter removes all posts.
	DeletePostsMatching(ctx context.Context, filter store.PostFilter) (int64, error)

	// DeleteAuthorPost removes the post only if it is written by the given
	// author.
	DeleteAuthorPost(ctx context.Context, authorID, postID uuid.UUID) error
}

// postServiceImpl implements the PostService interface
type postServiceImpl struct {
	db         *sql.DB
	posts      store.PostStore
	authors    store.AuthorStore
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewPostService creates a new PostService.
// It returns an error if any of the required dependencies are nil.
func NewPostService(
	db *sql.DB,
	posts store.PostStore,
	authors store.AuthorStore,
	categories store.CategoryStore,
	logger *slog.Logger,
) (PostService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if posts == nil {
		return nil, domain.NewValidationError("posts", "cannot be nil", domain.ErrValidation)
	}
	if authors == nil {
		return nil, domain.NewValidationError("authors", "cannot be nil", domain.ErrValidation)
	}
	if categories == nil {
		return nil, domain.NewValidationError("categories", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &postServiceImpl{
		db:         db,
		posts:      posts,
		authors:    authors,
		categories: categories,
		logger:     logger.With(slog.String("component", "post_service")),
	}, nil
}

// resolveReferences loads the named authors and categories, failing on the
// first reference that does not exist.
func (s *postServiceImpl) resolveReferences(
	ctx context.Context,
	authorEmails, categoryNames []string,
) ([]*domain.Author, []*domain.Category, error) {
	authors := make([]*domain.Author, 0, len(authorEmails))
	for _, email := range authorEmails {
		author, err := s.authors.GetByEmail(ctx, email)
		if err != nil {
			if store.IsNotFoundError(err) {
				return nil, nil, fmt.Errorf("%w: author %q", ErrUnresolvedReference, email)
			}
			return nil, nil, err
		}
		authors = append(authors, author)
	}

	categories := make([]*domain.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		category, err := s.categories.GetByName(ctx, name)
		if err != nil {
			if store.IsNotFoundError(err) {
				return nil, nil, fmt.Errorf("%w: category %q", ErrUnresolvedReference, name)
			}
			return nil, nil, err
		}
		categories = append(categories, category)
	}

	return authors, categories, nil
}

// CreatePost implements PostService.CreatePost
func (s *postServiceImpl) CreatePost(ctx context.Context, input PostInput) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := domain.NewPost(input.Title, input.Description, input.Content)
	if err != nil {
		return nil, err
	}

	exists, err := s.posts.GetByTitle(ctx, post.Title)
	if err != nil && !store.IsNotFoundError(err) {
		return nil, NewServiceError("create_post", "failed to check title", err)
	}
	if exists != nil {
		return nil, store.ErrTitleExists
	}

	authors, categories, err := s.resolveReferences(ctx, input.AuthorEmails, input.CategoryNames)
	if err != nil {
		return nil, err
	}
	for _, author := range authors {
		post.AttachAuthor(author)
	}
	for _, category := range categories {
		post.AttachCategory(category)
	}
	if err := post.AssertPublishable(); err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, nil, func(ctx context.Context, tx *sql.Tx) error {
		return s.posts.WithTx(tx).Create(ctx, post)
	})
	if err != nil {
		log.Error("failed to create post",
			slog.String("error", err.Error()),
			slog.String("title", post.Title))
		return nil, err
	}

	log.Info("post created",
		slog.String("post_id", post.ID.String()),
		slog.String("title", post.Title))
	return post, nil
}

// GetPost implements PostService.GetPost
// The post row and its association sets come from separate queries, so the
// read runs in a read-only transaction for a consistent snapshot.
func (s *postServiceImpl) GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var post *domain.Post
	err := store.RunInReadOnlyTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		post, err = s.posts.WithTx(tx).GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// GetPostByTitle implements PostService.GetPostByTitle
func (s *postServiceImpl) GetPostByTitle(ctx context.Context, title string) (*domain.Post, error) {
	var post *domain.Post
	err := store.RunInReadOnlyTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		post, err = s.posts.WithTx(tx).GetByTitle(ctx, title)
		return err
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts implements PostService.ListPosts
func (s *postServiceImpl) ListPosts(ctx context.Context, filter store.PostFilter, req store.PageRequest) (*store.Page[*domain.Post], error) {
	page, err := s.posts.List(ctx, filter, req)
	if err != nil {
		return nil, err
	}
	if page.IsEmpty() {
		return nil, store.NewNoElementsError("posts")
	}
	return page, nil
}

// CountPosts implements PostService.CountPosts
func (s *postServiceImpl) CountPosts(ctx context.Context, filter store.PostFilter) (int64, error) {
	count, err := s.posts.Count(ctx, filter)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, store.NewNoElementsError("posts")
	}
	return count, nil
}

// UpdatePost implements PostService.UpdatePost
// Scalar fields merge; a supplied association set is re-resolved and
// replaces the stored set wholesale inside the transaction.
func (s *postServiceImpl) UpdatePost(ctx context.Context, id uuid.UUID, update PostUpdate) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update.IsZero() {
		return nil, ErrNothingToUpdate
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil && *update.Title != post.Title {
		existing, err := s.posts.GetByTitle(ctx, *update.Title)
		if err != nil && !store.IsNotFoundError(err) {
			return nil, NewServiceError("update_post", "failed to check title", err)
		}
		if existing != nil {
			return nil, store.ErrTitleExists
		}
		post.Title = *update.Title
	}
	if update.Description != nil {
		post.Description = *update.Description
	}
	if update.Content != nil {
		post.Content = *update.Content
	}

	if update.AuthorEmails != nil || update.CategoryNames != nil {
		authorEmails := update.AuthorEmails
		categoryNames := update.CategoryNames
		authors, categories, err := s.resolveReferences(ctx, authorEmails, categoryNames)
		if err != nil {
			return nil, err
		}
		if update.AuthorEmails != nil {
			post.Authors = nil
			for _, author := range authors {
				post.AttachAuthor(author)
			}
		}
		if update.CategoryNames != nil {
			post.Categories = nil
			for _, category := range categories {
				post.AttachCategory(category)
			}
		}
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}
	if err := post.AssertPublishable(); err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, nil, func(ctx context.Context, tx *sql.Tx) error {
		return s.posts.WithTx(tx).Update(ctx, post)
	})
	if err != nil {
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.String("post_id", id.String()))
		return nil, err
	}

	return post, nil
}

// DeletePost implements PostService.DeletePost
func (s *postServiceImpl) DeletePost(ctx context.Context, id uuid.UUID) error {
	return s.posts.Delete(ctx, id)
}

// DeletePostsMatching implements PostService.DeletePostsMatching
func (s *postServiceImpl) DeletePostsMatching(ctx context.Context, filter store.PostFilter) (int64, error) {
	return s.posts.DeleteMatching(ctx, filter)
}

// DeleteAuthorPost implements PostService.DeleteAuthorPost
func (s *postServiceImpl) DeleteAuthorPost(ctx context.Context, authorID, postID uuid.UUID) error {
	return s.posts.DeleteByAuthorAndPost(ctx, authorID, postID)
}
