package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openblog/api/internal/domain"
	"github.com/openblog/api/internal/platform/logger"
	"github.com/openblog/api/internal/store"
)

// CommentInput carries the data for a comment create.
type CommentInput struct {
	Name  string
	Email string
	Body  string
}

// CommentUpdate carries the fields of a partial comment update. Nil fields
// are left untouched.
type CommentUpdate struct {
	Name  *string
	Email *string
	Body  *string
}

// IsZero reports whether the update carries no fields.
func (u CommentUpdate) IsZero() bool {
	return u.Name == nil && u.Email == nil && u.Body == nil
}

// CommentService provides comment-related operations.
type CommentService interface {
	// CreateComment persists a new comment under the given post. A missing
	// post yields the post's not-found error.
	CreateComment(ctx context.Context, postID uuid.UUID, input CommentInput) (*domain.Comment, error)

	// GetComment retrieves a comment scoped to its post.
	GetComment(ctx context.Context, commentID, postID uuid.UUID) (*domain.Comment, error)

	// ListCommentsByPost returns a page of a post's comments. An empty
	// total yields store.NoElementsError.
	ListCommentsByPost(ctx context.Context, postID uuid.UUID, req store.PageRequest) (*store.Page[*domain.Comment], error)

	// ListCommentsByEmail returns a page of comments left by the given
	// email address.
	ListCommentsByEmail(ctx context.Context, email string, req store.PageRequest) (*store.Page[*domain.Comment], error)

	// ListCommentsByName returns a page of comments left under the given
	// name.
	ListCommentsByName(ctx context.Context, name string, req store.PageRequest) (*store.Page[*domain.Comment], error)

	// CountCommentsByPost returns the number of comments under a post. A
	// zero count yields store.NoElementsError, same as an empty list; a
	// missing post yields the post's not-found error.
	CountCommentsByPost(ctx context.Context, postID uuid.UUID) (int64, error)

	// CountCommentsByEmail returns the number of comments left by the given
	// email address. A zero count yields store.NoElementsError.
	CountCommentsByEmail(ctx context.Context, email string) (int64, error)

	// CountCommentsByName returns the number of comments left under the
	// given name. A zero count yields store.NoElementsError.
	CountCommentsByName(ctx context.Context, name string) (int64, error)

	// UpdateComment applies a partial update to a comment scoped to its
	// post.
	UpdateComment(ctx context.Context, commentID, postID uuid.UUID, update CommentUpdate) (*domain.Comment, error)

	// DeleteComment removes a comment scoped to its post.
	DeleteComment(ctx context.Context, commentID, postID uuid.UUID) error

	// DeleteCommentsByPost removes every comment under a post and returns
	// the count.
	DeleteCommentsByPost(ctx context.Context, postID uuid.UUID) (int64, error)

	// DeleteCommentsByEmail removes every comment left by the given email
	// address and returns the count.
	DeleteCommentsByEmail(ctx context.Context, email string) (int64, error)

	// DeleteCommentsByName removes every comment left under the given name
	// and returns the count.
	DeleteCommentsByName(ctx context.Context, name string) (int64, error)
}

// commentServiceImpl implements the CommentService interface
type commentServiceImpl struct {
	comments store.CommentStore
	posts    store.PostStore
	logger   *slog.Logger
}

// NewCommentService creates a new CommentService.
// It returns an error if any of the required dependencies are nil.
func NewCommentService(comments store.CommentStore, posts store.PostStore, logger *slog.Logger) (CommentService, error) {
	if comments == nil {
		return nil, domain.NewValidationError("comments", "cannot be nil", domain.ErrValidation)
	}
	if posts == nil {
		return nil, domain.NewValidationError("posts", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &commentServiceImpl{
		comments: comments,
		posts:    posts,
		logger:   logger.With(slog.String("component", "comment_service")),
	}, nil
}

// CreateComment implements CommentService.CreateComment
func (s *commentServiceImpl) CreateComment(ctx context.Context, postID uuid.UUID, input CommentInput) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment, err := domain.NewComment(post.ID, input.Name, input.Email, input.Body)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.String("post_id", postID.String()))
		return nil, err
	}

	return comment, nil
}

// GetComment implements CommentService.GetComment
func (s *commentServiceImpl) GetComment(ctx context.Context, commentID, postID uuid.UUID) (*domain.Comment, error) {
	return s.comments.GetByIDAndPostID(ctx, commentID, postID)
}

// ListCommentsByPost implements CommentService.ListCommentsByPost
func (s *commentServiceImpl) ListCommentsByPost(ctx context.Context, postID uuid.UUID, req store.PageRequest) (*store.Page[*domain.Comment], error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	page, err := s.comments.ListByPostID(ctx, postID, req)
	if err != nil {
		return nil, err
	}
	if page.IsEmpty() {
		return nil, store.NewNoElementsError("comments")
	}
	return page, nil
}

// ListCommentsByEmail implements CommentService.ListCommentsByEmail
func (s *commentServiceImpl) ListCommentsByEmail(ctx context.Context, email string, req store.PageRequest) (*store.Page[*domain.Comment], error) {
	page, err := s.comments.ListByEmail(ctx, email, req)
	if err != nil {
		return nil, err
	}
	if page.IsEmpty() {
		return nil, store.NewNoElementsError("comments")
	}
	return page, nil
}

// ListCommentsByName implements CommentService.ListCommentsByName
func (s *commentServiceImpl) ListCommentsByName(ctx context.Context, name string, req store.PageRequest) (*store.Page[*domain.Comment], error) {
	page, err := s.comments.ListByName(ctx, name, req)
	if err != nil {
		return nil, err
	}
	if page.IsEmpty() {
		return nil, store.NewNoElementsError("comments")
	}
	return page, nil
}

// CountCommentsByPost implements CommentService.CountCommentsByPost
func (s *commentServiceImpl) CountCommentsByPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return 0, err
	}
	count, err := s.comments.CountByPostID(ctx, postID)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, store.NewNoElementsError("comments")
	}
	return count, nil
}

// CountCommentsByEmail implements CommentService.CountCommentsByEmail
func (s *commentServiceImpl) CountCommentsByEmail(ctx context.Context, email string) (int64, error) {
	count, err := s.comments.CountByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, store.NewNoElementsError("comments")
	}
	return count, nil
}

// CountCommentsByName implements CommentService.CountCommentsByName
func (s *commentServiceImpl) CountCommentsByName(ctx context.Context, name string) (int64, error) {
	count, err := s.comments.CountByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, store.NewNoElementsError("comments")
	}
	return count, nil
}

// UpdateComment implements CommentService.UpdateComment
func (s *commentServiceImpl) UpdateComment(ctx context.Context, commentID, postID uuid.UUID, update CommentUpdate) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update.IsZero() {
		return nil, ErrNothingToUpdate
	}

	comment, err := s.comments.GetByIDAndPostID(ctx, commentID, postID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		comment.Name = *update.Name
	}
	if update.Email != nil {
		comment.Email = *update.Email
	}
	if update.Body != nil {
		comment.Body = *update.Body
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	if err := s.comments.Update(ctx, comment); err != nil {
		log.Error("failed to update comment",
			slog.String("error", err.Error()),
			slog.String("comment_id", commentID.String()))
		return nil, err
	}

	return comment, nil
}

// DeleteComment implements CommentService.DeleteComment
func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID, postID uuid.UUID) error {
	return s.comments.Delete(ctx, commentID, postID)
}

// DeleteCommentsByPost implements CommentService.DeleteCommentsByPost
func (s *commentServiceImpl) DeleteCommentsByPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return 0, err
	}
	return s.comments.DeleteByPostID(ctx, postID)
}

// DeleteCommentsByEmail implements CommentService.DeleteCommentsByEmail
func (s *commentServiceImpl) DeleteCommentsByEmail(ctx context.Context, email string) (int64, error) {
	return s.comments.DeleteByEmail(ctx, email)
}

// DeleteCommentsByName implements CommentService.DeleteCommentsByName
func (s *commentServiceImpl) DeleteCommentsByName(ctx context.Context, name string) (int64, error) {
	return s.comments.DeleteByName(ctx, name)
}
