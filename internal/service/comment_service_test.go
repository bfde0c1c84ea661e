package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openblog/api/internal/domain"
	"github.com/openblog/api/internal/store"
)

func newCommentServiceForTest(
	t *testing.T,
	comments *MockCommentStore,
	posts *MockPostStore,
) CommentService {
	t.Helper()
	svc, err := NewCommentService(comments, posts, slog.Default())
	require.NoError(t, err)
	return svc
}

func TestCreateComment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	input := CommentInput{
		Name:  "Reader",
		Email: "reader@example.com",
		Body:  "Great article, thank you!",
	}

	t.Run("success", func(t *testing.T) {
		post := mustNewPublishablePost(t)
		comments := &MockCommentStore{}
		comments.On("Create", ctx, mock.AnythingOfType("*domain.Comment")).Return(nil)
		posts := &MockPostStore{}
		posts.On("GetByID", ctx, post.ID).Return(post, nil)

		svc := newCommentServiceForTest(t, comments, posts)

		comment, err := svc.CreateComment(ctx, post.ID, input)
		require.NoError(t, err)
		assert.Equal(t, post.ID, comment.PostID)
		assert.Equal(t, "Reader", comment.Name)
		comments.AssertExpectations(t)
	})

	t.Run("missing post fails before the comment is written", func(t *testing.T) {
		postID := uuid.New()
		comments := &MockCommentStore{}
		posts := &MockPostStore{}
		posts.On("GetByID", ctx, postID).
			Return(nil, store.NewNotFoundError(store.ErrPostNotFound, "post",
				map[string]string{"id": postID.String()}))

		svc := newCommentServiceForTest(t, comments, posts)

		comment, err := svc.CreateComment(ctx, postID, input)
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.Nil(t, comment)
		comments.AssertNotCalled(t, "Create")
	})
}

func TestListCommentsByPost(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	req, err := store.NewPageRequest(0, 5, "id", "asc")
	require.NoError(t, err)

	t.Run("post without comments is an error", func(t *testing.T) {
		post := mustNewPublishablePost(t)
		comments := &MockCommentStore{}
		comments.On("ListByPostID", ctx, post.ID, req).
			Return(store.NewPage([]*domain.Comment{}, 0, req), nil)
		posts := &MockPostStore{}
		posts.On("GetByID", ctx, post.ID).Return(post, nil)

		svc := newCommentServiceForTest(t, comments, posts)

		page, err := svc.ListCommentsByPost(ctx, post.ID, req)
		assert.ErrorIs(t, err, store.ErrNoElements)
		assert.Nil(t, page)
	})

	t.Run("missing post is not found, not no-elements", func(t *testing.T) {
		postID := uuid.New()
		comments := &MockCommentStore{}
		posts := &MockPostStore{}
		posts.On("GetByID", ctx, postID).
			Return(nil, store.NewNotFoundError(store.ErrPostNotFound, "post",
				map[string]string{"id": postID.String()}))

		svc := newCommentServiceForTest(t, comments, posts)

		page, err := svc.ListCommentsByPost(ctx, postID, req)
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.NotErrorIs(t, err, store.ErrNoElements)
		assert.Nil(t, page)
		comments.AssertNotCalled(t, "ListByPostID")
	})
}

func TestUpdateComment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty update rejected", func(t *testing.T) {
		svc := newCommentServiceForTest(t, &MockCommentStore{}, &MockPostStore{})

		comment, err := svc.UpdateComment(ctx, uuid.New(), uuid.New(), CommentUpdate{})
		assert.ErrorIs(t, err, ErrNothingToUpdate)
		assert.Nil(t, comment)
	})

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		existing, err := domain.NewComment(uuid.New(), "Reader", "reader@example.com", "Great article, thank you!")
		require.NoError(t, err)

		comments := &MockCommentStore{}
		comments.On("GetByIDAndPostID", ctx, existing.ID, existing.PostID).Return(existing, nil)
		comments.On("Update", ctx, existing).Return(nil)

		svc := newCommentServiceForTest(t, comments, &MockPostStore{})

		body := "Edited: still a great article."
		updated, err := svc.UpdateComment(ctx, existing.ID, existing.PostID, CommentUpdate{Body: &body})
		require.NoError(t, err)
		assert.Equal(t, "Reader", updated.Name)
		assert.Equal(t, body, updated.Body)
	})
}

func TestDeleteCommentsByPost(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns the removed count", func(t *testing.T) {
		post := mustNewPublishablePost(t)
		comments := &MockCommentStore{}
		comments.On("DeleteByPostID", ctx, post.ID).Return(int64(3), nil)
		posts := &MockPostStore{}
		posts.On("GetByID", ctx, post.ID).Return(post, nil)

		svc := newCommentServiceForTest(t, comments, posts)

		count, err := svc.DeleteCommentsByPost(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("missing post", func(t *testing.T) {
		postID := uuid.New()
		comments := &MockCommentStore{}
		posts := &MockPostStore{}
		posts.On("GetByID", ctx, postID).
			Return(nil, store.NewNotFoundError(store.ErrPostNotFound, "post",
				map[string]string{"id": postID.String()}))

		svc := newCommentServiceForTest(t, comments, posts)

		count, err := svc.DeleteCommentsByPost(ctx, postID)
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.Zero(t, count)
		comments.AssertNotCalled(t, "DeleteByPostID")
	})
}

func TestCountCommentsByPost(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("zero count is an error", func(t *testing.T) {
		post := mustNewPublishablePost(t)
		comments := &MockCommentStore{}
		comments.On("CountByPostID", ctx, post.ID).Return(int64(0), nil)
		posts := &MockPostStore{}
		posts.On("GetByID", ctx, post.ID).Return(post, nil)

		svc := newCommentServiceForTest(t, comments, posts)

		count, err := svc.CountCommentsByPost(ctx, post.ID)
		assert.ErrorIs(t, err, store.ErrNoElements)
		assert.Zero(t, count)
	})

	t.Run("missing post is not-found, not no-elements", func(t *testing.T) {
		postID := uuid.New()
		comments := &MockCommentStore{}
		posts := &MockPostStore{}
		posts.On("GetByID", ctx, postID).
			Return(nil, store.NewNotFoundError(store.ErrPostNotFound, "post",
				map[string]string{"id": postID.String()}))

		svc := newCommentServiceForTest(t, comments, posts)

		count, err := svc.CountCommentsByPost(ctx, postID)
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.NotErrorIs(t, err, store.ErrNoElements)
		assert.Zero(t, count)
		comments.AssertNotCalled(t, "CountByPostID")
	})

	t.Run("non-zero count passes through", func(t *testing.T) {
		post := mustNewPublishablePost(t)
		comments := &MockCommentStore{}
		comments.On("CountByPostID", ctx, post.ID).Return(int64(4), nil)
		posts := &MockPostStore{}
		posts.On("GetByID", ctx, post.ID).Return(post, nil)

		svc := newCommentServiceForTest(t, comments, posts)

		count, err := svc.CountCommentsByPost(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})
}

func TestCountCommentsByEmailAndName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("by email", func(t *testing.T) {
		comments := &MockCommentStore{}
		comments.On("CountByEmail", ctx, "reader@example.com").Return(int64(2), nil)

		svc := newCommentServiceForTest(t, comments, &MockPostStore{})

		count, err := svc.CountCommentsByEmail(ctx, "reader@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("by name with zero count", func(t *testing.T) {
		comments := &MockCommentStore{}
		comments.On("CountByName", ctx, "Reader").Return(int64(0), nil)

		svc := newCommentServiceForTest(t, comments, &MockPostStore{})

		count, err := svc.CountCommentsByName(ctx, "Reader")
		assert.ErrorIs(t, err, store.ErrNoElements)
		assert.Zero(t, count)
	})
}
