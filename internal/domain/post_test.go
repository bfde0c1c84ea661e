package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPost(t *testing.T) *Post {
	t.Helper()
	post, err := NewPost(
		"Go Concurrency Patterns",
		"A walkthrough of channel-based designs",
		"Content body goes here.")
	require.NoError(t, err)
	return post
}

func newTestAuthor(t *testing.T, email string) *Author {
	t.Helper()
	author, err := NewAuthor("Jane", "Doe", email)
	require.NoError(t, err)
	return author
}

func TestNewPost(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		post := newTestPost(t)
		assert.NotEqual(t, uuid.Nil, post.ID)
		assert.Empty(t, post.Authors)
		assert.Empty(t, post.Categories)
	})

	tests := []struct {
		name        string
		title       string
		description string
		content     string
		want        error
	}{
		{"empty title", "", "A walkthrough of channel-based designs", "body", ErrEmptyPostTitle},
		{"empty description", "Go Concurrency Patterns", "", "body", ErrEmptyPostDescription},
		{"blank content", "Go Concurrency Patterns", "A walkthrough of channel-based designs", "   ", ErrEmptyPostContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			post, err := NewPost(tc.title, tc.description, tc.content)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, post)
		})
	}
}

func TestPostAssertPublishable(t *testing.T) {
	t.Parallel()

	post := newTestPost(t)
	assert.ErrorIs(t, post.AssertPublishable(), ErrPostWithoutAuthors)

	post.AttachAuthor(newTestAuthor(t, "jane@example.com"))
	assert.ErrorIs(t, post.AssertPublishable(), ErrPostWithoutCategory)

	category, err := NewCategory("golang", "Go articles")
	require.NoError(t, err)
	post.AttachCategory(category)
	assert.NoError(t, post.AssertPublishable())
}

func TestPostAttachAuthor(t *testing.T) {
	t.Parallel()

	t.Run("links both sides", func(t *testing.T) {
		post := newTestPost(t)
		author := newTestAuthor(t, "jane@example.com")

		post.AttachAuthor(author)
		require.Len(t, post.Authors, 1)
		require.Len(t, author.Posts, 1)
		assert.Equal(t, post.ID, author.Posts[0].ID)
	})

	t.Run("attaching twice is a no-op", func(t *testing.T) {
		post := newTestPost(t)
		author := newTestAuthor(t, "jane@example.com")

		post.AttachAuthor(author)
		post.AttachAuthor(author)
		assert.Len(t, post.Authors, 1)
		assert.Len(t, author.Posts, 1)
	})

	t.Run("detach removes both sides", func(t *testing.T) {
		post := newTestPost(t)
		first := newTestAuthor(t, "jane@example.com")
		second := newTestAuthor(t, "john@example.com")

		post.AttachAuthor(first)
		post.AttachAuthor(second)
		post.DetachAuthor(first)

		require.Len(t, post.Authors, 1)
		assert.Equal(t, second.ID, post.Authors[0].ID)
		assert.Empty(t, first.Posts)
	})
}

func TestNewComment(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		postID := uuid.New()
		comment, err := NewComment(postID, "Reader", "reader@example.com", "Great article!")
		require.NoError(t, err)
		assert.Equal(t, postID, comment.PostID)
	})

	t.Run("requires an owning post", func(t *testing.T) {
		comment, err := NewComment(uuid.Nil, "Reader", "reader@example.com", "Great article!")
		assert.ErrorIs(t, err, ErrCommentWithoutPost)
		assert.Nil(t, comment)
	})
}
