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

func TestNewAuthorService(t *testing.T) {
	t.Parallel()

	t.Run("nil authors store", func(t *testing.T) {
		svc, err := NewAuthorService(nil, slog.Default())
		assert.Error(t, err)
		assert.Nil(t, svc)
		assert.Contains(t, err.Error(), "authors")
	})

	t.Run("nil logger uses default", func(t *testing.T) {
		svc, err := NewAuthorService(&MockAuthorStore{}, nil)
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestCreateAuthor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		authors := &MockAuthorStore{}
		authors.On("ExistsByEmail", ctx, "jane@example.com").Return(false, nil)
		authors.On("Create", ctx, mock.AnythingOfType("*domain.Author")).Return(nil)

		svc, err := NewAuthorService(authors, slog.Default())
		require.NoError(t, err)

		author, err := svc.CreateAuthor(ctx, "Jane", "Doe", "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Jane", author.FirstName)
		assert.Equal(t, "Doe", author.LastName)
		assert.NotEqual(t, uuid.Nil, author.ID)
		authors.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		authors := &MockAuthorStore{}
		authors.On("ExistsByEmail", ctx, "jane@example.com").Return(true, nil)

		svc, err := NewAuthorService(authors, slog.Default())
		require.NoError(t, err)

		author, err := svc.CreateAuthor(ctx, "Jane", "Doe", "jane@example.com")
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.Nil(t, author)
		authors.AssertNotCalled(t, "Create")
	})

	t.Run("invalid email rejected before any store call", func(t *testing.T) {
		authors := &MockAuthorStore{}

		svc, err := NewAuthorService(authors, slog.Default())
		require.NoError(t, err)

		author, err := svc.CreateAuthor(ctx, "Jane", "Doe", "not-an-email")
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
		assert.Nil(t, author)
		authors.AssertNotCalled(t, "ExistsByEmail")
	})
}

func TestListAuthors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	req, err := store.NewPageRequest(0, 10, "id", "asc")
	require.NoError(t, err)

	t.Run("empty result is an error", func(t *testing.T) {
		authors := &MockAuthorStore{}
		authors.On("List", ctx, req).
			Return(store.NewPage([]*domain.Author{}, 0, req), nil)

		svc, err := NewAuthorService(authors, slog.Default())
		require.NoError(t, err)

		page, err := svc.ListAuthors(ctx, req)
		assert.ErrorIs(t, err, store.ErrNoElements)
		assert.Nil(t, page)
	})

	t.Run("non-empty page passes through", func(t *testing.T) {
		author, err := domain.NewAuthor("Jane", "Doe", "jane@example.com")
		require.NoError(t, err)

		authors := &MockAuthorStore{}
		authors.On("List", ctx, req).
			Return(store.NewPage([]*domain.Author{author}, 1, req), nil)

		svc, err := NewAuthorService(authors, slog.Default())
		require.NoError(t, err)

		page, err := svc.ListAuthors(ctx, req)
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.True(t, page.IsLast())
	})
}

func TestUpdateAuthor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	existing := func(t *testing.T) *domain.Author {
		t.Helper()
		author, err := domain.NewAuthor("Jane", "Doe", "jane@example.com")
		require.NoError(t, err)
		return author
	}

	t.Run("empty update rejected", func(t *testing.T) {
		svc, err := NewAuthorService(&MockAuthorStore{}, slog.Default())
		require.NoError(t, err)

		author, err := svc.UpdateAuthor(ctx, uuid.New(), AuthorUpdate{})
		assert.ErrorIs(t, err, ErrNothingToUpdate)
		assert.Nil(t, author)
	})

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		author := existing(t)
		authors := &MockAuthorStore{}
		authors.On("GetByID", ctx, author.ID).Return(author, nil)
		authors.On("Update", ctx, author).Return(nil)

		svc, err := NewAuthorService(authors, slog.Default())
		require.NoError(t, err)

		lastName := "Smith"
		updated, err := svc.UpdateAuthor(ctx, author.ID, AuthorUpdate{LastName: &lastName})
		require.NoError(t, err)
		assert.Equal(t, "Jane", updated.FirstName)
		assert.Equal(t, "Smith", updated.LastName)
		assert.Equal(t, "jane@example.com", updated.Email)
	})

	t.Run("email change to a taken address rejected", func(t *testing.T) {
		author := existing(t)
		authors := &MockAuthorStore{}
		authors.On("GetByID", ctx, author.ID).Return(author, nil)
		authors.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil)

		svc, err := NewAuthorService(authors, slog.Default())
		require.NoError(t, err)

		email := "taken@example.com"
		updated, err := svc.UpdateAuthor(ctx, author.ID, AuthorUpdate{Email: &email})
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.Nil(t, updated)
		authors.AssertNotCalled(t, "Update")
	})

	t.Run("unknown author", func(t *testing.T) {
		id := uuid.New()
		authors := &MockAuthorStore{}
		authors.On("GetByID", ctx, id).
			Return(nil, store.NewNotFoundError(store.ErrAuthorNotFound, "author", map[string]string{"id": id.String()}))

		svc, err := NewAuthorService(authors, slog.Default())
		require.NoError(t, err)

		firstName := "Janet"
		updated, err := svc.UpdateAuthor(ctx, id, AuthorUpdate{FirstName: &firstName})
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.Nil(t, updated)
	})
}

func TestCountAuthors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("zero count is an error", func(t *testing.T) {
		authors := &MockAuthorStore{}
		authors.On("Count", ctx).Return(int64(0), nil)

		svc, err := NewAuthorService(authors, slog.Default())
		require.NoError(t, err)

		count, err := svc.CountAuthors(ctx)
		assert.ErrorIs(t, err, store.ErrNoElements)
		assert.Zero(t, count)
	})

	t.Run("non-zero count passes through", func(t *testing.T) {
		authors := &MockAuthorStore{}
		authors.On("Count", ctx).Return(int64(5), nil)

		svc, err := NewAuthorService(authors, slog.Default())
		require.NoError(t, err)

		count, err := svc.CountAuthors(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
	})
}
