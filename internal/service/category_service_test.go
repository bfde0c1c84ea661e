package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openblog/api/internal/store"
)

func TestCreateCategory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		categories := &MockCategoryStore{}
		categories.On("ExistsByName", ctx, "golang").Return(false, nil)
		categories.On("Create", ctx, mock.AnythingOfType("*domain.Category")).Return(nil)

		svc, err := NewCategoryService(categories, slog.Default())
		require.NoError(t, err)

		category, err := svc.CreateCategory(ctx, "golang", "Go articles")
		require.NoError(t, err)
		assert.Equal(t, "golang", category.Name)
		categories.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		categories := &MockCategoryStore{}
		categories.On("ExistsByName", ctx, "golang").Return(true, nil)

		svc, err := NewCategoryService(categories, slog.Default())
		require.NoError(t, err)

		category, err := svc.CreateCategory(ctx, "golang", "Go articles")
		assert.ErrorIs(t, err, store.ErrCategoryNameExists)
		assert.Nil(t, category)
		categories.AssertNotCalled(t, "Create")
	})
}

func TestDeleteAllCategories(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	categories := &MockCategoryStore{}
	categories.On("DeleteAll", ctx).Return(int64(7), nil)

	svc, err := NewCategoryService(categories, slog.Default())
	require.NoError(t, err)

	count, err := svc.DeleteAllCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestCountCategories(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("zero count is an error", func(t *testing.T) {
		categories := &MockCategoryStore{}
		categories.On("Count", ctx).Return(int64(0), nil)

		svc, err := NewCategoryService(categories, slog.Default())
		require.NoError(t, err)

		count, err := svc.CountCategories(ctx)
		assert.ErrorIs(t, err, store.ErrNoElements)
		assert.Zero(t, count)
	})

	t.Run("non-zero count passes through", func(t *testing.T) {
		categories := &MockCategoryStore{}
		categories.On("Count", ctx).Return(int64(3), nil)

		svc, err := NewCategoryService(categories, slog.Default())
		require.NoError(t, err)

		count, err := svc.CountCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}
