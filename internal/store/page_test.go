package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  SortDirection
	}{
		{"asc", SortAsc},
		{"ASC", SortAsc},
		{"desc", SortDesc},
		{"DESC", SortDesc},
		{"Desc", SortDesc},
		{"", SortAsc},
		{"sideways", SortAsc},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseSortDirection(tt.input))
		})
	}
}

func TestNewPageRequest(t *testing.T) {
	t.Parallel()

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()
		req, err := NewPageRequest(2, 10, "title", "desc")
		require.NoError(t, err)
		assert.Equal(t, 2, req.PageNo)
		assert.Equal(t, 10, req.PageSize)
		assert.Equal(t, "title", req.SortBy)
		assert.Equal(t, SortDesc, req.SortDir)
		assert.Equal(t, 20, req.Offset())
	})

	t.Run("blank sort field defaults to id", func(t *testing.T) {
		t.Parallel()
		req, err := NewPageRequest(0, 5, "  ", "asc")
		require.NoError(t, err)
		assert.Equal(t, "id", req.SortBy)
	})

	t.Run("negative page number rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewPageRequest(-1, 10, "id", "asc")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEntity)
	})

	t.Run("zero page size rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewPageRequest(0, 0, "id", "asc")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEntity)
	})
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	req, err := NewPageRequest(0, 10, "id", "asc")
	require.NoError(t, err)

	t.Run("partial last page", func(t *testing.T) {
		t.Parallel()
		page := NewPage([]int{1, 2, 3}, 23, req)
		assert.Equal(t, int64(23), page.TotalElements)
		assert.Equal(t, 3, page.TotalPages)
		assert.False(t, page.IsLast())
		assert.False(t, page.IsEmpty())
	})

	t.Run("exact page boundary", func(t *testing.T) {
		t.Parallel()
		page := NewPage([]int{1, 2}, 20, req)
		assert.Equal(t, 2, page.TotalPages)
		assert.False(t, page.IsLast())
	})

	t.Run("last page", func(t *testing.T) {
		t.Parallel()
		lastReq, err := NewPageRequest(2, 10, "id", "asc")
		require.NoError(t, err)
		page := NewPage([]int{1, 2, 3}, 23, lastReq)
		assert.True(t, page.IsLast())
	})

	t.Run("page past the end of a non-empty set", func(t *testing.T) {
		t.Parallel()
		farReq, err := NewPageRequest(9, 10, "id", "asc")
		require.NoError(t, err)
		page := NewPage([]int{}, 23, farReq)
		assert.Empty(t, page.Items)
		assert.True(t, page.IsLast())
		assert.False(t, page.IsEmpty())
	})

	t.Run("empty result set", func(t *testing.T) {
		t.Parallel()
		page := NewPage([]int{}, 0, req)
		assert.True(t, page.IsEmpty())
		assert.Equal(t, 0, page.TotalPages)
	})
}
