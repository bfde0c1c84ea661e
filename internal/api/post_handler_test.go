package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openblog/api/internal/domain"
	"github.com/openblog/api/internal/service"
	"github.com/openblog/api/internal/store"
)

func newPostRouter(svc *MockPostService) http.Handler {
	h := NewPostHandler(svc)
	r := chi.NewRouter()
	r.Post("/api/posts", h.Create)
	r.Get("/api/posts", h.List)
	r.Get("/api/posts/author/email/{email}", h.ListByAuthorEmail)
	r.Get("/api/posts/author/name/{firstName}/{lastName}", h.ListByAuthorFullName)
	r.Get("/api/posts/category/name/{name}", h.ListByCategoryName)
	r.Get("/api/posts/count", h.Count)
	r.Get("/api/posts/{id}", h.GetByID)
	r.Delete("/api/posts", h.DeleteAll)
	r.Delete("/api/posts/category/name/{name}", h.DeleteByCategoryName)
	r.Delete("/api/posts/{postId}/author/{authorId}", h.DeleteAuthorPost)
	return r
}

func mustPost(t *testing.T) *domain.Post {
	t.Helper()
	post, err := domain.NewPost(
		"Go Concurrency Patterns",
		"A walkthrough of channel-based designs",
		"Content body goes here.")
	require.NoError(t, err)
	author, err := domain.NewAuthor("Jane", "Doe", "jane@example.com")
	require.NoError(t, err)
	category, err := domain.NewCategory("golang", "Go articles")
	require.NoError(t, err)
	post.AttachAuthor(author)
	post.AttachCategory(category)
	return post
}

func defaultPostPage(t *testing.T, posts ...*domain.Post) *store.Page[*domain.Post] {
	t.Helper()
	req, err := store.NewPageRequest(0, 10, "id", "asc")
	require.NoError(t, err)
	return store.NewPage(posts, int64(len(posts)), req)
}

func TestPostHandler_Create(t *testing.T) {
	t.Parallel()

	body := `{
		"title": "Go Concurrency Patterns",
		"description": "A walkthrough of channel-based designs",
		"content": "Content body goes here.",
		"authorEmails": ["jane@example.com"],
		"categoryNames": ["golang"]
	}`

	t.Run("created with associations", func(t *testing.T) {
		post := mustPost(t)
		svc := &MockPostService{}
		svc.On("CreatePost", mock.Anything, service.PostInput{
			Title:         "Go Concurrency Patterns",
			Description:   "A walkthrough of channel-based designs",
			Content:       "Content body goes here.",
			AuthorEmails:  []string{"jane@example.com"},
			CategoryNames: []string{"golang"},
		}).Return(post, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		newPostRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp PostResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, post.ID, resp.ID)
		require.Len(t, resp.Authors, 1)
		require.Len(t, resp.Categories, 1)
		assert.Equal(t, "jane@example.com", resp.Authors[0].Email)
		assert.Equal(t, "golang", resp.Categories[0].Name)
	})

	t.Run("missing category list rejected by request validation", func(t *testing.T) {
		svc := &MockPostService{}

		incomplete := `{
			"title": "Go Concurrency Patterns",
			"description": "A walkthrough of channel-based designs",
			"content": "Content body goes here.",
			"authorEmails": ["jane@example.com"]
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewBufferString(incomplete))
		rec := httptest.NewRecorder()
		newPostRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "CreatePost")
	})

	t.Run("unresolved author reference is a bad request", func(t *testing.T) {
		svc := &MockPostService{}
		svc.On("CreatePost", mock.Anything, mock.AnythingOfType("service.PostInput")).
			Return(nil, service.ErrUnresolvedReference)

		req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		newPostRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate title maps to conflict", func(t *testing.T) {
		svc := &MockPostService{}
		svc.On("CreatePost", mock.Anything, mock.AnythingOfType("service.PostInput")).
			Return(nil, store.ErrTitleExists)

		req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		newPostRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestPostHandler_ListFilters(t *testing.T) {
	t.Parallel()

	t.Run("author email filter from the path", func(t *testing.T) {
		post := mustPost(t)
		svc := &MockPostService{}
		svc.On("ListPosts", mock.Anything,
			store.PostFilter{AuthorEmail: "jane@example.com"},
			mock.AnythingOfType("store.PageRequest")).
			Return(defaultPostPage(t, post), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/posts/author/email/jane@example.com", nil)
		rec := httptest.NewRecorder()
		newPostRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp PostPageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.TotalPostsOnPage)
	})

	t.Run("full name filter carries both parts", func(t *testing.T) {
		post := mustPost(t)
		svc := &MockPostService{}
		svc.On("ListPosts", mock.Anything,
			store.PostFilter{AuthorFirstName: "Jane", AuthorLastName: "Doe"},
			mock.AnythingOfType("store.PageRequest")).
			Return(defaultPostPage(t, post), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/posts/author/name/Jane/Doe", nil)
		rec := httptest.NewRecorder()
		newPostRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("category with no posts is a 404", func(t *testing.T) {
		svc := &MockPostService{}
		svc.On("ListPosts", mock.Anything,
			store.PostFilter{CategoryName: "empty-category"},
			mock.AnythingOfType("store.PageRequest")).
			Return(nil, store.NewNoElementsError("posts"))

		req := httptest.NewRequest(http.MethodGet, "/api/posts/category/name/empty-category", nil)
		rec := httptest.NewRecorder()
		newPostRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid sort field is a bad request", func(t *testing.T) {
		svc := &MockPostService{}
		svc.On("ListPosts", mock.Anything, store.PostFilter{},
			mock.AnythingOfType("store.PageRequest")).
			Return(nil, store.ErrInvalidSortField)

		req := httptest.NewRequest(http.MethodGet, "/api/posts?sortBy=secret", nil)
		rec := httptest.NewRecorder()
		newPostRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPostHandler_Count(t *testing.T) {
	t.Parallel()

	t.Run("non-zero count", func(t *testing.T) {
		svc := &MockPostService{}
		svc.On("CountPosts", mock.Anything, store.PostFilter{}).Return(int64(42), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/posts/count", nil)
		rec := httptest.NewRecorder()
		newPostRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp CountResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(42), resp.Count)
	})

	t.Run("empty table is 404", func(t *testing.T) {
		svc := &MockPostService{}
		svc.On("CountPosts", mock.Anything, store.PostFilter{}).
			Return(int64(0), store.NewNoElementsError("posts"))

		req := httptest.NewRequest(http.MethodGet, "/api/posts/count", nil)
		rec := httptest.NewRecorder()
		newPostRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPostHandler_BulkDelete(t *testing.T) {
	t.Parallel()

	t.Run("delete all reports the count", func(t *testing.T) {
		svc := &MockPostService{}
		svc.On("DeletePostsMatching", mock.Anything, store.PostFilter{}).Return(int64(5), nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/posts", nil)
		rec := httptest.NewRecorder()
		newPostRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "deleted 5 posts", resp.Message)
	})

	t.Run("delete by category name", func(t *testing.T) {
		svc := &MockPostService{}
		svc.On("DeletePostsMatching", mock.Anything,
			store.PostFilter{CategoryName: "golang"}).Return(int64(2), nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/posts/category/name/golang", nil)
		rec := httptest.NewRecorder()
		newPostRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPostHandler_DeleteAuthorPost(t *testing.T) {
	t.Parallel()

	t.Run("removes the post for its author", func(t *testing.T) {
		authorID := uuid.New()
		postID := uuid.New()
		svc := &MockPostService{}
		svc.On("DeleteAuthorPost", mock.Anything, authorID, postID).Return(nil)

		req := httptest.NewRequest(http.MethodDelete,
			"/api/posts/"+postID.String()+"/author/"+authorID.String(), nil)
		rec := httptest.NewRecorder()
		newPostRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("post not owned by the author is a 404", func(t *testing.T) {
		authorID := uuid.New()
		postID := uuid.New()
		svc := &MockPostService{}
		svc.On("DeleteAuthorPost", mock.Anything, authorID, postID).
			Return(store.NewNotFoundError(store.ErrPostNotFound, "post",
				map[string]string{"id": postID.String(), "authorId": authorID.String()}))

		req := httptest.NewRequest(http.MethodDelete,
			"/api/posts/"+postID.String()+"/author/"+authorID.String(), nil)
		rec := httptest.NewRecorder()
		newPostRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
