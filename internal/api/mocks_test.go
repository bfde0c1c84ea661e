package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/openblog/api/internal/domain"
	"github.com/openblog/api/internal/service"
	"github.com/openblog/api/internal/store"
)

// MockAuthorService mocks the service.AuthorService interface
type MockAuthorService struct {
	mock.Mock
}

func (m *MockAuthorService) CreateAuthor(
	ctx context.Context,
	firstName, lastName, email string,
) (*domain.Author, error) {
	args := m.Called(ctx, firstName, lastName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Author), args.Error(1)
}

func (m *MockAuthorService) GetAuthor(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Author), args.Error(1)
}

func (m *MockAuthorService) GetAuthorByEmail(
	ctx context.Context,
	email string,
) (*domain.Author, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Author), args.Error(1)
}

func (m *MockAuthorService) GetAuthorByFirstName(
	ctx context.Context,
	firstName string,
) (*domain.Author, error) {
	args := m.Called(ctx, firstName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Author), args.Error(1)
}

func (m *MockAuthorService) GetAuthorByLastName(
	ctx context.Context,
	lastName string,
) (*domain.Author, error) {
	args := m.Called(ctx, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Author), args.Error(1)
}

func (m *MockAuthorService) AuthorExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthorService) ListAuthors(
	ctx context.Context,
	req store.PageRequest,
) (*store.Page[*domain.Author], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Page[*domain.Author]), args.Error(1)
}

func (m *MockAuthorService) CountAuthors(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthorService) UpdateAuthor(
	ctx context.Context,
	id uuid.UUID,
	update service.AuthorUpdate,
) (*domain.Author, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Author), args.Error(1)
}

func (m *MockAuthorService) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuthService mocks the service.AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(
	ctx context.Context,
	input service.SignupInput,
) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(
	ctx context.Context,
	usernameOrEmail, password string,
) (*service.TokenResult, error) {
	args := m.Called(ctx, usernameOrEmail, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenResult), args.Error(1)
}

func (m *MockAuthService) LoadPrincipal(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockPostService mocks the service.PostService interface
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(
	ctx context.Context,
	input service.PostInput,
) (*domain.Post, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostService) GetPostByTitle(ctx context.Context, title string) (*domain.Post, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostService) ListPosts(
	ctx context.Context,
	filter store.PostFilter,
	req store.PageRequest,
) (*store.Page[*domain.Post], error) {
	args := m.Called(ctx, filter, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Page[*domain.Post]), args.Error(1)
}

func (m *MockPostService) CountPosts(
	ctx context.Context,
	filter store.PostFilter,
) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostService) UpdatePost(
	ctx context.Context,
	id uuid.UUID,
	update service.PostUpdate,
) (*domain.Post, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostService) DeletePostsMatching(
	ctx context.Context,
	filter store.PostFilter,
) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostService) DeleteAuthorPost(
	ctx context.Context,
	authorID, postID uuid.UUID,
) error {
	args := m.Called(ctx, authorID, postID)
	return args.Error(0)
}
