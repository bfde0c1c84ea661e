package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openblog/api/internal/domain"
	"github.com/openblog/api/internal/platform/logger"
	"github.com/openblog/api/internal/store"
)

// AuthorUpdate carries the fields of a partial author update. Nil fields
// are left untouched.
type AuthorUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// IsZero reports whether the update carries no fields.
func (u AuthorUpdate) IsZero() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil
}

// AuthorService provides author-related operations.
type AuthorService interface {
	// CreateAuthor persists a new author. A duplicate email yields
	// store.ErrEmailExists.
	CreateAuthor(ctx context.Context, firstName, lastName, email string) (*domain.Author, error)

	// GetAuthor retrieves an author by ID.
	GetAuthor(ctx context.Context, id uuid.UUID) (*domain.Author, error)

	// GetAuthorByEmail retrieves an author by email address.
	GetAuthorByEmail(ctx context.Context, email string) (*domain.Author, error)

	// GetAuthorByFirstName retrieves the first author matching the given
	// first name.
	GetAuthorByFirstName(ctx context.Context, firstName string) (*domain.Author, error)

	// GetAuthorByLastName retrieves the first author matching the given
	// last name.
	GetAuthorByLastName(ctx context.Context, lastName string) (*domain.Author, error)

	// AuthorExistsByEmail reports whether an author with the given email
	// exists.
	AuthorExistsByEmail(ctx context.Context, email string) (bool, error)

	// ListAuthors returns a page of authors. An empty total yields
	// store.NoElementsError.
	ListAuthors(ctx context.Context, req store.PageRequest) (*store.Page[*domain.Author], error)

	// CountAuthors returns the total number of authors. A zero count
	// yields store.NoElementsError, same as an empty list.
	CountAuthors(ctx context.Context) (int64, error)

	// UpdateAuthor applies a partial update and returns the updated author.
	UpdateAuthor(ctx context.Context, id uuid.UUID, update AuthorUpdate) (*domain.Author, error)

	// DeleteAuthor removes an author by ID.
	DeleteAuthor(ctx context.Context, id uuid.UUID) error
}

// authorServiceImpl implements the AuthorService interface
type authorServiceImpl struct {
	authors store.AuthorStore
	logger  *slog.Logger
}

// NewAuthorService creates a new AuthorService.
// It returns an error if any of the required dependencies are nil.
func NewAuthorService(authors store.AuthorStore, logger *slog.Logger) (AuthorService, error) {
	if authors == nil {
		return nil, domain.NewValidationError("authors", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &authorServiceImpl{
		authors: authors,
		logger:  logger.With(slog.String("component", "author_service")),
	}, nil
}

// CreateAuthor implements AuthorService.CreateAuthor
func (s *authorServiceImpl) CreateAuthor(ctx context.Context, firstName, lastName, email string) (*domain.Author, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	author, err := domain.NewAuthor(firstName, lastName, email)
	if err != nil {
		return nil, err
	}

	exists, err := s.authors.ExistsByEmail(ctx, author.Email)
	if err != nil {
		return nil, NewServiceError("create_author", "failed to check email", err)
	}
	if exists {
		return nil, store.ErrEmailExists
	}

	if err := s.authors.Create(ctx, author); err != nil {
		log.Error("failed to create author",
			slog.String("error", err.Error()),
			slog.String("email", author.Email))
		return nil, err
	}

	return author, nil
}

// GetAuthor implements AuthorService.GetAuthor
func (s *authorServiceImpl) GetAuthor(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	return s.authors.GetByID(ctx, id)
}

// GetAuthorByEmail implements AuthorService.GetAuthorByEmail
func (s *authorServiceImpl) GetAuthorByEmail(ctx context.Context, email string) (*domain.Author, error) {
	return s.authors.GetByEmail(ctx, email)
}

// GetAuthorByFirstName implements AuthorService.GetAuthorByFirstName
func (s *authorServiceImpl) GetAuthorByFirstName(ctx context.Context, firstName string) (*domain.Author, error) {
	return s.authors.GetByFirstName(ctx, firstName)
}

// GetAuthorByLastName implements AuthorService.GetAuthorByLastName
func (s *authorServiceImpl) GetAuthorByLastName(ctx context.Context, lastName string) (*domain.Author, error) {
	return s.authors.GetByLastName(ctx, lastName)
}

// AuthorExistsByEmail implements AuthorService.AuthorExistsByEmail
func (s *authorServiceImpl) AuthorExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.authors.ExistsByEmail(ctx, email)
}

// ListAuthors implements AuthorService.ListAuthors
func (s *authorServiceImpl) ListAuthors(ctx context.Context, req store.PageRequest) (*store.Page[*domain.Author], error) {
	page, err := s.authors.List(ctx, req)
	if err != nil {
		return nil, err
	}
	if page.IsEmpty() {
		return nil, store.NewNoElementsError("authors")
	}
	return page, nil
}

// CountAuthors implements AuthorService.CountAuthors
func (s *authorServiceImpl) CountAuthors(ctx context.Context) (int64, error) {
	count, err := s.authors.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, store.NewNoElementsError("authors")
	}
	return count, nil
}

// UpdateAuthor implements AuthorService.UpdateAuthor
// Only the supplied fields change; the rest keep their stored values.
func (s *authorServiceImpl) UpdateAuthor(ctx context.Context, id uuid.UUID, update AuthorUpdate) (*domain.Author, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update.IsZero() {
		return nil, ErrNothingToUpdate
	}

	author, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		author.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		author.LastName = *update.LastName
	}
	if update.Email != nil && *update.Email != author.Email {
		exists, err := s.authors.ExistsByEmail(ctx, *update.Email)
		if err != nil {
			return nil, NewServiceError("update_author", "failed to check email", err)
		}
		if exists {
			return nil, store.ErrEmailExists
		}
		author.Email = *update.Email
	}

	if err := author.Validate(); err != nil {
		return nil, err
	}

	if err := s.authors.Update(ctx, author); err != nil {
		log.Error("failed to update author",
			slog.String("error", err.Error()),
			slog.String("author_id", id.String()))
		return nil, err
	}

	return author, nil
}

// DeleteAuthor implements AuthorService.DeleteAuthor
func (s *authorServiceImpl) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	return s.authors.Delete(ctx, id)
}
