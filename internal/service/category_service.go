package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openblog/api/internal/domain"
	"github.com/openblog/api/internal/platform/logger"
	"github.com/openblog/api/internal/store"
)

// CategoryUpdate carries the fields of a partial category update. Nil
// fields are left untouched.
type CategoryUpdate struct {
	Name        *string
	Description *string
}

// IsZero reports whether the update carries no fields.
func (u CategoryUpdate) IsZero() bool {
	return u.Name == nil && u.Description == nil
}

// CategoryService provides category-related operations.
type CategoryService interface {
	// CreateCategory persists a new category. A duplicate name yields
	// store.ErrCategoryNameExists.
	CreateCategory(ctx context.Context, name, description string) (*domain.Category, error)

	// GetCategory retrieves a category by ID.
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// GetCategoryByName retrieves a category by name.
	GetCategoryByName(ctx context.Context, name string) (*domain.Category, error)

	// CategoryExistsByName reports whether a category with the given name
	// exists.
	CategoryExistsByName(ctx context.Context, name string) (bool, error)

	// ListCategories returns a page of categories. An empty total yields
	// store.NoElementsError.
	ListCategories(ctx context.Context, req store.PageRequest) (*store.Page[*domain.Category], error)

	// CountCategories returns the total number of categories. A zero count
	// yields store.NoElementsError, same as an empty list.
	CountCategories(ctx context.Context) (int64, error)

	// UpdateCategory applies a partial update and returns the updated
	// category.
	UpdateCategory(ctx context.Context, id uuid.UUID, update CategoryUpdate) (*domain.Category, error)

	// DeleteCategory removes a category by ID.
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// DeleteAllCategories removes every category and returns the count.
	DeleteAllCategories(ctx context.Context) (int64, error)
}

// categoryServiceImpl implements the CategoryService interface
type categoryServiceImpl struct {
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewCategoryService creates a new CategoryService.
// It returns an error if any of the required dependencies are nil.
func NewCategoryService(categories store.CategoryStore, logger *slog.Logger) (CategoryService, error) {
	if categories == nil {
		return nil, domain.NewValidationError("categories", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &categoryServiceImpl{
		categories: categories,
		logger:     logger.With(slog.String("component", "category_service")),
	}, nil
}

// CreateCategory implements CategoryService.CreateCategory
func (s *categoryServiceImpl) CreateCategory(ctx context.Context, name, description string) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	category, err := domain.NewCategory(name, description)
	if err != nil {
		return nil, err
	}

	exists, err := s.categories.ExistsByName(ctx, category.Name)
	if err != nil {
		return nil, NewServiceError("create_category", "failed to check name", err)
	}
	if exists {
		return nil, store.ErrCategoryNameExists
	}

	if err := s.categories.Create(ctx, category); err != nil {
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("name", category.Name))
		return nil, err
	}

	return category, nil
}

// GetCategory implements CategoryService.GetCategory
func (s *categoryServiceImpl) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// GetCategoryByName implements CategoryService.GetCategoryByName
func (s *categoryServiceImpl) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	return s.categories.GetByName(ctx, name)
}

// CategoryExistsByName implements CategoryService.CategoryExistsByName
func (s *categoryServiceImpl) CategoryExistsByName(ctx context.Context, name string) (bool, error) {
	return s.categories.ExistsByName(ctx, name)
}

// ListCategories implements CategoryService.ListCategories
func (s *categoryServiceImpl) ListCategories(ctx context.Context, req store.PageRequest) (*store.Page[*domain.Category], error) {
	page, err := s.categories.List(ctx, req)
	if err != nil {
		return nil, err
	}
	if page.IsEmpty() {
		return nil, store.NewNoElementsError("categories")
	}
	return page, nil
}

// CountCategories implements CategoryService.CountCategories
func (s *categoryServiceImpl) CountCategories(ctx context.Context) (int64, error) {
	count, err := s.categories.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, store.NewNoElementsError("categories")
	}
	return count, nil
}

// UpdateCategory implements CategoryService.UpdateCategory
func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, id uuid.UUID, update CategoryUpdate) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update.IsZero() {
		return nil, ErrNothingToUpdate
	}

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil && *update.Name != category.Name {
		exists, err := s.categories.ExistsByName(ctx, *update.Name)
		if err != nil {
			return nil, NewServiceError("update_category", "failed to check name", err)
		}
		if exists {
			return nil, store.ErrCategoryNameExists
		}
		category.Name = *update.Name
	}
	if update.Description != nil {
		category.Description = *update.Description
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categories.Update(ctx, category); err != nil {
		log.Error("failed to update category",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return nil, err
	}

	return category, nil
}

// DeleteCategory implements CategoryService.DeleteCategory
func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.categories.Delete(ctx, id)
}

// DeleteAllCategories implements CategoryService.DeleteAllCategories
func (s *categoryServiceImpl) DeleteAllCategories(ctx context.Context) (int64, error) {
	return s.categories.DeleteAll(ctx)
}
