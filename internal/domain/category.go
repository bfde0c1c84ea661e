package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Category validation errors.
var (
	ErrEmptyCategoryID   = errors.New("category ID cannot be empty")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
)

// Category groups posts by topic. Names are unique across the system.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Posts       []*Post   `json:"-"` // Inverse side of the post/category association
}

// NewCategory creates a new Category with a generated ID.
// Returns an error if validation fails.
func NewCategory(name, description string) (*Category, error) {
	category := &Category{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCategoryID
	}
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	return nil
}

// Equal reports whether two categories denote the same topic, compared by
// the natural key (name, description) rather than by ID.
func (c *Category) Equal(other *Category) bool {
	if other == nil {
		return false
	}
	return c.Name == other.Name && c.Description == other.Description
}
