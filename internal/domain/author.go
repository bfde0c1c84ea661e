package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Author validation errors.
var (
	ErrEmptyAuthorID        = errors.New("author ID cannot be empty")
	ErrEmptyAuthorFirstName = errors.New("author first name cannot be empty")
	ErrEmptyAuthorLastName  = errors.New("author last name cannot be empty")
	ErrEmptyAuthorEmail     = errors.New("author email cannot be empty")
)

// Author represents a person who writes posts. An author can contribute to
// many posts and a post can have several authors.
type Author struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Posts     []*Post   `json:"-"` // Inverse side of the post/author association
}

// NewAuthor creates a new Author with a generated ID.
// Returns an error if validation fails.
func NewAuthor(firstName, lastName, email string) (*Author, error) {
	author := &Author{
		ID:        uuid.New(),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.TrimSpace(email),
	}

	if err := author.Validate(); err != nil {
		return nil, err
	}

	return author, nil
}

// Validate checks if the Author has valid data.
func (a *Author) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAuthorID
	}
	if a.FirstName == "" {
		return ErrEmptyAuthorFirstName
	}
	if a.LastName == "" {
		return ErrEmptyAuthorLastName
	}
	if a.Email == "" {
		return ErrEmptyAuthorEmail
	}
	if !validEmail(a.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// Equal reports whether two authors denote the same person. Identity is
// defined by the natural key (email, first name, last name), not by ID.
func (a *Author) Equal(other *Author) bool {
	if other == nil {
		return false
	}
	return a.Email == other.Email &&
		a.FirstName == other.FirstName &&
		a.LastName == other.LastName
}

// validEmail performs a minimal structural check: one '@' with a dotted
// domain part after it.
func validEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
