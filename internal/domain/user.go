package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// User validation errors.
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUserName       = errors.New("user name cannot be empty")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyUserEmail      = errors.New("user email cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User is an authentication principal. It is used only to mint and verify
// credentials and is never exposed as a blog entity.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, held only between signup and hashing
	HashedPassword string    `json:"-"` // Never expose the hash
	Roles          []*Role   `json:"roles"`
}

// NewUser creates a new User with the given details and a generated ID.
// The caller is responsible for hashing the password before storing the user.
func NewUser(name, username, email, password string) (*User, error) {
	user := &User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(name),
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: password,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if u.Name == "" {
		return ErrEmptyUserName
	}
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if u.Email == "" {
		return ErrEmptyUserEmail
	}
	if !validEmail(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
		// bcrypt truncates input beyond 72 bytes
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Users loaded from the store carry only the hash.
		return ErrEmptyPassword
	}

	return nil
}

// AddRole grants the role to the user. Granting an already granted role is
// a no-op. Both sides of the association are updated.
func (u *User) AddRole(role *Role) {
	for _, r := range u.Roles {
		if r.ID == role.ID {
			return
		}
	}
	u.Roles = append(u.Roles, role)
	role.Users = append(role.Users, u)
}

// HasAnyRole reports whether the user holds at least one of the named roles.
func (u *User) HasAnyRole(names ...string) bool {
	for _, r := range u.Roles {
		for _, name := range names {
			if r.Name == name {
				return true
			}
		}
	}
	return false
}

// RoleNames returns the names of all roles granted to the user.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
