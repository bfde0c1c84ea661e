package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// RolePrefix is prepended to bare role names supplied at signup, so a
// request for "ADMIN" resolves the stored "ROLE_ADMIN".
const RolePrefix = "ROLE_"

// Well-known role names.
const (
	RoleAdmin      = RolePrefix + "ADMIN"
	RoleMaintainer = RolePrefix + "MAINTAINER"
)

// Role validation errors.
var (
	ErrEmptyRoleID   = errors.New("role ID cannot be empty")
	ErrEmptyRoleName = errors.New("role name cannot be empty")
)

// Role names a grant of authority. Roles are seeded by migration and
// referenced by name at signup.
type Role struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Users []*User   `json:"-"` // Inverse side of the user/role association
}

// NewRole creates a new Role with a generated ID.
func NewRole(name string) (*Role, error) {
	role := &Role{
		ID:   uuid.New(),
		Name: strings.TrimSpace(name),
	}

	if err := role.Validate(); err != nil {
		return nil, err
	}

	return role, nil
}

// Validate checks if the Role has valid data.
func (r *Role) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyRoleID
	}
	if r.Name == "" {
		return ErrEmptyRoleName
	}
	return nil
}

// QualifyRoleName normalizes a role reference to its stored form by
// uppercasing it and prepending RolePrefix when absent.
func QualifyRoleName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if strings.HasPrefix(name, RolePrefix) {
		return name
	}
	return RolePrefix + name
}
