package domain

import (
	"context"
	"fmt"
	"strings"
)

// Role is the access tier of a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

// ParseRole converts s to a Role, ignoring case and surrounding whitespace.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
	}
	return r, nil
}

// User is a record held by the registry. ID is assigned on creation and never
// changes afterwards.
type User struct {
	ID       int64
	Name     string
	Email    string
	Role     Role
	Metadata map[string]any
}

// UserPatch carries the fields of a partial update. Nil fields are left
// untouched; a non-nil Metadata replaces the stored map as a whole.
type UserPatch struct {
	Name     *string
	Email    *string
	Role     *Role
	Metadata map[string]any
}

// Apply returns u with the provided patch fields laid over it.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Metadata != nil {
		u.Metadata = p.Metadata
	}
	return u
}

// UserRepository defines storage operations for users.
type UserRepository interface {
	// Create assigns user.ID and stores the record.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
	// List returns every user in insertion order.
	List(ctx context.Context) ([]User, error)
}
