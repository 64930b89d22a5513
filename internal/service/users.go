package service

import (
	"maps"
	"slices"

	"github.com/msomdec/roster/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FilterBy returns the items whose field equals value, keeping their order.
func FilterBy[T any, V comparable](items []T, field func(T) V, value V) []T {
	var out []T
	for _, item := range items {
		if field(item) == value {
			out = append(out, item)
		}
	}
	return out
}

// UserRole selects the role of u, for use with FilterBy.
func UserRole(u domain.User) domain.Role { return u.Role }

// AdminNames returns the upper-cased names of the admins in users, sorted.
func AdminNames(users []domain.User) []string {
	upper := cases.Upper(language.Und)
	var names []string
	for _, u := range FilterBy(users, UserRole, domain.RoleAdmin) {
		names = append(names, upper.String(u.Name))
	}
	slices.Sort(names)
	return names
}

// MergeMetadata returns a copy of user whose metadata also holds md. Keys in
// md win over existing ones. user itself is left untouched.
func MergeMetadata(user domain.User, md map[string]any) domain.User {
	merged := make(map[string]any, len(user.Metadata)+len(md))
	maps.Copy(merged, user.Metadata)
	maps.Copy(merged, md)
	user.Metadata = merged
	return user
}
