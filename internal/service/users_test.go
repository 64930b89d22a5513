package service_test

import (
	"slices"
	"testing"

	"github.com/msomdec/roster/internal/domain"
	"github.com/msomdec/roster/internal/service"
)

func TestFilterBy(t *testing.T) {
	users := []domain.User{
		{ID: 1, Name: "Alice", Role: domain.RoleAdmin},
		{ID: 2, Name: "Bob", Role: domain.RoleUser},
		{ID: 3, Name: "Carol", Role: domain.RoleAdmin},
	}

	admins := service.FilterBy(users, service.UserRole, domain.RoleAdmin)
	if len(admins) != 2 || admins[0].ID != 1 || admins[1].ID != 3 {
		t.Fatalf("expected admins 1 and 3 in order, got %+v", admins)
	}

	byName := service.FilterBy(users, func(u domain.User) string { return u.Name }, "Bob")
	if len(byName) != 1 || byName[0].ID != 2 {
		t.Fatalf("expected Bob, got %+v", byName)
	}

	if got := service.FilterBy(users, service.UserRole, domain.RoleGuest); len(got) != 0 {
		t.Fatalf("expected no guests, got %+v", got)
	}
}

func TestAdminNames(t *testing.T) {
	users := []domain.User{
		{Name: "zoë adams", Role: domain.RoleAdmin},
		{Name: "Bob Smith", Role: domain.RoleUser},
		{Name: "Alice Johnson", Role: domain.RoleAdmin},
	}

	got := service.AdminNames(users)
	want := []string{"ALICE JOHNSON", "ZOË ADAMS"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAdminNames_Empty(t *testing.T) {
	if got := service.AdminNames(nil); len(got) != 0 {
		t.Fatalf("expected no names, got %v", got)
	}
}

func TestMergeMetadata(t *testing.T) {
	user := domain.User{
		ID:       1,
		Name:     "Alice Johnson",
		Metadata: map[string]any{"department": "Engineering", "floor": 3},
	}

	merged := service.MergeMetadata(user, map[string]any{"floor": 4, "badge": "A-17"})

	if merged.ID != 1 || merged.Name != "Alice Johnson" {
		t.Fatalf("expected identity preserved, got %+v", merged)
	}
	want := map[string]any{"department": "Engineering", "floor": 4, "badge": "A-17"}
	if len(merged.Metadata) != len(want) {
		t.Fatalf("expected %v, got %v", want, merged.Metadata)
	}
	for k, v := range want {
		if merged.Metadata[k] != v {
			t.Fatalf("metadata[%q]: expected %v, got %v", k, v, merged.Metadata[k])
		}
	}

	if user.Metadata["floor"] != 3 || len(user.Metadata) != 2 {
		t.Fatalf("expected input metadata untouched, got %v", user.Metadata)
	}
}

func TestMergeMetadata_NilExisting(t *testing.T) {
	merged := service.MergeMetadata(domain.User{Name: "Bob"}, map[string]any{"team": "ops"})
	if merged.Metadata["team"] != "ops" {
		t.Fatalf("expected team=ops, got %v", merged.Metadata)
	}
}
