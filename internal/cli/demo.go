package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/msomdec/roster/internal/domain"
	"github.com/msomdec/roster/internal/service"
)

// RunDemo seeds reg with two users, updates one, prints the admins and looks
// the first user up again. Storage failures are returned.
func RunDemo(ctx context.Context, reg *service.Registry, out, errOut io.Writer) error {
	alice, err := reg.Add(ctx, domain.User{
		Name:     "Alice Johnson",
		Email:    "alice@example.com",
		Role:     domain.RoleAdmin,
		Metadata: map[string]any{"department": "Engineering"},
	})
	if err != nil {
		return err
	}

	if _, err := reg.Add(ctx, domain.User{
		Name:  "Bob Smith",
		Email: "bob@example.com",
		Role:  domain.RoleUser,
	}); err != nil {
		return err
	}

	email := "alice.johnson@example.com"
	if _, err := reg.Update(ctx, alice.ID, domain.UserPatch{Email: &email}); err != nil {
		return err
	}

	all, err := reg.List(ctx)
	if err != nil {
		return err
	}
	admins := service.FilterBy(all, service.UserRole, domain.RoleAdmin)
	fmt.Fprintf(out, "Admin users: %v\n", service.AdminNames(admins))

	resp := service.Lookup(ctx, reg, alice.ID)
	if resp.Success && resp.Data != nil {
		fmt.Fprintf(out, "Found user: %s\n", resp.Data.Name)
	} else {
		fmt.Fprintf(errOut, "Error: %s\n", resp.Error)
	}
	return nil
}
