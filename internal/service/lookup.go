package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/msomdec/roster/internal/domain"
)

// Lookup fetches a user from reg and wraps the outcome in a Response.
// Failures never escape as errors; they are reported in the envelope.
func Lookup(ctx context.Context, reg *Registry, id int64) domain.Response[domain.User] {
	user, err := reg.Get(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.Response[domain.User]{Error: fmt.Sprintf("User with ID %d not found", id)}
	case err != nil:
		slog.Error("fetch user data", "id", id, "error", err)
		return domain.Response[domain.User]{Error: err.Error()}
	}
	return domain.Response[domain.User]{Success: true, Data: user}
}
