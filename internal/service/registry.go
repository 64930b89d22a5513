package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/roster/internal/domain"
)

// Logger receives the registry's leveled log entries.
type Logger interface {
	Log(level domain.LogLevel, message string)
}

// Registry manages user records on top of a UserRepository and reports each
// mutation to a Logger. It is meant for a single writer.
type Registry struct {
	users     domain.UserRepository
	logger    Logger
	threshold domain.LogLevel
}

// NewRegistry creates a Registry that only forwards entries at or above threshold.
func NewRegistry(users domain.UserRepository, logger Logger, threshold domain.LogLevel) *Registry {
	return &Registry{users: users, logger: logger, threshold: threshold}
}

// Threshold returns the minimum level forwarded to the logger.
func (r *Registry) Threshold() domain.LogLevel {
	return r.threshold
}

// Add stores user under a newly assigned id and returns a copy of the stored
// record. Any id already set on user is ignored.
func (r *Registry) Add(ctx context.Context, user domain.User) (*domain.User, error) {
	if !user.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, user.Role)
	}

	user.ID = 0
	if err := r.users.Create(ctx, &user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	stored, err := r.users.GetByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("read back user: %w", err)
	}

	r.log(domain.LogLevelInfo, fmt.Sprintf("User %s added with ID %d", stored.Name, stored.ID))
	return stored, nil
}

// Get returns the user with the given id, or domain.ErrNotFound.
func (r *Registry) Get(ctx context.Context, id int64) (*domain.User, error) {
	return r.users.GetByID(ctx, id)
}

// Update lays patch over the stored user. It reports false, with a warning
// entry, when no user has that id.
func (r *Registry) Update(ctx context.Context, id int64, patch domain.UserPatch) (bool, error) {
	if patch.Role != nil && !patch.Role.Valid() {
		return false, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, *patch.Role)
	}

	user, err := r.users.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		r.log(domain.LogLevelWarning, fmt.Sprintf("User with ID %d not found", id))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get user: %w", err)
	}

	updated := patch.Apply(*user)
	if err := r.users.Update(ctx, &updated); err != nil {
		return false, fmt.Errorf("update user: %w", err)
	}

	r.log(domain.LogLevelInfo, fmt.Sprintf("User %d updated", id))
	return true, nil
}

// Delete removes the user with the given id and reports whether one existed.
func (r *Registry) Delete(ctx context.Context, id int64) (bool, error) {
	err := r.users.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		r.log(domain.LogLevelWarning, fmt.Sprintf("User %d not found", id))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}

	r.log(domain.LogLevelInfo, fmt.Sprintf("User %d deleted", id))
	return true, nil
}

// List returns a snapshot of all users in insertion order.
func (r *Registry) List(ctx context.Context) ([]domain.User, error) {
	users, err := r.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *Registry) log(level domain.LogLevel, message string) {
	if r.logger == nil || level < r.threshold {
		return
	}
	r.logger.Log(level, message)
}
