// Package memory provides a process-local domain.UserRepository. Nothing is
// written outside the process.
package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/jinzhu/copier"
	"github.com/msomdec/roster/internal/domain"
)

// UserRepository implements domain.UserRepository with an ordered in-memory
// container. It is not safe for concurrent use.
type UserRepository struct {
	order  []int64
	users  map[int64]domain.User
	nextID int64
}

// NewUserRepository creates an empty repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]domain.User)}
}

// Create assigns the next id from a counter that only grows, so ids are never
// handed out twice even after deletions.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	stored, err := clone(*user)
	if err != nil {
		return err
	}
	r.nextID++
	stored.ID = r.nextID
	r.users[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	user.ID = stored.ID
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out, err := clone(u)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	stored, err := clone(*user)
	if err != nil {
		return err
	}
	r.users[user.ID] = stored
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	r.order = slices.DeleteFunc(r.order, func(v int64) bool { return v == id })
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		u, err := clone(r.users[id])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// clone deep-copies u so callers never alias stored metadata.
func clone(u domain.User) (domain.User, error) {
	var out domain.User
	if err := copier.CopyWithOption(&out, &u, copier.Option{DeepCopy: true}); err != nil {
		return domain.User{}, fmt.Errorf("copy user: %w", err)
	}
	// copier allocates an empty map for a nil source map.
	if u.Metadata == nil {
		out.Metadata = nil
	}
	return out, nil
}
