package domain

import "context"

// Database defines lifecycle operations for a storage backend. Each
// implementation owns its own schema setup, so backends stay swappable.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
