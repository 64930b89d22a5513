// Package sqlite provides a domain.UserRepository backed by a private
// in-memory SQLite database. The database lives only as long as the process.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/roster/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps an in-memory SQLite handle and hands out repositories bound to it.
type DB struct {
	SqlDB *sql.DB
}

// New opens a fresh in-memory SQLite database with foreign keys enabled.
func New() (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database, so pin the pool
	// to a single connection that is never recycled.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

// Close releases the database. All stored data is discarded.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

// Users returns a UserRepository bound to this database.
func (db *DB) Users() *UserRepository {
	return NewUserRepository(db)
}
