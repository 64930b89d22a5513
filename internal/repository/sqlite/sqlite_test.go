package sqlite_test

import (
	"context"
	"testing"

	"github.com/msomdec/roster/internal/domain"
	"github.com/msomdec/roster/internal/repository/sqlite"
)

// Verify that *sqlite.DB implements domain.Database at compile time.
var _ domain.Database = (*sqlite.DB)(nil)

func TestNew(t *testing.T) {
	db, err := sqlite.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	if err := db.SqlDB.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}

	var fkEnabled int
	if err := db.SqlDB.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled); err != nil {
		t.Fatalf("check foreign_keys: %v", err)
	}
	if fkEnabled != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fkEnabled)
	}
}

func TestNew_Isolated(t *testing.T) {
	ctx := context.Background()

	first := newTestDB(t)
	if err := first.Users().Create(ctx, &domain.User{Name: "Only here", Role: domain.RoleUser}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	second := newTestDB(t)
	users, err := second.Users().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected a fresh database, got %d users", len(users))
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db, err := sqlite.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("first Migrate: %v", err)
	}
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate (idempotent): %v", err)
	}

	var count int
	err = db.SqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	if err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 migration records, got %d", count)
	}
}
