package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/msomdec/roster/internal/domain"
)

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	metadata, err := encodeMetadata(user.Metadata)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, role, metadata) VALUES (?, ?, ?, ?)`,
		user.Name, user.Email, string(user.Role), metadata,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	user.ID = id
	return decodeMetadata(metadata, &user.Metadata)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, role, metadata FROM users WHERE id = ?`, id,
	)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query user by id: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	metadata, err := encodeMetadata(user.Metadata)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, email = ?, role = ?, metadata = ? WHERE id = ?`,
		user.Name, user.Email, string(user.Role), metadata, user.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if err := expectOneRow(result); err != nil {
		return err
	}
	return decodeMetadata(metadata, &user.Metadata)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return expectOneRow(result)
}

// List returns users ordered by id. AUTOINCREMENT ids only grow, so id order
// is insertion order.
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, role, metadata FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*domain.User, error) {
	var (
		user     domain.User
		role     string
		metadata sql.NullString
	)
	if err := s.Scan(&user.ID, &user.Name, &user.Email, &role, &metadata); err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)

	if err := decodeMetadata(metadata, &user.Metadata); err != nil {
		return nil, err
	}
	return &user, nil
}

// decodeMetadata replaces *dst with the stored form of the metadata, so the
// caller sees the same value types a later read returns.
func decodeMetadata(encoded sql.NullString, dst *map[string]any) error {
	*dst = nil
	if !encoded.Valid {
		return nil
	}
	if err := json.Unmarshal([]byte(encoded.String), dst); err != nil {
		return fmt.Errorf("decode metadata: %w", err)
	}
	return nil
}

func encodeMetadata(m map[string]any) (sql.NullString, error) {
	if m == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode metadata: %w", err)
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func expectOneRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
