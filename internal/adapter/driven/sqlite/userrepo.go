package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ericfisherdev/tasktracker/internal/domain/model"
	"github.com/ericfisherdev/tasktracker/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.UserStore = (*UserRepo)(nil)

// UserRepo is the SQLite implementation of the UserStore port interface.
// It stores password digests only; hashing is the caller's job.
type UserRepo struct {
	db *DB
}

// NewUserRepo creates a new UserRepo backed by the given DB.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// Add inserts a new user. Returns ErrDuplicateUsername if the username is
// already taken; the existing row is not modified.
func (r *UserRepo) Add(ctx context.Context, username, passwordHash string) (model.User, error) {
	const query = `
		INSERT INTO users (username, password_hash)
		VALUES (?, ?)
		RETURNING id, username, password_hash, created_at
	`

	user, err := scanUser(r.db.Writer.QueryRowContext(ctx, query, username, passwordHash))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return model.User{}, fmt.Errorf("add user %s: %w", username, driven.ErrDuplicateUsername)
		}
		return model.User{}, fmt.Errorf("add user %s: %w", username, err)
	}

	return *user, nil
}

// GetByUsername retrieves a user by exact, case-sensitive username. Returns
// nil, nil if no such user exists.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`

	user, err := scanUser(r.db.Reader.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", username, err)
	}

	return user, nil
}

// SetPasswordHash replaces the stored digest for username.
func (r *UserRepo) SetPasswordHash(ctx context.Context, username, passwordHash string) error {
	const query = `UPDATE users SET password_hash = ? WHERE username = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, passwordHash, username)
	if err != nil {
		return fmt.Errorf("set password hash for %s: %w", username, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("set password hash for %s: %w", username, driven.ErrUserNotFound)
	}

	return nil
}

// Count returns the number of stored users.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM users`

	var count int
	if err := r.db.Reader.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}

func scanUser(s scanner) (*model.User, error) {
	var user model.User
	var createdAt string

	err := s.Scan(&user.ID, &user.Username, &user.PasswordHash, &createdAt)
	if err != nil {
		return nil, err
	}

	user.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	return &user, nil
}
