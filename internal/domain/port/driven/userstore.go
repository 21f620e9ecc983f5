package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/tasktracker/internal/domain/model"
)

// Sentinel errors returned by UserStore implementations.
var (
	// ErrDuplicateUsername indicates a user with the same username already exists.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrUserNotFound indicates no user has the requested username.
	ErrUserNotFound = errors.New("user not found")
)

// UserStore defines the driven port for credential records. Hashing happens
// before the store is called; the store only ever sees digests.
type UserStore interface {
	// Add inserts a new user. Returns ErrDuplicateUsername if the username
	// is taken, leaving the existing record untouched.
	Add(ctx context.Context, username, passwordHash string) (model.User, error)

	// GetByUsername returns (nil, nil) if no user has that exact username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// SetPasswordHash replaces the stored digest for an existing user.
	// Returns ErrUserNotFound if the username is unknown.
	SetPasswordHash(ctx context.Context, username, passwordHash string) error

	Count(ctx context.Context) (int, error)
}
