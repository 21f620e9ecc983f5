package application

import "errors"

// Flow-level errors returned by application services. Storage errors are
// passed through wrapped and are fatal to the current command.
var (
	// ErrEmptyTitle indicates a task was submitted without a title.
	ErrEmptyTitle = errors.New("task title must not be empty")

	// ErrEmptyUsername indicates a user was submitted without a username.
	ErrEmptyUsername = errors.New("username must not be empty")

	// ErrAuthenticationFailed indicates the username/password pair did not match.
	// It does not say which half was wrong.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrNotLoggedIn indicates an operation needs a session and none is active.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNoActiveSession indicates logout was requested with nobody logged in.
	ErrNoActiveSession = errors.New("no user is currently logged in")
)
