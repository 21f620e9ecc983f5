package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ericfisherdev/tasktracker/internal/domain/model"
	"github.com/ericfisherdev/tasktracker/internal/domain/port/driven"
)

// SessionManager tracks who is logged in across CLI invocations. State lives
// entirely in the SessionStore; nothing is cached between calls.
type SessionManager struct {
	store  driven.SessionStore
	logger *slog.Logger
	now    func() time.Time
}

// NewSessionManager creates a SessionManager backed by store.
func NewSessionManager(store driven.SessionStore, logger *slog.Logger) *SessionManager {
	return &SessionManager{
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// IsActive reports whether a valid session names a user.
func (m *SessionManager) IsActive(ctx context.Context) (bool, error) {
	_, ok, err := m.CurrentUser(ctx)
	return ok, err
}

// CurrentUser returns the logged-in username. ok is false when nobody is
// logged in. A marker that fails verification counts as logged out.
func (m *SessionManager) CurrentUser(ctx context.Context) (username string, ok bool, err error) {
	sess, err := m.store.Load(ctx)
	if errors.Is(err, driven.ErrInvalidSession) {
		m.logger.Warn("ignoring invalid session marker", "error", err)
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if sess == nil {
		return "", false, nil
	}
	return sess.Username, true, nil
}

// RequireSession returns the logged-in username or ErrNotLoggedIn.
func (m *SessionManager) RequireSession(ctx context.Context) (string, error) {
	username, ok, err := m.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNotLoggedIn
	}
	return username, nil
}

// Login records username as the active session, replacing any previous one.
// Callers must have verified the credentials first.
func (m *SessionManager) Login(ctx context.Context, username string) error {
	sess := model.Session{
		ID:       uuid.NewString(),
		Username: username,
		IssuedAt: m.now(),
	}
	if err := m.store.Save(ctx, sess); err != nil {
		return err
	}
	m.logger.Debug("session started", "username", username, "session_id", sess.ID)
	return nil
}

// Logout ends the active session. Returns ErrNoActiveSession if there was none.
func (m *SessionManager) Logout(ctx context.Context) error {
	existed, err := m.store.Clear(ctx)
	if err != nil {
		return err
	}
	if !existed {
		return ErrNoActiveSession
	}
	m.logger.Debug("session ended")
	return nil
}
