package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/ericfisherdev/tasktracker/internal/domain/port/driven"
)

// AuthService registers users and checks credentials. It depends only on port
// interfaces; the hasher decides the digest format.
type AuthService struct {
	users    driven.UserStore
	hasher   driven.PasswordHasher
	sessions *SessionManager
	logger   *slog.Logger

	dummyOnce   sync.Once
	dummyDigest string
}

// NewAuthService creates a new AuthService with the required dependencies.
func NewAuthService(
	users driven.UserStore,
	hasher driven.PasswordHasher,
	sessions *SessionManager,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		sessions: sessions,
		logger:   logger,
	}
}

// AddUser hashes plaintext and stores a new user. Returns an error wrapping
// driven.ErrDuplicateUsername if the username is taken.
func (s *AuthService) AddUser(ctx context.Context, username, plaintext string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}

	digest, err := s.hasher.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.users.Add(ctx, username, digest); err != nil {
		return err
	}

	s.logger.Info("user added", "username", username)
	return nil
}

// Authenticate reports whether username exists and plaintext matches its
// stored digest. Unknown users and wrong passwords are indistinguishable.
// Legacy digests are upgraded to the current format after a successful match.
func (s *AuthService) Authenticate(ctx context.Context, username, plaintext string) (bool, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}

	if user == nil {
		// Burn comparable time so response latency does not reveal whether
		// the username exists.
		s.hasher.Verify(s.dummy(), plaintext)
		return false, nil
	}

	if !s.hasher.Verify(user.PasswordHash, plaintext) {
		return false, nil
	}

	if s.hasher.NeedsRehash(user.PasswordHash) {
		s.rehash(ctx, username, plaintext)
	}

	return true, nil
}

// LoginWithPassword authenticates and, on success, starts a session.
// Returns ErrAuthenticationFailed when the credentials do not match.
func (s *AuthService) LoginWithPassword(ctx context.Context, username, plaintext string) error {
	ok, err := s.Authenticate(ctx, username, plaintext)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Warn("authentication failed", "username", username)
		return ErrAuthenticationFailed
	}
	return s.sessions.Login(ctx, username)
}

func (s *AuthService) rehash(ctx context.Context, username, plaintext string) {
	digest, err := s.hasher.Hash(plaintext)
	if err == nil {
		err = s.users.SetPasswordHash(ctx, username, digest)
	}
	if err != nil {
		s.logger.Warn("password rehash failed", "username", username, "error", err)
		return
	}
	s.logger.Info("password digest upgraded", "username", username)
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		digest, err := s.hasher.Hash("tasktracker-timing-equalizer")
		if err == nil {
			s.dummyDigest = digest
		}
	})
	return s.dummyDigest
}
