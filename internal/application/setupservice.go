package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ericfisherdev/tasktracker/internal/domain/port/driven"
)

// Well-known credentials seeded into an empty user table.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// SetupService prepares storage before first use: it applies the schema and
// seeds the default administrator exactly once.
type SetupService struct {
	migrator driven.SchemaMigrator
	users    driven.UserStore
	hasher   driven.PasswordHasher
	notice   io.Writer
	logger   *slog.Logger
}

// NewSetupService creates a SetupService. notice receives the one-time
// disclosure of the default credentials.
func NewSetupService(
	migrator driven.SchemaMigrator,
	users driven.UserStore,
	hasher driven.PasswordHasher,
	notice io.Writer,
	logger *slog.Logger,
) *SetupService {
	return &SetupService{
		migrator: migrator,
		users:    users,
		hasher:   hasher,
		notice:   notice,
		logger:   logger,
	}
}

// Initialize ensures the schema exists and, if the user table is empty, creates
// the default administrator. It reports whether the administrator was created.
// Safe to call on every start.
func (s *SetupService) Initialize(ctx context.Context) (bool, error) {
	if err := s.migrator.Migrate(ctx); err != nil {
		return false, fmt.Errorf("initialize schema: %w", err)
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	digest, err := s.hasher.Hash(DefaultAdminPassword)
	if err != nil {
		return false, fmt.Errorf("hash default password: %w", err)
	}
	if _, err := s.users.Add(ctx, DefaultAdminUsername, digest); err != nil {
		return false, fmt.Errorf("seed default user: %w", err)
	}

	s.logger.Info("default user created", "username", DefaultAdminUsername)
	fmt.Fprintf(s.notice, "Default admin user created: Username: %s, Password: %s\n",
		DefaultAdminUsername, DefaultAdminPassword)

	return true, nil
}
