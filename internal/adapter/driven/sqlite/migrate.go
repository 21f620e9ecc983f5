package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/ericfisherdev/tasktracker/internal/domain/port/driven"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies all pending database migrations embedded in the binary.
// It is safe to call on every startup; already-applied migrations are skipped.
func RunMigrations(db *sql.DB) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Compile-time interface satisfaction check.
var _ driven.SchemaMigrator = (*Migrator)(nil)

// Migrator adapts RunMigrations to the SchemaMigrator port.
type Migrator struct {
	db *DB
}

// NewMigrator creates a Migrator that applies migrations on the writer connection.
func NewMigrator(db *DB) *Migrator {
	return &Migrator{db: db}
}

// Migrate applies pending migrations. Tables from a tasks.db created before
// versioned migrations existed are converted to the current layout, keeping
// their rows. golang-migrate has no context support, so ctx only governs the
// conversion steps.
func (m *Migrator) Migrate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := parkLegacyTables(ctx, m.db.Writer); err != nil {
		return err
	}

	if err := RunMigrations(m.db.Writer); err != nil {
		return err
	}

	return restoreLegacyTables(ctx, m.db.Writer)
}
