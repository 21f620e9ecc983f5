// Package cli is the command-line driving adapter. It owns prompting and
// rendering and calls the application services for everything else.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ericfisherdev/tasktracker/internal/adapter/driven/password"
	"github.com/ericfisherdev/tasktracker/internal/adapter/driven/session"
	sqliteadapter "github.com/ericfisherdev/tasktracker/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/tasktracker/internal/application"
	"github.com/ericfisherdev/tasktracker/internal/config"
	"github.com/ericfisherdev/tasktracker/internal/logging"
)

// Options holds the process streams the commands read from and write to.
type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// app is the per-invocation runtime: configuration, storage and services.
// It is opened lazily once flags are parsed and closed when the command ends.
type app struct {
	opts   Options
	prompt *prompter

	cfg      *config.Config
	logger   *slog.Logger
	db       *sqliteadapter.DB
	setup    *application.SetupService
	auth     *application.AuthService
	sessions *application.SessionManager
	tasks    *application.TaskService
}

func newApp(opts Options) *app {
	return &app{
		opts:   opts,
		prompt: newPrompter(opts.In, opts.Out),
	}
}

// open wires adapters and services and makes sure the schema exists.
func (a *app) open(ctx context.Context, configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = logging.New(a.opts.Err, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(a.logger)
	a.logger.Debug("config loaded", "config", cfg.String())

	db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}
	a.db = db
	a.logger.Debug("database opened", "path", cfg.DBPath)

	algorithm, err := password.ParseAlgorithm(cfg.PasswordHash)
	if err != nil {
		return err
	}
	hasher := password.New(algorithm)

	userStore := sqliteadapter.NewUserRepo(db)
	taskStore := sqliteadapter.NewTaskRepo(db)
	settingsStore := sqliteadapter.NewSettingsRepo(db)

	a.setup = application.NewSetupService(sqliteadapter.NewMigrator(db), userStore, hasher, a.opts.Out, a.logger)
	if _, err := a.setup.Initialize(ctx); err != nil {
		return err
	}

	key, err := session.ResolveSigningKey(ctx, settingsStore, cfg.SessionSecret)
	if err != nil {
		return err
	}

	a.sessions = application.NewSessionManager(session.NewFileStore(cfg.SessionPath, key), a.logger)
	a.auth = application.NewAuthService(userStore, hasher, a.sessions, a.logger)
	a.tasks = application.NewTaskService(taskStore)

	return nil
}

// close releases the database. Safe to call when open failed part way.
func (a *app) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
	a.db = nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.opts.Out, format, args...)
}
