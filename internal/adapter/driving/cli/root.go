package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/tasktracker/internal/application"
)

// Run executes the command line in args and returns the process exit code:
// 0 on success, 1 when authentication is required but missing or fails, and
// 1 on any other error.
func Run(ctx context.Context, args []string, opts Options) int {
	a := newApp(opts)
	defer a.close()

	// cobra substitutes os.Args for a nil slice.
	if args == nil {
		args = []string{}
	}

	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetIn(opts.In)
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, application.ErrAuthenticationFailed), errors.Is(err, application.ErrNotLoggedIn):
		// Already reported to the user.
		return 1
	case errors.Is(err, io.EOF):
		fmt.Fprintln(opts.Err, "Error: input ended before all values were entered")
		return 1
	default:
		fmt.Fprintln(opts.Err, "Error:", err)
		if a.logger != nil {
			a.logger.Error("command failed", "error", err)
		}
		return 1
	}
}

func newRootCommand(a *app) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "tasktracker",
		Short: "Personal task tracker",
		Long: `tasktracker keeps a personal to-do list in a local SQLite database.

Commands that read or change tasks require a login; the session is kept
until you run "tasktracker logout".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context(), configFile)
		},
		RunE: a.runMenu,
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML or TOML config file")

	root.AddCommand(
		newInitCommand(a),
		newAddCommand(a),
		newListCommand(a),
		newUpdateCommand(a),
		newDeleteCommand(a),
		newLoginCommand(a),
		newLogoutCommand(a),
		newWhoamiCommand(a),
		newUserAddCommand(a),
		newExportCommand(a),
	)

	return root
}

func newInitCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// open already ran Initialize; running it again is a no-op and
			// keeps this command meaningful on its own.
			if _, err := a.setup.Initialize(cmd.Context()); err != nil {
				return err
			}
			a.printf("Database initialized successfully!\n")
			return nil
		},
	}
}

func (a *app) runMenu(cmd *cobra.Command, _ []string) error {
	if err := a.ensureAuthenticated(cmd.Context()); err != nil {
		return err
	}

	a.printf("\nAvailable Commands:\n")
	a.printf("- add: Adds a new task.\n")
	a.printf("- delete: Deletes an existing task.\n")
	a.printf("- update: Updates a task.\n")
	a.printf("- show: Displays all tasks.\n")
	a.printf("- export: Writes all tasks to a file.\n")
	a.printf("- useradd: Registers another user.\n")
	a.printf("- init: Initialize the database.\n")
	a.printf("- logout: Logs out the current user.\n")
	a.printf("\nUse 'tasktracker <command>' to execute a command.\n")
	return nil
}
