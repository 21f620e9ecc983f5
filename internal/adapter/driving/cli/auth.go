package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/tasktracker/internal/application"
	"github.com/ericfisherdev/tasktracker/internal/domain/port/driven"
)

// ensureAuthenticated greets a returning user or asks for credentials and
// starts a session. Input that ends before credentials are given yields
// ErrNotLoggedIn; wrong credentials yield ErrAuthenticationFailed.
func (a *app) ensureAuthenticated(ctx context.Context) error {
	username, ok, err := a.sessions.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if ok {
		a.printf("Welcome back, %s!\n", username)
		return nil
	}

	username, err = a.prompt.line("Enter username: ")
	if err != nil {
		return a.promptFailed(err)
	}
	plaintext, err := a.prompt.password("Enter password: ")
	if err != nil {
		return a.promptFailed(err)
	}

	if err := a.auth.LoginWithPassword(ctx, username, plaintext); err != nil {
		if errors.Is(err, application.ErrAuthenticationFailed) {
			a.printf("Authentication failed. Exiting.\n")
		}
		return err
	}

	a.printf("Welcome, %s!\n", username)
	return nil
}

func (a *app) promptFailed(err error) error {
	if errors.Is(err, io.EOF) {
		a.printf("You need to log in first.\n")
		return application.ErrNotLoggedIn
	}
	return err
}

func newLoginCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Logs in and keeps the session until logout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.ensureAuthenticated(cmd.Context())
		},
	}
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logs out the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := a.sessions.Logout(cmd.Context())
			if errors.Is(err, application.ErrNoActiveSession) {
				a.printf("No user is currently logged in.\n")
				return nil
			}
			if err != nil {
				return err
			}
			a.printf("You have been logged out.\n")
			return nil
		},
	}
}

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Shows the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, ok, err := a.sessions.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				a.printf("No user is currently logged in.\n")
				return nil
			}
			a.printf("%s\n", username)
			return nil
		},
	}
}

func newUserAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "useradd <username>",
		Short: "Registers another user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureAuthenticated(ctx); err != nil {
				return err
			}

			username := args[0]
			plaintext, confirm, err := a.readNewPassword()
			if err != nil {
				if errors.Is(err, io.EOF) {
					a.printf("User '%s' was not added.\n", username)
				}
				return err
			}
			if plaintext != confirm {
				return errors.New("passwords do not match")
			}

			if err := a.auth.AddUser(ctx, username, plaintext); err != nil {
				if errors.Is(err, driven.ErrDuplicateUsername) {
					a.printf("User '%s' already exists.\n", username)
				}
				return err
			}

			a.printf("User '%s' added successfully!\n", username)
			return nil
		},
	}
}

// readNewPassword asks for a password and its confirmation.
func (a *app) readNewPassword() (plaintext, confirm string, err error) {
	if plaintext, err = a.prompt.password("Enter password for new user: "); err != nil {
		return "", "", err
	}
	if confirm, err = a.prompt.password("Confirm password: "); err != nil {
		return "", "", err
	}
	return plaintext, confirm, nil
}
