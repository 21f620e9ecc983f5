package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/tasktracker/internal/domain/port/driven"
)

const motto = "Arise, awake, and stop not till the goal is reached!"

func newAddCommand(a *app) *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Adds a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.ensureAuthenticated(ctx); err != nil {
				return err
			}

			var err error
			if !cmd.Flags().Changed("title") {
				if title, err = a.prompt.line("Enter the task: "); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("description") {
				if description, err = a.prompt.line("Enter the description (leave empty for default): "); err != nil {
					return err
				}
			}

			task, err := a.tasks.Add(ctx, title, description)
			if err != nil {
				return err
			}

			a.printf("Task '%s' with description '%s' added successfully!\n", task.Title, task.Description)
			return a.showTasks(ctx)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Task title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	return cmd
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"show"},
		Short:   "Shows all tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.ensureAuthenticated(ctx); err != nil {
				return err
			}
			return a.showTasks(ctx)
		},
	}
}

func newUpdateCommand(a *app) *cobra.Command {
	var (
		id          int64
		description string
		completed   bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Updates a task's description and completion status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.ensureAuthenticated(ctx); err != nil {
				return err
			}

			var err error
			if !cmd.Flags().Changed("id") {
				if id, err = a.promptID("Enter the ID of the task to update: "); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("description") {
				if description, err = a.prompt.line("Enter the new description (leave empty for default): "); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("completed") {
				if completed, err = a.promptCompleted(); err != nil {
					return err
				}
			}

			err = a.tasks.Update(ctx, id, description, completed)
			if errors.Is(err, driven.ErrTaskNotFound) {
				a.printf("No task found with ID %d.\n", id)
				return nil
			}
			if err != nil {
				return err
			}

			a.printf("Task with ID %d updated successfully!\n", id)
			return a.showTasks(ctx)
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "ID of the task to update")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().BoolVar(&completed, "completed", false, "Mark the task completed")
	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Deletes a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.ensureAuthenticated(ctx); err != nil {
				return err
			}

			var err error
			if !cmd.Flags().Changed("id") {
				if id, err = a.promptID("Enter the ID of the task to delete: "); err != nil {
					return err
				}
			}

			err = a.tasks.Delete(ctx, id)
			if errors.Is(err, driven.ErrTaskNotFound) {
				a.printf("No task found with ID %d.\n", id)
				return nil
			}
			if err != nil {
				return err
			}

			a.printf("Task with ID %d deleted successfully!\n", id)
			return a.showTasks(ctx)
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "ID of the task to delete")
	return cmd
}

func (a *app) showTasks(ctx context.Context) error {
	tasks, err := a.tasks.List(ctx)
	if err != nil {
		return err
	}

	a.printf("%s\n", motto)
	a.printf("%s\n", renderTaskTable(tasks))
	return nil
}

func (a *app) promptID(label string) (int64, error) {
	raw, err := a.prompt.line(label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID %q", raw)
	}
	return id, nil
}

func (a *app) promptCompleted() (bool, error) {
	raw, err := a.prompt.line("Is the task completed? (1 for Yes, 0 for No): ")
	if err != nil {
		return false, err
	}
	return parseCompleted(raw)
}

func parseCompleted(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "y", "yes", "true":
		return true, nil
	case "0", "n", "no", "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid completion status %q (want 1 or 0)", raw)
	}
}
