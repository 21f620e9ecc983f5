package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ericfisherdev/tasktracker/internal/domain/model"
	"github.com/ericfisherdev/tasktracker/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.TaskStore = (*TaskRepo)(nil)

// TaskRepo is the SQLite implementation of the TaskStore port interface.
type TaskRepo struct {
	db *DB
}

// NewTaskRepo creates a new TaskRepo backed by the given DB.
func NewTaskRepo(db *DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// Add inserts a new, not yet completed task and returns it with its assigned ID.
func (r *TaskRepo) Add(ctx context.Context, title, description string) (model.Task, error) {
	const query = `
		INSERT INTO tasks (title, description, completed)
		VALUES (?, ?, 0)
		RETURNING id, title, description, completed, created_at, updated_at
	`

	task, err := scanTask(r.db.Writer.QueryRowContext(ctx, query, title, description))
	if err != nil {
		return model.Task{}, fmt.Errorf("add task %q: %w", title, err)
	}

	return *task, nil
}

// Get retrieves a task by ID. Returns nil, nil if the task does not exist.
func (r *TaskRepo) Get(ctx context.Context, id int64) (*model.Task, error) {
	const query = `SELECT id, title, description, completed, created_at, updated_at FROM tasks WHERE id = ?`

	task, err := scanTask(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}

	return task, nil
}

// List returns all tasks ordered by ID, which is also insertion order.
func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	const query = `SELECT id, title, description, completed, created_at, updated_at FROM tasks ORDER BY id`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

// Update replaces the description and completion flag of a task. The title is
// never touched. Returns ErrTaskNotFound if no task has the given ID.
func (r *TaskRepo) Update(ctx context.Context, id int64, description string, completed bool) error {
	const query = `
		UPDATE tasks
		SET description = ?, completed = ?, updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
		WHERE id = ?
	`

	result, err := r.db.Writer.ExecContext(ctx, query, description, completed, id)
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}

	return requireAffected(result, fmt.Sprintf("update task %d", id))
}

// Delete permanently removes a task. Returns ErrTaskNotFound if no task has
// the given ID.
func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM tasks WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}

	return requireAffected(result, fmt.Sprintf("delete task %d", id))
}

func requireAffected(result sql.Result, op string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("%s: %w", op, driven.ErrTaskNotFound)
	}

	return nil
}

func scanTask(s scanner) (*model.Task, error) {
	var task model.Task
	var createdAt, updatedAt string

	err := s.Scan(&task.ID, &task.Title, &task.Description, &task.Completed, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	task.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	task.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return &task, nil
}
