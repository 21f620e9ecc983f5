package application

import (
	"context"
	"strings"

	"github.com/ericfisherdev/tasktracker/internal/domain/model"
	"github.com/ericfisherdev/tasktracker/internal/domain/port/driven"
)

// TaskService validates and normalizes task input before it reaches the store.
type TaskService struct {
	tasks driven.TaskStore
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks driven.TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// Add creates a task. An empty description is stored as model.DefaultDescription.
func (s *TaskService) Add(ctx context.Context, title, description string) (model.Task, error) {
	if strings.TrimSpace(title) == "" {
		return model.Task{}, ErrEmptyTitle
	}
	return s.tasks.Add(ctx, title, model.NormalizeDescription(description))
}

// List returns a snapshot of every task ordered by ID.
func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.tasks.List(ctx)
}

// Update changes description and completion only. Returns an error wrapping
// driven.ErrTaskNotFound if the task does not exist.
func (s *TaskService) Update(ctx context.Context, id int64, description string, completed bool) error {
	return s.tasks.Update(ctx, id, model.NormalizeDescription(description), completed)
}

// Delete removes a task permanently. Returns an error wrapping
// driven.ErrTaskNotFound if the task does not exist.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.tasks.Delete(ctx, id)
}
