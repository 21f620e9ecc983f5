package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/tasktracker/internal/domain/model"
)

// ErrTaskNotFound indicates no task exists with the requested ID.
var ErrTaskNotFound = errors.New("task not found")

// TaskStore defines the driven port for task persistence.
// Add stores the description as given; callers normalize it first.
// Update and Delete return ErrTaskNotFound when no task has the given ID.
// Get returns (nil, nil) if the task does not exist.
type TaskStore interface {
	Add(ctx context.Context, title, description string) (model.Task, error)
	Get(ctx context.Context, id int64) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Update(ctx context.Context, id int64, description string, completed bool) error
	Delete(ctx context.Context, id int64) error
}
