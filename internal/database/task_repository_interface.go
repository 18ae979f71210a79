package database

import (
	"context"

	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTaskByID(ctx context.Context, id types.TaskID) (*models.Task, error)
	TaskExists(ctx context.Context, id types.TaskID) (bool, error)
	ListTasksByProject(ctx context.Context, projectID types.ProjectID, search string, page models.PageRequest) ([]*models.Task, int, error)
	GetTasksByProject(ctx context.Context, projectID types.ProjectID) ([]*models.Task, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, t *models.Task) error
	UpdateTask(ctx context.Context, t *models.Task) error
	DeleteTask(ctx context.Context, id types.TaskID) error
}

// TaskScheduler rewrites derived schedule days in bulk.
type TaskScheduler interface {
	UpdateTaskSchedules(ctx context.Context, tasks []*models.Task) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
	TaskScheduler
}
