package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	q DBTX
}

// CreateTask inserts t, assigning its ID and timestamps
func (r *TaskRepo) CreateTask(ctx context.Context, t *models.Task) error {
	return insertItem(ctx, r.q, tasksTable, &t.Item)
}

// GetTaskByID retrieves a task by ID
func (r *TaskRepo) GetTaskByID(ctx context.Context, id types.TaskID) (*models.Task, error) {
	t := &models.Task{}
	row := r.q.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM tasks WHERE id = ?`, id)
	if err := scanItem(row, &t.Item); err != nil {
		return nil, notFoundIfNoRows(err, "task", id)
	}
	return t, nil
}

// TaskExists reports whether a task with id exists
func (r *TaskRepo) TaskExists(ctx context.Context, id types.TaskID) (bool, error) {
	n, err := count(ctx, r.q, `SELECT COUNT(*) FROM tasks WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check task %s: %w", id, err)
	}
	return n > 0, nil
}

// ListTasksByProject returns a page of a project's tasks ordered by end instant.
// A non-empty search filters on title or description, ignoring case.
func (r *TaskRepo) ListTasksByProject(ctx context.Context, projectID types.ProjectID, search string, page models.PageRequest) ([]*models.Task, int, error) {
	var tasks []*models.Task
	total, err := listItems(ctx, r.q, tasksTable, projectID, search, page, func() *models.Item {
		t := &models.Task{}
		tasks = append(tasks, t)
		return &t.Item
	})
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// GetTasksByProject loads every task of a project
func (r *TaskRepo) GetTasksByProject(ctx context.Context, projectID types.ProjectID) ([]*models.Task, error) {
	var tasks []*models.Task
	err := allItems(ctx, r.q, tasksTable, projectID, func() *models.Item {
		t := &models.Task{}
		tasks = append(tasks, t)
		return &t.Item
	})
	return tasks, err
}

// UpdateTask writes every mutable field of t
func (r *TaskRepo) UpdateTask(ctx context.Context, t *models.Task) error {
	return updateItem(ctx, r.q, tasksTable, &t.Item)
}

// UpdateTaskSchedules writes the derived days of each task. Run it inside a
// transaction to get all-or-nothing behaviour.
func (r *TaskRepo) UpdateTaskSchedules(ctx context.Context, tasks []*models.Task) error {
	now := timeNow()
	for _, t := range tasks {
		t.UpdatedAt = now
		result, err := r.q.ExecContext(ctx,
			`UPDATE tasks SET start_day = ?, end_day = ?, updated_at = ? WHERE id = ?`,
			t.StartDay, t.EndDay, formatTime(now), t.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to reschedule task %s: %w", t.ID, err)
		}
		if err := requireAffected(result, "task", t.ID); err != nil {
			return err
		}
	}
	return nil
}

// DeleteTask removes a task; its actions and notes go with it
func (r *TaskRepo) DeleteTask(ctx context.Context, id types.TaskID) error {
	return deleteItem(ctx, r.q, tasksTable, id)
}
