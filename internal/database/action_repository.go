package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// ActionRepo handles all action-related database operations.
type ActionRepo struct {
	q DBTX
}

const actionColumns = `id, task_id, details, day, created_at, updated_at`

func scanAction(sc scanner) (*models.Action, error) {
	a := &models.Action{}
	err := sc.Scan(&a.ID, &a.TaskID, &a.Details, &a.Day, timeText{&a.CreatedAt}, timeText{&a.UpdatedAt})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CreateAction inserts a, assigning its ID and timestamps
func (r *ActionRepo) CreateAction(ctx context.Context, a *models.Action) error {
	if a.ID == uuid.Nil {
		a.ID = types.NewID()
	}
	now := timeNow()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO actions (`+actionColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.TaskID, a.Details, a.Day, formatTime(a.CreatedAt), formatTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert action: %w", err)
	}
	return nil
}

// GetActionByID retrieves an action by ID
func (r *ActionRepo) GetActionByID(ctx context.Context, id types.ActionID) (*models.Action, error) {
	a, err := scanAction(r.q.QueryRowContext(ctx, `SELECT `+actionColumns+` FROM actions WHERE id = ?`, id))
	if err != nil {
		return nil, notFoundIfNoRows(err, "action", id)
	}
	return a, nil
}

// ListActionsByTask returns a page of a task's actions ordered by day.
// A non-empty search filters on details, ignoring case.
func (r *ActionRepo) ListActionsByTask(ctx context.Context, taskID types.TaskID, search string, page models.PageRequest) ([]*models.Action, int, error) {
	where := ` WHERE task_id = ?`
	args := []any{taskID}
	if search != "" {
		where += ` AND fold(details) LIKE ? ESCAPE '\'`
		args = append(args, likePattern(search))
	}

	total, err := count(ctx, r.q, `SELECT COUNT(*) FROM actions`+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count actions: %w", err)
	}

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+actionColumns+` FROM actions`+where+` ORDER BY day ASC, created_at ASC, rowid ASC LIMIT ? OFFSET ?`,
		append(args, page.Size, page.Offset())...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list actions: %w", err)
	}
	defer rows.Close()

	var actions []*models.Action
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan action: %w", err)
		}
		actions = append(actions, a)
	}
	return actions, total, rows.Err()
}

// UpdateAction writes details and day of a
func (r *ActionRepo) UpdateAction(ctx context.Context, a *models.Action) error {
	a.UpdatedAt = timeNow()
	result, err := r.q.ExecContext(ctx,
		`UPDATE actions SET details = ?, day = ?, updated_at = ? WHERE id = ?`,
		a.Details, a.Day, formatTime(a.UpdatedAt), a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update action %s: %w", a.ID, err)
	}
	return requireAffected(result, "action", a.ID)
}

// DeleteAction removes an action
func (r *ActionRepo) DeleteAction(ctx context.Context, id types.ActionID) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM actions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete action %s: %w", id, err)
	}
	return requireAffected(result, "action", id)
}
