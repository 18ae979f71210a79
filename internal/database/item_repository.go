package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// Tasks and tags share one table layout. The helpers below take the table name
// from the constants here only, never from input.
const (
	tasksTable = "tasks"
	tagsTable  = "tags"
)

const itemColumns = `id, project_id, title, description, is_activity, duration,
	start_at, end_at, start_day, end_day, color, created_at, updated_at`

func scanItem(sc scanner, it *models.Item) error {
	return sc.Scan(&it.ID, &it.ProjectID, &it.Title, &it.Description, &it.IsActivity, &it.Duration,
		timeText{&it.StartAt}, timeText{&it.EndAt}, &it.StartDay, &it.EndDay, &it.Color,
		timeText{&it.CreatedAt}, timeText{&it.UpdatedAt})
}

func insertItem(ctx context.Context, q DBTX, table string, it *models.Item) error {
	if it.ID == uuid.Nil {
		it.ID = types.NewID()
	}
	now := timeNow()
	if it.CreatedAt.IsZero() {
		it.CreatedAt = now
	}
	it.UpdatedAt = now

	_, err := q.ExecContext(ctx,
		`INSERT INTO `+table+` (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.ProjectID, it.Title, it.Description, it.IsActivity, it.Duration,
		formatTime(it.StartAt), formatTime(it.EndAt), it.StartDay, it.EndDay, it.Color,
		formatTime(it.CreatedAt), formatTime(it.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

func updateItem(ctx context.Context, q DBTX, table string, it *models.Item) error {
	it.UpdatedAt = timeNow()
	result, err := q.ExecContext(ctx,
		`UPDATE `+table+` SET title = ?, description = ?, is_activity = ?, duration = ?,
			start_at = ?, end_at = ?, start_day = ?, end_day = ?, color = ?, updated_at = ?
		WHERE id = ?`,
		it.Title, it.Description, it.IsActivity, it.Duration,
		formatTime(it.StartAt), formatTime(it.EndAt), it.StartDay, it.EndDay, it.Color,
		formatTime(it.UpdatedAt), it.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s %s: %w", table, it.ID, err)
	}
	return requireAffected(result, table, it.ID)
}

// listItems pages through a project's items ordered by end instant ascending.
// visit is called once per row with a fresh Item to scan into.
func listItems(ctx context.Context, q DBTX, table string, projectID types.ProjectID, search string,
	page models.PageRequest, visit func() *models.Item) (int, error) {

	where := ` WHERE project_id = ?`
	args := []any{projectID}
	if search != "" {
		where += ` AND (fold(title) LIKE ? ESCAPE '\' OR fold(description) LIKE ? ESCAPE '\')`
		pattern := likePattern(search)
		args = append(args, pattern, pattern)
	}

	total, err := count(ctx, q, `SELECT COUNT(*) FROM `+table+where, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	rows, err := q.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM `+table+where+` ORDER BY end_at ASC, rowid ASC LIMIT ? OFFSET ?`,
		append(args, page.Size, page.Offset())...,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to list %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scanItem(rows, visit()); err != nil {
			return 0, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
	}
	return total, rows.Err()
}

// allItems loads every item of a project in creation order
func allItems(ctx context.Context, q DBTX, table string, projectID types.ProjectID, visit func() *models.Item) error {
	rows, err := q.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM `+table+` WHERE project_id = ? ORDER BY created_at ASC, rowid ASC`,
		projectID,
	)
	if err != nil {
		return fmt.Errorf("failed to load %s for project %s: %w", table, projectID, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scanItem(rows, visit()); err != nil {
			return fmt.Errorf("failed to scan %s row: %w", table, err)
		}
	}
	return rows.Err()
}

func deleteItem(ctx context.Context, q DBTX, table string, id uuid.UUID) error {
	result, err := q.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", table, id, err)
	}
	return requireAffected(result, table, id)
}
