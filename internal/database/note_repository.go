package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// NoteRepo handles all note-related database operations.
type NoteRepo struct {
	q DBTX
}

const noteColumns = `id, project_id, task_id, body, created_at`

func scanNote(sc scanner) (*models.Note, error) {
	n := &models.Note{}
	var projectID, taskID uuid.NullUUID
	if err := sc.Scan(&n.ID, &projectID, &taskID, &n.Body, timeText{&n.CreatedAt}); err != nil {
		return nil, err
	}
	n.ProjectID = uuidPtr(projectID)
	n.TaskID = uuidPtr(taskID)
	return n, nil
}

// CreateNote inserts n after checking it targets exactly one owner
func (r *NoteRepo) CreateNote(ctx context.Context, n *models.Note) error {
	if !models.HasExactlyOneTarget(n.ProjectID, n.TaskID) {
		return models.ErrNoteTarget
	}
	if n.ID == uuid.Nil {
		n.ID = types.NewID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = timeNow()
	}

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO notes (`+noteColumns+`) VALUES (?, ?, ?, ?, ?)`,
		n.ID, nullUUID(n.ProjectID), nullUUID(n.TaskID), n.Body, formatTime(n.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

// GetNoteByID retrieves a note by ID
func (r *NoteRepo) GetNoteByID(ctx context.Context, id types.NoteID) (*models.Note, error) {
	n, err := scanNote(r.q.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = ?`, id))
	if err != nil {
		return nil, notFoundIfNoRows(err, "note", id)
	}
	return n, nil
}

// ListNotesByProject returns a page of a project's own notes, newest first
func (r *NoteRepo) ListNotesByProject(ctx context.Context, projectID types.ProjectID, page models.PageRequest) ([]*models.Note, int, error) {
	return r.listNotes(ctx, "project_id", projectID, page)
}

// ListNotesByTask returns a page of a task's notes, newest first
func (r *NoteRepo) ListNotesByTask(ctx context.Context, taskID types.TaskID, page models.PageRequest) ([]*models.Note, int, error) {
	return r.listNotes(ctx, "task_id", taskID, page)
}

func (r *NoteRepo) listNotes(ctx context.Context, column string, ownerID uuid.UUID, page models.PageRequest) ([]*models.Note, int, error) {
	total, err := count(ctx, r.q, `SELECT COUNT(*) FROM notes WHERE `+column+` = ?`, ownerID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notes: %w", err)
	}

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE `+column+` = ? ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`,
		ownerID, page.Size, page.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, total, rows.Err()
}

// GetNotesByProject loads every project-scoped note. Notes on the project's
// tasks are not included.
func (r *NoteRepo) GetNotesByProject(ctx context.Context, projectID types.ProjectID) ([]*models.Note, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE project_id = ? ORDER BY created_at ASC, rowid ASC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes for project %s: %w", projectID, err)
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// UpdateNote writes the body of n, re-checking its target first
func (r *NoteRepo) UpdateNote(ctx context.Context, n *models.Note) error {
	if !models.HasExactlyOneTarget(n.ProjectID, n.TaskID) {
		return models.ErrNoteTarget
	}
	result, err := r.q.ExecContext(ctx, `UPDATE notes SET body = ? WHERE id = ?`, n.Body, n.ID)
	if err != nil {
		return fmt.Errorf("failed to update note %s: %w", n.ID, err)
	}
	return requireAffected(result, "note", n.ID)
}

// DeleteNote removes a note
func (r *NoteRepo) DeleteNote(ctx context.Context, id types.NoteID) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note %s: %w", id, err)
	}
	return requireAffected(result, "note", id)
}
