package database

import (
	"context"

	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// NoteReader defines read operations for notes.
type NoteReader interface {
	GetNoteByID(ctx context.Context, id types.NoteID) (*models.Note, error)
	ListNotesByProject(ctx context.Context, projectID types.ProjectID, page models.PageRequest) ([]*models.Note, int, error)
	ListNotesByTask(ctx context.Context, taskID types.TaskID, page models.PageRequest) ([]*models.Note, int, error)
	GetNotesByProject(ctx context.Context, projectID types.ProjectID) ([]*models.Note, error)
}

// NoteWriter defines write operations for notes.
type NoteWriter interface {
	CreateNote(ctx context.Context, n *models.Note) error
	UpdateNote(ctx context.Context, n *models.Note) error
	DeleteNote(ctx context.Context, id types.NoteID) error
}

// NoteRepository combines all note-related operations.
type NoteRepository interface {
	NoteReader
	NoteWriter
}
