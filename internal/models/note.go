package models

import (
	"time"

	"github.com/thenoetrevino/planner/internal/types"
)

// Note is free text attached to exactly one of a project or a task
type Note struct {
	ID        types.NoteID     `json:"id"`
	ProjectID *types.ProjectID `json:"projectId"`
	TaskID    *types.TaskID    `json:"taskId"`
	Body      string           `json:"body"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ErrNoteTarget is returned when a note has both or neither of project and task
var ErrNoteTarget = BadRequest("Provide either projectId or taskId")

// HasExactlyOneTarget reports whether exactly one of projectID and taskID is set.
// It guards both the request boundary and the write path for notes.
func HasExactlyOneTarget(projectID *types.ProjectID, taskID *types.TaskID) bool {
	return (projectID != nil) != (taskID != nil)
}
