package note

import "github.com/thenoetrevino/planner/internal/models"

// Domain errors for note service
var (
	ErrInvalidTarget = models.ErrNoteTarget
	ErrBodyBlank     = models.BadRequest("Note body cannot be blank")
	ErrBodyTooLong   = models.BadRequest("Note body cannot exceed 20000 characters")

	ErrNoteNotFound    = models.NotFound("Note not found")
	ErrProjectNotFound = models.NotFound("Project not found")
	ErrTaskNotFound    = models.NotFound("Task not found")
)

const maxBodyLength = 20000
