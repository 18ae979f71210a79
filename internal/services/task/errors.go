package task

import "github.com/thenoetrevino/planner/internal/models"

// Domain errors for task service
var (
	// Validation errors
	ErrTitleRequired    = models.BadRequest("Task title required")
	ErrTitleBlank       = models.BadRequest("Task title cannot be blank")
	ErrTitleTooLong     = models.BadRequest("Task title cannot exceed 160 characters")
	ErrColorTooLong     = models.BadRequest("color cannot exceed 32 characters")
	ErrStartAtRequired  = models.BadRequest("startAt is required")
	ErrEndAtRequired    = models.BadRequest("endAt is required")
	ErrDurationRequired = models.BadRequest("duration is required")
	ErrNegativeDuration = models.BadRequest("duration cannot be negative")

	// Lookup errors
	ErrTaskNotFound    = models.NotFound("Task not found")
	ErrProjectNotFound = models.NotFound("Project not found")
)

const (
	maxTitleLength = 160
	maxColorLength = 32
)
