package tag

import "github.com/thenoetrevino/planner/internal/models"

// Domain errors for tag service
var (
	// Validation errors
	ErrTitleRequired    = models.BadRequest("Tag title required")
	ErrTitleBlank       = models.BadRequest("Tag title cannot be blank")
	ErrTitleTooLong     = models.BadRequest("Tag title cannot exceed 160 characters")
	ErrColorTooLong     = models.BadRequest("color cannot exceed 32 characters")
	ErrStartAtRequired  = models.BadRequest("startAt is required")
	ErrEndAtRequired    = models.BadRequest("endAt is required")
	ErrDurationRequired = models.BadRequest("duration is required")
	ErrNegativeDuration = models.BadRequest("duration cannot be negative")

	// Lookup errors
	ErrTagNotFound     = models.NotFound("Tag not found")
	ErrProjectNotFound = models.NotFound("Project not found")
)

const (
	maxTitleLength = 160
	maxColorLength = 32
)
