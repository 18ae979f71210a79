package action

import "github.com/thenoetrevino/planner/internal/models"

// Domain errors for action service
var (
	ErrDetailsBlank   = models.BadRequest("Action details cannot be blank")
	ErrDetailsTooLong = models.BadRequest("Action details cannot exceed 10000 characters")
	ErrDayRequired    = models.BadRequest("day is required")
	ErrDayTooSmall    = models.BadRequest("Day must be at least 1")

	ErrActionNotFound = models.NotFound("Action not found")
	ErrTaskNotFound   = models.NotFound("Task not found")
)

const maxDetailsLength = 10000
