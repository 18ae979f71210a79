package project

import "github.com/thenoetrevino/planner/internal/models"

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyName          = models.BadRequest("Project name cannot be blank")
	ErrNameTooLong        = models.BadRequest("Project name cannot exceed 160 characters")
	ErrDescriptionTooLong = models.BadRequest("Project description cannot exceed 10000 characters")
	ErrStartDateRequired  = models.BadRequest("startDate is required")

	// Business logic errors
	ErrProjectNotFound  = models.NotFound("Project not found")
	ErrDuplicateName    = models.BadRequest("Project name already exists")
	ErrNameTaken        = models.Conflict("Project name already exists")
	ErrSourceNotFound   = models.NotFound("Source project not found")
	ErrTargetNameExists = models.BadRequest("Target project name already exists")
)

const (
	maxNameLength        = 160
	maxDescriptionLength = 10000
)
