package database

import (
	"context"

	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	GetProjectByID(ctx context.Context, id types.ProjectID) (*models.Project, error)
	ProjectExists(ctx context.Context, id types.ProjectID) (bool, error)
	ProjectNameExists(ctx context.Context, name string) (bool, error)
	ListProjects(ctx context.Context, page models.PageRequest) ([]*models.Project, int, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	CreateProject(ctx context.Context, p *models.Project) error
	UpdateProject(ctx context.Context, p *models.Project) error
	DeleteProject(ctx context.Context, id types.ProjectID) error
}

// ProjectRepository combines all project-related operations.
type ProjectRepository interface {
	ProjectReader
	ProjectWriter
}
