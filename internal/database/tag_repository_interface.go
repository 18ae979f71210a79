package database

import (
	"context"

	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// TagReader defines read operations for tags.
type TagReader interface {
	GetTagByID(ctx context.Context, id types.TagID) (*models.Tag, error)
	ListTagsByProject(ctx context.Context, projectID types.ProjectID, search string, page models.PageRequest) ([]*models.Tag, int, error)
	GetTagsByProject(ctx context.Context, projectID types.ProjectID) ([]*models.Tag, error)
}

// TagWriter defines write operations for tags.
type TagWriter interface {
	CreateTag(ctx context.Context, t *models.Tag) error
	UpdateTag(ctx context.Context, t *models.Tag) error
	DeleteTag(ctx context.Context, id types.TagID) error
}

// TagRepository combines all tag-related operations.
type TagRepository interface {
	TagReader
	TagWriter
}
