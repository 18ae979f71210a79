package database

import (
	"context"

	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// ActionRepository combines all action-related operations.
type ActionRepository interface {
	GetActionByID(ctx context.Context, id types.ActionID) (*models.Action, error)
	ListActionsByTask(ctx context.Context, taskID types.TaskID, search string, page models.PageRequest) ([]*models.Action, int, error)
	CreateAction(ctx context.Context, a *models.Action) error
	UpdateAction(ctx context.Context, a *models.Action) error
	DeleteAction(ctx context.Context, id types.ActionID) error
}
