package models

import (
	"time"

	"github.com/thenoetrevino/planner/internal/types"
)

// Project is the top-level planning unit. Tasks and tags are scheduled
// relative to its StartDate.
type Project struct {
	ID          types.ProjectID `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	StartDate   types.Date      `json:"startDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
