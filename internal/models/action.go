package models

import (
	"time"

	"github.com/thenoetrevino/planner/internal/types"
)

// Action is a narrative step inside a task. Day is supplied by the user, not derived.
type Action struct {
	ID        types.ActionID `json:"id"`
	TaskID    types.TaskID   `json:"taskId"`
	Details   string         `json:"details"`
	Day       int            `json:"day"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
