package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/planner/internal/types"
)

// Schedule is the absolute window of a schedulable item together with its
// project-relative day offsets. StartDay and EndDay are derived, never set by callers.
type Schedule struct {
	StartAt  time.Time `json:"startAt"`
	EndAt    time.Time `json:"endAt"`
	StartDay int       `json:"startDay"`
	EndDay   int       `json:"endDay"`
}

// Item is the shape shared by tasks and tags
type Item struct {
	ID          uuid.UUID       `json:"id"`
	ProjectID   types.ProjectID `json:"projectId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	IsActivity  bool            `json:"isActivity"`
	Duration    int             `json:"duration"`
	Schedule
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Task is a schedulable item numbered from day 1 and the parent of actions
type Task struct {
	Item
}

// Tag is a schedulable item numbered from day 0, used as a timeline marker
type Tag struct {
	Item
}
