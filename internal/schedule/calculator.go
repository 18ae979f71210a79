// Package schedule converts absolute start/end instants into day offsets
// relative to a project's start date.
package schedule

import (
	"time"

	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// Convention selects how the project start date is numbered
type Convention int

const (
	// TaskDays numbers the project start date as day 1
	TaskDays Convention = iota
	// TagDays numbers the project start date as day 0
	TagDays
)

// Offset is added to the raw day difference
func (c Convention) Offset() int {
	if c == TaskDays {
		return 1
	}
	return 0
}

func (c Convention) String() string {
	if c == TaskDays {
		return "task"
	}
	return "tag"
}

var (
	ErrProjectStartRequired = models.BadRequest("Project start date is required")
	ErrStartBeforeProject   = models.BadRequest("startAt cannot be before the project start date")
	ErrEndBeforeStart       = models.BadRequest("endAt cannot be before startAt")
)

// Calculate returns the start and end day of the window [startAt, endAt]
// for a project starting on projectStart. Time of day is discarded after
// converting both instants to UTC.
func Calculate(startAt, endAt time.Time, projectStart types.Date, conv Convention) (startDay, endDay int, err error) {
	if projectStart.IsZero() {
		return 0, 0, ErrProjectStartRequired
	}

	startDay = projectStart.DaysUntil(types.DateOf(startAt)) + conv.Offset()
	if startDay < conv.Offset() {
		return 0, 0, ErrStartBeforeProject
	}

	endDay = projectStart.DaysUntil(types.DateOf(endAt)) + conv.Offset()
	if endDay < startDay {
		return 0, 0, ErrEndBeforeStart
	}

	return startDay, endDay, nil
}

// Apply recomputes the derived days of s in place. s is left untouched on error.
func Apply(s *models.Schedule, projectStart types.Date, conv Convention) error {
	startDay, endDay, err := Calculate(s.StartAt, s.EndAt, projectStart, conv)
	if err != nil {
		return err
	}
	s.StartDay = startDay
	s.EndDay = endDay
	return nil
}
