// Package metrics keeps in-process counters for the HTTP service.
package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics tracks service statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal    atomic.Int64
	RequestErrors    atomic.Int64
	ProjectsCreated  atomic.Int64
	ProjectsImported atomic.Int64
	TasksRescheduled atomic.Int64
	ItemsCreated     atomic.Int64
	StartTime        time.Time
}

// New creates a new Metrics instance
func New() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequests counts a served request; status >= 500 also counts as an error
func (m *Metrics) IncRequests(status int) {
	m.RequestsTotal.Add(1)
	if status >= 500 {
		m.RequestErrors.Add(1)
	}
}

// IncProjectsCreated increments the created projects counter
func (m *Metrics) IncProjectsCreated() {
	m.ProjectsCreated.Add(1)
}

// IncProjectsImported increments the imported projects counter
func (m *Metrics) IncProjectsImported() {
	m.ProjectsImported.Add(1)
}

// IncItemsCreated increments the counter of created tasks, tags, notes and actions
func (m *Metrics) IncItemsCreated() {
	m.ItemsCreated.Add(1)
}

// AddTasksRescheduled adds n to the rescheduled tasks counter
func (m *Metrics) AddTasksRescheduled(n int) {
	m.TasksRescheduled.Add(int64(n))
}

// Snapshot represents a point-in-time snapshot of metrics
type Snapshot struct {
	RequestsTotal    int64     `json:"requests_total"`
	RequestErrors    int64     `json:"request_errors"`
	ProjectsCreated  int64     `json:"projects_created"`
	ProjectsImported int64     `json:"projects_imported"`
	TasksRescheduled int64     `json:"tasks_rescheduled"`
	ItemsCreated     int64     `json:"items_created"`
	StartTime        time.Time `json:"start_time"`
	Uptime           string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() Snapshot {
	return Snapshot{
		RequestsTotal:    m.RequestsTotal.Load(),
		RequestErrors:    m.RequestErrors.Load(),
		ProjectsCreated:  m.ProjectsCreated.Load(),
		ProjectsImported: m.ProjectsImported.Load(),
		TasksRescheduled: m.TasksRescheduled.Load(),
		ItemsCreated:     m.ItemsCreated.Load(),
		StartTime:        m.StartTime,
		Uptime:           time.Since(m.StartTime).Round(time.Second).String(),
	}
}
