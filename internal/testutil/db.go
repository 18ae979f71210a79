package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/planner/internal/database"
	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// SetupTestDB creates an in-memory database with the full schema applied.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestRepo wraps a fresh in-memory database in a Repository
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t))
}

// At returns 09:00 UTC on the given day, a convenient mid-morning instant
func At(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

// CreateTestProject inserts a project starting on start
func CreateTestProject(t *testing.T, repo database.DataStore, name string, start types.Date) *models.Project {
	t.Helper()
	p := &models.Project{Name: name, StartDate: start}
	if err := repo.CreateProject(context.Background(), p); err != nil {
		t.Fatalf("Failed to create project %q: %v", name, err)
	}
	return p
}

// CreateTestTask inserts a task with the given window and derived days
func CreateTestTask(t *testing.T, repo database.DataStore, projectID types.ProjectID, title string,
	start, end time.Time, startDay, endDay int) *models.Task {
	t.Helper()
	task := &models.Task{Item: models.Item{
		ProjectID: projectID,
		Title:     title,
		Duration:  endDay - startDay + 1,
		Schedule:  models.Schedule{StartAt: start, EndAt: end, StartDay: startDay, EndDay: endDay},
	}}
	if err := repo.CreateTask(context.Background(), task); err != nil {
		t.Fatalf("Failed to create task %q: %v", title, err)
	}
	return task
}
