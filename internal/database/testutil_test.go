package database

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestRepo opens a migrated in-memory database and wraps it in a Repository
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db)
}

// ============================================================================
// FIXTURES
// ============================================================================

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func createTestProject(t *testing.T, repo *Repository, name string) *models.Project {
	t.Helper()
	p := &models.Project{
		Name:      name,
		StartDate: types.NewDate(2024, time.January, 1),
	}
	if err := repo.CreateProject(context.Background(), p); err != nil {
		t.Fatalf("Failed to create project %q: %v", name, err)
	}
	return p
}

func createTestTask(t *testing.T, repo *Repository, projectID types.ProjectID, title string, start, end time.Time) *models.Task {
	t.Helper()
	task := &models.Task{Item: models.Item{
		ProjectID: projectID,
		Title:     title,
		Duration:  1,
		Schedule:  models.Schedule{StartAt: start, EndAt: end, StartDay: 1, EndDay: 1},
	}}
	if err := repo.CreateTask(context.Background(), task); err != nil {
		t.Fatalf("Failed to create task %q: %v", title, err)
	}
	return task
}
