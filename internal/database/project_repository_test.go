package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

func TestCreateAndGetProject(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	p := createTestProject(t, repo, "Bridge Build")
	if p.ID == uuid.Nil {
		t.Fatal("expected an ID to be assigned")
	}

	got, err := repo.GetProjectByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProjectByID failed: %v", err)
	}
	if got.Name != "Bridge Build" {
		t.Errorf("Name = %q, want %q", got.Name, "Bridge Build")
	}
	if !got.StartDate.Equal(types.NewDate(2024, time.January, 1)) {
		t.Errorf("StartDate = %v, want 2024-01-01", got.StartDate)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps should round-trip")
	}
}

func TestGetProjectByID_NotFound(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)

	_, err := repo.GetProjectByID(context.Background(), types.NewID())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateProject_DuplicateNameIgnoresCase(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	createTestProject(t, repo, "Alpha")

	err := repo.CreateProject(ctx, &models.Project{Name: "ALPHA"})
	if !errors.Is(err, ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got %v", err)
	}

	exists, err := repo.ProjectNameExists(ctx, "alpha")
	if err != nil {
		t.Fatalf("ProjectNameExists failed: %v", err)
	}
	if !exists {
		t.Error("name lookup should ignore case")
	}
}

func TestProjectNameUniqueness_FoldsNonASCII(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	createTestProject(t, repo, "Émile")

	err := repo.CreateProject(ctx, &models.Project{Name: "émile"})
	if !errors.Is(err, ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation for a non-ASCII case variant, got %v", err)
	}

	for _, name := range []string{"ÉMILE", "  émile "} {
		exists, err := repo.ProjectNameExists(ctx, name)
		if err != nil {
			t.Fatalf("ProjectNameExists(%q) failed: %v", name, err)
		}
		if !exists {
			t.Errorf("ProjectNameExists(%q) = false, want true", name)
		}
	}

	other := createTestProject(t, repo, "Ödön")
	other.Name = "éMILE"
	if err := repo.UpdateProject(ctx, other); !errors.Is(err, ErrUniqueViolation) {
		t.Errorf("rename onto a case variant: expected ErrUniqueViolation, got %v", err)
	}

	// renaming a project to a case variant of its own name keeps the key
	other.Name = "ödön"
	if err := repo.UpdateProject(ctx, other); err != nil {
		t.Errorf("case-only rename failed: %v", err)
	}
}

func TestProjectWithoutStartDate(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	p := &models.Project{Name: "Undated"}
	if err := repo.CreateProject(ctx, p); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	got, err := repo.GetProjectByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProjectByID failed: %v", err)
	}
	if !got.StartDate.IsZero() {
		t.Errorf("expected zero start date, got %v", got.StartDate)
	}
}

func TestListProjects_Pagination(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"One", "Two", "Three"} {
		createTestProject(t, repo, name)
	}

	projects, total, err := repo.ListProjects(ctx, models.PageRequest{Page: 0, Size: 2})
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(projects) != 2 {
		t.Fatalf("len = %d, want 2", len(projects))
	}
	// newest first
	if projects[0].Name != "Three" {
		t.Errorf("first = %q, want Three", projects[0].Name)
	}

	projects, _, err = repo.ListProjects(ctx, models.PageRequest{Page: 1, Size: 2})
	if err != nil {
		t.Fatalf("ListProjects page 1 failed: %v", err)
	}
	if len(projects) != 1 || projects[0].Name != "One" {
		t.Errorf("second page = %v, want [One]", projects)
	}
}

func TestUpdateAndDeleteProject(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	p := createTestProject(t, repo, "Draft")
	p.Name = "Final"
	p.StartDate = types.NewDate(2024, time.March, 4)
	if err := repo.UpdateProject(ctx, p); err != nil {
		t.Fatalf("UpdateProject failed: %v", err)
	}

	got, _ := repo.GetProjectByID(ctx, p.ID)
	if got.Name != "Final" || !got.StartDate.Equal(types.NewDate(2024, time.March, 4)) {
		t.Errorf("update not persisted: %+v", got)
	}

	if err := repo.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}
	if err := repo.DeleteProject(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestDeleteProject_CascadesToChildren(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()

	p := createTestProject(t, repo, "Doomed")
	task := createTestTask(t, repo, p.ID, "Dig", day(2024, time.January, 2), day(2024, time.January, 3))
	if err := repo.CreateAction(ctx, &models.Action{TaskID: task.ID, Details: "shovel", Day: 1}); err != nil {
		t.Fatalf("CreateAction failed: %v", err)
	}

	if err := repo.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}

	exists, err := repo.TaskExists(ctx, task.ID)
	if err != nil {
		t.Fatalf("TaskExists failed: %v", err)
	}
	if exists {
		t.Error("task should be removed with its project")
	}
}
