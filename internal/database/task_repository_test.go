package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

func TestTaskRoundTrip(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()
	p := createTestProject(t, repo, "Roundtrip")

	task := &models.Task{Item: models.Item{
		ProjectID:   p.ID,
		Title:       "Pour foundation",
		Description: "east side",
		IsActivity:  true,
		Duration:    3,
		Schedule: models.Schedule{
			StartAt:  time.Date(2024, time.January, 5, 14, 30, 0, 0, time.UTC),
			EndAt:    time.Date(2024, time.January, 7, 8, 0, 0, 0, time.UTC),
			StartDay: 5,
			EndDay:   7,
		},
		Color: "#ff0000",
	}}
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	got, err := repo.GetTaskByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTaskByID failed: %v", err)
	}
	if got.Title != task.Title || got.Description != task.Description || !got.IsActivity {
		t.Errorf("fields mismatch: %+v", got.Item)
	}
	if !got.StartAt.Equal(task.StartAt) || !got.EndAt.Equal(task.EndAt) {
		t.Errorf("instants mismatch: got %v..%v", got.StartAt, got.EndAt)
	}
	if got.StartDay != 5 || got.EndDay != 7 || got.Duration != 3 || got.Color != "#ff0000" {
		t.Errorf("derived fields mismatch: %+v", got.Schedule)
	}
}

func TestCreateTask_UnknownProject(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)

	task := &models.Task{Item: models.Item{
		ProjectID: types.NewID(),
		Title:     "Orphan",
		Schedule:  models.Schedule{StartAt: day(2024, 1, 1), EndAt: day(2024, 1, 1), StartDay: 1, EndDay: 1},
	}}
	if err := repo.CreateTask(context.Background(), task); err == nil {
		t.Fatal("expected foreign key failure for unknown project")
	}
}

func TestListTasksByProject_OrderedByEndAt(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()
	p := createTestProject(t, repo, "Ordering")
	other := createTestProject(t, repo, "Other")

	createTestTask(t, repo, p.ID, "late", day(2024, 1, 1), day(2024, 1, 20))
	createTestTask(t, repo, p.ID, "early", day(2024, 1, 1), day(2024, 1, 2))
	createTestTask(t, repo, p.ID, "middle", day(2024, 1, 1), day(2024, 1, 10))
	createTestTask(t, repo, other.ID, "foreign", day(2024, 1, 1), day(2024, 1, 1))

	tasks, total, err := repo.ListTasksByProject(ctx, p.ID, "", models.PageRequest{Size: 20})
	if err != nil {
		t.Fatalf("ListTasksByProject failed: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	want := []string{"early", "middle", "late"}
	for i, task := range tasks {
		if task.Title != want[i] {
			t.Errorf("tasks[%d] = %q, want %q", i, task.Title, want[i])
		}
	}
}

func TestListTasksByProject_Search(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()
	p := createTestProject(t, repo, "Search")

	createTestTask(t, repo, p.ID, "Install Windows", day(2024, 1, 1), day(2024, 1, 2))
	createTestTask(t, repo, p.ID, "Paint walls", day(2024, 1, 1), day(2024, 1, 3))
	createTestTask(t, repo, p.ID, "100% done", day(2024, 1, 1), day(2024, 1, 4))

	tasks, total, err := repo.ListTasksByProject(ctx, p.ID, "windows", models.PageRequest{Size: 20})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || tasks[0].Title != "Install Windows" {
		t.Errorf("case-insensitive search returned %d results", total)
	}

	createTestTask(t, repo, p.ID, "ÉLAGAGE des arbres", day(2024, 1, 1), day(2024, 1, 5))
	tasks, total, err = repo.ListTasksByProject(ctx, p.ID, "élagage", models.PageRequest{Size: 20})
	if err != nil {
		t.Fatalf("non-ASCII search failed: %v", err)
	}
	if total != 1 || tasks[0].Title != "ÉLAGAGE des arbres" {
		t.Errorf("non-ASCII case-insensitive search returned %d results", total)
	}

	_, total, err = repo.ListTasksByProject(ctx, p.ID, "%", models.PageRequest{Size: 20})
	if err != nil {
		t.Fatalf("wildcard search failed: %v", err)
	}
	if total != 1 {
		t.Errorf("'%%' should match literally, got %d results", total)
	}
}

func TestUpdateTaskSchedules(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()
	p := createTestProject(t, repo, "Cascade")

	a := createTestTask(t, repo, p.ID, "a", day(2024, 1, 1), day(2024, 1, 2))
	b := createTestTask(t, repo, p.ID, "b", day(2024, 1, 3), day(2024, 1, 4))

	a.StartDay, a.EndDay = 10, 11
	b.StartDay, b.EndDay = 12, 13
	if err := repo.UpdateTaskSchedules(ctx, []*models.Task{a, b}); err != nil {
		t.Fatalf("UpdateTaskSchedules failed: %v", err)
	}

	got, _ := repo.GetTaskByID(ctx, b.ID)
	if got.StartDay != 12 || got.EndDay != 13 {
		t.Errorf("b days = %d..%d, want 12..13", got.StartDay, got.EndDay)
	}

	missing := &models.Task{Item: models.Item{ID: types.NewID()}}
	if err := repo.UpdateTaskSchedules(ctx, []*models.Task{missing}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing task, got %v", err)
	}
}

func TestTagRepository(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()
	p := createTestProject(t, repo, "Tags")

	tag := &models.Tag{Item: models.Item{
		ProjectID: p.ID,
		Title:     "Milestone",
		Duration:  1,
		Schedule:  models.Schedule{StartAt: day(2024, 1, 1), EndAt: day(2024, 1, 1), StartDay: 0, EndDay: 0},
	}}
	if err := repo.CreateTag(ctx, tag); err != nil {
		t.Fatalf("CreateTag failed: %v", err)
	}

	tags, total, err := repo.ListTagsByProject(ctx, p.ID, "mile", models.PageRequest{Size: 20})
	if err != nil {
		t.Fatalf("ListTagsByProject failed: %v", err)
	}
	if total != 1 || tags[0].ID != tag.ID {
		t.Fatalf("expected the tag back, got %d", total)
	}

	tag.Title = "Gate"
	if err := repo.UpdateTag(ctx, tag); err != nil {
		t.Fatalf("UpdateTag failed: %v", err)
	}
	got, _ := repo.GetTagByID(ctx, tag.ID)
	if got.Title != "Gate" {
		t.Errorf("Title = %q, want Gate", got.Title)
	}

	if err := repo.DeleteTag(ctx, tag.ID); err != nil {
		t.Fatalf("DeleteTag failed: %v", err)
	}
	if _, err := repo.GetTagByID(ctx, tag.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
