package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/planner/internal/database"
	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/schedule"
	"github.com/thenoetrevino/planner/internal/types"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetTask(ctx context.Context, id types.TaskID) (*models.Task, error)
	ListTasks(ctx context.Context, projectID types.ProjectID, search string, page models.PageRequest) (models.Page[*models.Task], error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id types.TaskID) error
}

// CreateTaskRequest encapsulates data for creating a task.
// StartAt, EndAt and Duration are pointers so that a missing value can be told apart from a zero one.
type CreateTaskRequest struct {
	ProjectID   types.ProjectID
	Title       string
	Description string
	IsActivity  bool
	Duration    *int
	StartAt     *time.Time
	EndAt       *time.Time
	Color       string
}

// UpdateTaskRequest encapsulates data for updating a task. Nil fields are left unchanged.
type UpdateTaskRequest struct {
	ID          types.TaskID
	Title       *string
	Description *string
	IsActivity  *bool
	Duration    *int
	StartAt     *time.Time
	EndAt       *time.Time
	Color       *string
}

// repository defines the data access methods needed by the task service
// This interface is private to the service layer
type repository interface {
	GetProjectByID(ctx context.Context, id types.ProjectID) (*models.Project, error)
	ProjectExists(ctx context.Context, id types.ProjectID) (bool, error)

	database.TaskReader
	database.TaskWriter
}

// service implements Service interface with private repository
type service struct {
	repo repository
}

// NewService creates a new task service with private repository
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetTask retrieves a task by ID
func (s *service) GetTask(ctx context.Context, id types.TaskID) (*models.Task, error) {
	t, err := s.repo.GetTaskByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrTaskNotFound)
	}
	return t, nil
}

// ListTasks returns a page of a project's tasks, earliest end first
func (s *service) ListTasks(ctx context.Context, projectID types.ProjectID, search string, page models.PageRequest) (models.Page[*models.Task], error) {
	exists, err := s.repo.ProjectExists(ctx, projectID)
	if err != nil {
		return models.Page[*models.Task]{}, err
	}
	if !exists {
		return models.Page[*models.Task]{}, ErrProjectNotFound
	}

	tasks, total, err := s.repo.ListTasksByProject(ctx, projectID, strings.TrimSpace(search), page)
	if err != nil {
		return models.Page[*models.Task]{}, fmt.Errorf("failed to list tasks: %w", err)
	}
	return models.NewPage(tasks, page, total), nil
}

// CreateTask validates the request, derives the schedule days and stores the task
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := validateCreate(&req); err != nil {
		return nil, err
	}

	project, err := s.repo.GetProjectByID(ctx, req.ProjectID)
	if err != nil {
		return nil, mapNotFound(err, ErrProjectNotFound)
	}

	t := &models.Task{Item: models.Item{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		IsActivity:  req.IsActivity,
		Duration:    *req.Duration,
		Schedule:    models.Schedule{StartAt: *req.StartAt, EndAt: *req.EndAt},
		Color:       req.Color,
	}}
	if err := schedule.Apply(&t.Schedule, project.StartDate, schedule.TaskDays); err != nil {
		return nil, err
	}

	if err := s.repo.CreateTask(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return t, nil
}

// UpdateTask merges the request into the stored task and re-derives its days
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	t, err := s.repo.GetTaskByID(ctx, req.ID)
	if err != nil {
		return nil, mapNotFound(err, ErrTaskNotFound)
	}

	if err := merge(t, req); err != nil {
		return nil, err
	}

	project, err := s.repo.GetProjectByID(ctx, t.ProjectID)
	if err != nil {
		return nil, mapNotFound(err, ErrProjectNotFound)
	}
	if err := schedule.Apply(&t.Schedule, project.StartDate, schedule.TaskDays); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTask(ctx, t); err != nil {
		return nil, mapNotFound(err, ErrTaskNotFound)
	}
	return t, nil
}

// DeleteTask removes a task with its actions and notes
func (s *service) DeleteTask(ctx context.Context, id types.TaskID) error {
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return mapNotFound(err, ErrTaskNotFound)
	}
	return nil
}

func validateCreate(req *CreateTaskRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(req.Title) > maxTitleLength {
		return ErrTitleTooLong
	}
	if utf8.RuneCountInString(req.Color) > maxColorLength {
		return ErrColorTooLong
	}
	if req.StartAt == nil {
		return ErrStartAtRequired
	}
	if req.EndAt == nil {
		return ErrEndAtRequired
	}
	if req.Duration == nil {
		return ErrDurationRequired
	}
	if *req.Duration < 0 {
		return ErrNegativeDuration
	}
	return nil
}

func merge(t *models.Task, req UpdateTaskRequest) error {
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return ErrTitleBlank
		}
		if utf8.RuneCountInString(title) > maxTitleLength {
			return ErrTitleTooLong
		}
		t.Title = title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.IsActivity != nil {
		t.IsActivity = *req.IsActivity
	}
	if req.Duration != nil {
		if *req.Duration < 0 {
			return ErrNegativeDuration
		}
		t.Duration = *req.Duration
	}
	if req.StartAt != nil {
		t.StartAt = *req.StartAt
	}
	if req.EndAt != nil {
		t.EndAt = *req.EndAt
	}
	if req.Color != nil {
		if utf8.RuneCountInString(*req.Color) > maxColorLength {
			return ErrColorTooLong
		}
		t.Color = *req.Color
	}

	if t.StartAt.IsZero() {
		return ErrStartAtRequired
	}
	if t.EndAt.IsZero() {
		return ErrEndAtRequired
	}
	return nil
}

func mapNotFound(err, notFound error) error {
	if errors.Is(err, database.ErrNotFound) {
		return notFound
	}
	return err
}
