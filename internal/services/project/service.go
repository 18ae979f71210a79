package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/planner/internal/database"
	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/schedule"
	"github.com/thenoetrevino/planner/internal/types"
)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	GetProject(ctx context.Context, id types.ProjectID) (*models.Project, error)
	ListProjects(ctx context.Context, page models.PageRequest) (models.Page[*models.Project], error)

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id types.ProjectID) error

	// ImportProject clones a project's tasks, tags and notes into a new project
	ImportProject(ctx context.Context, req ImportProjectRequest) (*ImportResult, error)
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name        string
	Description string
	StartDate   types.Date
}

// UpdateProjectRequest encapsulates data for updating a project
type UpdateProjectRequest struct {
	ID          types.ProjectID
	Name        *string
	Description *string
	StartDate   *types.Date
}

// repository defines the data access methods needed by the project service
// This interface is private to the service layer
type repository interface {
	database.ProjectRepository

	// Transaction support
	WithTx(ctx context.Context, fn func(database.DataStore) error) error
}

// Recorder receives counts of completed project operations. It may be nil.
type Recorder interface {
	IncProjectsCreated()
	IncProjectsImported()
	AddTasksRescheduled(n int)
}

// service implements Service interface with private repository
type service struct {
	repo     repository
	recorder Recorder
}

// NewService creates a new project service with private repository
func NewService(repo repository, recorder Recorder) Service {
	return &service{
		repo:     repo,
		recorder: recorder,
	}
}

// GetProject retrieves a specific project
func (s *service) GetProject(ctx context.Context, id types.ProjectID) (*models.Project, error) {
	p, err := s.repo.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

// ListProjects returns a page of projects, newest first
func (s *service) ListProjects(ctx context.Context, page models.PageRequest) (models.Page[*models.Project], error) {
	projects, total, err := s.repo.ListProjects(ctx, page)
	if err != nil {
		return models.Page[*models.Project]{}, fmt.Errorf("failed to list projects: %w", err)
	}
	return models.NewPage(projects, page, total), nil
}

// CreateProject creates a new project with validation
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(req.Description) > maxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	if req.StartDate.IsZero() {
		return nil, ErrStartDateRequired
	}

	taken, err := s.repo.ProjectNameExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateName
	}

	p := &models.Project{Name: name, Description: req.Description, StartDate: req.StartDate}
	if err := s.repo.CreateProject(ctx, p); err != nil {
		return nil, mapWriteErr(err)
	}
	if s.recorder != nil {
		s.recorder.IncProjectsCreated()
	}
	return p, nil
}

// UpdateProject updates an existing project. Moving the start date
// reschedules every task of the project in the same transaction.
func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.Project, error) {
	existing, err := s.GetProject(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.Name != nil {
		name, err := validateName(*req.Name)
		if err != nil {
			return nil, err
		}
		// a case-only rename of the same project is not a clash
		if !strings.EqualFold(name, existing.Name) {
			taken, err := s.repo.ProjectNameExists(ctx, name)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrDuplicateName
			}
		}
		updated.Name = name
	}
	if req.Description != nil {
		if utf8.RuneCountInString(*req.Description) > maxDescriptionLength {
			return nil, ErrDescriptionTooLong
		}
		updated.Description = *req.Description
	}
	startChanged := false
	if req.StartDate != nil {
		if req.StartDate.IsZero() {
			return nil, ErrStartDateRequired
		}
		startChanged = !req.StartDate.Equal(existing.StartDate)
		updated.StartDate = *req.StartDate
	}

	rescheduled := 0
	err = s.repo.WithTx(ctx, func(tx database.DataStore) error {
		if err := tx.UpdateProject(ctx, &updated); err != nil {
			return err
		}
		if !startChanged {
			return nil
		}
		n, err := rescheduleTasks(ctx, tx, updated.ID, updated.StartDate)
		rescheduled = n
		return err
	})
	if err != nil {
		return nil, mapWriteErr(err)
	}
	if s.recorder != nil && rescheduled > 0 {
		s.recorder.AddTasksRescheduled(rescheduled)
	}
	return &updated, nil
}

// rescheduleTasks recomputes the days of every task in the project against
// a new start date and writes them back as one batch. Tags keep their days.
func rescheduleTasks(ctx context.Context, tx database.DataStore, projectID types.ProjectID, start types.Date) (int, error) {
	tasks, err := tx.GetTasksByProject(ctx, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to load tasks for reschedule: %w", err)
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	for _, t := range tasks {
		if err := schedule.Apply(&t.Schedule, start, schedule.TaskDays); err != nil {
			return 0, models.BadRequest(fmt.Sprintf("Cannot reschedule task '%s': %s", t.Title, models.Detail(err)))
		}
	}

	if err := tx.UpdateTaskSchedules(ctx, tasks); err != nil {
		return 0, fmt.Errorf("failed to save rescheduled tasks: %w", err)
	}
	slog.Debug("rescheduled tasks", "project_id", projectID, "count", len(tasks))
	return len(tasks), nil
}

// DeleteProject deletes a project together with its tasks, tags and notes
func (s *service) DeleteProject(ctx context.Context, id types.ProjectID) error {
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// mapWriteErr translates store errors from project writes into domain errors
func mapWriteErr(err error) error {
	switch {
	case errors.Is(err, database.ErrUniqueViolation):
		return ErrNameTaken
	case errors.Is(err, database.ErrNotFound):
		return ErrProjectNotFound
	default:
		return err
	}
}
