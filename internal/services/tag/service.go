package tag

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

// Service defines all tag-related business operations.
// Tags are scheduled like tasks but number the project start date as day 0.
type Service interface {
	GetTag(ctx context.Context, id types.TagID) (*models.Tag, error)
	ListTags(ctx context.Context, projectID types.ProjectID, search string, page models.PageRequest) (models.Page[*models.Tag], error)

	CreateTag(ctx context.Context, req CreateTagRequest) (*models.Tag, error)
	UpdateTag(ctx context.Context, req UpdateTagRequest) (*models.Tag, error)
	DeleteTag(ctx context.Context, id types.TagID) error
}

// CreateTagRequest encapsulates data for creating a tag
type CreateTagRequest struct {
	ProjectID   types.ProjectID
	Title       string
	Description string
	IsActivity  bool
	Duration    *int
	StartAt     *time.Time
	EndAt       *time.Time
	Color       string
}

// UpdateTagRequest encapsulates data for updating a tag. Nil fields are left unchanged.
type UpdateTagRequest struct {
	ID          types.TagID
	Title       *string
	Description *string
	IsActivity  *bool
	Duration    *int
	StartAt     *time.Time
	EndAt       *time.Time
	Color       *string
}

type repository interface {
	GetProjectByID(ctx context.Context, id types.ProjectID) (*models.Project, error)
	ProjectExists(ctx context.Context, id types.ProjectID) (bool, error)

	database.TagReader
	database.TagWriter
}

type service struct {
	repo repository
}

// NewService creates a new tag service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

func (s *service) GetTag(ctx context.Context, id types.TagID) (*models.Tag, error) {
	t, err := s.repo.GetTagByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrTagNotFound)
	}
	return t, nil
}

func (s *service) ListTags(ctx context.Context, projectID types.ProjectID, search string, page models.PageRequest) (models.Page[*models.Tag], error) {
	exists, err := s.repo.ProjectExists(ctx, projectID)
	if err != nil {
		return models.Page[*models.Tag]{}, err
	}
	if !exists {
		return models.Page[*models.Tag]{}, ErrProjectNotFound
	}

	tags, total, err := s.repo.ListTagsByProject(ctx, projectID, strings.TrimSpace(search), page)
	if err != nil {
		return models.Page[*models.Tag]{}, fmt.Errorf("failed to list tags: %w", err)
	}
	return models.NewPage(tags, page, total), nil
}

func (s *service) CreateTag(ctx context.Context, req CreateTagRequest) (*models.Tag, error) {
	req.Title = strings.TrimSpace(req.Title)
	switch {
	case req.Title == "":
		return nil, ErrTitleRequired
	case utf8.RuneCountInString(req.Title) > maxTitleLength:
		return nil, ErrTitleTooLong
	case utf8.RuneCountInString(req.Color) > maxColorLength:
		return nil, ErrColorTooLong
	case req.StartAt == nil:
		return nil, ErrStartAtRequired
	case req.EndAt == nil:
		return nil, ErrEndAtRequired
	case req.Duration == nil:
		return nil, ErrDurationRequired
	case *req.Duration < 0:
		return nil, ErrNegativeDuration
	}

	project, err := s.repo.GetProjectByID(ctx, req.ProjectID)
	if err != nil {
		return nil, mapNotFound(err, ErrProjectNotFound)
	}

	t := &models.Tag{Item: models.Item{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		IsActivity:  req.IsActivity,
		Duration:    *req.Duration,
		Schedule:    models.Schedule{StartAt: *req.StartAt, EndAt: *req.EndAt},
		Color:       req.Color,
	}}
	if err := schedule.Apply(&t.Schedule, project.StartDate, schedule.TagDays); err != nil {
		return nil, err
	}

	if err := s.repo.CreateTag(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return t, nil
}

func (s *service) UpdateTag(ctx context.Context, req UpdateTagRequest) (*models.Tag, error) {
	t, err := s.repo.GetTagByID(ctx, req.ID)
	if err != nil {
		return nil, mapNotFound(err, ErrTagNotFound)
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrTitleBlank
		}
		if utf8.RuneCountInString(title) > maxTitleLength {
			return nil, ErrTitleTooLong
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
			return nil, ErrNegativeDuration
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
			return nil, ErrColorTooLong
		}
		t.Color = *req.Color
	}

	project, err := s.repo.GetProjectByID(ctx, t.ProjectID)
	if err != nil {
		return nil, mapNotFound(err, ErrProjectNotFound)
	}
	if err := schedule.Apply(&t.Schedule, project.StartDate, schedule.TagDays); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTag(ctx, t); err != nil {
		return nil, mapNotFound(err, ErrTagNotFound)
	}
	return t, nil
}

func (s *service) DeleteTag(ctx context.Context, id types.TagID) error {
	if err := s.repo.DeleteTag(ctx, id); err != nil {
		return mapNotFound(err, ErrTagNotFound)
	}
	return nil
}

func mapNotFound(err, notFound error) error {
	if errors.Is(err, database.ErrNotFound) {
		return notFound
	}
	return err
}
