package action

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/planner/internal/database"
	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// Service defines all action-related business operations.
// Day numbers are entered by hand and are never derived from the task schedule.
type Service interface {
	GetAction(ctx context.Context, id types.ActionID) (*models.Action, error)
	ListActions(ctx context.Context, taskID types.TaskID, search string, page models.PageRequest) (models.Page[*models.Action], error)

	CreateAction(ctx context.Context, req CreateActionRequest) (*models.Action, error)
	UpdateAction(ctx context.Context, req UpdateActionRequest) (*models.Action, error)
	DeleteAction(ctx context.Context, id types.ActionID) error
}

// CreateActionRequest encapsulates data for creating an action
type CreateActionRequest struct {
	TaskID  types.TaskID
	Details string
	Day     *int
}

// UpdateActionRequest encapsulates data for updating an action. Nil fields are left unchanged.
type UpdateActionRequest struct {
	ID      types.ActionID
	Details *string
	Day     *int
}

type repository interface {
	TaskExists(ctx context.Context, id types.TaskID) (bool, error)

	database.ActionRepository
}

type service struct {
	repo repository
}

// NewService creates a new action service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAction(ctx context.Context, id types.ActionID) (*models.Action, error) {
	a, err := s.repo.GetActionByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return a, nil
}

func (s *service) ListActions(ctx context.Context, taskID types.TaskID, search string, page models.PageRequest) (models.Page[*models.Action], error) {
	if err := s.requireTask(ctx, taskID); err != nil {
		return models.Page[*models.Action]{}, err
	}

	actions, total, err := s.repo.ListActionsByTask(ctx, taskID, strings.TrimSpace(search), page)
	if err != nil {
		return models.Page[*models.Action]{}, fmt.Errorf("failed to list actions: %w", err)
	}
	return models.NewPage(actions, page, total), nil
}

func (s *service) CreateAction(ctx context.Context, req CreateActionRequest) (*models.Action, error) {
	details, err := validateDetails(req.Details)
	if err != nil {
		return nil, err
	}
	if req.Day == nil {
		return nil, ErrDayRequired
	}
	if err := validateDay(*req.Day); err != nil {
		return nil, err
	}
	if err := s.requireTask(ctx, req.TaskID); err != nil {
		return nil, err
	}

	a := &models.Action{TaskID: req.TaskID, Details: details, Day: *req.Day}
	if err := s.repo.CreateAction(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create action: %w", err)
	}
	return a, nil
}

func (s *service) UpdateAction(ctx context.Context, req UpdateActionRequest) (*models.Action, error) {
	a, err := s.GetAction(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Details != nil {
		details, err := validateDetails(*req.Details)
		if err != nil {
			return nil, err
		}
		a.Details = details
	}
	if req.Day != nil {
		if err := validateDay(*req.Day); err != nil {
			return nil, err
		}
		a.Day = *req.Day
	}

	if err := s.repo.UpdateAction(ctx, a); err != nil {
		return nil, mapNotFound(err)
	}
	return a, nil
}

func (s *service) DeleteAction(ctx context.Context, id types.ActionID) error {
	if err := s.repo.DeleteAction(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func (s *service) requireTask(ctx context.Context, id types.TaskID) error {
	exists, err := s.repo.TaskExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrTaskNotFound
	}
	return nil
}

func validateDetails(details string) (string, error) {
	details = strings.TrimSpace(details)
	if details == "" {
		return "", ErrDetailsBlank
	}
	if utf8.RuneCountInString(details) > maxDetailsLength {
		return "", ErrDetailsTooLong
	}
	return details, nil
}

func validateDay(day int) error {
	if day < 1 {
		return ErrDayTooSmall
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return ErrActionNotFound
	}
	return err
}
