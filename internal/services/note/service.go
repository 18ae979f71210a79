package note

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

// Service defines all note-related business operations
type Service interface {
	GetNote(ctx context.Context, id types.NoteID) (*models.Note, error)
	ListNotes(ctx context.Context, owner Owner, page models.PageRequest) (models.Page[*models.Note], error)

	CreateNote(ctx context.Context, req CreateNoteRequest) (*models.Note, error)
	UpdateNote(ctx context.Context, id types.NoteID, body string) (*models.Note, error)
	DeleteNote(ctx context.Context, id types.NoteID) error
}

// Owner selects the project or the task a note belongs to. Exactly one must be set.
type Owner struct {
	ProjectID *types.ProjectID
	TaskID    *types.TaskID
}

// CreateNoteRequest encapsulates data for creating a note
type CreateNoteRequest struct {
	Owner
	Body string
}

type repository interface {
	ProjectExists(ctx context.Context, id types.ProjectID) (bool, error)
	TaskExists(ctx context.Context, id types.TaskID) (bool, error)

	database.NoteRepository
}

type service struct {
	repo repository
}

// NewService creates a new note service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetNote retrieves a note by ID
func (s *service) GetNote(ctx context.Context, id types.NoteID) (*models.Note, error) {
	n, err := s.repo.GetNoteByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return n, nil
}

// ListNotes returns a page of the owner's notes, newest first
func (s *service) ListNotes(ctx context.Context, owner Owner, page models.PageRequest) (models.Page[*models.Note], error) {
	if err := s.checkOwner(ctx, owner); err != nil {
		return models.Page[*models.Note]{}, err
	}

	var (
		notes []*models.Note
		total int
		err   error
	)
	if owner.ProjectID != nil {
		notes, total, err = s.repo.ListNotesByProject(ctx, *owner.ProjectID, page)
	} else {
		notes, total, err = s.repo.ListNotesByTask(ctx, *owner.TaskID, page)
	}
	if err != nil {
		return models.Page[*models.Note]{}, fmt.Errorf("failed to list notes: %w", err)
	}
	return models.NewPage(notes, page, total), nil
}

// CreateNote attaches a new note to a project or a task
func (s *service) CreateNote(ctx context.Context, req CreateNoteRequest) (*models.Note, error) {
	body, err := validateBody(req.Body)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwner(ctx, req.Owner); err != nil {
		return nil, err
	}

	n := &models.Note{ProjectID: req.ProjectID, TaskID: req.TaskID, Body: body}
	if err := s.repo.CreateNote(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return n, nil
}

// UpdateNote replaces the body of a note. The owner never changes.
func (s *service) UpdateNote(ctx context.Context, id types.NoteID, body string) (*models.Note, error) {
	body, err := validateBody(body)
	if err != nil {
		return nil, err
	}

	n, err := s.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	n.Body = body
	if err := s.repo.UpdateNote(ctx, n); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return n, nil
}

// DeleteNote removes a note
func (s *service) DeleteNote(ctx context.Context, id types.NoteID) error {
	if err := s.repo.DeleteNote(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrNoteNotFound
		}
		return err
	}
	return nil
}

// checkOwner enforces the exactly-one-target rule and that the target exists
func (s *service) checkOwner(ctx context.Context, owner Owner) error {
	if !models.HasExactlyOneTarget(owner.ProjectID, owner.TaskID) {
		return ErrInvalidTarget
	}

	if owner.ProjectID != nil {
		exists, err := s.repo.ProjectExists(ctx, *owner.ProjectID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrProjectNotFound
		}
		return nil
	}

	exists, err := s.repo.TaskExists(ctx, *owner.TaskID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrTaskNotFound
	}
	return nil
}

func validateBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", ErrBodyBlank
	}
	if utf8.RuneCountInString(body) > maxBodyLength {
		return "", ErrBodyTooLong
	}
	return body, nil
}
