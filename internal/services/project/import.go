package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/planner/internal/database"
	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// ImportProjectRequest selects a source project and which of its contents to copy
type ImportProjectRequest struct {
	SourceProjectID types.ProjectID
	NewProjectName  string
	// Description overrides the source description when non-nil
	Description   *string
	ImportTasks   bool
	ImportTags    bool
	ImportNotes   bool
	ImportActions bool
}

// ImportResult reports what an import created
type ImportResult struct {
	NewProjectID         types.ProjectID `json:"newProjectId"`
	NewProjectName       string          `json:"newProjectName"`
	ImportedTasksCount   int             `json:"importedTasksCount"`
	ImportedNotesCount   int             `json:"importedNotesCount"`
	ImportedTagsCount    int             `json:"importedTagsCount"`
	ImportedActionsCount int             `json:"importedActionsCount"`
	Message              string          `json:"message"`
}

// ImportProject creates a new project from an existing one. Copied items keep
// their stored start and end days; nothing is recomputed because the new
// project inherits the source start date. Actions are never copied, so
// ImportedActionsCount is always zero. All writes share one transaction.
func (s *service) ImportProject(ctx context.Context, req ImportProjectRequest) (*ImportResult, error) {
	source, err := s.repo.GetProjectByID(ctx, req.SourceProjectID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrSourceNotFound
		}
		return nil, err
	}

	name, err := validateName(req.NewProjectName)
	if err != nil {
		return nil, err
	}
	taken, err := s.repo.ProjectNameExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrTargetNameExists
	}

	target := &models.Project{
		Name:        name,
		Description: source.Description,
		StartDate:   source.StartDate,
	}
	if req.Description != nil {
		target.Description = *req.Description
	}

	result := &ImportResult{NewProjectName: name}
	err = s.repo.WithTx(ctx, func(tx database.DataStore) error {
		if err := tx.CreateProject(ctx, target); err != nil {
			return err
		}
		result.NewProjectID = target.ID

		if req.ImportTasks {
			n, err := copyTasks(ctx, tx, source.ID, target.ID)
			if err != nil {
				return err
			}
			result.ImportedTasksCount = n
		}
		if req.ImportTags {
			n, err := copyTags(ctx, tx, source.ID, target.ID)
			if err != nil {
				return err
			}
			result.ImportedTagsCount = n
		}
		if req.ImportNotes {
			n, err := copyNotes(ctx, tx, source.ID, target.ID)
			if err != nil {
				return err
			}
			result.ImportedNotesCount = n
		}
		return nil
	})
	if err != nil {
		return nil, mapWriteErr(err)
	}

	result.Message = fmt.Sprintf("Successfully imported project '%s' with %d tasks, %d notes, and %d tags",
		result.NewProjectName, result.ImportedTasksCount, result.ImportedNotesCount, result.ImportedTagsCount)

	if s.recorder != nil {
		s.recorder.IncProjectsImported()
	}
	slog.Info("imported project",
		"source_id", source.ID,
		"target_id", result.NewProjectID,
		"tasks", result.ImportedTasksCount,
		"tags", result.ImportedTagsCount,
		"notes", result.ImportedNotesCount,
	)
	return result, nil
}

// cloneItem returns a copy of it owned by projectID with a fresh identity.
// Schedule fields, duration and color are kept as stored.
func cloneItem(it models.Item, projectID types.ProjectID) models.Item {
	it.ID = uuid.Nil
	it.ProjectID = projectID
	it.CreatedAt = time.Time{}
	it.UpdatedAt = time.Time{}
	return it
}

func copyTasks(ctx context.Context, tx database.DataStore, from, to types.ProjectID) (int, error) {
	tasks, err := tx.GetTasksByProject(ctx, from)
	if err != nil {
		return 0, err
	}
	for _, t := range tasks {
		clone := &models.Task{Item: cloneItem(t.Item, to)}
		if err := tx.CreateTask(ctx, clone); err != nil {
			return 0, fmt.Errorf("failed to copy task '%s': %w", t.Title, err)
		}
	}
	return len(tasks), nil
}

func copyTags(ctx context.Context, tx database.DataStore, from, to types.ProjectID) (int, error) {
	tags, err := tx.GetTagsByProject(ctx, from)
	if err != nil {
		return 0, err
	}
	for _, t := range tags {
		clone := &models.Tag{Item: cloneItem(t.Item, to)}
		if err := tx.CreateTag(ctx, clone); err != nil {
			return 0, fmt.Errorf("failed to copy tag '%s': %w", t.Title, err)
		}
	}
	return len(tags), nil
}

// copyNotes copies only notes attached to the project itself
func copyNotes(ctx context.Context, tx database.DataStore, from, to types.ProjectID) (int, error) {
	notes, err := tx.GetNotesByProject(ctx, from)
	if err != nil {
		return 0, err
	}
	for _, n := range notes {
		owner := to
		clone := &models.Note{ProjectID: &owner, Body: n.Body}
		if err := tx.CreateNote(ctx, clone); err != nil {
			return 0, fmt.Errorf("failed to copy note: %w", err)
		}
	}
	return len(notes), nil
}
