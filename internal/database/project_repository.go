package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// ProjectRepo handles all project-related database operations.
type ProjectRepo struct {
	q DBTX
}

const projectColumns = `id, name, description, start_date, created_at, updated_at`

func scanProject(sc scanner) (*models.Project, error) {
	p := &models.Project{}
	err := sc.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate,
		timeText{&p.CreatedAt}, timeText{&p.UpdatedAt})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProject inserts p, assigning its ID and timestamps when unset.
// A name clash with an existing project (ignoring case) yields ErrUniqueViolation.
func (r *ProjectRepo) CreateProject(ctx context.Context, p *models.Project) error {
	if p.ID == uuid.Nil {
		p.ID = types.NewID()
	}
	now := timeNow()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO projects (`+projectColumns+`, name_key) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.StartDate, formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
		projectNameKey(p.Name),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to insert project '%s': %w", p.Name, ErrUniqueViolation)
		}
		return fmt.Errorf("failed to insert project '%s': %w", p.Name, err)
	}
	return nil
}

// GetProjectByID retrieves a project by ID
func (r *ProjectRepo) GetProjectByID(ctx context.Context, id types.ProjectID) (*models.Project, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err != nil {
		return nil, notFoundIfNoRows(err, "project", id)
	}
	return p, nil
}

// ProjectExists reports whether a project with id exists
func (r *ProjectRepo) ProjectExists(ctx context.Context, id types.ProjectID) (bool, error) {
	n, err := count(ctx, r.q, `SELECT COUNT(*) FROM projects WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check project %s: %w", id, err)
	}
	return n > 0, nil
}

// ProjectNameExists reports whether any project is named name, ignoring case
func (r *ProjectRepo) ProjectNameExists(ctx context.Context, name string) (bool, error) {
	n, err := count(ctx, r.q,
		`SELECT COUNT(*) FROM projects WHERE name_key = ?`, projectNameKey(name))
	if err != nil {
		return false, fmt.Errorf("failed to check project name '%s': %w", name, err)
	}
	return n > 0, nil
}

// ListProjects returns one page of projects, newest first, and the total count
func (r *ProjectRepo) ListProjects(ctx context.Context, page models.PageRequest) ([]*models.Project, int, error) {
	total, err := count(ctx, r.q, `SELECT COUNT(*) FROM projects`)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`,
		page.Size, page.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, total, rows.Err()
}

// UpdateProject writes name, description and start date of p
func (r *ProjectRepo) UpdateProject(ctx context.Context, p *models.Project) error {
	p.UpdatedAt = timeNow()
	result, err := r.q.ExecContext(ctx,
		`UPDATE projects SET name = ?, name_key = ?, description = ?, start_date = ?, updated_at = ? WHERE id = ?`,
		p.Name, projectNameKey(p.Name), p.Description, p.StartDate, formatTime(p.UpdatedAt), p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to update project %s: %w", p.ID, ErrUniqueViolation)
		}
		return fmt.Errorf("failed to update project %s: %w", p.ID, err)
	}
	return requireAffected(result, "project", p.ID)
}

// DeleteProject removes a project; tasks, tags and notes go with it via ON DELETE CASCADE
func (r *ProjectRepo) DeleteProject(ctx context.Context, id types.ProjectID) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	return requireAffected(result, "project", id)
}
