package database

import (
	"context"

	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/types"
)

// TagRepo handles all tag-related database operations.
type TagRepo struct {
	q DBTX
}

// CreateTag inserts t, assigning its ID and timestamps
func (r *TagRepo) CreateTag(ctx context.Context, t *models.Tag) error {
	return insertItem(ctx, r.q, tagsTable, &t.Item)
}

// GetTagByID retrieves a tag by ID
func (r *TagRepo) GetTagByID(ctx context.Context, id types.TagID) (*models.Tag, error) {
	t := &models.Tag{}
	row := r.q.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM tags WHERE id = ?`, id)
	if err := scanItem(row, &t.Item); err != nil {
		return nil, notFoundIfNoRows(err, "tag", id)
	}
	return t, nil
}

// ListTagsByProject returns a page of a project's tags ordered by end instant
func (r *TagRepo) ListTagsByProject(ctx context.Context, projectID types.ProjectID, search string, page models.PageRequest) ([]*models.Tag, int, error) {
	var tags []*models.Tag
	total, err := listItems(ctx, r.q, tagsTable, projectID, search, page, func() *models.Item {
		t := &models.Tag{}
		tags = append(tags, t)
		return &t.Item
	})
	if err != nil {
		return nil, 0, err
	}
	return tags, total, nil
}

// GetTagsByProject loads every tag of a project
func (r *TagRepo) GetTagsByProject(ctx context.Context, projectID types.ProjectID) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := allItems(ctx, r.q, tagsTable, projectID, func() *models.Item {
		t := &models.Tag{}
		tags = append(tags, t)
		return &t.Item
	})
	return tags, err
}

// UpdateTag writes every mutable field of t
func (r *TagRepo) UpdateTag(ctx context.Context, t *models.Tag) error {
	return updateItem(ctx, r.q, tagsTable, &t.Item)
}

// DeleteTag removes a tag
func (r *TagRepo) DeleteTag(ctx context.Context, id types.TagID) error {
	return deleteItem(ctx, r.q, tagsTable, id)
}
