package action

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/planner/internal/database"
	"github.com/thenoetrevino/planner/internal/models"
	"github.com/thenoetrevino/planner/internal/testutil"
	"github.com/thenoetrevino/planner/internal/types"
)

func ptr[T any](v T) *T { return &v }

func setup(t *testing.T) (Service, *database.Repository, *models.Task) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	p := testutil.CreateTestProject(t, repo, "Actions", types.NewDate(2024, time.January, 1))
	task := testutil.CreateTestTask(t, repo, p.ID, "t", testutil.At(2024, 1, 1), testutil.At(2024, 1, 5), 1, 5)
	return NewService(repo), repo, task
}

func TestCreateAction_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     CreateActionRequest
		wantErr error
	}{
		{"blank details", CreateActionRequest{Details: "  ", Day: ptr(1)}, ErrDetailsBlank},
		{"day zero", CreateActionRequest{Details: "x", Day: ptr(0)}, ErrDayTooSmall},
		{"missing day", CreateActionRequest{Details: "x"}, ErrDayRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _, task := setup(t)
			tt.req.TaskID = task.ID

			_, err := svc.CreateAction(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, models.ErrBadRequest)
		})
	}
}

func TestCreateAction_UnknownTask(t *testing.T) {
	t.Parallel()
	svc, _, _ := setup(t)

	_, err := svc.CreateAction(context.Background(), CreateActionRequest{TaskID: types.NewID(), Details: "x", Day: ptr(1)})
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestActionLifecycle(t *testing.T) {
	t.Parallel()
	svc, _, task := setup(t)
	ctx := context.Background()

	a, err := svc.CreateAction(ctx, CreateActionRequest{TaskID: task.ID, Details: " order steel ", Day: ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, "order steel", a.Details)
	_, err = svc.CreateAction(ctx, CreateActionRequest{TaskID: task.ID, Details: "sign contract", Day: ptr(1)})
	require.NoError(t, err)

	page, err := svc.ListActions(ctx, task.ID, "", models.PageRequest{Size: 20})
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	assert.Equal(t, 1, page.Content[0].Day)

	page, err = svc.ListActions(ctx, task.ID, "steel", models.PageRequest{Size: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalElements)

	updated, err := svc.UpdateAction(ctx, UpdateActionRequest{ID: a.ID, Day: ptr(7)})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Day)
	assert.Equal(t, "order steel", updated.Details)

	_, err = svc.UpdateAction(ctx, UpdateActionRequest{ID: a.ID, Details: ptr("")})
	require.ErrorIs(t, err, ErrDetailsBlank)

	require.NoError(t, svc.DeleteAction(ctx, a.ID))
	_, err = svc.GetAction(ctx, a.ID)
	assert.ErrorIs(t, err, ErrActionNotFound)
}
