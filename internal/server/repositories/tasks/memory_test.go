package tasks

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	owner := uuid.NewString()

	task, err := repo.Create(ctx, &models.Task{TaskName: "Buy milk", Status: "Pending", UserID: owner})
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)

	require.NoError(t, repo.Update(ctx, &models.Task{ID: task.ID, TaskName: "Buy oat milk", Status: "Done", UserID: "ignored"}))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", got.TaskName)
	assert.Equal(t, "Done", got.Status)
	assert.Equal(t, owner, got.UserID, "owner never changes")

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.GetByID(ctx, "42")
	assert.ErrorIs(t, err, common.ErrorInvalidID)

	_, err = repo.GetByID(ctx, "{"+task.ID+"}")
	assert.ErrorIs(t, err, common.ErrorInvalidID)

	got, err = repo.GetByID(ctx, strings.ToUpper(task.ID))
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)

	assert.ErrorIs(t, repo.Update(ctx, &models.Task{ID: uuid.NewString()}), common.ErrorNotFound)

	_, err = repo.Create(ctx, &models.Task{TaskName: "x", Status: "y", UserID: "nobody"})
	assert.ErrorIs(t, err, common.ErrorInvalidID)
}
