// Package tasks stores task records. The task store is the source of truth
// for a task's existence; the owner's task list is only a back-reference.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type Repository interface {
	// Create stores a new task and fills in its ID.
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	// GetByID returns common.ErrorInvalidID for malformed ids and
	// common.ErrorNotFound when no task has the id.
	GetByID(ctx context.Context, id string) (*models.Task, error)
	// Update overwrites TaskName and Status of the task with task.ID.
	Update(ctx context.Context, task *models.Task) error
}
