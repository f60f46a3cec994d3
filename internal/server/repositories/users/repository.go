// Package users stores account records. Implementations translate backend
// specific failures into common.ErrorNotFound, common.ErrorAlreadyExists and
// common.ErrorInvalidID.
package users

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type Repository interface {
	// Create stores a new user and fills in its ID. A duplicate email yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByEmail returns the user's credentials. Tasks is not populated.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID returns the user together with its ordered task ids.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// AppendTask adds taskID to the end of the user's task list.
	AppendTask(ctx context.Context, userID, taskID string) error
}
