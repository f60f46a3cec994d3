package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
)

// TaskService manages tasks on behalf of an authenticated user. Every method
// takes the caller's verified claims; a nil claims value is rejected.
type TaskService struct {
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewTaskService(m repomanager.RepositoryManager, log logging.Logger) *TaskService {
	return &TaskService{repomanager: m, log: log.With("module", "tasks")}
}

// Create stores a task owned by the caller and appends its id to the
// caller's task list. On backends without transactions a failed append
// leaves the task stored but unlisted; that case is reported as
// common.ErrorTaskNotLinked. When the insert was rolled back with the
// append the result is a plain common.ErrorInternal.
func (s *TaskService) Create(ctx context.Context, claims *auth.Claims, taskname, status string) (*models.Task, error) {
	if claims == nil {
		return nil, common.ErrorUnauthorized
	}
	if strings.TrimSpace(taskname) == "" {
		return nil, common.ErrorEmptyTaskName
	}
	if status == "" {
		status = common.DefaultTaskStatus
	}

	var (
		created *models.Task
		linkErr error
	)

	err := s.repomanager.RunInTx(ctx, func(ctx context.Context, u users.Repository, t tasks.Repository) error {
		task, err := t.Create(ctx, &models.Task{
			TaskName: taskname,
			Status:   status,
			UserID:   claims.UserID,
		})
		if err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		created = task

		if err := u.AppendTask(ctx, claims.UserID, task.ID); err != nil {
			linkErr = err
			return fmt.Errorf("link task %s: %w", task.ID, err)
		}
		return nil
	})
	if err != nil {
		if linkErr != nil {
			if _, getErr := s.repomanager.Tasks().GetByID(ctx, created.ID); errors.Is(getErr, common.ErrorNotFound) {
				s.log.Error(ctx, "task creation rolled back", "user_id", claims.UserID, "error", err)
				return nil, common.ErrorInternal
			}
			s.log.Error(ctx, "task not linked to owner", "task_id", created.ID, "user_id", claims.UserID, "error", err)
			return nil, common.ErrorTaskNotLinked
		}
		if errors.Is(err, common.ErrorInvalidID) {
			return nil, common.ErrorBadRequest
		}
		s.log.Error(ctx, "error creating task", "user_id", claims.UserID, "error", err)
		return nil, common.ErrorInternal
	}

	s.log.Debug(ctx, "task created", "task_id", created.ID, "user_id", claims.UserID)
	return created, nil
}

// Update overwrites the name and status of a task the caller owns and
// returns the stored result.
func (s *TaskService) Update(ctx context.Context, claims *auth.Claims, taskID, taskname, status string) (*models.Task, error) {
	if claims == nil {
		return nil, common.ErrorUnauthorized
	}
	if taskID == "" || strings.TrimSpace(taskname) == "" || status == "" {
		return nil, common.ErrorTaskFields
	}

	repo := s.repomanager.Tasks()

	task, err := repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, storeError(ctx, s.log, "task lookup failed", err)
	}

	if !task.OwnedBy(claims.UserID) {
		s.log.Warn(ctx, "update rejected: not the owner", "task_id", taskID, "user_id", claims.UserID)
		return nil, common.ErrorNotTaskOwner
	}

	task.TaskName = taskname
	task.Status = status

	if err := repo.Update(ctx, task); err != nil {
		return nil, storeError(ctx, s.log, "error updating task", err)
	}

	updated, err := repo.GetByID(ctx, taskID)
	if err != nil {
		s.log.Error(ctx, "updated task not readable", "task_id", taskID, "error", err)
		return nil, common.ErrorUpdateNotFound
	}

	return updated, nil
}

// ListForUser returns the caller's tasks in the order they were created.
// Ids that no longer resolve to a task are skipped.
func (s *TaskService) ListForUser(ctx context.Context, claims *auth.Claims) ([]*models.Task, error) {
	if claims == nil {
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users().GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, storeError(ctx, s.log, "user lookup failed", err)
	}

	repo := s.repomanager.Tasks()
	result := make([]*models.Task, 0, len(user.Tasks))

	for _, id := range user.Tasks {
		task, err := repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorInvalidID) {
				s.log.Debug(ctx, "skipping dangling task id", "task_id", id, "user_id", user.ID)
				continue
			}
			s.log.Error(ctx, "task lookup failed", "task_id", id, "error", err)
			return nil, common.ErrorInternal
		}
		result = append(result, task)
	}

	return result, nil
}
