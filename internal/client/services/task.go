package services

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
)

// TaskService calls the task endpoints with the stored session's token.
type TaskService struct {
	api  API
	auth *AuthService
}

func NewTaskService(api API, auth *AuthService) *TaskService {
	return &TaskService{api: api, auth: auth}
}

func (s *TaskService) token(ctx context.Context) (string, error) {
	sess, err := s.auth.Current(ctx)
	if err != nil {
		return "", err
	}
	return sess.Token, nil
}

func (s *TaskService) Create(ctx context.Context, taskname, status string) (*client.Task, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	return s.api.CreateTask(ctx, token, taskname, status)
}

func (s *TaskService) Update(ctx context.Context, taskID, taskname, status string) (*client.Task, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	return s.api.UpdateTask(ctx, token, taskID, taskname, status)
}

func (s *TaskService) List(ctx context.Context) ([]client.Task, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	return s.api.ListTasks(ctx, token)
}

func (s *TaskService) Profile(ctx context.Context) (*client.Profile, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	return s.api.Profile(ctx, token)
}
