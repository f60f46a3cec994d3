// Package services contains application services for the taskkeeper CLI.
// This file defines the authentication service: register, login, logout and
// the locally persisted session.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
	"github.com/dmitrijs2005/taskkeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
)

var ErrNotLoggedIn = errors.New("not logged in")

// API is the subset of the server API the CLI uses.
type API interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (*client.LoginResponse, error)
	Profile(ctx context.Context, token string) (*client.Profile, error)
	CreateTask(ctx context.Context, token, taskname, status string) (*client.Task, error)
	UpdateTask(ctx context.Context, token, taskID, taskname, status string) (*client.Task, error)
	ListTasks(ctx context.Context, token string) ([]client.Task, error)
}

// Session is the logged-in state kept between CLI runs.
type Session struct {
	UserID string
	Email  string
	Token  string
}

type AuthService struct {
	api API
	db  *sql.DB
}

func NewAuthService(api API, db *sql.DB) *AuthService {
	return &AuthService{api: api, db: db}
}

func (a *AuthService) Ping(ctx context.Context) error {
	return a.api.Ping(ctx)
}

// Register creates an account on the server. It does not log in.
func (a *AuthService) Register(ctx context.Context, username, email, password string) (string, error) {
	return a.api.Register(ctx, username, email, password)
}

// Login authenticates against the server and replaces the stored session.
func (a *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	s := &Session{UserID: resp.UserID, Email: email, Token: resp.Token}
	if err := a.save(ctx, s); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return s, nil
}

func (a *AuthService) save(ctx context.Context, s *Session) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		if err := repo.Set(ctx, session.KeyUserID, s.UserID); err != nil {
			return err
		}
		if err := repo.Set(ctx, session.KeyEmail, s.Email); err != nil {
			return err
		}
		return repo.Set(ctx, session.KeyToken, s.Token)
	})
}

// Current returns the stored session, or ErrNotLoggedIn when there is none.
// The token is not checked against the server.
func (a *AuthService) Current(ctx context.Context) (*Session, error) {
	repo := session.NewSQLiteRepository(a.db)

	token, err := repo.Get(ctx, session.KeyToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	userID, err := repo.Get(ctx, session.KeyUserID)
	if err != nil {
		return nil, err
	}
	email, err := repo.Get(ctx, session.KeyEmail)
	if err != nil {
		return nil, err
	}
	return &Session{UserID: userID, Email: email, Token: token}, nil
}

// Logout forgets the stored session. The token itself stays valid on the
// server until it expires.
func (a *AuthService) Logout(ctx context.Context) error {
	return session.NewSQLiteRepository(a.db).Clear(ctx)
}
