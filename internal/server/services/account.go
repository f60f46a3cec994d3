// Package services contains server-side business logic. This file implements
// AccountService, which handles registration, login and the caller's profile.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
)

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) (bool, error)
}

type TokenIssuer interface {
	Issue(userID, username string) (string, error)
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	UserID string
	Token  string
}

// AccountService provides authentication-related operations:
// - Register: create users with a bcrypt password hash
// - Login: verify credentials and mint an access token
// - Profile: load the authenticated caller's record
type AccountService struct {
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	tokens      TokenIssuer
	log         logging.Logger
}

func NewAccountService(m repomanager.RepositoryManager, hasher PasswordHasher, tokens TokenIssuer, log logging.Logger) *AccountService {
	return &AccountService{
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
		log:         log.With("module", "account"),
	}
}

// Register creates a user with an empty task list and returns it. The email
// lookup is only a fast path; the store's unique index on email is what
// rejects concurrent duplicates.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, common.ErrorEmptyFields
	}
	if len(password) > auth.MaxPasswordBytes {
		return nil, common.ErrorPasswordLong
	}

	repo := s.repomanager.Users()

	_, err := repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, common.ErrorEmailExists
	case !errors.Is(err, common.ErrorNotFound):
		s.log.Error(ctx, "email lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.log.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrorInternal
	}

	u, err := repo.Create(ctx, &models.User{
		UserName:     username,
		Email:        email,
		PasswordHash: hash,
		Tasks:        []string{},
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorEmailExists
		}
		s.log.Error(ctx, "error creating user", "error", err)
		return nil, common.ErrorInternal
	}

	s.log.Info(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// Login checks the password against the stored hash and, on success, issues
// a signed token for the user.
func (s *AccountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, common.ErrorEmptyFields
	}

	user, err := s.repomanager.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		s.log.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.log.Error(ctx, "password verification failed", "user_id", user.ID, "error", err)
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrorWrongPassword
	}

	token, err := s.tokens.Issue(user.ID, user.UserName)
	if err != nil {
		s.log.Error(ctx, "token signing failed", "user_id", user.ID, "error", err)
		return nil, common.ErrorInternal
	}

	return &LoginResult{UserID: user.ID, Token: token}, nil
}

// Profile returns the caller's own record, task ids included. The password
// hash is cleared.
func (s *AccountService) Profile(ctx context.Context, claims *auth.Claims) (*models.User, error) {
	if claims == nil {
		return nil, common.ErrorUnauthorized
	}

	u, err := s.repomanager.Users().GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, storeError(ctx, s.log, "user lookup failed", err)
	}

	u.PasswordHash = ""
	return u, nil
}
