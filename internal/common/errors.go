package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorInvalidID     = errors.New("invalid id")

	// Service-level errors. Callers map these to transport status codes.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorBadRequest   = errors.New("bad request")

	// Account errors.
	ErrorEmptyFields   = fmt.Errorf("%w: the fields can't be empty", ErrorBadRequest)
	ErrorEmailExists   = fmt.Errorf("%w: the email already exists", ErrorBadRequest)
	ErrorWrongPassword = fmt.Errorf("%w: wrong password", ErrorBadRequest)
	ErrorPasswordLong  = fmt.Errorf("%w: password is longer than 72 bytes", ErrorBadRequest)

	// Task errors.
	ErrorEmptyTaskName  = fmt.Errorf("%w: task name cannot be empty", ErrorBadRequest)
	ErrorTaskFields     = fmt.Errorf("%w: task name, status and id are required", ErrorBadRequest)
	ErrorNotTaskOwner   = fmt.Errorf("%w: not authorized to update this task", ErrorUnauthorized)
	ErrorTaskNotLinked  = fmt.Errorf("%w: task created but not linked to its owner", ErrorInternal)
	ErrorUpdateNotFound = fmt.Errorf("%w: updated task not found", ErrorInternal)

	// Auth errors (missing, malformed, invalid or expired token).
	ErrInvalidToken = fmt.Errorf("%w: invalid token", ErrorUnauthorized)
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrInvalidToken)
)
