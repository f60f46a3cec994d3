// Package session persists the CLI's login state as key/value pairs.
package session

import "context"

// Well-known keys.
const (
	KeyToken  = "token"
	KeyUserID = "user_id"
	KeyEmail  = "email"
)

type Repository interface {
	// Get returns "" and no error when key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context) error
}
