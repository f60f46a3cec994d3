// Package common contains shared constants and sentinel errors used across
// taskkeeper components.
package common

const (
	// AuthorizationHeaderName is the HTTP header carrying the access token.
	AuthorizationHeaderName = "Authorization"

	// BearerScheme prefixes the token inside the Authorization header.
	BearerScheme = "Bearer "

	// DefaultTaskStatus is assigned to tasks created without an explicit status.
	DefaultTaskStatus = "Pending"
)
