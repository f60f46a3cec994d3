package models

import "time"

// User is an account record. Tasks holds the ids of the tasks the user
// created, in creation order; it is a back-reference for enumeration and may
// contain ids of tasks that no longer resolve.
type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string
	Tasks        []string
	CreatedAt    time.Time
}
