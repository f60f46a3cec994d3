package models

import "time"

// Task is a work item owned by exactly one user. UserID never changes after
// creation.
type Task struct {
	ID        string
	TaskName  string
	Status    string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether userID may mutate the task.
func (t *Task) OwnedBy(userID string) bool {
	return t.UserID != "" && t.UserID == userID
}
