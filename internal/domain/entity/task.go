package entity

import "time"

// Task is a reusable, user-owned work item definition. Every task belongs to
// exactly one user and all reads and writes are filtered by UserID.
type Task struct {
	ID              string
	UserID          string
	Title           string
	Description     string
	DurationMinutes int
	Category        string
	Color           string
	IsRecurring     bool
	Completed       bool
	CreatedAt       time.Time
}
