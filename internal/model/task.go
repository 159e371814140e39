package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "PENDING"
	TaskStatusCompleted TaskStatus = "COMPLETED"
)

// Task is a unit of work owned by a user, optionally inside an organization.
type Task struct {
	ID             string
	UserID         string
	OrganizationID string
	Title          string
	Description    string
	DueDate        *time.Time // midnight of the due day
	DueTime        *TimeOfDay
	Priority       Priority
	Status         TaskStatus
	CreatedAt      time.Time
	CompletedAt    *time.Time
}
