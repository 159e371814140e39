package repository

import (
	"time"

	"productivity-assistant/internal/model"
)

// Owner restricts a query to the records a user can see. With an
// OrganizationID that is every record of the organization; without one,
// only the user's personal records.
type Owner struct {
	UserID         string
	OrganizationID string
}

// OwnerOf returns the owner a scope stands for.
func OwnerOf(sc model.Scope) Owner {
	return Owner{UserID: sc.UserID, OrganizationID: sc.OrganizationID}
}

type CreateTaskOptions struct {
	Owner       Owner
	Title       string
	Description string
	DueDate     *time.Time
	DueTime     *model.TimeOfDay
	Priority    model.Priority
	CreatedAt   time.Time
}

// GetOneTaskOptions fetches a task by ID within its owner.
type GetOneTaskOptions struct {
	Owner Owner
	ID    string
}

// ListTasksOptions holds filter parameters for listing tasks.
// All non-zero fields are applied as AND conditions.
type ListTasksOptions struct {
	Owner   Owner
	DueOn   *time.Time
	Status  model.TaskStatus
	Limit   int
	OrderBy string
}

// CountTasksOptions holds filter parameters for counting tasks.
// DueBefore only matches tasks that have a due date.
type CountTasksOptions struct {
	Owner         Owner
	Status        model.TaskStatus
	CreatedFrom   *time.Time
	CompletedFrom *time.Time
	DueBefore     *time.Time
}

type CompleteTaskOptions struct {
	Owner       Owner
	ID          string
	CompletedAt time.Time
}

type CreateEventOptions struct {
	Owner       Owner
	Title       string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
	CreatedAt   time.Time
}

type CreateGoalOptions struct {
	Owner       Owner
	Title       string
	Description string
	TargetDate  *time.Time
	CreatedAt   time.Time
}

type CreateNoteOptions struct {
	Owner     Owner
	Title     string
	Content   string
	CreatedAt time.Time
}
