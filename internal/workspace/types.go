package workspace

import (
	"time"

	"productivity-assistant/internal/model"
)

type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	DueTime     *model.TimeOfDay
	Priority    model.Priority
}

// ListTasksInput filters the caller's tasks. Zero values do not filter.
type ListTasksInput struct {
	DueOn  *time.Time
	Status model.TaskStatus
	Limit  int
}

type CreateEventInput struct {
	Title       string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
}

type CreateGoalInput struct {
	Title       string
	Description string
	TargetDate  *time.Time
}

type CreateNoteInput struct {
	Title   string
	Content string
}
