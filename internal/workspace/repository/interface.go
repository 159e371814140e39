package repository

import (
	"context"

	"productivity-assistant/internal/model"
)

// Repository is the composed interface for the workspace data store.
type Repository interface {
	TaskRepository
	EventRepository
	GoalRepository
	NoteRepository
}

// TaskRepository defines all data access methods for tasks.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	CountTasks(ctx context.Context, opt CountTasksOptions) (int, error)
	CompleteTask(ctx context.Context, opt CompleteTaskOptions) (model.Task, error)
}

type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	SetEventCalendarLink(ctx context.Context, id, link string) error
}

type GoalRepository interface {
	CreateGoal(ctx context.Context, opt CreateGoalOptions) (model.Goal, error)
}

type NoteRepository interface {
	CreateNote(ctx context.Context, opt CreateNoteOptions) (model.Note, error)
}
