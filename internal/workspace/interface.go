package workspace

import (
	"context"

	"productivity-assistant/internal/model"
)

// UseCase manages the tasks, events, goals and notes of a user.
// Tasks, events and goals live in an organization; notes may be personal.
//
//go:generate mockery --name UseCase
type UseCase interface {
	CreateTask(ctx context.Context, sc model.Scope, input CreateTaskInput) (model.Task, error)
	ListTasks(ctx context.Context, sc model.Scope, input ListTasksInput) ([]model.Task, error)
	CompleteTask(ctx context.Context, sc model.Scope, taskID string) (model.Task, error)
	CreateEvent(ctx context.Context, sc model.Scope, input CreateEventInput) (model.Event, error)
	CreateGoal(ctx context.Context, sc model.Scope, input CreateGoalInput) (model.Goal, error)
	CreateNote(ctx context.Context, sc model.Scope, input CreateNoteInput) (model.Note, error)
	GetProductivityStats(ctx context.Context, sc model.Scope) (model.ProductivityStats, error)
}
