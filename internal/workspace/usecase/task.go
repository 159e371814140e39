package usecase

import (
	"context"

	"productivity-assistant/internal/model"
	"productivity-assistant/internal/workspace"
	repo "productivity-assistant/internal/workspace/repository"
)

// CreateTask creates a pending task in the caller's organization.
func (uc *implUseCase) CreateTask(ctx context.Context, sc model.Scope, input workspace.CreateTaskInput) (model.Task, error) {
	if err := requireOrganization(sc); err != nil {
		return model.Task{}, err
	}
	title, err := cleanTitle(input.Title)
	if err != nil {
		return model.Task{}, err
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	task, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Owner:       repo.OwnerOf(sc),
		Title:       title,
		Description: input.Description,
		DueDate:     input.DueDate,
		DueTime:     input.DueTime,
		Priority:    priority,
		CreatedAt:   uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixCreateTask, err)
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "%s: created task %s for user %s", LogPrefixCreateTask, task.ID, sc.UserID)
	return task, nil
}

// ListTasks returns the caller's tasks. Without an organization, personal tasks are listed.
func (uc *implUseCase) ListTasks(ctx context.Context, sc model.Scope, input workspace.ListTasksInput) ([]model.Task, error) {
	if err := requireUser(sc); err != nil {
		return nil, err
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Owner:  repo.OwnerOf(sc),
		DueOn:  input.DueOn,
		Status: input.Status,
		Limit:  input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixListTasks, err)
		return nil, err
	}
	return tasks, nil
}

// CompleteTask marks a pending task visible to the caller as done.
func (uc *implUseCase) CompleteTask(ctx context.Context, sc model.Scope, taskID string) (model.Task, error) {
	if err := requireUser(sc); err != nil {
		return model.Task{}, err
	}
	owner := repo.OwnerOf(sc)

	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{Owner: owner, ID: taskID})
	if err != nil {
		uc.l.Errorf(ctx, "%s GetOneTask: %v", LogPrefixCompleteTask, err)
		return model.Task{}, err
	}
	if existing.ID == "" {
		return model.Task{}, workspace.ErrTaskNotFound
	}
	if existing.Status == model.TaskStatusCompleted {
		return model.Task{}, workspace.ErrTaskAlreadyCompleted
	}

	task, err := uc.repo.CompleteTask(ctx, repo.CompleteTaskOptions{Owner: owner, ID: taskID, CompletedAt: uc.now()})
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixCompleteTask, err)
		return model.Task{}, err
	}
	if task.ID == "" {
		// completed concurrently between the read and the update
		return model.Task{}, workspace.ErrTaskAlreadyCompleted
	}
	return task, nil
}
