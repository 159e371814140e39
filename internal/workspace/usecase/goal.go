package usecase

import (
	"context"

	"productivity-assistant/internal/model"
	"productivity-assistant/internal/workspace"
	repo "productivity-assistant/internal/workspace/repository"
)

// CreateGoal records a goal in the caller's organization.
func (uc *implUseCase) CreateGoal(ctx context.Context, sc model.Scope, input workspace.CreateGoalInput) (model.Goal, error) {
	if err := requireOrganization(sc); err != nil {
		return model.Goal{}, err
	}
	title, err := cleanTitle(input.Title)
	if err != nil {
		return model.Goal{}, err
	}

	goal, err := uc.repo.CreateGoal(ctx, repo.CreateGoalOptions{
		Owner:       repo.OwnerOf(sc),
		Title:       title,
		Description: input.Description,
		TargetDate:  input.TargetDate,
		CreatedAt:   uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixCreateGoal, err)
		return model.Goal{}, err
	}
	return goal, nil
}
