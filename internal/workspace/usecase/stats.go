package usecase

import (
	"context"
	"math"

	"productivity-assistant/internal/model"
	repo "productivity-assistant/internal/workspace/repository"
)

type taskCount struct {
	dst *int
	opt repo.CountTasksOptions
}

// GetProductivityStats summarizes the caller's current week, which starts on Monday.
func (uc *implUseCase) GetProductivityStats(ctx context.Context, sc model.Scope) (model.ProductivityStats, error) {
	if err := requireUser(sc); err != nil {
		return model.ProductivityStats{}, err
	}

	now := uc.now()
	today := uc.dates.Today(now)
	weekStart := uc.dates.StartOfWeek(now)
	nextWeek := uc.dates.AddDays(weekStart, 7)

	var (
		stats      model.ProductivityStats
		pendingDue int
	)
	counts := []taskCount{
		{&stats.TasksCompletedThisWeek, repo.CountTasksOptions{Status: model.TaskStatusCompleted, CompletedFrom: &weekStart}},
		{&stats.TasksCreatedThisWeek, repo.CountTasksOptions{CreatedFrom: &weekStart}},
		{&stats.PendingTasks, repo.CountTasksOptions{Status: model.TaskStatusPending}},
		{&stats.OverdueTasks, repo.CountTasksOptions{Status: model.TaskStatusPending, DueBefore: &today}},
		{&pendingDue, repo.CountTasksOptions{Status: model.TaskStatusPending, DueBefore: &nextWeek}},
	}

	owner := repo.OwnerOf(sc)
	for _, c := range counts {
		c.opt.Owner = owner
		n, err := uc.repo.CountTasks(ctx, c.opt)
		if err != nil {
			uc.l.Errorf(ctx, "%s: %v", LogPrefixStats, err)
			return model.ProductivityStats{}, err
		}
		*c.dst = n
	}

	stats.ProductivityScore = Score(stats.TasksCompletedThisWeek, pendingDue)
	return stats, nil
}

// Score is the share of this week's workload already done, on a 0-100 scale.
// pendingDue counts pending tasks due this week or earlier.
func Score(completed, pendingDue int) int {
	total := completed + pendingDue
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
