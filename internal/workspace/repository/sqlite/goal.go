package sqlite

import (
	"context"

	"productivity-assistant/internal/model"
	repo "productivity-assistant/internal/workspace/repository"
)

// CreateGoal inserts a goal and returns it.
func (r *implRepository) CreateGoal(ctx context.Context, opt repo.CreateGoalOptions) (model.Goal, error) {
	const query = `
		INSERT INTO goals (id, user_id, organization_id, title, description, target_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	target := r.nullDate(opt.TargetDate)
	g := model.Goal{
		ID:             r.newID(),
		UserID:         opt.Owner.UserID,
		OrganizationID: opt.Owner.OrganizationID,
		Title:          opt.Title,
		Description:    opt.Description,
		TargetDate:     r.parseDate(target),
		CreatedAt:      opt.CreatedAt.In(r.loc),
	}
	_, err := r.db.ExecContext(ctx, query,
		g.ID, g.UserID, g.OrganizationID, g.Title, g.Description, target, g.CreatedAt.UnixMilli(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateGoal"), err)
		return model.Goal{}, repo.ErrFailedToInsert
	}
	return g, nil
}
