package sqlite

import (
	"context"

	"productivity-assistant/internal/model"
	repo "productivity-assistant/internal/workspace/repository"
)

// CreateEvent inserts an event and returns it.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	const query = `
		INSERT INTO events (id, user_id, organization_id, title, description, starts_at, ends_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	e := model.Event{
		ID:             r.newID(),
		UserID:         opt.Owner.UserID,
		OrganizationID: opt.Owner.OrganizationID,
		Title:          opt.Title,
		Description:    opt.Description,
		StartsAt:       opt.StartsAt.In(r.loc),
		EndsAt:         opt.EndsAt.In(r.loc),
		CreatedAt:      opt.CreatedAt.In(r.loc),
	}
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.UserID, e.OrganizationID, e.Title, e.Description,
		e.StartsAt.UnixMilli(), e.EndsAt.UnixMilli(), e.CreatedAt.UnixMilli(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// SetEventCalendarLink stores the deep link of the mirrored calendar entry.
func (r *implRepository) SetEventCalendarLink(ctx context.Context, id, link string) error {
	const query = `UPDATE events SET calendar_link = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, link, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetEventCalendarLink"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
