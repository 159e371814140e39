package sqlite

import (
	"context"

	"productivity-assistant/internal/model"
	repo "productivity-assistant/internal/workspace/repository"
)

// CreateNote inserts a note and returns it. An empty organization makes it personal.
func (r *implRepository) CreateNote(ctx context.Context, opt repo.CreateNoteOptions) (model.Note, error) {
	const query = `
		INSERT INTO notes (id, user_id, organization_id, title, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	n := model.Note{
		ID:             r.newID(),
		UserID:         opt.Owner.UserID,
		OrganizationID: opt.Owner.OrganizationID,
		Title:          opt.Title,
		Content:        opt.Content,
		CreatedAt:      opt.CreatedAt.In(r.loc),
	}
	_, err := r.db.ExecContext(ctx, query, n.ID, n.UserID, n.OrganizationID, n.Title, n.Content, n.CreatedAt.UnixMilli())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNote"), err)
		return model.Note{}, repo.ErrFailedToInsert
	}
	return n, nil
}
