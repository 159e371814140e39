package usecase

import (
	"context"
	"strings"

	"productivity-assistant/internal/model"
	"productivity-assistant/internal/workspace"
	repo "productivity-assistant/internal/workspace/repository"
)

// CreateNote records a note. Without an organization the note is personal.
func (uc *implUseCase) CreateNote(ctx context.Context, sc model.Scope, input workspace.CreateNoteInput) (model.Note, error) {
	if err := requireUser(sc); err != nil {
		return model.Note{}, err
	}
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" && content == "" {
		return model.Note{}, workspace.ErrTitleRequired
	}

	note, err := uc.repo.CreateNote(ctx, repo.CreateNoteOptions{
		Owner:     repo.OwnerOf(sc),
		Title:     title,
		Content:   content,
		CreatedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixCreateNote, err)
		return model.Note{}, err
	}
	return note, nil
}
