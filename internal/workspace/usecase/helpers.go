package usecase

import (
	"strings"
	"unicode/utf8"

	"productivity-assistant/internal/model"
	"productivity-assistant/internal/workspace"
)

func requireUser(sc model.Scope) error {
	if sc.UserID == "" {
		return workspace.ErrMissingUser
	}
	return nil
}

func requireOrganization(sc model.Scope) error {
	if err := requireUser(sc); err != nil {
		return err
	}
	if !sc.HasOrganization() {
		return workspace.ErrOrganizationRequired
	}
	return nil
}

// cleanTitle trims the title and cuts it to maxTitleLength runes.
func cleanTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", workspace.ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		title = string([]rune(title)[:maxTitleLength])
	}
	return title, nil
}
