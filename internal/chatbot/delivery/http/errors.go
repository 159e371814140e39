package http

import (
	"errors"
	"net/http"

	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/workspace"
	pkgErrors "productivity-assistant/pkg/errors"
)

var errMissingScope = pkgErrors.NewHTTPError(http.StatusUnauthorized, "missing caller scope")

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chatbot.ErrMissingUser):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, workspace.ErrTitleRequired),
		errors.Is(err, workspace.ErrInvalidTimeRange),
		errors.Is(err, workspace.ErrOrganizationRequired):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
