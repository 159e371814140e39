package http

import (
	"errors"
	"net/http"

	"productivity-assistant/internal/workspace"
	pkgErrors "productivity-assistant/pkg/errors"
)

var errMissingScope = pkgErrors.NewHTTPError(http.StatusUnauthorized, "missing caller scope")

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, workspace.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, workspace.ErrTaskAlreadyCompleted):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, workspace.ErrOrganizationRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, workspace.ErrMissingUser):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
