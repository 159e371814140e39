package http

import (
	"productivity-assistant/internal/workspace"
	"productivity-assistant/pkg/datemath"
	"productivity-assistant/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    workspace.UseCase
	dates *datemath.Parser
}

// New creates a new HTTP handler for the workspace domain.
func New(l log.Logger, uc workspace.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
	}
}
