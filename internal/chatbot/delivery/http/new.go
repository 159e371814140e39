package http

import (
	"productivity-assistant/internal/chatbot"
	"productivity-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chatbot.UseCase
}

// New creates a new HTTP handler for the chatbot domain.
func New(l log.Logger, uc chatbot.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
