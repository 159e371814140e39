package telegram

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/chatbot"
	pkgLog "productivity-assistant/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)

	// Shutdown waits for messages still being processed, or for ctx to end.
	Shutdown(ctx context.Context) error
}

// Bot is the part of the Telegram client the handler needs.
type Bot interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type handler struct {
	l   pkgLog.Logger
	uc  chatbot.UseCase
	bot Bot

	inflight sync.WaitGroup
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chatbot.UseCase, bot Bot) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
