package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/model"
	pkgResponse "productivity-assistant/pkg/response"
	pkgTelegram "productivity-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// Telegram only waits a few seconds for the acknowledgement, so the message
// is processed in the background.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "%s: failed to parse update: %v", LogPrefixHandleWebhook, err)
		pkgResponse.Error(c, err)
		return
	}

	if update.Message == nil || update.Message.Chat == nil || strings.TrimSpace(update.Message.Text) == "" {
		pkgResponse.OK(c, map[string]string{"status": statusIgnored})
		return
	}

	msg := update.Message
	bgCtx := context.WithoutCancel(ctx)
	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "%s: processMessage: %v", LogPrefixHandleWebhook, err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgFailure)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": statusAccepted})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	sc := scopeOf(msg)
	chatID := msg.Chat.ID

	switch strings.TrimSpace(msg.Text) {
	case commandStart:
		return h.bot.SendMessage(ctx, chatID, msgWelcome+"\n\n"+helpText())
	case commandHelp:
		return h.bot.SendMessage(ctx, chatID, helpText())
	case commandReset:
		h.uc.ClearHistory(ctx, sc.UserID)
		return h.bot.SendMessage(ctx, chatID, msgReset)
	}

	resp, err := h.uc.ProcessMessage(ctx, sc, chatbot.ProcessMessageInput{Message: msg.Text})
	if err != nil {
		return err
	}
	return h.bot.SendMessage(ctx, chatID, replyText(resp))
}

// scopeOf identifies the sender; Telegram users always act in personal scope.
func scopeOf(msg *pkgTelegram.Message) model.Scope {
	id := msg.Chat.ID
	var username string
	if msg.From != nil {
		id = msg.From.ID
		username = msg.From.Username
	}
	return model.Scope{
		UserID:   fmt.Sprintf(userIDFormat, id),
		Username: username,
	}
}

func (h *handler) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		h.l.Warnf(ctx, "%s: shutdown before pending replies were sent: %v", LogPrefixHandleWebhook, ctx.Err())
		return ctx.Err()
	}
}
