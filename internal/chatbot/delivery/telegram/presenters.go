package telegram

import (
	"strings"

	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/chatbot/usecase"
)

func helpText() string {
	return msgHelpHeader + "\n" + bullets(usecase.QuickActions)
}

func replyText(resp chatbot.Response) string {
	if resp.ErrorMessage != "" {
		return errorPrefix + resp.ErrorMessage
	}
	if len(resp.QuickActions) > 0 {
		return resp.ConfirmationText + "\n" + bullets(resp.QuickActions)
	}
	return resp.ConfirmationText
}

func bullets(lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(bullet + line)
	}
	return b.String()
}
