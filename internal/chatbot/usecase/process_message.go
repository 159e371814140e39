package usecase

import (
	"context"
	"strings"
	"time"

	"productivity-assistant/internal/chatbot"
	"productivity-assistant/internal/model"
)

// Parse reads rawMessage with the rule-based parser only.
func (uc *implUseCase) Parse(ctx context.Context, rawMessage string) chatbot.ParsedMessage {
	return uc.rules.Parse(rawMessage, uc.today())
}

// ProcessMessage reads the message, preferring the LLM and falling back to
// rules, executes the resulting command and records the exchange.
func (uc *implUseCase) ProcessMessage(ctx context.Context, sc model.Scope, input chatbot.ProcessMessageInput) (chatbot.Response, error) {
	if sc.UserID == "" {
		return chatbot.Response{}, chatbot.ErrMissingUser
	}
	if input.OrganizationID != "" {
		sc.OrganizationID = input.OrganizationID
	}

	today := uc.today()
	msg, usedLLM := uc.interpret(ctx, sc.UserID, input.Message, today)

	resp, err := uc.dispatch(ctx, sc, msg, input.Message, today)
	if err != nil {
		uc.l.Errorf(ctx, "%s: dispatch %s: %v", LogPrefixProcessMessage, msg.Intent, err)
		return chatbot.Response{}, err
	}

	resp.UsedOllama = usedLLM
	if usedLLM {
		resp.OllamaModel = uc.llm.Model()
	}

	uc.history.Append(sc.UserID, chatbot.Exchange{
		UserMessage: input.Message,
		Summary:     summary(resp),
		Intent:      resp.Intent,
		At:          uc.now(),
	})

	uc.l.Infof(ctx, "%s: user=%s intent=%s executed=%t llm=%t confidence=%.2f",
		LogPrefixProcessMessage, sc.UserID, resp.Intent, resp.ActionExecuted, usedLLM, msg.Confidence)
	return resp, nil
}

// interpret returns the parsed message and whether the LLM produced it.
func (uc *implUseCase) interpret(ctx context.Context, userID, raw string, today time.Time) (chatbot.ParsedMessage, bool) {
	if uc.llmParser == nil || strings.TrimSpace(raw) == "" || !uc.llm.IsAvailable(ctx) {
		return uc.rules.Parse(raw, today), false
	}

	msg, ok := uc.llmParser.Parse(ctx, raw, uc.history.Recent(userID), today)
	if !ok || msg.Intent == chatbot.IntentUnknown {
		return uc.rules.Parse(raw, today), false
	}
	return msg, true
}

func summary(resp chatbot.Response) string {
	if resp.ErrorMessage != "" {
		return resp.ErrorMessage
	}
	return resp.ConfirmationText
}

func (uc *implUseCase) IsLLMAvailable(ctx context.Context) bool {
	return uc.llm != nil && uc.llm.IsAvailable(ctx)
}

func (uc *implUseCase) LLMModelName() string {
	if uc.llm == nil {
		return ""
	}
	return uc.llm.Model()
}

func (uc *implUseCase) ClearHistory(ctx context.Context, userID string) {
	uc.history.Clear(userID)
	uc.l.Debugf(ctx, "%s: cleared history of %s", LogPrefixProcessMessage, userID)
}
