package chatbot

import (
	"context"

	"productivity-assistant/internal/model"
)

// UseCase is the interpreter entry point exposed to delivery layers.
type UseCase interface {
	// Parse runs the rule-based parser only.
	Parse(ctx context.Context, rawMessage string) ParsedMessage

	// ProcessMessage parses a message (LLM first, rules as fallback), dispatches it and records history.
	ProcessMessage(ctx context.Context, sc model.Scope, input ProcessMessageInput) (Response, error)

	IsLLMAvailable(ctx context.Context) bool
	LLMModelName() string

	// ClearHistory forgets the conversation history of userID.
	ClearHistory(ctx context.Context, userID string)
}

// LLM is the language-model backend consumed by the LLM-assisted parser.
type LLM interface {
	IsAvailable(ctx context.Context) bool
	Model() string
	Generate(ctx context.Context, systemPrompt, userMessage string, history []Exchange) (string, error)
}

// HistoryStore keeps the bounded per-user conversation history.
type HistoryStore interface {
	Append(userID string, exchange Exchange)
	Recent(userID string) []Exchange
	Clear(userID string)
}
