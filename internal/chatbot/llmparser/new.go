package llmparser

import (
	"productivity-assistant/internal/chatbot"
	"productivity-assistant/pkg/log"
)

// Parser reads a message through the LLM port. It never returns an error:
// every failure is reported as ok=false so callers can fall back to rules.
type Parser struct {
	llm chatbot.LLM
	l   log.Logger
}

// New creates a Parser on top of the LLM port.
func New(l log.Logger, llm chatbot.LLM) *Parser {
	return &Parser{
		llm: llm,
		l:   l,
	}
}
