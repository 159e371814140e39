// Package parser is the deterministic, keyword-driven reader of French
// productivity messages. It never fails: anything it cannot place becomes
// an UNKNOWN intent with zero confidence.
package parser

import (
	"strings"
	"time"

	"productivity-assistant/internal/chatbot"
	"productivity-assistant/pkg/datemath"
)

// Parser extracts a chatbot.ParsedMessage from raw text.
type Parser struct {
	dates *datemath.Parser
}

// New returns a rule parser that resolves relative dates with dates.
func New(dates *datemath.Parser) *Parser {
	return &Parser{dates: dates}
}

// Parse reads raw relative to today. The same input and day always give the same result.
func (p *Parser) Parse(raw string, today time.Time) chatbot.ParsedMessage {
	if strings.TrimSpace(raw) == "" {
		return chatbot.Unparsed()
	}

	text := Normalize(raw)
	msg := chatbot.ParsedMessage{Intent: ClassifyIntent(text)}
	if d, ok := p.ExtractDate(text, today); ok {
		msg.Date = &d
	}
	if t, ok := ExtractTime(text); ok {
		msg.Time = &t
	}
	msg.Priority, msg.PriorityExplicit = ExtractPriority(text)
	msg.Title = ExtractTitle(raw)
	msg.Confidence = Score(msg)
	return msg
}
